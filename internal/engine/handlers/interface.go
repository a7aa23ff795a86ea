package handlers

import (
	"encoding/json"
	"sandbox-core/internal/domain"
	"sandbox-core/internal/systems"
	"time"
)

// EntityFinder описывает любую структуру, которая может находить сущность по ID.
// GameWorld и Simulation неявно реализуют этот интерфейс.
type EntityFinder interface {
	GetEntity(id domain.EntityID) *domain.Entity
}

// Context передает хендлеру состояние мира.
// Мы передаем ссылки, чтобы хендлер мог менять состояние (мутировать данные).
type Context struct {
	Finder EntityFinder
	World  *domain.GameWorld
	Actor  *domain.Entity // Тот, кто выполняет команду. Для отладочных команд может быть nil.

	Now   time.Duration     // Время симуляции
	Input domain.InputFrame // Ввод текущего кадра (для намерений игрока)

	Raycaster     systems.Raycaster
	Controllables systems.ControllableFinder
	Rng           domain.RandomSource

	AimSpreadMultiplier float64
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ публикует события сам, он возвращает данные.
type Result struct {
	Msg     string         // Текст лога
	MsgType string         // Тип лога (INFO, COMBAT, ERROR)
	Events  []domain.Event // События для шины; Tick и Time проставит движок
}

// HandlerFunc - это контракт для любой команды (FIRE, RELOAD, KILL, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
