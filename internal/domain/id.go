package domain

import "github.com/google/uuid"

// EntityID - идентификатор сущности в симуляции.
// Ссылки между сущностями (угроза, пассажир) хранятся только как ID
// и разрешаются заново на каждом тике.
type EntityID string

// NewEntityID генерирует новый уникальный ID
func NewEntityID() EntityID {
	return EntityID(uuid.New().String())
}

func (id EntityID) String() string {
	return string(id)
}

// IsZero - пустой ID (ссылка отсутствует)
func (id EntityID) IsZero() bool {
	return id == ""
}
