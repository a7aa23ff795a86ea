package domain

import (
	"strings"
	"time"
)

// EventType - Внутренний числовой идентификатор события
type EventType uint8

const (
	EventUnknown EventType = iota
	EventDamaged
	EventDied
	EventFired
	EventReloadStarted
	EventReloadCompleted
	EventWeaponSwitched
	EventOccupancyChanged
	EventNavModeChanged
	EventEntityRemoved
)

// Маппинг для конвертации JSON -> Domain
var eventStringToType = map[string]EventType{
	"DAMAGED":           EventDamaged,
	"DIED":              EventDied,
	"FIRED":             EventFired,
	"RELOAD_STARTED":    EventReloadStarted,
	"RELOAD_COMPLETED":  EventReloadCompleted,
	"WEAPON_SWITCHED":   EventWeaponSwitched,
	"OCCUPANCY_CHANGED": EventOccupancyChanged,
	"NAV_MODE_CHANGED":  EventNavModeChanged,
	"ENTITY_REMOVED":    EventEntityRemoved,
}

// Маппинг для логов Domain -> String
var eventTypeToString = map[EventType]string{
	EventDamaged:          "DAMAGED",
	EventDied:             "DIED",
	EventFired:            "FIRED",
	EventReloadStarted:    "RELOAD_STARTED",
	EventReloadCompleted:  "RELOAD_COMPLETED",
	EventWeaponSwitched:   "WEAPON_SWITCHED",
	EventOccupancyChanged: "OCCUPANCY_CHANGED",
	EventNavModeChanged:   "NAV_MODE_CHANGED",
	EventEntityRemoved:    "ENTITY_REMOVED",
}

// ParseEvent конвертирует строку из JSON в EventType
func ParseEvent(s string) EventType {
	// Делаем нечувствительным к регистру для надежности
	if val, ok := eventStringToType[strings.ToUpper(s)]; ok {
		return val
	}
	return EventUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (e EventType) String() string {
	if val, ok := eventTypeToString[e]; ok {
		return val
	}
	return "UNKNOWN"
}

// Event - уведомление ядра для внешних наблюдателей (звук, камера, HUD, статистика).
// Заполняются только поля, относящиеся к типу события.
type Event struct {
	Type   EventType     `json:"type"`
	Tick   uint64        `json:"tick"`
	Time   time.Duration `json:"time"`
	Source EntityID      `json:"source,omitempty"` // кто вызвал (стрелок, водитель)
	Target EntityID      `json:"target,omitempty"` // на кого подействовало

	Amount float64 `json:"amount,omitempty"` // урон, оставшееся здоровье
	Health float64 `json:"health,omitempty"`

	// Выстрел
	WeaponID  string `json:"weaponId,omitempty"`
	Origin    Vec3   `json:"origin,omitzero"`
	Direction Vec3   `json:"direction,omitzero"`
	HitPoint  Vec3   `json:"hitPoint,omitzero"`
	Hit       bool   `json:"hit,omitempty"`
	// Отдача камеры (pitch, yaw в градусах)
	Kick Vec2 `json:"kick,omitzero"`

	Slot     int    `json:"slot,omitempty"`
	Occupied bool   `json:"occupied,omitempty"`
	Mode     string `json:"mode,omitempty"`
}

// EventSink - подписчик на события симуляции.
// Вызывается синхронно, в том же тике, в котором событие произошло.
type EventSink interface {
	OnEvent(e Event)
}

// EventSinkFunc - адаптер функции к EventSink
type EventSinkFunc func(e Event)

func (f EventSinkFunc) OnEvent(e Event) { f(e) }
