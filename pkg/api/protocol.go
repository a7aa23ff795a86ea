package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// Типы серверных сообщений
const (
	MessageEvent    = "EVENT"
	MessageSnapshot = "SNAPSHOT"
	MessageError    = "ERROR"
)

// ServerMessage это корневой объект, который сервер отправляет клиенту.
// Для EVENT заполнено поле Event, для SNAPSHOT - Actors.
type ServerMessage struct {
	// Type тип сообщения: EVENT, SNAPSHOT или ERROR.
	Type string `json:"type"`

	// Tick номер кадра симуляции, к которому относится сообщение.
	Tick uint64 `json:"tick"`

	Event  *EventView  `json:"event,omitempty"`
	Actors []ActorView `json:"actors,omitempty"`

	// Error текст ошибки для ERROR (например, невалидная команда).
	Error string `json:"error,omitempty"`
}

// Vec3View - точка или направление в мировых координатах (Y вверх).
type Vec3View struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// ActorView это DTO для одного актёра в снимке состояния.
// Используется HUD-ом, миникартой и отладочными инструментами.
type ActorView struct {
	ID   string   `json:"id"`
	Kind string   `json:"kind"` // PLAYER, PEDESTRIAN, VEHICLE
	Name string   `json:"name"`
	Pos  Vec3View `json:"pos"`
	Yaw  float64  `json:"yaw"` // радианы

	// Health отсутствует у неуязвимых актёров.
	Health *HealthView `json:"health,omitempty"`

	Weapon *WeaponView `json:"weapon,omitempty"`

	// NavMode режим пешехода: PATROLLING или FLEEING.
	NavMode string `json:"navMode,omitempty"`

	// Crouching игрок идёт пригнувшись.
	Crouching bool `json:"crouching,omitempty"`

	// SeatedIn ID машины, в которой сидит актёр.
	SeatedIn string `json:"seatedIn,omitempty"`

	// Occupant ID водителя машины.
	Occupant string `json:"occupant,omitempty"`
}

// HealthView это DTO для здоровья.
type HealthView struct {
	Current float64 `json:"current"`
	Max     float64 `json:"max"`
	IsDead  bool    `json:"isDead"`
}

// WeaponView это DTO активного оружия (для HUD патронов).
type WeaponView struct {
	ID       string `json:"id"`
	Slot     int    `json:"slot"`
	Ammo     int    `json:"ammo"`
	Magazine int    `json:"magazine"`
	State    string `json:"state"` // IDLE, RELOADING
}

// EventView это DTO события симуляции для внешних наблюдателей (звук, камера, HUD).
type EventView struct {
	Type   string `json:"type"`
	TimeMs int64  `json:"timeMs"` // время симуляции с момента старта
	Source string `json:"source,omitempty"`
	Target string `json:"target,omitempty"`

	Amount float64 `json:"amount,omitempty"`
	Health float64 `json:"health,omitempty"`

	WeaponID  string    `json:"weaponId,omitempty"`
	Origin    *Vec3View `json:"origin,omitempty"`
	Direction *Vec3View `json:"direction,omitempty"`
	HitPoint  *Vec3View `json:"hitPoint,omitempty"`
	Hit       bool      `json:"hit,omitempty"`

	// KickPitch/KickYaw - отдача камеры в градусах
	KickPitch float64 `json:"kickPitch,omitempty"`
	KickYaw   float64 `json:"kickYaw,omitempty"`

	Slot     int    `json:"slot,omitempty"`
	Occupied bool   `json:"occupied,omitempty"`
	Mode     string `json:"mode,omitempty"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
// По WebSocket принимаются только отладочные команды (DAMAGE, HEAL, KILL).
type ClientCommand struct {
	// Token ID сущности, от имени которой выполняется действие.
	// Для отладочных команд можно не указывать.
	Token string `json:"token,omitempty"`

	// Action название действия, которое нужно выполнить.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// EntityPayload используется для действий, нацеленных на другую сущность (e.g. KILL).
type EntityPayload struct {
	TargetID string `json:"targetId"`
}

// AmountPayload используется для DAMAGE и HEAL.
type AmountPayload struct {
	TargetID string  `json:"targetId"`
	Amount   float64 `json:"amount"`
}

// SlotPayload используется для SELECT_WEAPON.
type SlotPayload struct {
	Slot int `json:"slot"`
}
