package domain

import (
	"encoding/json"
	"time"
)

// ReplayFrame - ввод игрока за один кадр
type ReplayFrame struct {
	Tick  uint64        `json:"tick"`
	Delta time.Duration `json:"delta"`
	Input InputFrame    `json:"input"`
}

// ReplayAction - внешняя (отладочная) команда, применённая в начале тика
type ReplayAction struct {
	Tick    uint64          `json:"tick"`
	Actor   EntityID        `json:"actor"`
	Action  ActionType      `json:"action"`
	Payload json.RawMessage `json:"payload"`
}

// ReplaySession - полная запись сессии.
// Сид плюс ввод по кадрам однозначно воспроизводят симуляцию.
type ReplaySession struct {
	Seed      int64          `json:"seed"`
	Timestamp int64          `json:"timestamp"`
	FixedStep time.Duration  `json:"fixedStep"`
	Frames    []ReplayFrame  `json:"frames"`
	Actions   []ReplayAction `json:"actions"`
}
