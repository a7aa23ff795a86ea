package engine

import (
	"sandbox-core/internal/domain"
)

// EventBus - синхронная шина событий симуляции.
// Подписчики вызываются в порядке подписки, в том же тике.
type EventBus struct {
	sinks []domain.EventSink
}

func NewEventBus() *EventBus {
	return &EventBus{}
}

// Subscribe добавляет подписчика
func (b *EventBus) Subscribe(s domain.EventSink) {
	if s == nil {
		return
	}
	b.sinks = append(b.sinks, s)
}

// Publish раздаёт событие всем подписчикам
func (b *EventBus) Publish(e domain.Event) {
	for _, s := range b.sinks {
		s.OnEvent(e)
	}
}
