package server

import (
	"sandbox-core/internal/domain"
	"sandbox-core/internal/engine"
	"sandbox-core/internal/network"
)

// EventForwarder рассылает события симуляции всем WebSocket-сессиям.
// Вызывается из горутины симуляции, рассылка не блокирует.
type EventForwarder struct {
	Hub *network.Broadcaster
}

func (f EventForwarder) OnEvent(e domain.Event) {
	if f.Hub.SubscriberCount() == 0 {
		return
	}
	f.Hub.Broadcast(engine.NewEventMessage(e))
}
