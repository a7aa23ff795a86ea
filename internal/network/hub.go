package network

import (
	"sandbox-core/pkg/api"
	"sandbox-core/pkg/logger"
	"sync"

	"github.com/sirupsen/logrus"
)

// subscriberBuffer - сколько сообщений может ждать медленный клиент
const subscriberBuffer = 256

// Broadcaster раздаёт сообщения симуляции подписчикам (WebSocket-сессиям).
// Отправка никогда не блокирует тик: переполненный канал теряет сообщение.
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: ID сессии -> Личный канал
	subscribers map[string]chan api.ServerMessage
	dropped     map[string]int
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.ServerMessage),
		dropped:     make(map[string]int),
	}
}

// Register создает личный канал для сессии
func (b *Broadcaster) Register(sessionID string) <-chan api.ServerMessage {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Переподключение с тем же ID закрывает старый канал
	if old, ok := b.subscribers[sessionID]; ok {
		close(old)
	}

	ch := make(chan api.ServerMessage, subscriberBuffer)
	b.subscribers[sessionID] = ch
	b.dropped[sessionID] = 0
	return ch
}

// Unregister удаляет подписчика и закрывает его канал
func (b *Broadcaster) Unregister(sessionID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[sessionID]; ok {
		close(ch)
		delete(b.subscribers, sessionID)
		if n := b.dropped[sessionID]; n > 0 {
			logger.Log.WithFields(logrus.Fields{
				"component": "hub",
				"session":   sessionID,
				"dropped":   n,
			}).Warn("Subscriber left with dropped messages.")
		}
		delete(b.dropped, sessionID)
	}
}

// SendTo отправляет сообщение одной сессии (Unicast)
func (b *Broadcaster) SendTo(sessionID string, msg api.ServerMessage) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch, ok := b.subscribers[sessionID]
	if !ok {
		return false
	}
	return b.offer(sessionID, ch, msg)
}

// Broadcast отправляет всем подписчикам
func (b *Broadcaster) Broadcast(msg api.ServerMessage) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.subscribers {
		b.offer(id, ch, msg)
	}
}

func (b *Broadcaster) offer(id string, ch chan api.ServerMessage, msg api.ServerMessage) bool {
	select {
	case ch <- msg:
		return true
	default:
		b.dropped[id]++
		return false
	}
}

// Dropped - сколько сообщений сессия потеряла из-за переполнения
func (b *Broadcaster) Dropped(sessionID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.dropped[sessionID]
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
