package engine

import (
	"sandbox-core/internal/domain"
	"sandbox-core/pkg/logger"
	"sync"

	"github.com/sirupsen/logrus"
)

// EventLog пишет события в лог и держит хвост последних событий для отладки
type EventLog struct {
	mu     sync.RWMutex
	limit  int
	recent []domain.Event
}

func NewEventLog(limit int) *EventLog {
	if limit <= 0 {
		limit = 100
	}
	return &EventLog{limit: limit}
}

func (l *EventLog) OnEvent(e domain.Event) {
	entry := logger.Log.WithFields(logrus.Fields{
		"component": "game_log",
		"tick":      e.Tick,
		"event":     e.Type,
		"source":    e.Source,
		"target":    e.Target,
	})
	switch e.Type {
	case domain.EventDied, domain.EventOccupancyChanged, domain.EventEntityRemoved:
		entry.Info("Simulation event.")
	default:
		entry.Debug("Simulation event.")
	}

	l.mu.Lock()
	l.recent = append(l.recent, e)
	if len(l.recent) > l.limit {
		l.recent = l.recent[len(l.recent)-l.limit:]
	}
	l.mu.Unlock()
}

// Recent - копия последних событий (читается из HTTP горутины)
func (l *EventLog) Recent() []domain.Event {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.Event, len(l.recent))
	copy(out, l.recent)
	return out
}

// AddLog пишет текстовое сообщение хендлера
func AddLog(tick uint64, text, logType string) {
	logger.Log.WithFields(logrus.Fields{
		"component": "game_log",
		"tick":      tick,
		"log_type":  logType,
	}).Info(text)
}
