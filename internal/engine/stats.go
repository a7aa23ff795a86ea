package engine

import (
	"context"
	"fmt"
	"sandbox-core/internal/domain"
	"sandbox-core/internal/infrastructure/storage"
)

// Ключи статистики в key/value хранилище
const (
	keyShots  = "stats.shots"
	keyHits   = "stats.hits"
	keyKills  = "stats.kills"
	keyDeaths = "stats.deaths"
)

// SessionStats - накопительная статистика игрока, переживает перезапуск через Store
type SessionStats struct {
	PlayerID domain.EntityID `json:"-"`

	Shots  int `json:"shots"`
	Hits   int `json:"hits"`
	Kills  int `json:"kills"`
	Deaths int `json:"deaths"`
}

func NewSessionStats(player domain.EntityID) *SessionStats {
	return &SessionStats{PlayerID: player}
}

func (s *SessionStats) OnEvent(e domain.Event) {
	switch e.Type {
	case domain.EventFired:
		if e.Source != s.PlayerID {
			return
		}
		s.Shots++
		if e.Hit && !e.Target.IsZero() {
			s.Hits++
		}
	case domain.EventDied:
		if e.Target == s.PlayerID {
			s.Deaths++
		} else if e.Source == s.PlayerID {
			s.Kills++
		}
	}
}

// Load читает сохранённые значения. Отсутствующие ключи дают 0.
func (s *SessionStats) Load(ctx context.Context, store storage.Store) error {
	for key, dst := range s.fields() {
		v, err := storage.GetInt(ctx, store, key, 0)
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}
		*dst = v
	}
	return nil
}

func (s *SessionStats) Save(ctx context.Context, store storage.Store) error {
	for key, src := range s.fields() {
		if err := storage.SetInt(ctx, store, key, *src); err != nil {
			return fmt.Errorf("save stats: %w", err)
		}
	}
	return nil
}

func (s *SessionStats) fields() map[string]*int {
	return map[string]*int{
		keyShots:  &s.Shots,
		keyHits:   &s.Hits,
		keyKills:  &s.Kills,
		keyDeaths: &s.Deaths,
	}
}
