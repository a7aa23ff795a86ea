package engine

import (
	"errors"
	"fmt"
	"sandbox-core/internal/domain"
	"sandbox-core/pkg/logger"

	"github.com/sirupsen/logrus"
)

var ErrSeedMismatch = errors.New("replay seed does not match simulation seed")

// Replay прогоняет запись через уже собранную сцену.
// Сцена должна быть построена с тем же сидом, иначе результат разойдётся.
func (s *Simulation) Replay(session *domain.ReplaySession) error {
	if !s.bootstrapped {
		return ErrNotBootstrapped
	}
	if session.Seed != s.cfg.Seed {
		return fmt.Errorf("%w: replay %d, simulation %d", ErrSeedMismatch, session.Seed, s.cfg.Seed)
	}
	if session.FixedStep > 0 {
		s.cfg.Tick.FixedStep = session.FixedStep
	}

	replayLogger := logger.Log.WithFields(logrus.Fields{
		"component": "replay",
		"seed":      session.Seed,
		"frames":    len(session.Frames),
		"actions":   len(session.Actions),
	})
	replayLogger.Info("Replay started.")

	next := 0
	for _, frame := range session.Frames {
		// Команды тика выполняются в его начале, как при записи
		for next < len(session.Actions) && session.Actions[next].Tick <= frame.Tick {
			act := session.Actions[next]
			s.cmdMu.Lock()
			s.commands = append(s.commands, domain.InternalCommand{
				Action:  act.Action,
				Actor:   act.Actor,
				Payload: act.Payload,
			})
			s.cmdMu.Unlock()
			next++
		}
		s.Advance(frame.Delta, frame.Input)
	}

	replayLogger.WithField("tick", s.tick).Info("Replay finished.")
	return nil
}
