package engine

import (
	"context"
	"sandbox-core/internal/domain"
	"sandbox-core/pkg/api"
	"sandbox-core/pkg/logger"
	"time"

	"github.com/sirupsen/logrus"
)

// Host крутит симуляцию в реальном времени.
// Все вызовы симуляции идут из горутины Run.
type Host struct {
	Sim   *Simulation
	Frame time.Duration

	// SnapshotEvery - раз во сколько кадров отдавать снимок (0 - никогда)
	SnapshotEvery int
	OnSnapshot    func(api.ServerMessage)

	// Input - источник ввода игрока. Без него игрок стоит на месте.
	Input func() domain.InputFrame
}

// NewHost создает хост с кадром из конфига и снимком раз в секунду
func NewHost(sim *Simulation) *Host {
	cfg := sim.Config()
	return &Host{
		Sim:           sim,
		Frame:         cfg.FrameDelta(),
		SnapshotEvery: cfg.Tick.Rate,
	}
}

// Run работает до отмены контекста
func (h *Host) Run(ctx context.Context) error {
	if !h.Sim.Bootstrapped() {
		return ErrNotBootstrapped
	}

	log := logger.Log.WithFields(logrus.Fields{
		"component": "host",
		"frame":     h.Frame,
	})
	log.Info("Simulation loop started")

	ticker := time.NewTicker(h.Frame)
	defer ticker.Stop()

	last := time.Now()
	frames := 0
	for {
		select {
		case <-ctx.Done():
			log.WithField("tick", h.Sim.TickCount()).Info("Simulation loop stopped")
			return nil
		case now := <-ticker.C:
			delta := now.Sub(last)
			last = now

			in := domain.NoInput()
			if h.Input != nil {
				in = h.Input()
			}
			h.Sim.Advance(delta, in)

			frames++
			if h.SnapshotEvery > 0 && h.OnSnapshot != nil && frames%h.SnapshotEvery == 0 {
				h.OnSnapshot(NewSnapshotMessage(h.Sim.TickCount(), h.Sim.Snapshot()))
			}
		}
	}
}
