package engine

import (
	"sandbox-core/internal/domain"
	"time"
)

// Recorder пишет ввод игрока и отладочные команды.
// Сид плюс запись однозначно воспроизводят сессию.
type Recorder struct {
	session *domain.ReplaySession
}

func NewRecorder(seed int64, fixedStep time.Duration) *Recorder {
	return &Recorder{session: &domain.ReplaySession{
		Seed:      seed,
		Timestamp: time.Now().Unix(),
		FixedStep: fixedStep,
		Frames:    make([]domain.ReplayFrame, 0, 1024),
		Actions:   make([]domain.ReplayAction, 0),
	}}
}

func (r *Recorder) recordFrame(tick uint64, delta time.Duration, in domain.InputFrame) {
	r.session.Frames = append(r.session.Frames, domain.ReplayFrame{Tick: tick, Delta: delta, Input: in})
}

func (r *Recorder) recordAction(tick uint64, cmd domain.InternalCommand) {
	r.session.Actions = append(r.session.Actions, domain.ReplayAction{
		Tick:    tick,
		Actor:   cmd.Actor,
		Action:  cmd.Action,
		Payload: cmd.Payload,
	})
}

// Session - накопленная запись
func (r *Recorder) Session() *domain.ReplaySession {
	return r.session
}
