package agent

import (
	"context"
	"encoding/json"
	"sandbox-core/internal/domain"
	"sandbox-core/pkg/api"
	"sandbox-core/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Probe - внешний отладочный клиент.
// Подключается к /ws так же, как отладочная страница, смотрит снимки
// и на каждый снимок бьёт первого живого актёра нужного типа командой DAMAGE.
//
// Жизненный цикл:
//  1. Run -> подключение, первым приходит SNAPSHOT.
//  2. На каждый SNAPSHOT выбирается цель и уходит команда.
//  3. EVENT DIED по цели засчитывается как убийство, ERROR - как отказ.
//  4. Выход по Limit, по отмене контекста или при закрытии соединения.
type Probe struct {
	URL    string
	Kind   string
	Amount float64
	// Limit - сколько команд отправить (0 - без ограничения)
	Limit int

	log *logrus.Entry
}

// Report - итог работы пробы
type Report struct {
	Sent   int `json:"sent"`
	Errors int `json:"errors"`
	Kills  int `json:"kills"`
}

func NewProbe(url, kind string, amount float64) *Probe {
	return &Probe{
		URL:    url,
		Kind:   kind,
		Amount: amount,
		log: logger.Log.WithFields(logrus.Fields{
			"component": "probe",
			"url":       url,
		}),
	}
}

func (p *Probe) Run(ctx context.Context) (Report, error) {
	var report Report

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, p.URL, nil)
	if err != nil {
		return report, err
	}
	defer conn.Close()

	// ReadJSON не знает про контекст, поэтому закрываем соединение сами
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	targets := make(map[string]bool)
	for {
		var msg api.ServerMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if ctx.Err() != nil {
				return report, nil
			}
			return report, err
		}

		switch msg.Type {
		case api.MessageSnapshot:
			target, ok := ChooseTarget(msg.Actors, p.Kind)
			if !ok {
				continue
			}
			if err := p.sendDamage(conn, target); err != nil {
				return report, err
			}
			targets[target] = true
			report.Sent++

		case api.MessageEvent:
			if msg.Event != nil && msg.Event.Type == domain.EventDied.String() && targets[msg.Event.Target] {
				report.Kills++
			}

		case api.MessageError:
			report.Errors++
			p.log.WithField("error", msg.Error).Debug("Command rejected")
		}

		if p.Limit > 0 && report.Sent >= p.Limit {
			p.log.WithFields(logrus.Fields{
				"sent":  report.Sent,
				"kills": report.Kills,
			}).Info("Probe finished")
			return report, nil
		}
	}
}

func (p *Probe) sendDamage(conn *websocket.Conn, targetID string) error {
	payload, err := json.Marshal(api.AmountPayload{TargetID: targetID, Amount: p.Amount})
	if err != nil {
		return err
	}
	return conn.WriteJSON(api.ClientCommand{
		Action:  domain.ActionDamage.String(),
		Payload: payload,
	})
}

// ChooseTarget - первый живой уязвимый актёр нужного типа
func ChooseTarget(actors []api.ActorView, kind string) (string, bool) {
	for _, a := range actors {
		if a.Kind != kind || a.Health == nil || a.Health.IsDead {
			continue
		}
		return a.ID, true
	}
	return "", false
}
