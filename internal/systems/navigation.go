package systems

import (
	"sandbox-core/internal/domain"
	"sandbox-core/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Threat - снимок угрозы на начало тика
type Threat struct {
	Position domain.Vec3
	Present  bool // угроза существует и жива
}

// UpdateNavigation пересчитывает режим агента и его цель. Вызывается каждый тик.
// Возвращает true, если режим сменился.
func UpdateNavigation(agent *domain.NavigatingAgent, self domain.Transform, threat Threat, follower PathFollower, rng domain.RandomSource) bool {
	prev := agent.Mode

	if threat.Present && self.Position.DistanceTo(threat.Position) < agent.FleeTriggerRadius {
		agent.Mode = domain.NavFleeing
		dest := agent.FleeDestination(self.Position, threat.Position, self.Forward())
		issueDestination(agent, follower, dest, agent.FleeSpeed())
	} else {
		agent.Mode = domain.NavPatrolling
		if !isProgressing(agent, self, follower) {
			moveToNextNode(agent, follower, rng)
		}
	}

	if prev != agent.Mode {
		logger.Log.WithFields(logrus.Fields{
			"component": "navigation_system",
			"from":      prev,
			"to":        agent.Mode,
			"threat":    agent.Threat,
		}).Debug("Navigation mode changed.")
		return true
	}
	return false
}

// isProgressing - идёт ли агент к цели (и ещё не дошёл).
// Пришёл, если до цели не больше ArrivalRadius.
func isProgressing(agent *domain.NavigatingAgent, self domain.Transform, follower PathFollower) bool {
	if !agent.HasDestination {
		return false
	}
	if follower != nil {
		return follower.PathPending() || follower.RemainingDistance() > agent.ArrivalRadius
	}
	return self.Position.Flat().DistanceTo(agent.Destination.Flat()) > agent.ArrivalRadius
}

// moveToNextNode выбирает случайного соседа. В тупике агент стоит.
func moveToNextNode(agent *domain.NavigatingAgent, follower PathFollower, rng domain.RandomSource) {
	if agent.Graph == nil {
		return
	}
	next, ok := agent.Graph.RandomNeighbor(agent.CurrentNode, rng)
	if !ok {
		return
	}
	pos, _ := agent.Graph.Position(next)
	agent.AdvanceTo(next)
	issueDestination(agent, follower, pos, agent.BaseSpeed)
}

func issueDestination(agent *domain.NavigatingAgent, follower PathFollower, dest domain.Vec3, speed float64) {
	agent.SetDestination(dest, speed)
	if follower != nil {
		follower.SetSpeed(speed)
		follower.SetDestination(dest)
	}
}

// ApplyLocomotion двигает агента к цели.
// Без навигатора - по прямой, сквозь препятствия, с плавным доворотом корпуса.
func ApplyLocomotion(agent *domain.NavigatingAgent, self domain.Transform, follower PathFollower, dt float64) domain.Transform {
	if follower != nil {
		return follower.Advance(self, dt)
	}
	if !agent.HasDestination || dt <= 0 {
		return self
	}

	next := self
	next.Position = self.Position.MoveTowards(agent.Destination, agent.Speed*dt)
	if dir, ok := agent.Destination.Sub(self.Position).Flat().Normalized(); ok {
		next.Yaw = domain.LerpAngle(self.Yaw, domain.YawTowards(dir), agent.TurnRate*dt)
	}
	return next
}
