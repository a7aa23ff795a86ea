package domain

// NavMode - режим пешехода
type NavMode uint8

const (
	NavPatrolling NavMode = iota
	NavFleeing
)

func (m NavMode) String() string {
	switch m {
	case NavPatrolling:
		return "PATROLLING"
	case NavFleeing:
		return "FLEEING"
	default:
		return "UNKNOWN"
	}
}

// NavigationSettings - параметры патруля и бегства
type NavigationSettings struct {
	BaseSpeed           float64 `json:"baseSpeed" mapstructure:"baseSpeed"`
	FleeSpeedMultiplier float64 `json:"fleeSpeedMultiplier" mapstructure:"fleeSpeedMultiplier"`
	FleeTriggerRadius   float64 `json:"fleeTriggerRadius" mapstructure:"fleeTriggerRadius"`
	FleeDistance        float64 `json:"fleeDistance" mapstructure:"fleeDistance"`
	ArrivalRadius       float64 `json:"arrivalRadius" mapstructure:"arrivalRadius"`
	TurnRate            float64 `json:"turnRate" mapstructure:"turnRate"`
}

func DefaultNavigationSettings() NavigationSettings {
	return NavigationSettings{
		BaseSpeed:           DefaultPedestrianSpeed,
		FleeSpeedMultiplier: DefaultFleeSpeedMultiplier,
		FleeTriggerRadius:   DefaultFleeTriggerRadius,
		FleeDistance:        DefaultFleeDistance,
		ArrivalRadius:       DefaultArrivalRadius,
		TurnRate:            DefaultTurnRate,
	}
}

// NavigatingAgent - состояние патруля/бегства по графу.
// Режим пересчитывается каждый тик, без гистерезиса.
type NavigatingAgent struct {
	NavigationSettings

	Graph       *WaypointGraph `json:"-"`
	Mode        NavMode        `json:"mode"`
	CurrentNode NodeID         `json:"currentNode"`
	// Threat - от кого убегаем. Разрешается по ID на каждом тике.
	Threat EntityID `json:"threat,omitempty"`

	Destination    Vec3    `json:"destination"`
	HasDestination bool    `json:"hasDestination"`
	Speed          float64 `json:"speed"`

	// Visited - история пройденных узлов (для отладки и проверок)
	Visited []NodeID `json:"visited,omitempty"`
}

// NewNavigatingAgent создаёт агента в режиме патруля на стартовом узле
func NewNavigatingAgent(graph *WaypointGraph, start NodeID, s NavigationSettings) *NavigatingAgent {
	return &NavigatingAgent{
		NavigationSettings: s,
		Graph:              graph,
		Mode:               NavPatrolling,
		CurrentNode:        start,
		Speed:              s.BaseSpeed,
		Visited:            []NodeID{start},
	}
}

// FleeSpeed - скорость бегства
func (n *NavigatingAgent) FleeSpeed() float64 {
	return n.BaseSpeed * n.FleeSpeedMultiplier
}

// FleeDestination - точка на луче "угроза -> агент", продлённом на FleeDistance.
// Если агент стоит прямо на угрозе, бежим туда, куда смотрим.
func (n *NavigatingAgent) FleeDestination(pos, threat, facing Vec3) Vec3 {
	dir, ok := pos.Sub(threat).Normalized()
	if !ok {
		if dir, ok = facing.Normalized(); !ok {
			dir = VecForward
		}
	}
	return pos.Add(dir.Scale(n.FleeDistance))
}

// SetDestination запоминает цель и скорость
func (n *NavigatingAgent) SetDestination(dest Vec3, speed float64) {
	n.Destination = dest
	n.HasDestination = true
	n.Speed = speed
}

// AdvanceTo делает узел текущим (агент идёт к нему)
func (n *NavigatingAgent) AdvanceTo(next NodeID) {
	n.CurrentNode = next
	n.Visited = append(n.Visited, next)
	const maxHistory = 64
	if len(n.Visited) > maxHistory {
		n.Visited = n.Visited[len(n.Visited)-maxHistory:]
	}
}
