package domain

import (
	"errors"
	"fmt"
	"slices"
)

var ErrUnknownNode = errors.New("unknown waypoint node")

// NodeID - идентификатор узла маршрутного графа
type NodeID int

// RandomSource - источник случайности (math/rand.Rand подходит)
type RandomSource interface {
	Intn(n int) int
	Float64() float64
}

// WaypointNode - узел маршрута. Соседи - слабые ссылки по ID,
// временем жизни узлов владеет граф.
type WaypointNode struct {
	ID        NodeID   `json:"id"`
	Position  Vec3     `json:"position"`
	Neighbors []NodeID `json:"neighbors"`
}

// WaypointGraph - граф тротуаров.
// Связи направленные: A->B не означает B->A.
// Граф наполняется при сборке мира и во время тиков только читается.
type WaypointGraph struct {
	nodes  map[NodeID]*WaypointNode
	order  []NodeID
	nextID NodeID
}

func NewWaypointGraph() *WaypointGraph {
	return &WaypointGraph{nodes: make(map[NodeID]*WaypointNode)}
}

// AddNode добавляет узел и возвращает его ID
func (g *WaypointGraph) AddNode(pos Vec3) NodeID {
	id := g.nextID
	g.nextID++
	g.nodes[id] = &WaypointNode{ID: id, Position: pos}
	g.order = append(g.order, id)
	return id
}

// Link добавляет одностороннюю связь from -> to. Дубликаты игнорируются.
func (g *WaypointGraph) Link(from, to NodeID) error {
	src, ok := g.nodes[from]
	if !ok {
		return fmt.Errorf("link %d->%d: %w: %d", from, to, ErrUnknownNode, from)
	}
	if _, ok := g.nodes[to]; !ok {
		return fmt.Errorf("link %d->%d: %w: %d", from, to, ErrUnknownNode, to)
	}
	if slices.Contains(src.Neighbors, to) {
		return nil
	}
	src.Neighbors = append(src.Neighbors, to)
	return nil
}

// LinkBoth - двусторонняя связь
func (g *WaypointGraph) LinkBoth(a, b NodeID) error {
	if err := g.Link(a, b); err != nil {
		return err
	}
	return g.Link(b, a)
}

// Node возвращает копию узла
func (g *WaypointGraph) Node(id NodeID) (WaypointNode, bool) {
	n, ok := g.nodes[id]
	if !ok {
		return WaypointNode{}, false
	}
	cp := *n
	cp.Neighbors = slices.Clone(n.Neighbors)
	return cp, true
}

// Position - позиция узла
func (g *WaypointGraph) Position(id NodeID) (Vec3, bool) {
	n, ok := g.nodes[id]
	if !ok {
		return VecZero, false
	}
	return n.Position, true
}

// Neighbors - соседи узла в порядке добавления связей
func (g *WaypointGraph) Neighbors(id NodeID) []NodeID {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	return slices.Clone(n.Neighbors)
}

// IsNeighbor проверяет наличие связи from -> to
func (g *WaypointGraph) IsNeighbor(from, to NodeID) bool {
	n, ok := g.nodes[from]
	return ok && slices.Contains(n.Neighbors, to)
}

// RandomNeighbor выбирает соседа равновероятно.
// Для тупика (нет соседей) или неизвестного узла ok == false.
func (g *WaypointGraph) RandomNeighbor(id NodeID, rng RandomSource) (NodeID, bool) {
	n, ok := g.nodes[id]
	if !ok || len(n.Neighbors) == 0 {
		return 0, false
	}
	return n.Neighbors[rng.Intn(len(n.Neighbors))], true
}

// Nearest - ближайший к точке узел
func (g *WaypointGraph) Nearest(pos Vec3) (NodeID, bool) {
	best, found := NodeID(0), false
	bestDist := 0.0
	for _, id := range g.order {
		d := g.nodes[id].Position.DistanceTo(pos)
		if !found || d < bestDist {
			best, bestDist, found = id, d, true
		}
	}
	return best, found
}

// Len - количество узлов
func (g *WaypointGraph) Len() int {
	return len(g.nodes)
}

// Nodes - все узлы в порядке добавления (копии)
func (g *WaypointGraph) Nodes() []WaypointNode {
	out := make([]WaypointNode, 0, len(g.order))
	for _, id := range g.order {
		n, _ := g.Node(id)
		out = append(out, n)
	}
	return out
}
