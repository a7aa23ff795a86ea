package domain

import (
	"errors"
	"math"
	"slices"
)

var ErrDuplicateEntity = errors.New("entity already registered")

// DefaultCellSize - размер ячейки пространственного индекса (метры)
const DefaultCellSize = 8.0

type cellKey struct {
	X int
	Z int
}

// GameWorld - реестр сущностей и пространственный индекс по плоскости XZ.
type GameWorld struct {
	Tick  uint64         `json:"tick"`
	Graph *WaypointGraph `json:"-"`

	CellSize float64 `json:"cellSize"`

	// SpatialHash: ячейка -> сущности. Не отправляем клиенту.
	SpatialHash    map[cellKey][]*Entity `json:"-"`
	EntityRegistry map[EntityID]*Entity  `json:"-"`
	order          []EntityID
	cells          map[EntityID]cellKey
}

func NewGameWorld(graph *WaypointGraph) *GameWorld {
	return &GameWorld{
		Graph:          graph,
		CellSize:       DefaultCellSize,
		SpatialHash:    make(map[cellKey][]*Entity),
		EntityRegistry: make(map[EntityID]*Entity),
		cells:          make(map[EntityID]cellKey),
	}
}

func (w *GameWorld) cellOf(p Vec3) cellKey {
	return cellKey{
		X: int(math.Floor(p.X / w.CellSize)),
		Z: int(math.Floor(p.Z / w.CellSize)),
	}
}

// GetEntity ищет сущность по ID
func (w *GameWorld) GetEntity(id EntityID) *Entity {
	return w.EntityRegistry[id]
}

// RegisterEntity добавляет сущность в реестр и индекс
func (w *GameWorld) RegisterEntity(e *Entity) error {
	if _, ok := w.EntityRegistry[e.ID]; ok {
		return ErrDuplicateEntity
	}
	w.EntityRegistry[e.ID] = e
	w.order = append(w.order, e.ID)
	w.addToCell(e)
	return nil
}

// UnregisterEntity удаляет сущность из реестра и индекса
func (w *GameWorld) UnregisterEntity(id EntityID) {
	e, ok := w.EntityRegistry[id]
	if !ok {
		return
	}
	w.removeFromCell(e)
	delete(w.EntityRegistry, id)
	if i := slices.Index(w.order, id); i >= 0 {
		w.order = slices.Delete(w.order, i, i+1)
	}
}

// Entities - все сущности в порядке регистрации (детерминированный обход)
func (w *GameWorld) Entities() []*Entity {
	out := make([]*Entity, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.EntityRegistry[id])
	}
	return out
}

// Count - количество сущностей
func (w *GameWorld) Count() int {
	return len(w.order)
}

// UpdateEntityCell переносит сущность в индексе после перемещения
func (w *GameWorld) UpdateEntityCell(e *Entity) {
	if _, ok := w.EntityRegistry[e.ID]; !ok {
		return
	}
	if w.cells[e.ID] == w.cellOf(e.Transform.Position) {
		return
	}
	w.removeFromCell(e)
	w.addToCell(e)
}

// QueryRadius возвращает сущности в радиусе r от точки (по плоскости XZ)
func (w *GameWorld) QueryRadius(center Vec3, r float64) []*Entity {
	lo := w.cellOf(center.Sub(Vec3{X: r, Z: r}))
	hi := w.cellOf(center.Add(Vec3{X: r, Z: r}))
	var out []*Entity
	for x := lo.X; x <= hi.X; x++ {
		for z := lo.Z; z <= hi.Z; z++ {
			for _, e := range w.SpatialHash[cellKey{X: x, Z: z}] {
				if e.Transform.Position.Flat().DistanceTo(center.Flat()) <= r {
					out = append(out, e)
				}
			}
		}
	}
	return out
}

func (w *GameWorld) addToCell(e *Entity) {
	key := w.cellOf(e.Transform.Position)
	w.SpatialHash[key] = append(w.SpatialHash[key], e)
	w.cells[e.ID] = key
}

func (w *GameWorld) removeFromCell(e *Entity) {
	key, ok := w.cells[e.ID]
	if !ok {
		return
	}
	entities := w.SpatialHash[key]
	for i, other := range entities {
		if other.ID == e.ID {
			// Swap with last, порядок в ячейке не важен
			last := len(entities) - 1
			entities[i] = entities[last]
			entities[last] = nil
			w.SpatialHash[key] = entities[:last]
			break
		}
	}
	if len(w.SpatialHash[key]) == 0 {
		delete(w.SpatialHash, key)
	}
	delete(w.cells, e.ID)
}
