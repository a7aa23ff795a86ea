// Package headless - простые коллабораторы для запуска симуляции без внешнего движка.
// Это заглушка для хоста и тестов, а не физический движок.
package headless

import (
	"math"
	"sandbox-core/internal/domain"
	"sandbox-core/internal/systems"
)

// EntitySource - пространственный индекс актёров (Simulation, GameWorld).
// QueryRadius выбирает по плоскости XZ.
type EntitySource interface {
	QueryRadius(center domain.Vec3, r float64) []*domain.Entity
}

// Shape - сфера над точкой опоры сущности
type Shape struct {
	Radius       float64
	CenterHeight float64
}

// DefaultShapes - габариты по типу сущности
func DefaultShapes() map[domain.EntityKind]Shape {
	return map[domain.EntityKind]Shape{
		domain.KindPlayer:     {Radius: 0.8, CenterHeight: 1.0},
		domain.KindPedestrian: {Radius: 0.8, CenterHeight: 1.0},
		domain.KindVehicle:    {Radius: 2.2, CenterHeight: 0.8},
	}
}

// Colliders - лучевые проверки по сферам актёров и плоскости земли Y = 0.
// Реализует systems.Raycaster, systems.ControllableFinder и systems.ContactSensor.
type Colliders struct {
	src    EntitySource
	shapes map[domain.EntityKind]Shape
	// maxRadius - самая большая сфера, запас для выборки из индекса
	maxRadius float64
}

func NewColliders(src EntitySource) *Colliders {
	c := &Colliders{src: src, shapes: DefaultShapes()}
	for _, s := range c.shapes {
		c.maxRadius = math.Max(c.maxRadius, s.Radius)
	}
	return c
}

// candidates - актёры, чьи сферы могут пересечь отрезок луча.
// Отрезок целиком лежит в круге вокруг своей середины.
func (c *Colliders) candidates(origin, dir domain.Vec3, maxRange float64) []*domain.Entity {
	half := maxRange / 2
	return c.src.QueryRadius(origin.Add(dir.Scale(half)), half+c.maxRadius)
}

// Raycast ищет ближайшее попадание.
// Сидящие в машине и мёртвые пешеходы не мешают лучу, разбитые машины мешают.
func (c *Colliders) Raycast(origin, direction domain.Vec3, maxRange float64, mask domain.LayerMask) (systems.Hit, bool) {
	dir, ok := direction.Normalized()
	if !ok || maxRange <= 0 {
		return systems.Hit{}, false
	}

	best := systems.Hit{Distance: math.Inf(1)}
	found := false

	for _, e := range c.candidates(origin, dir, maxRange) {
		if e.IsSeated() || !mask.Has(domain.LayerFor(e.Kind)) {
			continue
		}
		if e.Kind != domain.KindVehicle && !e.IsAlive() {
			continue
		}
		shape, ok := c.shapes[e.Kind]
		if !ok {
			continue
		}
		center := e.Transform.Position.Add(domain.Vec3{Y: shape.CenterHeight})
		t, ok := intersectSphere(origin, dir, center, shape.Radius)
		if !ok || t > maxRange || t >= best.Distance {
			continue
		}
		best = systems.Hit{Point: origin.Add(dir.Scale(t)), Entity: e.ID, Distance: t}
		found = true
	}

	// Земля
	if mask.Has(domain.LayerStatic) && dir.Y < 0 {
		t := -origin.Y / dir.Y
		if t >= 0 && t <= maxRange && t < best.Distance {
			best = systems.Hit{Point: origin.Add(dir.Scale(t)), Distance: t}
			found = true
		}
	}
	return best, found
}

// FindControllable - первая машина с местом водителя на луче
func (c *Colliders) FindControllable(origin, direction domain.Vec3, maxRange float64) (domain.EntityID, bool) {
	hit, ok := c.Raycast(origin, direction, maxRange, domain.LayerVehicles)
	if !ok || hit.Entity.IsZero() {
		return "", false
	}
	// Попавшая машина заведомо рядом с точкой удара
	for _, e := range c.src.QueryRadius(hit.Point, c.maxRadius) {
		if e.ID == hit.Entity && e.Occupancy != nil {
			return e.ID, true
		}
	}
	return "", false
}

// Contact - первое тело, чья сфера пересекается со сферой e.
// Сидящие не считаются, мёртвые пешеходы не мешают. Реализует systems.ContactSensor.
func (c *Colliders) Contact(e *domain.Entity) (domain.EntityID, bool) {
	shape, ok := c.shapes[e.Kind]
	if !ok {
		return "", false
	}
	center := e.Transform.Position.Add(domain.Vec3{Y: shape.CenterHeight})

	for _, o := range c.src.QueryRadius(e.Transform.Position, shape.Radius+c.maxRadius) {
		if o.ID == e.ID || o.IsSeated() {
			continue
		}
		if o.Kind != domain.KindVehicle && !o.IsAlive() {
			continue
		}
		other, ok := c.shapes[o.Kind]
		if !ok {
			continue
		}
		oc := o.Transform.Position.Add(domain.Vec3{Y: other.CenterHeight})
		if center.DistanceTo(oc) < shape.Radius+other.Radius {
			return o.ID, true
		}
	}
	return "", false
}

// intersectSphere - расстояние до входа луча в сферу.
// Если луч начинается внутри сферы, попадания нет.
func intersectSphere(origin, dir, center domain.Vec3, radius float64) (float64, bool) {
	oc := origin.Sub(center)
	c := oc.Dot(oc) - radius*radius
	if c <= 0 {
		return 0, false
	}
	b := oc.Dot(dir)
	if b > 0 {
		return 0, false
	}
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	return -b - math.Sqrt(disc), true
}
