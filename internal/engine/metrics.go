package engine

import (
	"context"
	"fmt"
	"sandbox-core/internal/domain"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "sandbox-core/internal/engine"

// DefaultMeter - метр из глобального провайдера OTel (no-op, если хост его не настроил)
func DefaultMeter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// KindResolver - узнать тип сущности по ID для атрибутов метрик
type KindResolver interface {
	GetEntity(id domain.EntityID) *domain.Entity
}

// MetricsSink считает события симуляции в счётчики OTel
type MetricsSink struct {
	kinds KindResolver

	shots     metric.Int64Counter
	damage    metric.Float64Counter
	deaths    metric.Int64Counter
	occupancy metric.Int64Counter
}

func NewMetricsSink(m metric.Meter, kinds KindResolver) (*MetricsSink, error) {
	s := &MetricsSink{kinds: kinds}

	var err error
	s.shots, err = m.Int64Counter(
		"sandbox.shots.fired",
		metric.WithDescription("Total shots fired"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating shots counter: %w", err)
	}

	s.damage, err = m.Float64Counter(
		"sandbox.damage.applied",
		metric.WithDescription("Total damage applied to actors"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating damage counter: %w", err)
	}

	s.deaths, err = m.Int64Counter(
		"sandbox.deaths",
		metric.WithDescription("Total actor deaths"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating deaths counter: %w", err)
	}

	s.occupancy, err = m.Int64Counter(
		"sandbox.occupancy.changes",
		metric.WithDescription("Vehicle enter and exit count"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating occupancy counter: %w", err)
	}

	return s, nil
}

func (s *MetricsSink) OnEvent(e domain.Event) {
	ctx := context.Background()
	switch e.Type {
	case domain.EventFired:
		s.shots.Add(ctx, 1, metric.WithAttributes(
			attribute.String("weapon", e.WeaponID),
			attribute.Bool("hit", e.Hit),
		))
	case domain.EventDamaged:
		s.damage.Add(ctx, e.Amount, metric.WithAttributes(s.kindAttr(e.Target)))
	case domain.EventDied:
		s.deaths.Add(ctx, 1, metric.WithAttributes(s.kindAttr(e.Target)))
	case domain.EventOccupancyChanged:
		s.occupancy.Add(ctx, 1, metric.WithAttributes(attribute.Bool("occupied", e.Occupied)))
	}
}

func (s *MetricsSink) kindAttr(id domain.EntityID) attribute.KeyValue {
	kind := domain.KindUnknown
	if s.kinds != nil {
		if ent := s.kinds.GetEntity(id); ent != nil {
			kind = ent.Kind
		}
	}
	return attribute.String("kind", kind.String())
}
