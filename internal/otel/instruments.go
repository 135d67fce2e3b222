package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Instruments are the counters recorded by the map session.
type Instruments struct {
	renders metric.Int64Counter
	culled  metric.Int64Counter
	picks   metric.Int64Counter
}

// NewInstruments registers the map counters on meter.
func NewInstruments(meter metric.Meter) (*Instruments, error) {
	renders, err := meter.Int64Counter("fieldmap.render.count",
		metric.WithDescription("Completed render passes"))
	if err != nil {
		return nil, fmt.Errorf("failed to create render counter: %w", err)
	}
	culled, err := meter.Int64Counter("fieldmap.render.culled",
		metric.WithDescription("Objects skipped because they projected off the surface"))
	if err != nil {
		return nil, fmt.Errorf("failed to create culled counter: %w", err)
	}
	picks, err := meter.Int64Counter("fieldmap.pick.count",
		metric.WithDescription("Pointer clicks on the map"))
	if err != nil {
		return nil, fmt.Errorf("failed to create pick counter: %w", err)
	}
	return &Instruments{renders: renders, culled: culled, picks: picks}, nil
}

// RecordRender counts one render pass and its culled objects.
func (i *Instruments) RecordRender(ctx context.Context, culled int) {
	if i == nil {
		return
	}
	i.renders.Add(ctx, 1)
	if culled > 0 {
		i.culled.Add(ctx, int64(culled))
	}
}

// RecordPick counts one click, tagged with whether it hit a marker.
func (i *Instruments) RecordPick(ctx context.Context, hit bool) {
	if i == nil {
		return
	}
	i.picks.Add(ctx, 1, metric.WithAttributes(attribute.Bool("hit", hit)))
}
