package tax

import (
	"context"
	"errors"

	"github.com/noah-isme/order-engine/internal/order"
)

// ErrNoSupportedStrategy is returned when a tax zone was resolved but no
// registered strategy supports the order. A resolved zone with no way to
// tax it is a configuration error and must surface.
var ErrNoSupportedStrategy = errors.New("tax: no calculation strategy supports the order")

// Strategy is one way of computing taxes for an (order, zone) pair.
type Strategy interface {
	Supports(o *order.Order, zone *Zone) bool
	ApplyTaxes(ctx context.Context, o *order.Order, zone *Zone) error
}

// Registry is a statically configured, ordered strategy list; the first
// supporting strategy wins.
type Registry struct {
	strategies []Strategy
}

// NewRegistry builds a registry evaluating strategies in the given order.
func NewRegistry(strategies ...Strategy) *Registry {
	return &Registry{strategies: strategies}
}

// Apply runs the first strategy supporting the order and zone; no supporting
// strategy is ErrNoSupportedStrategy.
func (r *Registry) Apply(ctx context.Context, o *order.Order, zone *Zone) error {
	for _, s := range r.strategies {
		if s.Supports(o, zone) {
			return s.ApplyTaxes(ctx, o, zone)
		}
	}
	return ErrNoSupportedStrategy
}
