// Package processor rebuilds an order's derived state: it clears stale
// adjustments, reprices items, reconciles shipments, reapplies promotions
// and taxes and provisions the cart payment, in a fixed sequence. Running
// the pipeline twice over unchanged inputs yields the same order.
package processor

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/noah-isme/order-engine/internal/order"
)

// OrderProcessor recomputes one derived aspect of an order. Implementations
// no-op entirely when the order cannot be processed, and absorb their soft
// conditions; only configuration errors surface.
type OrderProcessor interface {
	Process(ctx context.Context, o *order.Order) error
}

// Composite runs processors in its configured order; the first error aborts
// the remaining processors for this invocation.
type Composite struct {
	processors []OrderProcessor
	log        zerolog.Logger
}

// NewComposite builds the orchestrator over an ordered processor list.
func NewComposite(log zerolog.Logger, processors ...OrderProcessor) *Composite {
	return &Composite{processors: processors, log: log}
}

// Process implements OrderProcessor.
func (c *Composite) Process(ctx context.Context, o *order.Order) error {
	for _, p := range c.processors {
		name := fmt.Sprintf("%T", p)
		c.log.Debug().Str("processor", name).Str("order", o.Number).Msg("processing order")
		if err := p.Process(ctx, o); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
