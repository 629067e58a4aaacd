package processor

import (
	"context"

	"github.com/noah-isme/order-engine/internal/order"
	"github.com/noah-isme/order-engine/internal/promotion"
)

// PromotionProcessor triggers promotion processing for processable orders.
// Which promotions apply, and why, is entirely the delegate's business.
type PromotionProcessor struct {
	Delegate promotion.Processor
}

// Process implements OrderProcessor.
func (p *PromotionProcessor) Process(ctx context.Context, o *order.Order) error {
	if !o.CanBeProcessed() {
		return nil
	}
	return p.Delegate.Process(ctx, o)
}
