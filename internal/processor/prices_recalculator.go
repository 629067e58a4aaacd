package processor

import (
	"context"

	"github.com/noah-isme/order-engine/internal/order"
	"github.com/noah-isme/order-engine/internal/pricing"
)

// PricesRecalculator refreshes unit prices from the catalog. Immutable items
// keep the price they were sold at; everything else is repriced for the
// order's channel.
type PricesRecalculator struct {
	Prices pricing.Calculator
}

// Process implements OrderProcessor.
func (r *PricesRecalculator) Process(ctx context.Context, o *order.Order) error {
	if !o.CanBeProcessed() {
		return nil
	}
	for _, item := range o.Items() {
		if item.Immutable() {
			continue
		}
		price, err := r.Prices.Calculate(ctx, item.Variant, o.ChannelCode)
		if err != nil {
			return err
		}
		item.SetUnitPrice(price)

		original, err := r.Prices.CalculateOriginal(ctx, item.Variant, o.ChannelCode)
		if err != nil {
			return err
		}
		item.SetOriginalUnitPrice(original)
	}
	return nil
}
