package processor

import (
	"context"

	"github.com/noah-isme/order-engine/internal/order"
)

// AdjustmentsClearer removes its configured adjustment types from the whole
// aggregate before the other processors run, so repeated pipeline runs never
// double-count derived adjustments.
type AdjustmentsClearer struct {
	types []order.AdjustmentType
}

// NewAdjustmentsClearer configures the clearer; without explicit types every
// pipeline-owned type is cleared.
func NewAdjustmentsClearer(types ...order.AdjustmentType) *AdjustmentsClearer {
	if len(types) == 0 {
		types = []order.AdjustmentType{
			order.AdjustmentOrderPromotion,
			order.AdjustmentOrderItemPromotion,
			order.AdjustmentOrderUnitPromotion,
			order.AdjustmentOrderShippingPromotion,
			order.AdjustmentShipping,
			order.AdjustmentTax,
		}
	}
	return &AdjustmentsClearer{types: types}
}

// Process implements OrderProcessor.
func (c *AdjustmentsClearer) Process(_ context.Context, o *order.Order) error {
	if !o.CanBeProcessed() {
		return nil
	}
	for _, t := range c.types {
		o.RemoveAdjustmentsRecursively(t)
	}
	return nil
}
