package processor

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/noah-isme/order-engine/internal/order"
	"github.com/noah-isme/order-engine/internal/shipping"
)

// ShippingChargesProcessor re-derives each shipment's shipping charge from
// its method's fee calculator. Shipments without a method, and methods
// without configuration for the order's channel, charge nothing.
type ShippingChargesProcessor struct {
	Calculators shipping.CalculatorRegistry
	Log         zerolog.Logger
}

// Process implements OrderProcessor.
func (p *ShippingChargesProcessor) Process(_ context.Context, o *order.Order) error {
	if !o.CanBeProcessed() {
		return nil
	}
	for _, shipment := range o.Shipments() {
		shipment.RemoveAdjustmentsByType(order.AdjustmentShipping)
		method := shipment.Method()
		if method == nil {
			continue
		}
		calc, err := p.Calculators.Get(method.Calculator)
		if err != nil {
			return err
		}
		fee, ok := calc.Calculate(shipment, method.Configuration[o.ChannelCode])
		if !ok {
			p.Log.Debug().Str("method", method.Code).Str("channel", o.ChannelCode).Msg("shipping method not priced for channel")
			continue
		}
		a := order.NewAdjustment(order.AdjustmentShipping, method.Name, fee)
		a.OriginCode = method.Code
		shipment.AddAdjustment(a)
	}
	return nil
}
