package promotion

import (
	"github.com/noah-isme/order-engine/internal/order"
)

// ShippingPercentageDiscount discounts each shipment's shipping charge by a
// configured fraction. The base is the shipping charge total minus the
// shipping-promotion total already attached; prior promotion adjustments are
// negative, so they widen the base.
type ShippingPercentageDiscount struct{}

// Execute applies the discount. It reports false when the order has no
// shipments, the channel has no configuration, or every computed amount is
// zero.
func (c ShippingPercentageDiscount) Execute(subject Subject, cfg Configuration, p Promotion) (bool, error) {
	o, ok := subject.(*order.Order)
	if !ok {
		return false, ErrUnexpectedSubject
	}
	if !o.HasShipments() {
		return false, nil
	}
	percentage, ok := cfg.percentageFor(o.ChannelCode)
	if !ok {
		return false, nil
	}

	applied := false
	for _, shipment := range o.Shipments() {
		base := shipment.AdjustmentsTotalByType(order.AdjustmentShipping) -
			shipment.AdjustmentsTotalByType(order.AdjustmentOrderShippingPromotion)
		amount := applyPercentage(base, percentage)
		if amount == 0 {
			continue
		}
		a := order.NewAdjustment(order.AdjustmentOrderShippingPromotion, p.Name, -amount)
		a.OriginCode = p.Code
		shipment.AddAdjustment(a)
		applied = true
	}
	return applied, nil
}

// Revert removes this promotion's shipping adjustments from the order and
// from every shipment.
func (c ShippingPercentageDiscount) Revert(subject Subject, _ Configuration, p Promotion) error {
	o, ok := subject.(*order.Order)
	if !ok {
		return ErrUnexpectedSubject
	}
	for _, a := range o.AdjustmentsByType(order.AdjustmentOrderShippingPromotion) {
		if a.OriginCode == p.Code {
			o.RemoveAdjustment(a)
		}
	}
	for _, shipment := range o.Shipments() {
		for _, a := range shipment.AdjustmentsByType(order.AdjustmentOrderShippingPromotion) {
			if a.OriginCode == p.Code {
				shipment.RemoveAdjustment(a)
			}
		}
	}
	return nil
}
