package processor

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/noah-isme/order-engine/internal/order"
	"github.com/noah-isme/order-engine/internal/shipping"
)

// ShipmentProcessor reconciles the order's shipment with its shippable
// units: no shipping required means no shipments, otherwise one shipment
// holds every shippable unit and carries a resolvable method. A shipment
// whose method cannot be resolved is kept attached with the method unset so
// one can be picked manually later.
type ShipmentProcessor struct {
	DefaultResolver shipping.DefaultMethodResolver
	MethodsResolver shipping.MethodsResolver
	Log             zerolog.Logger
}

// Process implements OrderProcessor.
func (p *ShipmentProcessor) Process(ctx context.Context, o *order.Order) error {
	if !o.CanBeProcessed() {
		return nil
	}
	if o.IsEmpty() || !o.IsShippingRequired() {
		o.RemoveShipments()
		return nil
	}

	var shipment *order.Shipment
	if o.HasShipments() {
		shipment = o.Shipments()[0]
	} else {
		shipment = order.NewShipment()
		o.AddShipment(shipment)
	}
	p.reconcileUnits(o, shipment)
	return p.reconcileMethod(ctx, shipment)
}

// reconcileUnits drops units no longer shippable for this order and adds
// newly shippable ones.
func (p *ShipmentProcessor) reconcileUnits(o *order.Order, shipment *order.Shipment) {
	shippable := map[*order.OrderItemUnit]bool{}
	for _, unit := range o.ShippableUnits() {
		shippable[unit] = true
	}
	for _, unit := range shipment.Units() {
		if !shippable[unit] {
			shipment.RemoveUnit(unit)
		}
	}
	for _, unit := range o.ShippableUnits() {
		if unit.Shipment() == nil {
			shipment.AddUnit(unit)
		}
	}
}

// reconcileMethod keeps a still-supported method and otherwise re-resolves
// the default. An unresolvable default is absorbed.
func (p *ShipmentProcessor) reconcileMethod(ctx context.Context, shipment *order.Shipment) error {
	if current := shipment.Method(); current != nil {
		supported, err := p.MethodsResolver.Supported(ctx, shipment)
		if err != nil {
			return err
		}
		for _, m := range supported {
			if m == current {
				return nil
			}
		}
	}
	method, err := p.DefaultResolver.Resolve(ctx, shipment)
	if errors.Is(err, shipping.ErrMethodNotResolvable) {
		shipment.SetMethod(nil)
		p.Log.Debug().Str("shipment", shipment.ID.String()).Msg("no default shipping method; leaving shipment unassigned")
		return nil
	}
	if err != nil {
		return err
	}
	shipment.SetMethod(method)
	return nil
}
