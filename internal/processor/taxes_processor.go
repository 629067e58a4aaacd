package processor

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/noah-isme/order-engine/internal/order"
	"github.com/noah-isme/order-engine/internal/tax"
)

// TaxesProcessor clears and reapplies tax adjustments. An order without a
// resolvable tax zone is legitimately untaxed and skipped; a resolved zone
// that no strategy supports surfaces as a configuration error.
type TaxesProcessor struct {
	Addresses    tax.AddressResolver
	Zones        tax.ZoneMatcher
	DefaultZones tax.DefaultZoneProvider
	Strategies   *tax.Registry
	Log          zerolog.Logger
}

// Process implements OrderProcessor.
func (p *TaxesProcessor) Process(ctx context.Context, o *order.Order) error {
	if !o.CanBeProcessed() {
		return nil
	}
	p.clearTaxes(o)
	if o.IsEmpty() {
		return nil
	}
	zone, err := p.taxZone(ctx, o)
	if err != nil {
		return err
	}
	if zone == nil {
		p.Log.Debug().Str("order", o.Number).Msg("no tax zone resolved; skipping taxes")
		return nil
	}
	return p.Strategies.Apply(ctx, o, zone)
}

func (p *TaxesProcessor) clearTaxes(o *order.Order) {
	o.RemoveAdjustmentsByType(order.AdjustmentTax)
	for _, item := range o.Items() {
		item.RemoveAdjustmentsRecursively(order.AdjustmentTax)
	}
	for _, shipment := range o.Shipments() {
		shipment.RemoveAdjustmentsByType(order.AdjustmentTax)
	}
}

// taxZone resolves the order's taxation address to a zone, falling back to
// the default zone provider when the address matches nothing.
func (p *TaxesProcessor) taxZone(ctx context.Context, o *order.Order) (*tax.Zone, error) {
	if address := p.Addresses.TaxationAddress(o); address != nil {
		zone, err := p.Zones.Match(ctx, address, tax.ScopeTax)
		if err != nil {
			return nil, err
		}
		if zone != nil {
			return zone, nil
		}
	}
	return p.DefaultZones.Zone(ctx, o)
}
