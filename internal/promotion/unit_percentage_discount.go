package promotion

import (
	"github.com/noah-isme/order-engine/internal/order"
)

// UnitPercentageDiscount discounts each unit of the surviving items by a
// fraction of the item's unit price. Items pass through the price range,
// taxon and product filters, in that order, before units are touched; the
// per-unit amount is floor-adjusted so the unit never drops below the
// variant's channel minimum price.
type UnitPercentageDiscount struct{}

var unitDiscountFilters = []ItemFilter{
	PriceRangeFilter{},
	TaxonFilter{},
	ProductFilter{},
}

// Execute applies the discount. It reports false when the channel has no
// configuration or filtering leaves no items.
func (c UnitPercentageDiscount) Execute(subject Subject, cfg Configuration, p Promotion) (bool, error) {
	o, ok := subject.(*order.Order)
	if !ok {
		return false, ErrUnexpectedSubject
	}
	entry, ok := cfg[o.ChannelCode]
	if !ok {
		return false, nil
	}
	percentage, ok := toFloat64(entry["percentage"])
	if !ok {
		return false, nil
	}

	items := o.Items()
	for _, filter := range unitDiscountFilters {
		items = filter.Filter(items, o.ChannelCode, entry)
	}
	if len(items) == 0 {
		return false, nil
	}

	applied := false
	for _, item := range items {
		// A variant already discounted by another catalog promotion in this
		// channel is off limits unless the promotion opts in.
		if !p.AppliesToDiscounted && item.Variant != nil && item.Variant.HasCatalogPromotion(o.ChannelCode) {
			continue
		}
		floor := int64(0)
		if item.Variant != nil {
			floor = item.Variant.MinimumPrice(o.ChannelCode)
		}
		for _, unit := range item.Units() {
			discount := applyPercentage(item.UnitPrice(), percentage)
			if headroom := unit.Total() - floor; discount > headroom {
				discount = headroom
			}
			if discount <= 0 {
				continue
			}
			a := order.NewAdjustment(order.AdjustmentOrderUnitPromotion, p.Name, -discount)
			a.OriginCode = p.Code
			unit.AddAdjustment(a)
			applied = true
		}
	}
	return applied, nil
}

// Revert scans every unit of every item and removes the unit promotion
// adjustments carrying this promotion's code.
func (c UnitPercentageDiscount) Revert(subject Subject, _ Configuration, p Promotion) error {
	o, ok := subject.(*order.Order)
	if !ok {
		return ErrUnexpectedSubject
	}
	for _, item := range o.Items() {
		for _, unit := range item.Units() {
			for _, a := range unit.AdjustmentsByType(order.AdjustmentOrderUnitPromotion) {
				if a.OriginCode == p.Code {
					unit.RemoveAdjustment(a)
				}
			}
		}
	}
	return nil
}
