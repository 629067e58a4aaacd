package tax

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/noah-isme/order-engine/internal/order"
)

// StrategyOrderItemUnitsBased names the unit-based calculation strategy in
// channel configuration.
const StrategyOrderItemUnitsBased = "order_item_units_based"

// Rate is one applicable tax rate. IncludedInPrice rates produce neutral
// adjustments: reported on the order but excluded from totals.
type Rate struct {
	Code            string
	Name            string
	Amount          float64
	IncludedInPrice bool
}

// RateResolver finds the rate for a tax category inside a zone; ok is false
// when the category is untaxed there.
type RateResolver interface {
	Rate(categoryCode string, zone *Zone) (Rate, bool)
}

// OrderItemUnitsBasedStrategy taxes every order item unit individually, plus
// each shipment's shipping charge. It supports orders whose channel is
// configured with the unit-based strategy.
type OrderItemUnitsBasedStrategy struct {
	Rates RateResolver
}

// Supports implements Strategy.
func (s *OrderItemUnitsBasedStrategy) Supports(o *order.Order, _ *Zone) bool {
	return o.TaxCalculationStrategy == StrategyOrderItemUnitsBased
}

// ApplyTaxes implements Strategy.
func (s *OrderItemUnitsBasedStrategy) ApplyTaxes(_ context.Context, o *order.Order, zone *Zone) error {
	for _, item := range o.Items() {
		if item.Variant == nil {
			continue
		}
		rate, ok := s.Rates.Rate(item.Variant.TaxCategoryCode, zone)
		if !ok {
			continue
		}
		for _, unit := range item.Units() {
			amount := taxAmount(unit.Total(), rate)
			if amount == 0 {
				continue
			}
			unit.AddAdjustment(taxAdjustment(rate, amount))
		}
	}
	for _, shipment := range o.Shipments() {
		method := shipment.Method()
		if method == nil || method.TaxCategoryCode == "" {
			continue
		}
		rate, ok := s.Rates.Rate(method.TaxCategoryCode, zone)
		if !ok {
			continue
		}
		base := shipment.AdjustmentsTotalByType(order.AdjustmentShipping) +
			shipment.AdjustmentsTotalByType(order.AdjustmentOrderShippingPromotion)
		amount := taxAmount(base, rate)
		if amount == 0 {
			continue
		}
		shipment.AddAdjustment(taxAdjustment(rate, amount))
	}
	return nil
}

func taxAdjustment(rate Rate, amount int64) *order.Adjustment {
	a := order.NewAdjustment(order.AdjustmentTax, rate.Name, amount)
	a.OriginCode = rate.Code
	a.SetNeutral(rate.IncludedInPrice)
	return a
}

// taxAmount derives the tax carried by a base amount: on top of the base for
// exclusive rates, backed out of the base for included-in-price rates.
func taxAmount(base int64, rate Rate) int64 {
	b := decimal.NewFromInt(base)
	r := decimal.NewFromFloat(rate.Amount)
	if rate.IncludedInPrice {
		net := b.Div(r.Add(decimal.NewFromInt(1))).Round(0)
		return b.Sub(net).IntPart()
	}
	return b.Mul(r).Round(0).IntPart()
}
