package promotion

import (
	"github.com/noah-isme/order-engine/internal/distributor"
	"github.com/noah-isme/order-engine/internal/order"
)

// PercentageDiscount discounts the order by a configured fraction of the
// promotion subject total, split across the items the same way the fixed
// discount is.
type PercentageDiscount struct {
	MinimumPrice *distributor.MinimumPrice
}

// Execute applies the discount; soft no-op conditions mirror FixedDiscount.
func (c PercentageDiscount) Execute(subject Subject, cfg Configuration, p Promotion) (bool, error) {
	o, ok := subject.(*order.Order)
	if !ok {
		return false, ErrUnexpectedSubject
	}
	if o.IsEmpty() {
		return false, nil
	}
	percentage, ok := cfg.percentageFor(o.ChannelCode)
	if !ok {
		return false, nil
	}
	subjectTotal := subjectTotalFor(o, p)
	amount := min(applyPercentage(subjectTotal, percentage), subjectTotal)
	if amount <= 0 {
		return false, nil
	}
	shares, err := distributeDiscount(o, c.MinimumPrice, -amount, p.AppliesToDiscounted)
	if err != nil {
		return false, err
	}
	applyItemDiscounts(o, shares, p)
	return true, nil
}

// Revert removes the adjustments this promotion created on the order's
// items.
func (c PercentageDiscount) Revert(subject Subject, _ Configuration, p Promotion) error {
	o, ok := subject.(*order.Order)
	if !ok {
		return ErrUnexpectedSubject
	}
	if o.IsEmpty() {
		return nil
	}
	revertItemDiscounts(o, p)
	return nil
}
