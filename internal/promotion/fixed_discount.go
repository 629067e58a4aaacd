package promotion

import (
	"github.com/noah-isme/order-engine/internal/distributor"
	"github.com/noah-isme/order-engine/internal/order"
)

// FixedDiscount discounts the order by a configured amount, split across the
// items. The discount never exceeds the promotion subject total, so a large
// coupon on a small cart just zeroes it out.
type FixedDiscount struct {
	// MinimumPrice is optional; without it the split ignores price floors.
	MinimumPrice *distributor.MinimumPrice
}

// Execute applies the discount. It reports false without touching the order
// when the order is empty, the channel has no configuration, or the
// resulting discount is zero.
func (c FixedDiscount) Execute(subject Subject, cfg Configuration, p Promotion) (bool, error) {
	o, ok := subject.(*order.Order)
	if !ok {
		return false, ErrUnexpectedSubject
	}
	if o.IsEmpty() {
		return false, nil
	}
	configured, ok := cfg.amountFor(o.ChannelCode)
	if !ok {
		return false, nil
	}
	amount := min(configured, subjectTotalFor(o, p))
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
func (c FixedDiscount) Revert(subject Subject, _ Configuration, p Promotion) error {
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
