package promotion

import (
	"github.com/samber/lo"

	"github.com/noah-isme/order-engine/internal/distributor"
	"github.com/noah-isme/order-engine/internal/order"
)

// distributeDiscount splits a (negative) discount across the order's items.
// With a minimum-price distributor configured the split respects channel
// price floors; otherwise it is purely proportional to item totals.
func distributeDiscount(o *order.Order, minimum *distributor.MinimumPrice, amount int64, includeDiscounted bool) ([]int64, error) {
	items := o.Items()
	if minimum != nil {
		return minimum.Distribute(items, amount, o.ChannelCode, includeDiscounted)
	}
	totals := lo.Map(items, func(item *order.OrderItem, _ int) int64 {
		return item.Total()
	})
	var proportional distributor.Proportional
	return proportional.Distribute(totals, amount)
}

// applyItemDiscounts attaches one item-level promotion adjustment per
// nonzero share, stamped with the promotion's code for later revert.
func applyItemDiscounts(o *order.Order, shares []int64, p Promotion) {
	for i, item := range o.Items() {
		if i >= len(shares) || shares[i] == 0 {
			continue
		}
		a := order.NewAdjustment(order.AdjustmentOrderItemPromotion, p.Name, shares[i])
		a.OriginCode = p.Code
		item.AddAdjustment(a)
	}
}

// revertItemDiscounts removes, from every item, the item-level promotion
// adjustments originating from this promotion. Adjustments created by other
// promotions are untouched.
func revertItemDiscounts(o *order.Order, p Promotion) {
	for _, item := range o.Items() {
		for _, a := range item.AdjustmentsByType(order.AdjustmentOrderItemPromotion) {
			if a.OriginCode == p.Code {
				item.RemoveAdjustment(a)
			}
		}
	}
}

// subjectTotalFor picks the discount base: the full promotion subject total
// when the promotion also applies to already-discounted items, otherwise
// only the non-discounted part.
func subjectTotalFor(o *order.Order, p Promotion) int64 {
	if p.AppliesToDiscounted {
		return o.PromotionSubjectTotal()
	}
	return o.NonDiscountedItemsTotal()
}
