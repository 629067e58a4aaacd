package order

import "github.com/google/uuid"

// OrderItemUnit is one physical unit of an order item. Its total is the
// item's unit price plus the unit's own non-neutral adjustments, clamped at
// zero; it is derived on demand rather than cached since the base price
// lives on the item.
type OrderItemUnit struct {
	ID uuid.UUID

	item     *OrderItem
	shipment *Shipment
	bag      adjustmentBag
}

// Item returns the owning order item.
func (u *OrderItemUnit) Item() *OrderItem {
	return u.item
}

// Shipment returns the shipment currently holding the unit, or nil.
func (u *OrderItemUnit) Shipment() *Shipment {
	return u.shipment
}

// Shippable reports whether the unit's variant requires physical shipping.
func (u *OrderItemUnit) Shippable() bool {
	return u.item != nil && u.item.Variant != nil && u.item.Variant.ShippingRequired
}

// Total returns the unit total, never negative.
func (u *OrderItemUnit) Total() int64 {
	var base int64
	if u.item != nil {
		base = u.item.unitPrice
	}
	total := base + u.bag.total
	if total < 0 {
		total = 0
	}
	return total
}

// AddAdjustment attaches a unit-level adjustment.
func (u *OrderItemUnit) AddAdjustment(a *Adjustment) {
	u.bag.add(u, a)
}

// RemoveAdjustment detaches a unit-level adjustment unless it is locked.
func (u *OrderItemUnit) RemoveAdjustment(a *Adjustment) {
	u.bag.remove(u, a)
}

// Adjustments returns the unit-level adjustments.
func (u *OrderItemUnit) Adjustments() []*Adjustment {
	return u.bag.all()
}

// AdjustmentsByType returns the unit-level adjustments of the given type.
func (u *OrderItemUnit) AdjustmentsByType(t AdjustmentType) []*Adjustment {
	return u.bag.byType(t)
}

// AdjustmentsTotal returns the cached non-neutral unit adjustments total.
func (u *OrderItemUnit) AdjustmentsTotal() int64 {
	return u.bag.total
}

// AdjustmentsTotalByType sums the unit's non-neutral adjustments of the
// given type.
func (u *OrderItemUnit) AdjustmentsTotalByType(t AdjustmentType) int64 {
	return u.bag.totalByType(t)
}

// RemoveAdjustmentsByType removes the unit's adjustments of the given type,
// skipping locked ones.
func (u *OrderItemUnit) RemoveAdjustmentsByType(t AdjustmentType) {
	u.bag.removeByType(u, t)
}

// recalculateAdjustmentsTotal implements adjustable; unit adjustments ripple
// up through the item into the order totals.
func (u *OrderItemUnit) recalculateAdjustmentsTotal() {
	u.bag.recalculate()
	if u.item != nil {
		u.item.recalculateUnitsTotal()
	}
}
