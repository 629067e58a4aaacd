package order

import (
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// OrderItem is a line of an order: one variant at a unit price, with one
// OrderItemUnit per quantity. Item totals cache the sum of unit totals plus
// the item's own non-neutral adjustments, clamped at zero.
type OrderItem struct {
	ID      uuid.UUID
	Variant *ProductVariant

	order *Order
	units []*OrderItemUnit
	bag   adjustmentBag

	unitPrice         int64
	originalUnitPrice int64
	immutable         bool

	unitsTotal int64
	total      int64
}

// NewItem returns a detached item for the given variant.
func NewItem(variant *ProductVariant) *OrderItem {
	return &OrderItem{
		ID:      uuid.New(),
		Variant: variant,
	}
}

// Order returns the owning order, or nil while detached.
func (i *OrderItem) Order() *Order {
	return i.order
}

// Quantity is derived from the unit collection.
func (i *OrderItem) Quantity() int {
	return len(i.units)
}

// UnitPrice returns the current unit price in minor currency units.
func (i *OrderItem) UnitPrice() int64 {
	return i.unitPrice
}

// SetUnitPrice reprices every unit of the item.
func (i *OrderItem) SetUnitPrice(price int64) {
	i.unitPrice = price
	i.recalculateUnitsTotal()
}

// OriginalUnitPrice returns the pre-discount unit price.
func (i *OrderItem) OriginalUnitPrice() int64 {
	return i.originalUnitPrice
}

// SetOriginalUnitPrice records the pre-discount unit price. It does not
// participate in totals.
func (i *OrderItem) SetOriginalUnitPrice(price int64) {
	i.originalUnitPrice = price
}

// Immutable reports whether the item's price is frozen. Items become
// immutable once their order's checkout is completed.
func (i *OrderItem) Immutable() bool {
	return i.immutable
}

// SetImmutable freezes or unfreezes the item's price.
func (i *OrderItem) SetImmutable(immutable bool) {
	i.immutable = immutable
}

// Units returns the item's units in insertion order.
func (i *OrderItem) Units() []*OrderItemUnit {
	out := make([]*OrderItemUnit, len(i.units))
	copy(out, i.units)
	return out
}

// AddUnit creates a new unit attached to this item and returns it.
func (i *OrderItem) AddUnit() *OrderItemUnit {
	unit := &OrderItemUnit{
		ID:   uuid.New(),
		item: i,
	}
	i.units = append(i.units, unit)
	i.recalculateUnitsTotal()
	return unit
}

// AddUnits creates n units at once.
func (i *OrderItem) AddUnits(n int) {
	for range n {
		i.AddUnit()
	}
}

// RemoveUnit detaches the unit from the item and from any shipment holding
// it.
func (i *OrderItem) RemoveUnit(unit *OrderItemUnit) {
	for idx, candidate := range i.units {
		if candidate == unit {
			i.units = append(i.units[:idx], i.units[idx+1:]...)
			if unit.shipment != nil {
				unit.shipment.RemoveUnit(unit)
			}
			unit.item = nil
			i.recalculateUnitsTotal()
			return
		}
	}
}

// UnitsTotal returns the cached sum of unit totals.
func (i *OrderItem) UnitsTotal() int64 {
	return i.unitsTotal
}

// Total returns the cached item total, never negative.
func (i *OrderItem) Total() int64 {
	return i.total
}

// AddAdjustment attaches an item-level adjustment.
func (i *OrderItem) AddAdjustment(a *Adjustment) {
	i.bag.add(i, a)
}

// RemoveAdjustment detaches an item-level adjustment unless it is locked.
func (i *OrderItem) RemoveAdjustment(a *Adjustment) {
	i.bag.remove(i, a)
}

// Adjustments returns the item-level adjustments.
func (i *OrderItem) Adjustments() []*Adjustment {
	return i.bag.all()
}

// AdjustmentsByType returns the item-level adjustments of the given type.
func (i *OrderItem) AdjustmentsByType(t AdjustmentType) []*Adjustment {
	return i.bag.byType(t)
}

// AdjustmentsTotal returns the cached non-neutral item-level adjustments
// total.
func (i *OrderItem) AdjustmentsTotal() int64 {
	return i.bag.total
}

// AdjustmentsTotalByType sums the item's non-neutral adjustments of the
// given type.
func (i *OrderItem) AdjustmentsTotalByType(t AdjustmentType) int64 {
	return i.bag.totalByType(t)
}

// RemoveAdjustmentsByType removes the item-level adjustments of the given
// type, skipping locked ones.
func (i *OrderItem) RemoveAdjustmentsByType(t AdjustmentType) {
	i.bag.removeByType(i, t)
}

// AdjustmentsRecursively collects the item's and its units' adjustments of
// the given type.
func (i *OrderItem) AdjustmentsRecursively(t AdjustmentType) []*Adjustment {
	out := i.bag.byType(t)
	for _, unit := range i.units {
		out = append(out, unit.AdjustmentsByType(t)...)
	}
	return out
}

// RemoveAdjustmentsRecursively clears the item's and its units' adjustments
// of the given type.
func (i *OrderItem) RemoveAdjustmentsRecursively(t AdjustmentType) {
	i.bag.removeByType(i, t)
	for _, unit := range i.units {
		unit.RemoveAdjustmentsByType(t)
	}
}

// AdjustmentsTotalRecursively sums the item's and its units' non-neutral
// adjustments of the given type.
func (i *OrderItem) AdjustmentsTotalRecursively(t AdjustmentType) int64 {
	total := i.bag.totalByType(t)
	for _, unit := range i.units {
		total += unit.AdjustmentsTotalByType(t)
	}
	return total
}

func (i *OrderItem) recalculateUnitsTotal() {
	i.unitsTotal = lo.SumBy(i.units, func(u *OrderItemUnit) int64 {
		return u.Total()
	})
	i.recalculateTotal()
}

// recalculateAdjustmentsTotal implements adjustable for item-level
// adjustments.
func (i *OrderItem) recalculateAdjustmentsTotal() {
	i.bag.recalculate()
	i.recalculateTotal()
}

func (i *OrderItem) recalculateTotal() {
	total := i.unitsTotal + i.bag.total
	if total < 0 {
		total = 0
	}
	i.total = total
	if i.order != nil {
		i.order.recalculateItemsTotal()
	}
}
