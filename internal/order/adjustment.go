package order

import "github.com/google/uuid"

// AdjustmentType tags an adjustment with the aspect of the order it belongs
// to. Processors own one type each: they clear it and rebuild it on every
// recalculation pass.
type AdjustmentType string

const (
	// AdjustmentOrderPromotion is a promotion discount attached at order level.
	AdjustmentOrderPromotion AdjustmentType = "order_promotion"
	// AdjustmentOrderItemPromotion is a promotion discount distributed across items.
	AdjustmentOrderItemPromotion AdjustmentType = "order_item_promotion"
	// AdjustmentOrderUnitPromotion is a promotion discount attached per unit.
	AdjustmentOrderUnitPromotion AdjustmentType = "order_unit_promotion"
	// AdjustmentOrderShippingPromotion is a promotion discount on shipping charges.
	AdjustmentOrderShippingPromotion AdjustmentType = "order_shipping_promotion"
	// AdjustmentShipping is the shipping charge itself.
	AdjustmentShipping AdjustmentType = "shipping"
	// AdjustmentTax is a tax charge; neutral when the tax is included in the price.
	AdjustmentTax AdjustmentType = "tax"
)

// Adjustment is a signed monetary delta (minor currency units) attached to
// exactly one owner: an order, an order item, an order item unit or a
// shipment. Neutral adjustments stay attached but are excluded from totals.
// Locked adjustments survive removal attempts.
type Adjustment struct {
	ID         uuid.UUID
	Type       AdjustmentType
	Label      string
	OriginCode string

	amount  int64
	neutral bool
	locked  bool
	owner   adjustable
}

// NewAdjustment returns a detached adjustment of the given type.
func NewAdjustment(t AdjustmentType, label string, amount int64) *Adjustment {
	return &Adjustment{
		ID:     uuid.New(),
		Type:   t,
		Label:  label,
		amount: amount,
	}
}

// Amount returns the signed amount in minor currency units.
func (a *Adjustment) Amount() int64 {
	return a.amount
}

// SetAmount updates the amount and retriggers the owner's recalculation when
// the adjustment is attached and counts towards totals.
func (a *Adjustment) SetAmount(amount int64) {
	a.amount = amount
	if !a.neutral && a.owner != nil {
		a.owner.recalculateAdjustmentsTotal()
	}
}

// Neutral reports whether the adjustment is excluded from totals.
func (a *Adjustment) Neutral() bool {
	return a.neutral
}

// SetNeutral toggles the neutrality flag, recalculating the owner's total on
// any change since the adjustment enters or leaves the sum either way.
func (a *Adjustment) SetNeutral(neutral bool) {
	if a.neutral == neutral {
		return
	}
	a.neutral = neutral
	if a.owner != nil {
		a.owner.recalculateAdjustmentsTotal()
	}
}

// Locked reports whether the adjustment resists removal.
func (a *Adjustment) Locked() bool {
	return a.locked
}

// Lock prevents the adjustment from being removed or reparented.
func (a *Adjustment) Lock() {
	a.locked = true
}

// Unlock makes the adjustment removable again.
func (a *Adjustment) Unlock() {
	a.locked = false
}

// Attached reports whether the adjustment currently has an owner.
func (a *Adjustment) Attached() bool {
	return a.owner != nil
}

// adjustable is the capability every adjustment owner exposes to its
// attached adjustments.
type adjustable interface {
	recalculateAdjustmentsTotal()
}

// adjustmentBag holds an owner's adjustments together with the cached total
// of the non-neutral ones. The owner passes itself into every mutating call
// so attached adjustments can reach back for recalculation.
type adjustmentBag struct {
	adjustments []*Adjustment
	total       int64
}

// add attaches a detached adjustment. An adjustment that already has an
// owner stays where it is; it must be removed there first, which locking
// prevents.
func (b *adjustmentBag) add(owner adjustable, a *Adjustment) {
	if a == nil || a.owner != nil {
		return
	}
	b.adjustments = append(b.adjustments, a)
	a.owner = owner
	if !a.neutral {
		owner.recalculateAdjustmentsTotal()
	}
}

// remove detaches the adjustment unless it is locked; removing a locked
// adjustment is a silent no-op.
func (b *adjustmentBag) remove(owner adjustable, a *Adjustment) {
	if a == nil || a.locked {
		return
	}
	for i, candidate := range b.adjustments {
		if candidate == a {
			b.adjustments = append(b.adjustments[:i], b.adjustments[i+1:]...)
			a.owner = nil
			if !a.neutral {
				owner.recalculateAdjustmentsTotal()
			}
			return
		}
	}
}

func (b *adjustmentBag) removeByType(owner adjustable, t AdjustmentType) {
	for _, a := range b.byType(t) {
		b.remove(owner, a)
	}
}

func (b *adjustmentBag) all() []*Adjustment {
	out := make([]*Adjustment, len(b.adjustments))
	copy(out, b.adjustments)
	return out
}

func (b *adjustmentBag) byType(t AdjustmentType) []*Adjustment {
	out := make([]*Adjustment, 0, len(b.adjustments))
	for _, a := range b.adjustments {
		if a.Type == t {
			out = append(out, a)
		}
	}
	return out
}

func (b *adjustmentBag) totalByType(t AdjustmentType) int64 {
	var total int64
	for _, a := range b.adjustments {
		if a.Type == t && !a.neutral {
			total += a.amount
		}
	}
	return total
}

// recalculate refreshes the cached non-neutral total and reports it.
func (b *adjustmentBag) recalculate() int64 {
	b.total = 0
	for _, a := range b.adjustments {
		if !a.neutral {
			b.total += a.amount
		}
	}
	return b.total
}
