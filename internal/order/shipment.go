package order

import "github.com/google/uuid"

// Shipment groups the shippable units of an order under one shipping
// method. The method may stay unassigned when no default could be resolved;
// such a shipment is kept attached so a method can be picked manually later.
// Shipments own adjustments (shipping charges, shipping promotions, shipping
// taxes) whose non-neutral total rolls up into the order total.
type Shipment struct {
	ID uuid.UUID

	order  *Order
	method *ShippingMethod
	units  []*OrderItemUnit
	bag    adjustmentBag
}

// NewShipment returns a detached shipment without a method.
func NewShipment() *Shipment {
	return &Shipment{ID: uuid.New()}
}

// Order returns the owning order, or nil while detached.
func (s *Shipment) Order() *Order {
	return s.order
}

// Method returns the assigned shipping method, or nil.
func (s *Shipment) Method() *ShippingMethod {
	return s.method
}

// SetMethod assigns the shipping method; nil unassigns it.
func (s *Shipment) SetMethod(m *ShippingMethod) {
	s.method = m
}

// Units returns the units held by the shipment in insertion order.
func (s *Shipment) Units() []*OrderItemUnit {
	out := make([]*OrderItemUnit, len(s.units))
	copy(out, s.units)
	return out
}

// UnitCount returns the number of units in the shipment.
func (s *Shipment) UnitCount() int {
	return len(s.units)
}

// HasUnit reports whether the shipment holds the unit.
func (s *Shipment) HasUnit(unit *OrderItemUnit) bool {
	for _, candidate := range s.units {
		if candidate == unit {
			return true
		}
	}
	return false
}

// AddUnit moves the unit into the shipment.
func (s *Shipment) AddUnit(unit *OrderItemUnit) {
	if unit == nil || s.HasUnit(unit) {
		return
	}
	s.units = append(s.units, unit)
	unit.shipment = s
}

// RemoveUnit releases the unit from the shipment.
func (s *Shipment) RemoveUnit(unit *OrderItemUnit) {
	for i, candidate := range s.units {
		if candidate == unit {
			s.units = append(s.units[:i], s.units[i+1:]...)
			unit.shipment = nil
			return
		}
	}
}

func (s *Shipment) releaseUnits() {
	for _, unit := range s.units {
		unit.shipment = nil
	}
	s.units = nil
}

// AddAdjustment attaches a shipment-level adjustment.
func (s *Shipment) AddAdjustment(a *Adjustment) {
	s.bag.add(s, a)
}

// RemoveAdjustment detaches a shipment-level adjustment unless it is locked.
func (s *Shipment) RemoveAdjustment(a *Adjustment) {
	s.bag.remove(s, a)
}

// Adjustments returns the shipment-level adjustments.
func (s *Shipment) Adjustments() []*Adjustment {
	return s.bag.all()
}

// AdjustmentsByType returns the shipment's adjustments of the given type.
func (s *Shipment) AdjustmentsByType(t AdjustmentType) []*Adjustment {
	return s.bag.byType(t)
}

// AdjustmentsTotal returns the cached non-neutral shipment adjustments
// total.
func (s *Shipment) AdjustmentsTotal() int64 {
	return s.bag.total
}

// AdjustmentsTotalByType sums the shipment's non-neutral adjustments of the
// given type.
func (s *Shipment) AdjustmentsTotalByType(t AdjustmentType) int64 {
	return s.bag.totalByType(t)
}

// RemoveAdjustmentsByType removes the shipment's adjustments of the given
// type, skipping locked ones.
func (s *Shipment) RemoveAdjustmentsByType(t AdjustmentType) {
	s.bag.removeByType(s, t)
}

// recalculateAdjustmentsTotal implements adjustable; shipment adjustments
// roll straight into the order total.
func (s *Shipment) recalculateAdjustmentsTotal() {
	s.bag.recalculate()
	if s.order != nil {
		s.order.recalculateTotal()
	}
}
