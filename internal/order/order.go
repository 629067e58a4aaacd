package order

import (
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// State is the checkout state of an order. Only cart orders are mutable and
// therefore processable by the recalculation pipeline.
type State string

const (
	StateCart      State = "cart"
	StateNew       State = "new"
	StateFulfilled State = "fulfilled"
	StateCancelled State = "cancelled"
)

// Order is the mutable aggregate the recalculation pipeline operates on.
// Collections and cached totals are kept behind methods so every mutation
// leaves the totals consistent.
type Order struct {
	ID           uuid.UUID
	Number       string
	State        State
	ChannelCode  string
	CurrencyCode string

	// TaxCalculationStrategy names the channel's tax strategy; tax
	// calculation strategies use it to decide whether they support the order.
	TaxCalculationStrategy string

	ShippingAddress *Address
	BillingAddress  *Address

	items     []*OrderItem
	shipments []*Shipment
	payments  []*Payment
	bag       adjustmentBag

	itemsTotal int64
	total      int64
}

// Address is a plain shipping or billing address. Only the fields the tax
// zone matching cares about are modeled.
type Address struct {
	CountryCode  string
	ProvinceCode string
	PostalCode   string
	City         string
	Street       string
}

// New returns an empty cart order for the given channel and currency.
func New(channelCode, currencyCode string) *Order {
	return &Order{
		ID:           uuid.New(),
		State:        StateCart,
		ChannelCode:  channelCode,
		CurrencyCode: currencyCode,
	}
}

// CanBeProcessed reports whether the pipeline may touch the order. Derived
// state is frozen once the order leaves the cart state.
func (o *Order) CanBeProcessed() bool {
	return o.State == StateCart
}

// Items returns the order's items in insertion order.
func (o *Order) Items() []*OrderItem {
	out := make([]*OrderItem, len(o.items))
	copy(out, o.items)
	return out
}

// IsEmpty reports whether the order has no items.
func (o *Order) IsEmpty() bool {
	return len(o.items) == 0
}

// CountItems returns the number of order items.
func (o *Order) CountItems() int {
	return len(o.items)
}

// AddItem attaches the item and refreshes the items total.
func (o *Order) AddItem(item *OrderItem) {
	if item == nil || o.hasItem(item) {
		return
	}
	o.items = append(o.items, item)
	item.order = o
	o.recalculateItemsTotal()
}

// RemoveItem detaches the item and refreshes the items total.
func (o *Order) RemoveItem(item *OrderItem) {
	for i, candidate := range o.items {
		if candidate == item {
			o.items = append(o.items[:i], o.items[i+1:]...)
			item.order = nil
			o.recalculateItemsTotal()
			return
		}
	}
}

func (o *Order) hasItem(item *OrderItem) bool {
	for _, candidate := range o.items {
		if candidate == item {
			return true
		}
	}
	return false
}

// ItemsTotal returns the cached sum of item totals.
func (o *Order) ItemsTotal() int64 {
	return o.itemsTotal
}

// Total returns the cached order total, never negative.
func (o *Order) Total() int64 {
	return o.total
}

// PromotionSubjectTotal is the order value promotions discount against.
func (o *Order) PromotionSubjectTotal() int64 {
	return o.itemsTotal
}

// NonDiscountedItemsTotal restricts the promotion subject total to items
// whose variant carries no catalog promotion for the order's channel. Used
// by promotions that exclude already-discounted items.
func (o *Order) NonDiscountedItemsTotal() int64 {
	return lo.SumBy(o.items, func(item *OrderItem) int64 {
		if item.Variant != nil && item.Variant.HasCatalogPromotion(o.ChannelCode) {
			return 0
		}
		return item.Total()
	})
}

// IsShippingRequired reports whether any item's variant needs physical
// shipping.
func (o *Order) IsShippingRequired() bool {
	return lo.SomeBy(o.items, func(item *OrderItem) bool {
		return item.Variant != nil && item.Variant.ShippingRequired
	})
}

// ShippableUnits returns every unit, across all items, whose variant
// requires shipping, in the order's stored item and unit sequence.
func (o *Order) ShippableUnits() []*OrderItemUnit {
	var units []*OrderItemUnit
	for _, item := range o.items {
		if item.Variant == nil || !item.Variant.ShippingRequired {
			continue
		}
		units = append(units, item.units...)
	}
	return units
}

// AddAdjustment attaches an order-level adjustment.
func (o *Order) AddAdjustment(a *Adjustment) {
	o.bag.add(o, a)
}

// RemoveAdjustment detaches an order-level adjustment; locked adjustments
// are left in place.
func (o *Order) RemoveAdjustment(a *Adjustment) {
	o.bag.remove(o, a)
}

// Adjustments returns the order-level adjustments.
func (o *Order) Adjustments() []*Adjustment {
	return o.bag.all()
}

// AdjustmentsByType returns the order-level adjustments of the given type.
func (o *Order) AdjustmentsByType(t AdjustmentType) []*Adjustment {
	return o.bag.byType(t)
}

// AdjustmentsTotal returns the cached non-neutral order-level adjustments
// total.
func (o *Order) AdjustmentsTotal() int64 {
	return o.bag.total
}

// AdjustmentsTotalByType sums the non-neutral order-level adjustments of the
// given type.
func (o *Order) AdjustmentsTotalByType(t AdjustmentType) int64 {
	return o.bag.totalByType(t)
}

// RemoveAdjustmentsByType removes the order-level adjustments of the given
// type, skipping locked ones.
func (o *Order) RemoveAdjustmentsByType(t AdjustmentType) {
	o.bag.removeByType(o, t)
}

// AdjustmentsRecursively collects adjustments of the given type from the
// order, its items, their units and its shipments, in stored sequence.
func (o *Order) AdjustmentsRecursively(t AdjustmentType) []*Adjustment {
	out := o.bag.byType(t)
	for _, item := range o.items {
		out = append(out, item.AdjustmentsRecursively(t)...)
	}
	for _, shipment := range o.shipments {
		out = append(out, shipment.AdjustmentsByType(t)...)
	}
	return out
}

// RemoveAdjustmentsRecursively clears adjustments of the given type from the
// order, its items, their units and its shipments.
func (o *Order) RemoveAdjustmentsRecursively(t AdjustmentType) {
	o.bag.removeByType(o, t)
	for _, item := range o.items {
		item.RemoveAdjustmentsRecursively(t)
	}
	for _, shipment := range o.shipments {
		shipment.RemoveAdjustmentsByType(t)
	}
}

// AdjustmentsTotalRecursively sums non-neutral adjustments of the given type
// across the order, items, units and shipments.
func (o *Order) AdjustmentsTotalRecursively(t AdjustmentType) int64 {
	total := o.bag.totalByType(t)
	for _, item := range o.items {
		total += item.AdjustmentsTotalRecursively(t)
	}
	for _, shipment := range o.shipments {
		total += shipment.AdjustmentsTotalByType(t)
	}
	return total
}

// TaxTotal reports the total tax carried by the order, counting neutral
// (included-in-price) tax adjustments as well.
func (o *Order) TaxTotal() int64 {
	var total int64
	for _, a := range o.AdjustmentsRecursively(AdjustmentTax) {
		total += a.Amount()
	}
	return total
}

// PromotionTotal reports the total promotion discount across all levels.
func (o *Order) PromotionTotal() int64 {
	return o.AdjustmentsTotalRecursively(AdjustmentOrderPromotion) +
		o.AdjustmentsTotalRecursively(AdjustmentOrderItemPromotion) +
		o.AdjustmentsTotalRecursively(AdjustmentOrderUnitPromotion) +
		o.AdjustmentsTotalRecursively(AdjustmentOrderShippingPromotion)
}

// ShippingTotal reports shipping charges net of shipping promotions.
func (o *Order) ShippingTotal() int64 {
	return o.AdjustmentsTotalRecursively(AdjustmentShipping) +
		o.AdjustmentsTotalRecursively(AdjustmentOrderShippingPromotion)
}

// Shipments returns the order's shipments.
func (o *Order) Shipments() []*Shipment {
	out := make([]*Shipment, len(o.shipments))
	copy(out, o.shipments)
	return out
}

// HasShipments reports whether the order carries at least one shipment.
func (o *Order) HasShipments() bool {
	return len(o.shipments) > 0
}

// AddShipment attaches a shipment to the order.
func (o *Order) AddShipment(s *Shipment) {
	if s == nil {
		return
	}
	for _, candidate := range o.shipments {
		if candidate == s {
			return
		}
	}
	o.shipments = append(o.shipments, s)
	s.order = o
	o.recalculateTotal()
}

// RemoveShipment detaches the shipment, releasing its units.
func (o *Order) RemoveShipment(s *Shipment) {
	for i, candidate := range o.shipments {
		if candidate == s {
			o.shipments = append(o.shipments[:i], o.shipments[i+1:]...)
			s.releaseUnits()
			s.order = nil
			o.recalculateTotal()
			return
		}
	}
}

// RemoveShipments detaches every shipment from the order.
func (o *Order) RemoveShipments() {
	for _, s := range o.shipments {
		s.releaseUnits()
		s.order = nil
	}
	o.shipments = nil
	o.recalculateTotal()
}

// Payments returns the order's payments.
func (o *Order) Payments() []*Payment {
	out := make([]*Payment, len(o.payments))
	copy(out, o.payments)
	return out
}

// AddPayment attaches a payment to the order.
func (o *Order) AddPayment(p *Payment) {
	if p == nil {
		return
	}
	o.payments = append(o.payments, p)
}

// RemovePayment detaches the payment.
func (o *Order) RemovePayment(p *Payment) {
	for i, candidate := range o.payments {
		if candidate == p {
			o.payments = append(o.payments[:i], o.payments[i+1:]...)
			return
		}
	}
}

// LastPaymentWithState returns the most recently added payment in the given
// state, or nil.
func (o *Order) LastPaymentWithState(state PaymentState) *Payment {
	for i := len(o.payments) - 1; i >= 0; i-- {
		if o.payments[i].State == state {
			return o.payments[i]
		}
	}
	return nil
}

func (o *Order) recalculateItemsTotal() {
	o.itemsTotal = lo.SumBy(o.items, func(item *OrderItem) int64 {
		return item.Total()
	})
	o.recalculateTotal()
}

// recalculateAdjustmentsTotal implements adjustable for order-level
// adjustments.
func (o *Order) recalculateAdjustmentsTotal() {
	o.bag.recalculate()
	o.recalculateTotal()
}

// recalculateTotal re-derives the order total: items plus non-neutral
// adjustments on the order and its shipments, clamped at zero.
func (o *Order) recalculateTotal() {
	total := o.itemsTotal + o.bag.total
	for _, s := range o.shipments {
		total += s.bag.total
	}
	if total < 0 {
		total = 0
	}
	o.total = total
}
