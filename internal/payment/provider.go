// Package payment provisions the order's in-progress payment.
package payment

import (
	"context"
	"errors"

	"github.com/noah-isme/order-engine/internal/order"
)

// ErrNotProvided signals that no payment could be produced for the order.
// The pipeline treats it as a soft condition and leaves the order without a
// payment.
var ErrNotProvided = errors.New("payment: order payment not provided")

// Provider produces a payment in the target state for an order.
type Provider interface {
	Provide(ctx context.Context, o *order.Order, targetState order.PaymentState) (*order.Payment, error)
}

// Remover decides when existing cart payments should be dropped instead of
// repriced, and drops them.
type Remover interface {
	CanRemovePayments(o *order.Order) bool
	RemovePayments(o *order.Order)
}

// DefaultProvider prices a new payment at the order total. A zero-total
// order gets no payment.
type DefaultProvider struct{}

// Provide implements Provider.
func (DefaultProvider) Provide(_ context.Context, o *order.Order, targetState order.PaymentState) (*order.Payment, error) {
	if o.Total() == 0 {
		return nil, ErrNotProvided
	}
	return order.NewPayment(targetState, o.CurrencyCode, o.Total()), nil
}

// CartPaymentsRemover removes payments when the order total dropped to zero
// and every payment is still in the cart state, so nothing committed is
// lost.
type CartPaymentsRemover struct{}

// CanRemovePayments implements Remover.
func (CartPaymentsRemover) CanRemovePayments(o *order.Order) bool {
	if o.Total() != 0 {
		return false
	}
	for _, p := range o.Payments() {
		if p.State != order.PaymentStateCart {
			return false
		}
	}
	return true
}

// RemovePayments implements Remover.
func (CartPaymentsRemover) RemovePayments(o *order.Order) {
	for _, p := range o.Payments() {
		if p.State == order.PaymentStateCart {
			o.RemovePayment(p)
		}
	}
}
