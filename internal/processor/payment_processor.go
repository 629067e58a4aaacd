package processor

import (
	"context"
	"errors"

	"github.com/samber/lo"

	"github.com/noah-isme/order-engine/internal/order"
	"github.com/noah-isme/order-engine/internal/payment"
)

// PaymentProcessor keeps the order's cart payment in sync with the order
// total. Outside its supported states it does nothing; when the remover
// signals that cart payments should go, they go and nothing is provisioned.
type PaymentProcessor struct {
	Provider payment.Provider
	Remover  payment.Remover

	// TargetState defaults to the cart payment state, SupportedStates to the
	// cart order state.
	TargetState     order.PaymentState
	SupportedStates []order.State
}

// Process implements OrderProcessor.
func (p *PaymentProcessor) Process(ctx context.Context, o *order.Order) error {
	supported := p.SupportedStates
	if len(supported) == 0 {
		supported = []order.State{order.StateCart}
	}
	if !lo.Contains(supported, o.State) {
		return nil
	}

	if p.Remover != nil && p.Remover.CanRemovePayments(o) {
		p.Remover.RemovePayments(o)
		return nil
	}

	targetState := p.TargetState
	if targetState == "" {
		targetState = order.PaymentStateCart
	}
	if last := o.LastPaymentWithState(targetState); last != nil {
		last.CurrencyCode = o.CurrencyCode
		last.Amount = o.Total()
		return nil
	}

	newPayment, err := p.Provider.Provide(ctx, o, targetState)
	if errors.Is(err, payment.ErrNotProvided) {
		return nil
	}
	if err != nil {
		return err
	}
	o.AddPayment(newPayment)
	return nil
}
