package order

import "github.com/google/uuid"

// PaymentState is the lifecycle state of a payment. The pipeline only ever
// provisions and reprices payments in the cart state.
type PaymentState string

const (
	PaymentStateCart       PaymentState = "cart"
	PaymentStateNew        PaymentState = "new"
	PaymentStateProcessing PaymentState = "processing"
	PaymentStateCompleted  PaymentState = "completed"
	PaymentStateFailed     PaymentState = "failed"
	PaymentStateCancelled  PaymentState = "cancelled"
)

// Payment is a provisional or confirmed payment attached to an order.
type Payment struct {
	ID           uuid.UUID
	State        PaymentState
	CurrencyCode string
	Amount       int64
	MethodCode   string
}

// NewPayment returns a payment in the given state priced in the given
// currency.
func NewPayment(state PaymentState, currencyCode string, amount int64) *Payment {
	return &Payment{
		ID:           uuid.New(),
		State:        state,
		CurrencyCode: currencyCode,
		Amount:       amount,
	}
}
