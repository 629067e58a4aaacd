// Package promotion applies and reverts configured order promotion actions:
// fixed and percentage discounts over items, per-unit percentage discounts
// and shipping discounts. Eligibility evaluation lives outside this package;
// only action execution is handled here.
package promotion

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrUnexpectedSubject is returned when an action command receives a subject
// that is not an order. It signals a wiring mistake, not an order condition.
var ErrUnexpectedSubject = errors.New("promotion: subject is not an order")

// Action type names, used to bind a PromotionAction configuration to its
// command.
const (
	ActionFixedDiscount      = "order_fixed_discount"
	ActionPercentageDiscount = "order_percentage_discount"
	ActionUnitPercentage     = "unit_percentage_discount"
	ActionShippingPercentage = "shipping_percentage_discount"
)

// Configuration is a promotion action's per-channel settings, e.g.
// {"WEB": {"amount": 1000}} or {"WEB": {"percentage": 0.2}}. Entries are
// untyped on purpose: a missing or malformed entry downgrades the action to
// a no-op rather than an error.
type Configuration map[string]map[string]any

// PromotionAction binds an action type to its configuration.
type PromotionAction struct {
	Type          string
	Configuration Configuration
}

// Promotion is immutable promotion configuration. Code is the stable
// identity stamped onto every adjustment the promotion creates, which is
// what makes exact revert possible.
type Promotion struct {
	Code                string
	Name                string
	AppliesToDiscounted bool
	Actions             []PromotionAction
}

// Subject is what promotion actions operate on. The only supported concrete
// subject is *order.Order; commands reject anything else with
// ErrUnexpectedSubject.
type Subject interface {
	PromotionSubjectTotal() int64
}

// Command applies or reverts one promotion action on a subject. Execute
// reports whether it actually changed anything; Revert removes exactly the
// adjustments carrying the promotion's code.
type Command interface {
	Execute(subject Subject, cfg Configuration, p Promotion) (bool, error)
	Revert(subject Subject, cfg Configuration, p Promotion) error
}

// amountFor extracts the integer amount configured for a channel. The
// second return is false when the channel entry or the amount key is missing
// or not numeric.
func (c Configuration) amountFor(channelCode string) (int64, bool) {
	entry, ok := c[channelCode]
	if !ok {
		return 0, false
	}
	return toInt64(entry["amount"])
}

// percentageFor extracts the percentage (a float in [0, 1]) configured for a
// channel.
func (c Configuration) percentageFor(channelCode string) (float64, bool) {
	entry, ok := c[channelCode]
	if !ok {
		return 0, false
	}
	return toFloat64(entry["percentage"])
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// applyPercentage computes round(percentage * base) with halves away from
// zero, the rounding the rest of the money math uses.
func applyPercentage(base int64, percentage float64) int64 {
	return decimal.NewFromInt(base).
		Mul(decimal.NewFromFloat(percentage)).
		Round(0).
		IntPart()
}
