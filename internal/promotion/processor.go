package promotion

import (
	"context"

	"github.com/noah-isme/order-engine/internal/order"
)

// Processor is the promotion-processing collaborator the order pipeline
// triggers. Implementations decide which promotions an order gets.
type Processor interface {
	Process(ctx context.Context, o *order.Order) error
}

// Provider supplies the promotions currently worth considering for an
// order. Implementations typically read active promotions from storage.
type Provider interface {
	ActivePromotions(ctx context.Context, o *order.Order) ([]Promotion, error)
}

// EligibilityChecker decides whether a promotion applies to an order. Rule
// evaluation is outside this package; the default accepts everything.
type EligibilityChecker interface {
	IsEligible(o *order.Order, p Promotion) bool
}

// AlwaysEligible accepts every promotion.
type AlwaysEligible struct{}

// IsEligible implements EligibilityChecker.
func (AlwaysEligible) IsEligible(*order.Order, Promotion) bool { return true }

// StaticProvider serves a fixed promotion list.
type StaticProvider []Promotion

// ActivePromotions implements Provider.
func (p StaticProvider) ActivePromotions(context.Context, *order.Order) ([]Promotion, error) {
	return p, nil
}

// OrderProcessor is the default promotion processor: it reverts every known
// promotion, then re-applies the ones the checker accepts. Reverting first
// keeps repeated pipeline runs from stacking discounts.
type OrderProcessor struct {
	Promotions Provider
	Checker    EligibilityChecker
	Applicator *Applicator
}

// Process implements Processor.
func (p *OrderProcessor) Process(ctx context.Context, o *order.Order) error {
	promotions, err := p.Promotions.ActivePromotions(ctx, o)
	if err != nil {
		return err
	}
	for _, promo := range promotions {
		if err := p.Applicator.Revert(o, promo); err != nil {
			return err
		}
	}
	checker := p.Checker
	if checker == nil {
		checker = AlwaysEligible{}
	}
	for _, promo := range promotions {
		if !checker.IsEligible(o, promo) {
			continue
		}
		if _, err := p.Applicator.Apply(o, promo); err != nil {
			return err
		}
	}
	return nil
}
