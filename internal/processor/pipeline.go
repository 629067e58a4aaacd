package processor

import (
	"github.com/rs/zerolog"

	"github.com/noah-isme/order-engine/internal/order"
	"github.com/noah-isme/order-engine/internal/payment"
	"github.com/noah-isme/order-engine/internal/pricing"
	"github.com/noah-isme/order-engine/internal/promotion"
	"github.com/noah-isme/order-engine/internal/shipping"
	"github.com/noah-isme/order-engine/internal/tax"
)

// Dependencies collects the collaborators the default pipeline needs.
type Dependencies struct {
	Prices          pricing.Calculator
	DefaultResolver shipping.DefaultMethodResolver
	MethodsResolver shipping.MethodsResolver
	Calculators     shipping.CalculatorRegistry
	Promotions      promotion.Processor
	Addresses       tax.AddressResolver
	Zones           tax.ZoneMatcher
	DefaultZones    tax.DefaultZoneProvider
	Strategies      *tax.Registry
	Payments        payment.Provider
	PaymentsRemover payment.Remover

	// ClearedTypes overrides the adjustment types the clearer removes.
	ClearedTypes []order.AdjustmentType
}

// NewDefaultPipeline assembles the canonical processor sequence: clear
// derived adjustments, reprice items, reconcile shipments and their charges,
// reapply promotions, then taxes on the discounted amounts, and finally the
// cart payment.
func NewDefaultPipeline(log zerolog.Logger, deps Dependencies) *Composite {
	return NewComposite(log,
		NewAdjustmentsClearer(deps.ClearedTypes...),
		&PricesRecalculator{Prices: deps.Prices},
		&ShipmentProcessor{DefaultResolver: deps.DefaultResolver, MethodsResolver: deps.MethodsResolver, Log: log},
		&ShippingChargesProcessor{Calculators: deps.Calculators, Log: log},
		&PromotionProcessor{Delegate: deps.Promotions},
		&TaxesProcessor{Addresses: deps.Addresses, Zones: deps.Zones, DefaultZones: deps.DefaultZones, Strategies: deps.Strategies, Log: log},
		&PaymentProcessor{Provider: deps.Payments, Remover: deps.PaymentsRemover},
	)
}
