// Command recalc loads a cart fixture, runs the order recalculation
// pipeline over it and prints the derived totals. It exists to exercise the
// engine end to end without a surrounding application.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/noah-isme/order-engine/internal/config"
	"github.com/noah-isme/order-engine/internal/distributor"
	"github.com/noah-isme/order-engine/internal/obs"
	"github.com/noah-isme/order-engine/internal/order"
	"github.com/noah-isme/order-engine/internal/payment"
	"github.com/noah-isme/order-engine/internal/pricing"
	"github.com/noah-isme/order-engine/internal/processor"
	"github.com/noah-isme/order-engine/internal/promotion"
	"github.com/noah-isme/order-engine/internal/shipping"
	"github.com/noah-isme/order-engine/internal/tax"
)

type fixture struct {
	Channel        string        `json:"channel"`
	Currency       string        `json:"currency"`
	BillingCountry string        `json:"billingCountry"`
	Items          []fixtureItem `json:"items"`

	ShippingMethods []fixtureMethod        `json:"shippingMethods"`
	Zones           map[string]fixtureZone `json:"zones"`
	TaxRates        map[string]fixtureRate `json:"taxRates"`
	Promotions      []fixturePromotion     `json:"promotions"`
}

type fixtureItem struct {
	Variant          string   `json:"variant"`
	Product          string   `json:"product"`
	Taxons           []string `json:"taxons"`
	Price            int64    `json:"price"`
	OriginalPrice    int64    `json:"originalPrice"`
	MinimumPrice     int64    `json:"minimumPrice"`
	Quantity         int      `json:"quantity"`
	ShippingRequired bool     `json:"shippingRequired"`
	TaxCategory      string   `json:"taxCategory"`
}

type fixtureMethod struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Calculator  string `json:"calculator"`
	Amount      int64  `json:"amount"`
	TaxCategory string `json:"taxCategory"`
}

type fixtureZone struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type fixtureRate struct {
	Code            string  `json:"code"`
	Name            string  `json:"name"`
	Amount          float64 `json:"amount"`
	IncludedInPrice bool    `json:"includedInPrice"`
}

type fixturePromotion struct {
	Code                string          `json:"code"`
	Name                string          `json:"name"`
	AppliesToDiscounted bool            `json:"appliesToDiscounted"`
	Actions             []fixtureAction `json:"actions"`
}

type fixtureAction struct {
	Type          string                    `json:"type"`
	Configuration map[string]map[string]any `json:"configuration"`
}

func main() {
	path := flag.String("fixture", "fixture.json", "path to the cart fixture")
	flag.Parse()

	cfg := config.MustLoad()
	log := obs.NewLogger(cfg.LogFormat, cfg.LogLevel)

	data, err := os.ReadFile(*path)
	if err != nil {
		log.Fatal().Err(err).Str("path", *path).Msg("read fixture")
	}
	var fx fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		log.Fatal().Err(err).Msg("decode fixture")
	}
	if fx.Channel == "" {
		fx.Channel = cfg.DefaultChannel
	}
	if fx.Currency == "" {
		fx.Currency = cfg.DefaultCurrency
	}

	o := buildOrder(fx, cfg)
	pipeline := processor.NewDefaultPipeline(log, buildDependencies(fx, cfg))

	if err := pipeline.Process(context.Background(), o); err != nil {
		log.Fatal().Err(err).Msg("recalculate order")
	}

	evt := log.Info().
		Str("channel", o.ChannelCode).
		Str("currency", o.CurrencyCode).
		Int64("items_total", o.ItemsTotal()).
		Int64("promotion_total", o.PromotionTotal()).
		Int64("shipping_total", o.ShippingTotal()).
		Int64("tax_total", o.TaxTotal()).
		Int64("total", o.Total()).
		Int("shipments", len(o.Shipments()))
	if p := o.LastPaymentWithState(order.PaymentState(cfg.PaymentTargetState)); p != nil {
		evt = evt.Int64("payment_amount", p.Amount)
	}
	evt.Msg("order recalculated")
}

func buildOrder(fx fixture, cfg *config.Config) *order.Order {
	o := order.New(fx.Channel, fx.Currency)
	o.TaxCalculationStrategy = cfg.TaxCalculationStrategy
	if fx.BillingCountry != "" {
		o.BillingAddress = &order.Address{CountryCode: fx.BillingCountry}
	}
	for _, it := range fx.Items {
		variant := order.NewVariant(it.Variant, it.ShippingRequired)
		variant.TaxCategoryCode = it.TaxCategory
		variant.Product = &order.Product{Code: it.Product, TaxonCodes: it.Taxons}
		variant.SetChannelPricing(&order.ChannelPricing{
			ChannelCode:   fx.Channel,
			Price:         it.Price,
			OriginalPrice: it.OriginalPrice,
			MinimumPrice:  it.MinimumPrice,
		})
		item := order.NewItem(variant)
		item.AddUnits(it.Quantity)
		o.AddItem(item)
	}
	return o
}

func buildDependencies(fx fixture, cfg *config.Config) processor.Dependencies {
	methods := make([]*order.ShippingMethod, 0, len(fx.ShippingMethods))
	for _, m := range fx.ShippingMethods {
		methods = append(methods, &order.ShippingMethod{
			Code:            m.Code,
			Name:            m.Name,
			Enabled:         true,
			ChannelCodes:    []string{fx.Channel},
			TaxCategoryCode: m.TaxCategory,
			Calculator:      m.Calculator,
			Configuration: map[string]map[string]any{
				fx.Channel: {"amount": m.Amount},
			},
		})
	}
	repo := &shipping.StaticMethodRepository{Methods: methods}

	zones := map[string]*tax.Zone{}
	for country, z := range fx.Zones {
		zones[country] = &tax.Zone{Code: z.Code, Name: z.Name, Scope: tax.ScopeTax}
	}
	rates := tax.StaticRateResolver{}
	for category, r := range fx.TaxRates {
		rates[category] = tax.Rate{Code: r.Code, Name: r.Name, Amount: r.Amount, IncludedInPrice: r.IncludedInPrice}
	}

	promotions := make([]promotion.Promotion, 0, len(fx.Promotions))
	for _, p := range fx.Promotions {
		promo := promotion.Promotion{
			Code:                p.Code,
			Name:                p.Name,
			AppliesToDiscounted: p.AppliesToDiscounted,
		}
		for _, a := range p.Actions {
			promo.Actions = append(promo.Actions, promotion.PromotionAction{
				Type:          a.Type,
				Configuration: a.Configuration,
			})
		}
		promotions = append(promotions, promo)
	}
	minimum := &distributor.MinimumPrice{}
	applicator := promotion.NewApplicator(map[string]promotion.Command{
		promotion.ActionFixedDiscount:      promotion.FixedDiscount{MinimumPrice: minimum},
		promotion.ActionPercentageDiscount: promotion.PercentageDiscount{MinimumPrice: minimum},
		promotion.ActionUnitPercentage:     promotion.UnitPercentageDiscount{},
		promotion.ActionShippingPercentage: promotion.ShippingPercentageDiscount{},
	})

	return processor.Dependencies{
		Prices:          pricing.ChannelPricingCalculator{},
		DefaultResolver: repo,
		MethodsResolver: repo,
		Calculators:     shipping.DefaultCalculators(),
		Promotions: &promotion.OrderProcessor{
			Promotions: promotion.StaticProvider(promotions),
			Applicator: applicator,
		},
		Addresses:       tax.BillingAddressResolver{},
		Zones:           &tax.StaticZoneMatcher{ByCountry: zones},
		DefaultZones:    &tax.StaticDefaultZoneProvider{},
		Strategies:      tax.NewRegistry(&tax.OrderItemUnitsBasedStrategy{Rates: rates}),
		Payments:        payment.DefaultProvider{},
		PaymentsRemover: payment.CartPaymentsRemover{},
	}
}
