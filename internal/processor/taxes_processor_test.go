package processor

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/order-engine/internal/order"
	"github.com/noah-isme/order-engine/internal/tax"
)

func taxableOrder(t *testing.T, country string) (*order.Order, *order.OrderItem) {
	t.Helper()
	o := order.New("WEB", "USD")
	o.TaxCalculationStrategy = tax.StrategyOrderItemUnitsBased
	if country != "" {
		o.BillingAddress = &order.Address{CountryCode: country}
	}
	variant := order.NewVariant("A", true)
	variant.TaxCategoryCode = "standard"
	item := order.NewItem(variant)
	item.AddUnits(2)
	item.SetUnitPrice(1000)
	o.AddItem(item)
	return o, item
}

func taxesProcessor(defaultZone *tax.Zone, rates tax.StaticRateResolver) *TaxesProcessor {
	return &TaxesProcessor{
		Addresses: tax.BillingAddressResolver{},
		Zones: &tax.StaticZoneMatcher{ByCountry: map[string]*tax.Zone{
			"DE": {Code: "EU", Name: "European Union", Scope: tax.ScopeTax},
		}},
		DefaultZones: &tax.StaticDefaultZoneProvider{Default: defaultZone},
		Strategies:   tax.NewRegistry(&tax.OrderItemUnitsBasedStrategy{Rates: rates}),
		Log:          zerolog.Nop(),
	}
}

func standardRate(included bool) tax.StaticRateResolver {
	return tax.StaticRateResolver{
		"standard": {Code: "vat_19", Name: "VAT 19%", Amount: 0.19, IncludedInPrice: included},
	}
}

func TestTaxesProcessorAppliesUnitTaxes(t *testing.T) {
	o, item := taxableOrder(t, "DE")

	require.NoError(t, taxesProcessor(nil, standardRate(false)).Process(context.Background(), o))

	for _, unit := range item.Units() {
		taxes := unit.AdjustmentsByType(order.AdjustmentTax)
		require.Len(t, taxes, 1)
		require.Equal(t, int64(190), taxes[0].Amount())
		require.False(t, taxes[0].Neutral())
	}
	require.Equal(t, int64(380), o.TaxTotal())
	require.Equal(t, int64(2380), o.Total())
}

func TestTaxesProcessorIncludedInPriceIsNeutral(t *testing.T) {
	o, item := taxableOrder(t, "DE")

	require.NoError(t, taxesProcessor(nil, standardRate(true)).Process(context.Background(), o))

	unitTaxes := item.Units()[0].AdjustmentsByType(order.AdjustmentTax)
	require.Len(t, unitTaxes, 1)
	require.True(t, unitTaxes[0].Neutral())
	// 1000 gross at 19% included backs out 160 of tax.
	require.Equal(t, int64(160), unitTaxes[0].Amount())
	require.Equal(t, int64(320), o.TaxTotal())
	require.Equal(t, int64(2000), o.Total())
}

func TestTaxesProcessorTaxesShippingCharge(t *testing.T) {
	o, _ := taxableOrder(t, "DE")
	method := webMethod("ups")
	method.TaxCategoryCode = "standard"
	shipment := order.NewShipment()
	shipment.SetMethod(method)
	o.AddShipment(shipment)
	shipment.AddAdjustment(order.NewAdjustment(order.AdjustmentShipping, "ups", 400))
	discount := order.NewAdjustment(order.AdjustmentOrderShippingPromotion, "half", -200)
	shipment.AddAdjustment(discount)

	require.NoError(t, taxesProcessor(nil, standardRate(false)).Process(context.Background(), o))

	// Shipping tax is charged on the discounted 200, not the raw 400.
	shipmentTaxes := shipment.AdjustmentsByType(order.AdjustmentTax)
	require.Len(t, shipmentTaxes, 1)
	require.Equal(t, int64(38), shipmentTaxes[0].Amount())
}

func TestTaxesProcessorNoZoneSkips(t *testing.T) {
	o, item := taxableOrder(t, "US")

	require.NoError(t, taxesProcessor(nil, standardRate(false)).Process(context.Background(), o))
	require.Empty(t, item.Units()[0].AdjustmentsByType(order.AdjustmentTax))
	require.Equal(t, int64(2000), o.Total())
}

func TestTaxesProcessorDefaultZoneFallback(t *testing.T) {
	o, item := taxableOrder(t, "US")
	fallback := &tax.Zone{Code: "WORLD", Name: "Rest of world", Scope: tax.ScopeTax}

	require.NoError(t, taxesProcessor(fallback, standardRate(false)).Process(context.Background(), o))
	require.Len(t, item.Units()[0].AdjustmentsByType(order.AdjustmentTax), 1)
}

func TestTaxesProcessorNoSupportedStrategyIsFatal(t *testing.T) {
	o, _ := taxableOrder(t, "DE")
	o.TaxCalculationStrategy = "order_items_based"

	err := taxesProcessor(nil, standardRate(false)).Process(context.Background(), o)
	require.ErrorIs(t, err, tax.ErrNoSupportedStrategy)
}

func TestTaxesProcessorClearsStaleTaxes(t *testing.T) {
	o, item := taxableOrder(t, "US")
	item.Units()[0].AddAdjustment(order.NewAdjustment(order.AdjustmentTax, "stale", 999))

	require.NoError(t, taxesProcessor(nil, standardRate(false)).Process(context.Background(), o))
	require.Empty(t, item.Units()[0].AdjustmentsByType(order.AdjustmentTax))
}

func TestTaxesProcessorSkipsUntaxedCategory(t *testing.T) {
	o, item := taxableOrder(t, "DE")
	item.Variant.TaxCategoryCode = "books"

	require.NoError(t, taxesProcessor(nil, standardRate(false)).Process(context.Background(), o))
	require.Empty(t, item.Units()[0].AdjustmentsByType(order.AdjustmentTax))
}
