package processor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/order-engine/internal/order"
	"github.com/noah-isme/order-engine/internal/pricing"
)

func pricedVariant(code string, price, original int64) *order.ProductVariant {
	v := order.NewVariant(code, true)
	v.SetChannelPricing(&order.ChannelPricing{
		ChannelCode:   "WEB",
		Price:         price,
		OriginalPrice: original,
	})
	return v
}

func TestPricesRecalculatorRepricesItems(t *testing.T) {
	o := order.New("WEB", "USD")
	item := order.NewItem(pricedVariant("A", 1200, 1500))
	item.AddUnits(2)
	item.SetUnitPrice(999) // stale
	o.AddItem(item)

	r := &PricesRecalculator{Prices: pricing.ChannelPricingCalculator{}}
	require.NoError(t, r.Process(context.Background(), o))
	require.Equal(t, int64(1200), item.UnitPrice())
	require.Equal(t, int64(1500), item.OriginalUnitPrice())
	require.Equal(t, int64(2400), o.Total())
}

func TestPricesRecalculatorSkipsImmutableItems(t *testing.T) {
	o := order.New("WEB", "USD")
	item := order.NewItem(pricedVariant("A", 1200, 0))
	item.AddUnits(1)
	item.SetUnitPrice(999)
	item.SetImmutable(true)
	o.AddItem(item)

	r := &PricesRecalculator{Prices: pricing.ChannelPricingCalculator{}}
	require.NoError(t, r.Process(context.Background(), o))
	require.Equal(t, int64(999), item.UnitPrice())
}

func TestPricesRecalculatorMissingChannelPricingIsFatal(t *testing.T) {
	o := order.New("MOBILE", "USD")
	item := order.NewItem(pricedVariant("A", 1200, 0)) // priced for WEB only
	item.AddUnits(1)
	o.AddItem(item)

	r := &PricesRecalculator{Prices: pricing.ChannelPricingCalculator{}}
	err := r.Process(context.Background(), o)
	require.ErrorIs(t, err, pricing.ErrMissingChannelConfiguration)
}
