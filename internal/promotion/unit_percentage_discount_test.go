package promotion

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/order-engine/internal/order"
)

func TestUnitPercentageDiscountPerUnit(t *testing.T) {
	o := order.New("WEB", "USD")
	item := addTestItem(o, "A", 1000, 3, &order.ChannelPricing{ChannelCode: "WEB", Price: 1000})

	p := testPromotion("unit_ten")
	cmd := UnitPercentageDiscount{}

	applied, err := cmd.Execute(o, Configuration{"WEB": {"percentage": 0.1}}, p)
	require.NoError(t, err)
	require.True(t, applied)

	for _, unit := range item.Units() {
		require.Equal(t, int64(900), unit.Total())
	}
	require.Equal(t, int64(2700), o.Total())
}

func TestUnitPercentageDiscountRespectsMinimumPrice(t *testing.T) {
	o := order.New("WEB", "USD")
	item := addTestItem(o, "A", 1000, 1, &order.ChannelPricing{
		ChannelCode:  "WEB",
		Price:        1000,
		MinimumPrice: 950,
	})

	cmd := UnitPercentageDiscount{}
	applied, err := cmd.Execute(o, Configuration{"WEB": {"percentage": 0.2}}, testPromotion("unit_twenty"))
	require.NoError(t, err)
	require.True(t, applied)
	require.Equal(t, int64(950), item.Units()[0].Total())
}

func TestUnitPercentageDiscountSkipsCatalogDiscounted(t *testing.T) {
	o := order.New("WEB", "USD")
	sale := addTestItem(o, "SALE", 800, 1, &order.ChannelPricing{
		ChannelCode:       "WEB",
		Price:             800,
		AppliedPromotions: []string{"winter_sale"},
	})
	plain := addTestItem(o, "A", 1000, 1, &order.ChannelPricing{ChannelCode: "WEB", Price: 1000})

	cmd := UnitPercentageDiscount{}
	p := testPromotion("unit_ten")

	applied, err := cmd.Execute(o, Configuration{"WEB": {"percentage": 0.1}}, p)
	require.NoError(t, err)
	require.True(t, applied)
	require.Equal(t, int64(800), sale.Units()[0].Total())
	require.Equal(t, int64(900), plain.Units()[0].Total())

	// Opting in to discounted items touches both.
	require.NoError(t, cmd.Revert(o, Configuration{}, p))
	p.AppliesToDiscounted = true
	applied, err = cmd.Execute(o, Configuration{"WEB": {"percentage": 0.1}}, p)
	require.NoError(t, err)
	require.True(t, applied)
	require.Equal(t, int64(720), sale.Units()[0].Total())
}

func TestUnitPercentageDiscountFilters(t *testing.T) {
	o := order.New("WEB", "USD")

	cheap := order.NewVariant("CHEAP", true)
	cheap.Product = &order.Product{Code: "mug", TaxonCodes: []string{"kitchen"}}
	cheap.SetChannelPricing(&order.ChannelPricing{ChannelCode: "WEB", Price: 500})
	cheapItem := order.NewItem(cheap)
	cheapItem.AddUnits(1)
	cheapItem.SetUnitPrice(500)
	o.AddItem(cheapItem)

	dear := order.NewVariant("DEAR", true)
	dear.Product = &order.Product{Code: "jacket", TaxonCodes: []string{"apparel"}}
	dear.SetChannelPricing(&order.ChannelPricing{ChannelCode: "WEB", Price: 5000})
	dearItem := order.NewItem(dear)
	dearItem.AddUnits(1)
	dearItem.SetUnitPrice(5000)
	o.AddItem(dearItem)

	cmd := UnitPercentageDiscount{}
	cfg := Configuration{"WEB": {
		"percentage": 0.1,
		"filters": map[string]any{
			"price_range": map[string]any{"min": 1000},
			"taxons":      []any{"apparel"},
		},
	}}

	applied, err := cmd.Execute(o, cfg, testPromotion("apparel_ten"))
	require.NoError(t, err)
	require.True(t, applied)
	require.Equal(t, int64(500), cheapItem.Units()[0].Total())
	require.Equal(t, int64(4500), dearItem.Units()[0].Total())
}

func TestUnitPercentageDiscountNoMatchingItems(t *testing.T) {
	o := order.New("WEB", "USD")
	addTestItem(o, "A", 500, 1, &order.ChannelPricing{ChannelCode: "WEB", Price: 500})

	cmd := UnitPercentageDiscount{}
	cfg := Configuration{"WEB": {
		"percentage": 0.1,
		"filters":    map[string]any{"products": []any{"other"}},
	}}

	applied, err := cmd.Execute(o, cfg, testPromotion("p"))
	require.NoError(t, err)
	require.False(t, applied)
}

func TestUnitPercentageDiscountRevert(t *testing.T) {
	o := order.New("WEB", "USD")
	item := addTestItem(o, "A", 1000, 2, &order.ChannelPricing{ChannelCode: "WEB", Price: 1000})

	p := testPromotion("unit_ten")
	cmd := UnitPercentageDiscount{}
	_, err := cmd.Execute(o, Configuration{"WEB": {"percentage": 0.1}}, p)
	require.NoError(t, err)
	require.Equal(t, int64(1800), o.Total())

	require.NoError(t, cmd.Revert(o, Configuration{}, p))
	require.Equal(t, int64(2000), o.Total())
	for _, unit := range item.Units() {
		require.Empty(t, unit.AdjustmentsByType(order.AdjustmentOrderUnitPromotion))
	}
}
