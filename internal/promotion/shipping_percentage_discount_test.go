package promotion

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/order-engine/internal/order"
)

func shippedOrder(t *testing.T, charge int64) (*order.Order, *order.Shipment) {
	t.Helper()
	o := order.New("WEB", "USD")
	addTestItem(o, "A", 1000, 1, nil)
	shipment := order.NewShipment()
	o.AddShipment(shipment)
	shipment.AddAdjustment(order.NewAdjustment(order.AdjustmentShipping, "UPS", charge))
	return o, shipment
}

func TestShippingPercentageDiscount(t *testing.T) {
	o, shipment := shippedOrder(t, 400)

	p := testPromotion("half_shipping")
	cmd := ShippingPercentageDiscount{}

	applied, err := cmd.Execute(o, Configuration{"WEB": {"percentage": 0.5}}, p)
	require.NoError(t, err)
	require.True(t, applied)
	require.Equal(t, int64(-200), shipment.AdjustmentsTotalByType(order.AdjustmentOrderShippingPromotion))
	require.Equal(t, int64(1200), o.Total())
}

func TestShippingPercentageDiscountBaseSubtractsPriorPromotions(t *testing.T) {
	o, shipment := shippedOrder(t, 400)

	prior := order.NewAdjustment(order.AdjustmentOrderShippingPromotion, "other promo", -100)
	prior.OriginCode = "other"
	shipment.AddAdjustment(prior)

	p := testPromotion("half_shipping")
	cmd := ShippingPercentageDiscount{}
	applied, err := cmd.Execute(o, Configuration{"WEB": {"percentage": 0.5}}, p)
	require.NoError(t, err)
	require.True(t, applied)

	// Base is 400 - (-100) = 500, so this promotion contributes -250.
	own := lo.Filter(shipment.AdjustmentsByType(order.AdjustmentOrderShippingPromotion), func(a *order.Adjustment, _ int) bool {
		return a.OriginCode == p.Code
	})
	require.Len(t, own, 1)
	require.Equal(t, int64(-250), own[0].Amount())
	require.Equal(t, int64(-350), shipment.AdjustmentsTotalByType(order.AdjustmentOrderShippingPromotion))
}

func TestShippingPercentageDiscountSoftNoOps(t *testing.T) {
	cmd := ShippingPercentageDiscount{}
	p := testPromotion("half_shipping")

	// No shipments.
	o := order.New("WEB", "USD")
	addTestItem(o, "A", 1000, 1, nil)
	applied, err := cmd.Execute(o, Configuration{"WEB": {"percentage": 0.5}}, p)
	require.NoError(t, err)
	require.False(t, applied)

	// Zero charge means zero discount.
	o, _ = shippedOrder(t, 0)
	applied, err = cmd.Execute(o, Configuration{"WEB": {"percentage": 0.5}}, p)
	require.NoError(t, err)
	require.False(t, applied)

	// No channel configuration.
	o, _ = shippedOrder(t, 400)
	applied, err = cmd.Execute(o, Configuration{"MOBILE": {"percentage": 0.5}}, p)
	require.NoError(t, err)
	require.False(t, applied)
}

func TestShippingPercentageDiscountRevert(t *testing.T) {
	o, shipment := shippedOrder(t, 400)

	p := testPromotion("half_shipping")
	cmd := ShippingPercentageDiscount{}
	_, err := cmd.Execute(o, Configuration{"WEB": {"percentage": 0.5}}, p)
	require.NoError(t, err)
	require.Equal(t, int64(1200), o.Total())

	require.NoError(t, cmd.Revert(o, Configuration{}, p))
	require.Equal(t, int64(1400), o.Total())
	require.Empty(t, shipment.AdjustmentsByType(order.AdjustmentOrderShippingPromotion))
}

func TestShippingPercentageDiscountRejectsWrongSubject(t *testing.T) {
	cmd := ShippingPercentageDiscount{}
	_, err := cmd.Execute(wrongSubject{}, Configuration{}, testPromotion("p"))
	require.ErrorIs(t, err, ErrUnexpectedSubject)
}
