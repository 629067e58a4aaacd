package processor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/order-engine/internal/order"
)

func TestAdjustmentsClearerRemovesDerivedTypes(t *testing.T) {
	o := order.New("WEB", "USD")
	item := order.NewItem(order.NewVariant("A", true))
	item.AddUnits(1)
	item.SetUnitPrice(1000)
	o.AddItem(item)
	shipment := order.NewShipment()
	o.AddShipment(shipment)

	o.AddAdjustment(order.NewAdjustment(order.AdjustmentOrderPromotion, "p", -10))
	item.AddAdjustment(order.NewAdjustment(order.AdjustmentOrderItemPromotion, "p", -20))
	item.Units()[0].AddAdjustment(order.NewAdjustment(order.AdjustmentOrderUnitPromotion, "p", -30))
	item.Units()[0].AddAdjustment(order.NewAdjustment(order.AdjustmentTax, "vat", 40))
	shipment.AddAdjustment(order.NewAdjustment(order.AdjustmentShipping, "ups", 400))
	shipment.AddAdjustment(order.NewAdjustment(order.AdjustmentOrderShippingPromotion, "p", -200))

	require.NoError(t, NewAdjustmentsClearer().Process(context.Background(), o))
	require.Empty(t, o.AdjustmentsRecursively(order.AdjustmentOrderPromotion))
	require.Empty(t, o.AdjustmentsRecursively(order.AdjustmentOrderItemPromotion))
	require.Empty(t, o.AdjustmentsRecursively(order.AdjustmentOrderUnitPromotion))
	require.Empty(t, o.AdjustmentsRecursively(order.AdjustmentOrderShippingPromotion))
	require.Empty(t, o.AdjustmentsRecursively(order.AdjustmentShipping))
	require.Empty(t, o.AdjustmentsRecursively(order.AdjustmentTax))
	require.Equal(t, int64(1000), o.Total())
}

func TestAdjustmentsClearerConfiguredTypesOnly(t *testing.T) {
	o := order.New("WEB", "USD")
	o.AddAdjustment(order.NewAdjustment(order.AdjustmentTax, "vat", 40))
	o.AddAdjustment(order.NewAdjustment(order.AdjustmentShipping, "ups", 400))

	clearer := NewAdjustmentsClearer(order.AdjustmentTax)
	require.NoError(t, clearer.Process(context.Background(), o))
	require.Empty(t, o.AdjustmentsByType(order.AdjustmentTax))
	require.Len(t, o.AdjustmentsByType(order.AdjustmentShipping), 1)
}

func TestAdjustmentsClearerSkipsPlacedOrders(t *testing.T) {
	o := order.New("WEB", "USD")
	o.State = order.StateNew
	o.AddAdjustment(order.NewAdjustment(order.AdjustmentTax, "vat", 40))

	require.NoError(t, NewAdjustmentsClearer().Process(context.Background(), o))
	require.Len(t, o.AdjustmentsByType(order.AdjustmentTax), 1)
}
