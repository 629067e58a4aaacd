package promotion

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/order-engine/internal/distributor"
	"github.com/noah-isme/order-engine/internal/order"
)

func defaultApplicator() *Applicator {
	minimum := &distributor.MinimumPrice{}
	return NewApplicator(map[string]Command{
		ActionFixedDiscount:      FixedDiscount{MinimumPrice: minimum},
		ActionPercentageDiscount: PercentageDiscount{MinimumPrice: minimum},
		ActionUnitPercentage:     UnitPercentageDiscount{},
		ActionShippingPercentage: ShippingPercentageDiscount{},
	})
}

func TestApplicatorUnknownActionTypeIsFatal(t *testing.T) {
	a := NewApplicator(map[string]Command{})
	o := order.New("WEB", "USD")
	p := Promotion{Code: "p", Actions: []PromotionAction{{Type: "mystery_action"}}}

	_, err := a.Apply(o, p)
	require.ErrorContains(t, err, "mystery_action")
	require.ErrorContains(t, a.Revert(o, p), "mystery_action")
}

func TestApplicatorReportsWhetherAnythingApplied(t *testing.T) {
	a := defaultApplicator()
	o := order.New("WEB", "USD")
	addTestItem(o, "A", 1000, 1, nil)

	p := Promotion{
		Code:                "combo",
		Name:                "combo",
		AppliesToDiscounted: true,
		Actions: []PromotionAction{
			{Type: ActionShippingPercentage, Configuration: Configuration{"WEB": {"percentage": 0.5}}},
			{Type: ActionFixedDiscount, Configuration: Configuration{"WEB": {"amount": 100}}},
		},
	}

	// The shipping action no-ops (no shipments) but the fixed discount lands.
	applied, err := a.Apply(o, p)
	require.NoError(t, err)
	require.True(t, applied)
	require.Equal(t, int64(900), o.Total())
}

func TestOrderProcessorIsIdempotent(t *testing.T) {
	o := order.New("WEB", "USD")
	addTestItem(o, "A", 6000, 1, nil)
	addTestItem(o, "B", 4000, 1, nil)

	p := &OrderProcessor{
		Promotions: StaticProvider{{
			Code:                "ten_off",
			Name:                "ten off",
			AppliesToDiscounted: true,
			Actions: []PromotionAction{{
				Type:          ActionPercentageDiscount,
				Configuration: Configuration{"WEB": {"percentage": 0.1}},
			}},
		}},
		Applicator: defaultApplicator(),
	}

	require.NoError(t, p.Process(context.Background(), o))
	require.Equal(t, int64(9000), o.Total())

	// Running again reverts before reapplying, so nothing stacks.
	require.NoError(t, p.Process(context.Background(), o))
	require.Equal(t, int64(9000), o.Total())
}

func TestOrderProcessorSkipsIneligible(t *testing.T) {
	o := order.New("WEB", "USD")
	addTestItem(o, "A", 1000, 1, nil)

	p := &OrderProcessor{
		Promotions: StaticProvider{{
			Code:                "rejected",
			Name:                "rejected",
			AppliesToDiscounted: true,
			Actions: []PromotionAction{{
				Type:          ActionFixedDiscount,
				Configuration: Configuration{"WEB": {"amount": 500}},
			}},
		}},
		Checker:    rejectAll{},
		Applicator: defaultApplicator(),
	}

	require.NoError(t, p.Process(context.Background(), o))
	require.Equal(t, int64(1000), o.Total())
}

type rejectAll struct{}

func (rejectAll) IsEligible(*order.Order, Promotion) bool { return false }

func TestOrderProcessorRevertsStalePromotions(t *testing.T) {
	o := order.New("WEB", "USD")
	item := addTestItem(o, "A", 1000, 1, nil)

	stale := order.NewAdjustment(order.AdjustmentOrderItemPromotion, "expired", -300)
	stale.OriginCode = "expired"
	item.AddAdjustment(stale)

	p := &OrderProcessor{
		Promotions: StaticProvider{{
			Code: "expired",
			Name: "expired",
			Actions: []PromotionAction{{
				Type:          ActionFixedDiscount,
				Configuration: Configuration{"WEB": {"amount": 300}},
			}},
		}},
		Checker:    rejectAll{},
		Applicator: defaultApplicator(),
	}

	require.NoError(t, p.Process(context.Background(), o))
	require.Equal(t, int64(1000), o.Total())
	require.Empty(t, item.AdjustmentsByType(order.AdjustmentOrderItemPromotion))
}
