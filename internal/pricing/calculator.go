// Package pricing resolves product variant prices per channel.
package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/noah-isme/order-engine/internal/order"
)

// ErrMissingChannelConfiguration is returned when a variant has no pricing
// for the requested channel. An item priced in a channel its variant is not
// sold in is a configuration mistake, not an order condition.
var ErrMissingChannelConfiguration = errors.New("pricing: variant has no channel pricing")

// Calculator resolves current and pre-discount prices for a variant in a
// channel context.
type Calculator interface {
	Calculate(ctx context.Context, variant *order.ProductVariant, channelCode string) (int64, error)
	CalculateOriginal(ctx context.Context, variant *order.ProductVariant, channelCode string) (int64, error)
}

// ChannelPricingCalculator reads prices straight off the variant's channel
// pricing.
type ChannelPricingCalculator struct{}

// Calculate returns the variant's current price in the channel.
func (ChannelPricingCalculator) Calculate(_ context.Context, variant *order.ProductVariant, channelCode string) (int64, error) {
	cp, err := channelPricing(variant, channelCode)
	if err != nil {
		return 0, err
	}
	return cp.Price, nil
}

// CalculateOriginal returns the pre-discount price, falling back to the
// current price when the variant was never discounted.
func (ChannelPricingCalculator) CalculateOriginal(_ context.Context, variant *order.ProductVariant, channelCode string) (int64, error) {
	cp, err := channelPricing(variant, channelCode)
	if err != nil {
		return 0, err
	}
	if cp.OriginalPrice > 0 {
		return cp.OriginalPrice, nil
	}
	return cp.Price, nil
}

func channelPricing(variant *order.ProductVariant, channelCode string) (*order.ChannelPricing, error) {
	if variant == nil {
		return nil, fmt.Errorf("%w: no variant", ErrMissingChannelConfiguration)
	}
	cp := variant.ChannelPricing(channelCode)
	if cp == nil {
		return nil, fmt.Errorf("%w: variant %s, channel %s", ErrMissingChannelConfiguration, variant.Code, channelCode)
	}
	return cp, nil
}
