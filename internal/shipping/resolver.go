// Package shipping resolves shipping methods for shipments and calculates
// their fees.
package shipping

import (
	"context"
	"errors"

	"github.com/samber/lo"

	"github.com/noah-isme/order-engine/internal/order"
)

// ErrMethodNotResolvable signals that no default shipping method could be
// found for a shipment. The pipeline treats it as a soft condition: the
// shipment stays attached with its method unset.
var ErrMethodNotResolvable = errors.New("shipping: no default method resolvable")

// DefaultMethodResolver picks the default shipping method for a shipment.
type DefaultMethodResolver interface {
	Resolve(ctx context.Context, shipment *order.Shipment) (*order.ShippingMethod, error)
}

// MethodsResolver lists every shipping method supporting a shipment.
type MethodsResolver interface {
	Supported(ctx context.Context, shipment *order.Shipment) ([]*order.ShippingMethod, error)
}

// StaticMethodRepository backs the default resolvers with a fixed method
// list, in priority order.
type StaticMethodRepository struct {
	Methods []*order.ShippingMethod
}

// Supported implements MethodsResolver: enabled methods available in the
// shipment order's channel.
func (r *StaticMethodRepository) Supported(_ context.Context, shipment *order.Shipment) ([]*order.ShippingMethod, error) {
	channelCode := ""
	if shipment != nil && shipment.Order() != nil {
		channelCode = shipment.Order().ChannelCode
	}
	return lo.Filter(r.Methods, func(m *order.ShippingMethod, _ int) bool {
		return m.Enabled && m.SupportsChannel(channelCode)
	}), nil
}

// Resolve implements DefaultMethodResolver: the first supported method wins.
func (r *StaticMethodRepository) Resolve(ctx context.Context, shipment *order.Shipment) (*order.ShippingMethod, error) {
	supported, err := r.Supported(ctx, shipment)
	if err != nil {
		return nil, err
	}
	if len(supported) == 0 {
		return nil, ErrMethodNotResolvable
	}
	return supported[0], nil
}
