// Package tax applies zone-based taxes to orders through a prioritized list
// of calculation strategies.
package tax

import (
	"context"

	"github.com/noah-isme/order-engine/internal/order"
)

// ScopeTax is the zone scope used when matching taxation addresses.
const ScopeTax = "tax"

// Zone is a geographic or administrative grouping selecting applicable tax
// rules.
type Zone struct {
	Code  string
	Name  string
	Scope string
}

// ZoneMatcher matches an address to a zone; a nil zone with nil error means
// no zone covers the address.
type ZoneMatcher interface {
	Match(ctx context.Context, address *order.Address, scope string) (*Zone, error)
}

// DefaultZoneProvider supplies a fallback zone when address matching yields
// nothing; nil means the order legitimately has no tax zone.
type DefaultZoneProvider interface {
	Zone(ctx context.Context, o *order.Order) (*Zone, error)
}

// AddressResolver picks the address an order is taxed against.
type AddressResolver interface {
	TaxationAddress(o *order.Order) *order.Address
}

// BillingAddressResolver taxes against the billing address, falling back to
// the shipping address when billing is absent.
type BillingAddressResolver struct{}

// TaxationAddress implements AddressResolver.
func (BillingAddressResolver) TaxationAddress(o *order.Order) *order.Address {
	if o.BillingAddress != nil {
		return o.BillingAddress
	}
	return o.ShippingAddress
}
