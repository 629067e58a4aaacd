package tax

import (
	"context"

	"github.com/noah-isme/order-engine/internal/order"
)

// StaticZoneMatcher maps address country codes to zones.
type StaticZoneMatcher struct {
	ByCountry map[string]*Zone
}

// Match implements ZoneMatcher.
func (m *StaticZoneMatcher) Match(_ context.Context, address *order.Address, scope string) (*Zone, error) {
	if address == nil {
		return nil, nil
	}
	zone, ok := m.ByCountry[address.CountryCode]
	if !ok {
		return nil, nil
	}
	if scope != "" && zone.Scope != "" && zone.Scope != scope {
		return nil, nil
	}
	return zone, nil
}

// StaticDefaultZoneProvider always answers with one configured zone, which
// may be nil when the installation has no default.
type StaticDefaultZoneProvider struct {
	Default *Zone
}

// Zone implements DefaultZoneProvider.
func (p *StaticDefaultZoneProvider) Zone(context.Context, *order.Order) (*Zone, error) {
	return p.Default, nil
}

// StaticRateResolver resolves rates by tax category code, ignoring the zone.
type StaticRateResolver map[string]Rate

// Rate implements RateResolver.
func (r StaticRateResolver) Rate(categoryCode string, _ *Zone) (Rate, bool) {
	rate, ok := r[categoryCode]
	return rate, ok
}
