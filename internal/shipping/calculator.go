package shipping

import (
	"fmt"

	"github.com/noah-isme/order-engine/internal/order"
)

// Calculator names for shipping method configuration.
const (
	CalculatorFlatRate    = "flat_rate"
	CalculatorPerUnitRate = "per_unit_rate"
)

// Calculator computes the shipping fee for a shipment from the method's
// channel entry. A method configured without an entry for the order's
// channel yields no fee (second return false).
type Calculator interface {
	Calculate(shipment *order.Shipment, channelEntry map[string]any) (int64, bool)
}

// FlatRateCalculator charges a fixed amount per shipment.
type FlatRateCalculator struct{}

// Calculate implements Calculator.
func (FlatRateCalculator) Calculate(_ *order.Shipment, channelEntry map[string]any) (int64, bool) {
	return configuredAmount(channelEntry)
}

// PerUnitRateCalculator charges a fixed amount per unit in the shipment.
type PerUnitRateCalculator struct{}

// Calculate implements Calculator.
func (PerUnitRateCalculator) Calculate(shipment *order.Shipment, channelEntry map[string]any) (int64, bool) {
	amount, ok := configuredAmount(channelEntry)
	if !ok {
		return 0, false
	}
	return amount * int64(shipment.UnitCount()), true
}

func configuredAmount(entry map[string]any) (int64, bool) {
	if entry == nil {
		return 0, false
	}
	switch n := entry["amount"].(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

// CalculatorRegistry maps calculator names to implementations.
type CalculatorRegistry map[string]Calculator

// DefaultCalculators returns the registry with the built-in calculators.
func DefaultCalculators() CalculatorRegistry {
	return CalculatorRegistry{
		CalculatorFlatRate:    FlatRateCalculator{},
		CalculatorPerUnitRate: PerUnitRateCalculator{},
	}
}

// Get returns the calculator for the name; an unknown name is a
// configuration error.
func (r CalculatorRegistry) Get(name string) (Calculator, error) {
	calc, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("shipping: unknown fee calculator %q", name)
	}
	return calc, nil
}
