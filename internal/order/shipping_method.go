package order

// ShippingMethod is immutable configuration describing one way of shipping
// an order: a fee calculator name plus its per-channel configuration. The
// fee calculation itself lives in the shipping package.
type ShippingMethod struct {
	Code            string
	Name            string
	Enabled         bool
	ChannelCodes    []string
	TaxCategoryCode string

	// Calculator names the fee calculator; Configuration holds its
	// per-channel settings, e.g. {"WEB": {"amount": 500}}.
	Calculator    string
	Configuration map[string]map[string]any
}

// SupportsChannel reports whether the method is available in the channel.
func (m *ShippingMethod) SupportsChannel(channelCode string) bool {
	for _, code := range m.ChannelCodes {
		if code == channelCode {
			return true
		}
	}
	return false
}
