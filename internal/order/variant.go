package order

// Product is the catalog product a variant belongs to. Taxon codes drive
// promotion item filtering.
type Product struct {
	Code       string
	Name       string
	TaxonCodes []string
}

// HasTaxon reports whether the product is classified under the taxon.
func (p *Product) HasTaxon(code string) bool {
	for _, candidate := range p.TaxonCodes {
		if candidate == code {
			return true
		}
	}
	return false
}

// ProductVariant is the immutable catalog configuration an order item points
// at: per-channel pricing, shipping requirement and tax category.
type ProductVariant struct {
	Code             string
	Name             string
	Product          *Product
	ShippingRequired bool
	TaxCategoryCode  string

	channelPricings map[string]*ChannelPricing
}

// ChannelPricing prices a variant in one channel. OriginalPrice zero means
// the variant was never discounted in the catalog. MinimumPrice is the floor
// promotions must not undercut.
type ChannelPricing struct {
	ChannelCode   string
	Price         int64
	OriginalPrice int64
	MinimumPrice  int64

	// AppliedPromotions lists catalog promotion codes already discounting
	// this price. Order promotions that exclude discounted items skip
	// variants carrying any.
	AppliedPromotions []string
}

// NewVariant returns a variant without channel pricing.
func NewVariant(code string, shippingRequired bool) *ProductVariant {
	return &ProductVariant{
		Code:             code,
		ShippingRequired: shippingRequired,
		channelPricings:  map[string]*ChannelPricing{},
	}
}

// SetChannelPricing registers or replaces the pricing for a channel.
func (v *ProductVariant) SetChannelPricing(cp *ChannelPricing) {
	if cp == nil {
		return
	}
	if v.channelPricings == nil {
		v.channelPricings = map[string]*ChannelPricing{}
	}
	v.channelPricings[cp.ChannelCode] = cp
}

// ChannelPricing returns the pricing for the channel, or nil when the
// variant is not sold there.
func (v *ProductVariant) ChannelPricing(channelCode string) *ChannelPricing {
	if v.channelPricings == nil {
		return nil
	}
	return v.channelPricings[channelCode]
}

// HasCatalogPromotion reports whether the variant's price in the channel is
// already discounted by a catalog promotion.
func (v *ProductVariant) HasCatalogPromotion(channelCode string) bool {
	cp := v.ChannelPricing(channelCode)
	return cp != nil && len(cp.AppliedPromotions) > 0
}

// MinimumPrice returns the channel price floor, zero when the variant has no
// pricing in the channel.
func (v *ProductVariant) MinimumPrice(channelCode string) int64 {
	cp := v.ChannelPricing(channelCode)
	if cp == nil {
		return 0
	}
	return cp.MinimumPrice
}
