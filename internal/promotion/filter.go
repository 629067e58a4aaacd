package promotion

import (
	"github.com/samber/lo"

	"github.com/noah-isme/order-engine/internal/order"
)

// ItemFilter narrows the set of order items a promotion action may touch.
// Filters receive the action's channel entry and the order's channel code;
// a filter without matching configuration passes every item through.
type ItemFilter interface {
	Filter(items []*order.OrderItem, channelCode string, cfg map[string]any) []*order.OrderItem
}

// filterConfig digs the named filter settings out of a channel entry, e.g.
// entry["filters"]["price_range"].
func filterConfig(cfg map[string]any, name string) map[string]any {
	filters, ok := cfg["filters"].(map[string]any)
	if !ok {
		return nil
	}
	section, ok := filters[name].(map[string]any)
	if !ok {
		return nil
	}
	return section
}

func filterCodes(cfg map[string]any, name, key string) []string {
	filters, ok := cfg["filters"].(map[string]any)
	if !ok {
		return nil
	}
	switch v := filters[name].(type) {
	case map[string]any:
		return toStrings(v[key])
	default:
		return toStrings(filters[name])
	}
}

func toStrings(v any) []string {
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// PriceRangeFilter keeps items whose variant channel price falls inside the
// configured min/max bounds.
type PriceRangeFilter struct{}

// Filter implements ItemFilter.
func (PriceRangeFilter) Filter(items []*order.OrderItem, channelCode string, cfg map[string]any) []*order.OrderItem {
	section := filterConfig(cfg, "price_range")
	if section == nil {
		return items
	}
	minPrice, hasMin := toInt64(section["min"])
	maxPrice, hasMax := toInt64(section["max"])
	if !hasMin && !hasMax {
		return items
	}
	return lo.Filter(items, func(item *order.OrderItem, _ int) bool {
		if item.Variant == nil {
			return false
		}
		cp := item.Variant.ChannelPricing(channelCode)
		if cp == nil {
			return false
		}
		if hasMin && cp.Price < minPrice {
			return false
		}
		if hasMax && cp.Price > maxPrice {
			return false
		}
		return true
	})
}

// TaxonFilter keeps items whose product is classified under any of the
// configured taxons.
type TaxonFilter struct{}

// Filter implements ItemFilter.
func (TaxonFilter) Filter(items []*order.OrderItem, _ string, cfg map[string]any) []*order.OrderItem {
	taxons := filterCodes(cfg, "taxons", "taxons")
	if len(taxons) == 0 {
		return items
	}
	return lo.Filter(items, func(item *order.OrderItem, _ int) bool {
		if item.Variant == nil || item.Variant.Product == nil {
			return false
		}
		return lo.SomeBy(taxons, item.Variant.Product.HasTaxon)
	})
}

// ProductFilter keeps items whose product code is in the configured list.
type ProductFilter struct{}

// Filter implements ItemFilter.
func (ProductFilter) Filter(items []*order.OrderItem, _ string, cfg map[string]any) []*order.OrderItem {
	products := filterCodes(cfg, "products", "products")
	if len(products) == 0 {
		return items
	}
	return lo.Filter(items, func(item *order.OrderItem, _ int) bool {
		return item.Variant != nil && item.Variant.Product != nil &&
			lo.Contains(products, item.Variant.Product.Code)
	})
}
