package distributor

import (
	"github.com/noah-isme/order-engine/internal/order"
)

// MinimumPrice distributes a discount across order items while never driving
// a line below its channel price floor (minimum unit price times quantity).
// Whatever cannot be placed on a capped line is re-split across lines with
// remaining headroom; when no headroom is left anywhere the distributed
// total is simply smaller in magnitude than requested.
type MinimumPrice struct {
	proportional Proportional
}

// Distribute returns one share per item, aligned with the input slice.
// Items the promotion may not touch (variant already discounted by a catalog
// promotion in the channel, unless includeDiscounted) receive zero.
func (d MinimumPrice) Distribute(items []*order.OrderItem, amount int64, channelCode string, includeDiscounted bool) ([]int64, error) {
	shares := make([]int64, len(items))
	if len(items) == 0 || amount == 0 {
		return shares, nil
	}

	type line struct {
		index   int
		current int64
		floor   int64
	}
	var lines []line
	for i, item := range items {
		if !includeDiscounted && item.Variant != nil && item.Variant.HasCatalogPromotion(channelCode) {
			continue
		}
		var floor int64
		if item.Variant != nil {
			floor = item.Variant.MinimumPrice(channelCode) * int64(item.Quantity())
		}
		lines = append(lines, line{index: i, current: item.Total(), floor: floor})
	}
	if len(lines) == 0 {
		return shares, nil
	}

	// A charge has no floor to respect; split it proportionally and return.
	if amount > 0 {
		weights := make([]int64, len(lines))
		for i, l := range lines {
			weights[i] = l.current
		}
		split, err := d.proportional.Distribute(weights, amount)
		if err != nil {
			return nil, err
		}
		for i, l := range lines {
			shares[l.index] = split[i]
		}
		return shares, nil
	}

	remaining := amount
	for remaining < 0 {
		var candidates []int
		var weights []int64
		for i := range lines {
			if lines[i].current > lines[i].floor {
				candidates = append(candidates, i)
				weights = append(weights, lines[i].current)
			}
		}
		if len(candidates) == 0 {
			break
		}
		split, err := d.proportional.Distribute(weights, remaining)
		if err != nil {
			return nil, err
		}
		remaining = 0
		for pos, i := range candidates {
			share := split[pos]
			headroom := lines[i].floor - lines[i].current // ≤ 0
			if share < headroom {
				remaining += share - headroom
				share = headroom
			}
			lines[i].current += share
			shares[lines[i].index] += share
		}
	}
	return shares, nil
}
