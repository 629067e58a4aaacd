// Package distributor splits signed integer amounts across order lines
// without losing or inventing a single minor currency unit.
package distributor

import "errors"

// ErrZeroWeights is returned when a nonzero amount is distributed over
// weights summing to zero; no proportional split exists in that case.
var ErrZeroWeights = errors.New("distributor: cannot distribute over zero total weight")

// Proportional splits an integer amount across weights so the parts sum to
// the amount exactly. Each raw share is rounded half toward zero; whatever
// the rounding left over is corrected one unit at a time, cycling through
// the parts in input order, so the correction is deterministic.
type Proportional struct{}

// Distribute returns one share per weight, summing exactly to amount.
func (Proportional) Distribute(weights []int64, amount int64) ([]int64, error) {
	if len(weights) == 0 {
		return nil, nil
	}
	var totalWeight int64
	for _, w := range weights {
		totalWeight += w
	}
	if totalWeight == 0 {
		if amount == 0 {
			return make([]int64, len(weights)), nil
		}
		return nil, ErrZeroWeights
	}

	shares := make([]int64, len(weights))
	var distributed int64
	for i, w := range weights {
		shares[i] = roundHalfTowardZero(w*amount, totalWeight)
		distributed += shares[i]
	}

	missing := amount - distributed
	step := int64(1)
	if missing < 0 {
		step = -1
		missing = -missing
	}
	for i := int64(0); i < missing; i++ {
		shares[i%int64(len(shares))] += step
	}
	return shares, nil
}

// roundHalfTowardZero rounds num/den to the nearest integer, breaking exact
// halves toward zero.
func roundHalfTowardZero(num, den int64) int64 {
	if den < 0 {
		num, den = -num, -den
	}
	q := num / den
	r := num % den
	if r < 0 {
		r = -r
	}
	if 2*r > den {
		if num < 0 {
			return q - 1
		}
		return q + 1
	}
	return q
}
