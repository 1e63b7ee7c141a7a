// SPDX-License-Identifier: MIT

package matrix

// Criterion polarity values used in the types vector.
const (
	// Profit marks a benefit criterion: larger is better.
	Profit = 1
	// Cost marks a cost criterion: smaller is better.
	Cost = -1
)

// SplitTypes returns the indices of profit and cost criteria in column order.
// Entries other than Profit and Cost are ignored.
func SplitTypes(types []int) (profit, cost []int) {
	for j, t := range types {
		switch t {
		case Profit:
			profit = append(profit, j)
		case Cost:
			cost = append(cost, j)
		}
	}

	return profit, cost
}
