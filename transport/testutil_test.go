// SPDX-License-Identifier: MIT

package transport_test

import (
	"math/rand"

	"github.com/katalvlaran/lvtransport/transport"
)

// textbook holds the three balanced, non-negative cases with their expected
// allocations. Vogel and Russell agree on all three.
var textbook = []struct {
	name      string
	supply    []int
	demand    []int
	cost      [][]int
	nwc       [][]int
	nwcCost   int
	approx    [][]int
	approxCst int
}{
	{
		name:      "textbook-1",
		supply:    []int{30, 40, 50},
		demand:    []int{20, 30, 40, 30},
		cost:      [][]int{{8, 6, 10, 9}, {9, 12, 3, 7}, {4, 14, 5, 8}},
		nwc:       [][]int{{20, 10, 0, 0}, {0, 20, 20, 0}, {0, 0, 20, 30}},
		nwcCost:   860,
		approx:    [][]int{{0, 30, 0, 0}, {0, 0, 40, 0}, {20, 0, 0, 30}},
		approxCst: 620,
	},
	{
		name:      "textbook-2",
		supply:    []int{20, 30, 25},
		demand:    []int{15, 25, 20, 15},
		cost:      [][]int{{4, 3, 2, 1}, {2, 4, 3, 5}, {3, 1, 4, 2}},
		nwc:       [][]int{{15, 5, 0, 0}, {0, 20, 10, 0}, {0, 0, 10, 15}},
		nwcCost:   255,
		approx:    [][]int{{0, 0, 5, 15}, {15, 0, 15, 0}, {0, 25, 0, 0}},
		approxCst: 125,
	},
	{
		name:      "textbook-3",
		supply:    []int{20, 30, 25},
		demand:    []int{10, 25, 15, 25},
		cost:      [][]int{{8, 6, 10, 9}, {9, 12, 13, 7}, {14, 9, 16, 5}},
		nwc:       [][]int{{10, 10, 0, 0}, {0, 15, 15, 0}, {0, 0, 0, 25}},
		nwcCost:   640,
		approx:    [][]int{{0, 20, 0, 0}, {10, 5, 15, 0}, {0, 0, 0, 25}},
		approxCst: 590,
	},
}

// randomBalanced builds a balanced, non-negative problem with rows×cols cells.
// Demand is a random partition of the total supply; zeros are allowed.
func randomBalanced(r *rand.Rand, rows, cols, maxQty, maxCost int) *transport.Problem {
	supply := make([]int, rows)
	total := 0
	for i := range supply {
		supply[i] = r.Intn(maxQty + 1)
		total += supply[i]
	}
	demand := make([]int, cols)
	left := total
	for j := 0; j < cols-1; j++ {
		demand[j] = r.Intn(left + 1)
		left -= demand[j]
	}
	demand[cols-1] = left

	cost := make([][]int, rows)
	for i := range cost {
		cost[i] = make([]int, cols)
		for j := range cost[i] {
			cost[i][j] = r.Intn(maxCost + 1)
		}
	}

	return transport.MustProblem(supply, demand, cost)
}
