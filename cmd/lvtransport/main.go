// SPDX-License-Identifier: MIT

// Command lvtransport computes initial basic feasible solutions of balanced
// transportation problems with the North-West Corner, Vogel and Russell
// heuristics.
//
//	lvtransport solve                         # built-in textbook cases
//	lvtransport solve -f depots.yaml -m vogel --format table
//	lvtransport validate -f depots.yaml
//	lvtransport catalog dump > textbook.yaml
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
