// SPDX-License-Identifier: MIT

// Package grid provides a small row-major integer matrix used to hold
// transportation costs and allocations.
//
// Dense stores r×c integers in a flat slice (offset = i*c + j). The public
// surface never panics on user input: At/Set return sentinel errors wrapped
// with the method name and coordinates, and constructors reject empty or
// ragged shapes.
//
// Reductions (RowSums, ColSums, Sum, HadamardSum, CountNonZero, Min) iterate
// in a fixed row-major order, so results are deterministic.
//
// Complexity quicksheet:
//   - NewDense/FromRows: O(r*c); At/Set: O(1); Clone/ToRows: O(r*c).
//   - RowSums/ColSums/Sum/HadamardSum/CountNonZero/Min: O(r*c).
package grid
