// SPDX-License-Identifier: MIT

// Package catalog loads sets of transportation problems.
//
// A problem set is a YAML document:
//
//	problems:
//	  - name: textbook-1
//	    supply: [30, 40, 50]
//	    demand: [20, 30, 40, 30]
//	    cost: [[8, 6, 10, 9], [9, 12, 3, 7], [4, 14, 5, 8]]
//	    sources: [S1, S2, S3]          # optional
//	    destinations: [D1, D2, D3, D4] # optional
//
// Unknown keys are rejected. Entries are plain data; Entry.Problem turns one
// into a *transport.Problem, which is where shape errors surface. Balance and
// cost sign are left to transport.Problem.Validate so that a set may hold
// cases that are meant to be rejected.
//
// Textbook returns the five built-in cases embedded in the binary.
package catalog
