// SPDX-License-Identifier: MIT

// Package report renders transportation cases: the given data (costs,
// supply, demand), the validation verdict and every solver's allocation.
//
// Formats:
//   - plain: fixed-width text, stable enough for golden files.
//   - table: bordered tables drawn with lipgloss.
//   - json:  one JSON object per case (newline-delimited).
//
// Renderers only read their input; they never solve or validate.
package report
