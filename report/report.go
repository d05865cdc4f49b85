// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvtransport/transport"
)

// ErrUnknownFormat is returned by ParseFormat and New for unknown formats.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format selects a Renderer.
type Format string

const (
	Plain Format = "plain"
	Table Format = "table"
	JSON  Format = "json"
)

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case Plain, Table, JSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Case is one problem together with its verdict and solutions.
//   - Index: 1-based position in the problem set.
//   - Err:   validation failure; Results is empty when set.
type Case struct {
	Index   int
	Problem *transport.Problem
	Err     error
	Results []transport.Result
}

// Title returns "Problem N" followed by the problem name when present.
func (c Case) Title() string {
	if name := c.Problem.Name(); name != "" {
		return fmt.Sprintf("Problem %d: %s", c.Index, name)
	}

	return fmt.Sprintf("Problem %d", c.Index)
}

// Verdict returns the rejection message for c.Err, or "" when c.Err is nil.
func (c Case) Verdict() string {
	switch {
	case c.Err == nil:
		return ""
	case errors.Is(c.Err, transport.ErrNotBalanced):
		return "The problem is not balanced!"
	case errors.Is(c.Err, transport.ErrNotApplicable):
		return "The method is not applicable!"
	default:
		return "Error: " + c.Err.Error()
	}
}

// Status returns a machine-readable verdict: solved, not_balanced,
// not_applicable or error.
func (c Case) Status() string {
	switch {
	case c.Err == nil:
		return "solved"
	case errors.Is(c.Err, transport.ErrNotBalanced):
		return "not_balanced"
	case errors.Is(c.Err, transport.ErrNotApplicable):
		return "not_applicable"
	default:
		return "error"
	}
}

// Renderer writes one Case.
type Renderer interface {
	Render(w io.Writer, c Case) error
}

// New returns the Renderer for f.
func New(f Format) (Renderer, error) {
	switch f {
	case Plain:
		return PlainRenderer{}, nil
	case Table:
		return TableRenderer{}, nil
	case JSON:
		return JSONRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}
