// SPDX-License-Identifier: MIT

package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtransport/transport"
)

// ErrNoProblems is returned when a problem set holds no entries.
var ErrNoProblems = errors.New("catalog: no problems")

// ErrUnnamed is returned when an entry has no name.
var ErrUnnamed = errors.New("catalog: problem without a name")

// ErrDuplicateName is returned when two entries share a name.
var ErrDuplicateName = errors.New("catalog: duplicate problem name")

//go:embed textbook.yaml
var textbookYAML []byte

// Entry is one problem as written in a problem set.
type Entry struct {
	Name         string   `yaml:"name"`
	Supply       []int    `yaml:"supply,flow"`
	Demand       []int    `yaml:"demand,flow"`
	Cost         [][]int  `yaml:"cost"`
	Sources      []string `yaml:"sources,omitempty,flow"`
	Destinations []string `yaml:"destinations,omitempty,flow"`
}

// Set is the top-level YAML document.
type Set struct {
	Problems []Entry `yaml:"problems"`
}

// Problem builds the transport.Problem described by e.
// An empty label is an error, never a panic.
func (e Entry) Problem() (*transport.Problem, error) {
	if err := checkLabels(e.Sources, e.Destinations); err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", e.Name, err)
	}

	opts := []transport.ProblemOption{transport.WithName(e.Name)}
	if len(e.Sources) > 0 {
		opts = append(opts, transport.WithSourceLabels(e.Sources...))
	}
	if len(e.Destinations) > 0 {
		opts = append(opts, transport.WithDestinationLabels(e.Destinations...))
	}
	p, err := transport.NewProblem(e.Supply, e.Demand, e.Cost, opts...)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", e.Name, err)
	}

	return p, nil
}

func checkLabels(sources, destinations []string) error {
	for i, l := range sources {
		if l == "" {
			return fmt.Errorf("%w: empty source label %d", transport.ErrDimensionMismatch, i)
		}
	}
	for j, l := range destinations {
		if l == "" {
			return fmt.Errorf("%w: empty destination label %d", transport.ErrDimensionMismatch, j)
		}
	}

	return nil
}

// Decode reads a problem set from r. Unknown fields, missing or duplicate
// names and empty sets are errors.
func Decode(r io.Reader) ([]Entry, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var set Set
	if err := dec.Decode(&set); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoProblems
		}
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	if len(set.Problems) == 0 {
		return nil, ErrNoProblems
	}

	seen := make(map[string]struct{}, len(set.Problems))
	for i, e := range set.Problems {
		if e.Name == "" {
			return nil, fmt.Errorf("%w: entry %d", ErrUnnamed, i)
		}
		if _, dup := seen[e.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, e.Name)
		}
		seen[e.Name] = struct{}{}
	}

	return set.Problems, nil
}

// Load reads a problem set from a file.
func Load(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Encode writes entries as a YAML problem set.
func Encode(w io.Writer, entries []Entry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Set{Problems: entries}); err != nil {
		return fmt.Errorf("catalog: encode: %w", err)
	}

	return enc.Close()
}

// Textbook returns the built-in cases: three solvable, one unbalanced and
// one with a negative cost.
func Textbook() []Entry {
	entries, err := Decode(bytes.NewReader(textbookYAML))
	if err != nil {
		panic(err) // embedded data is fixed at build time
	}

	return entries
}

// Problems converts entries in order, stopping at the first error.
func Problems(entries []Entry) ([]*transport.Problem, error) {
	out := make([]*transport.Problem, 0, len(entries))
	for _, e := range entries {
		p, err := e.Problem()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}
