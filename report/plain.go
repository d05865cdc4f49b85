// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const separator = "---------------------------"

// PlainRenderer writes fixed-width columns. The column width is the longest
// token of the case plus two spaces; the last token of a line is not padded.
type PlainRenderer struct{}

// Render implements Renderer.
func (PlainRenderer) Render(w io.Writer, c Case) error {
	var (
		p     = c.Problem
		srcs  = p.SourceLabels()
		dsts  = p.DestinationLabels()
		costs = p.CostRows()
		width = columnWidth(c)
		sb    strings.Builder
	)

	sb.WriteString(c.Title())
	sb.WriteString("\n\nGiven data\n")
	writeLine(&sb, width, append(append([]string{""}, dsts...), "Supply")...)
	supply := p.Supply()
	for i, row := range costs {
		writeLine(&sb, width, append(append([]string{srcs[i]}, itoas(row)...), strconv.Itoa(supply[i]))...)
	}
	writeLine(&sb, width, append([]string{"Demand"}, itoas(p.Demand())...)...)
	sb.WriteString("\n")

	if v := c.Verdict(); v != "" {
		sb.WriteString(v)
		sb.WriteString("\n")
	}
	for _, res := range c.Results {
		fmt.Fprintf(&sb, "%s Solution (cost %d):\n", res.Method, res.Cost)
		writeLine(&sb, width, append([]string{""}, dsts...)...)
		for i, row := range res.Allocation.ToRows() {
			writeLine(&sb, width, append([]string{srcs[i]}, itoas(row)...)...)
		}
		sb.WriteString("\n")
	}
	sb.WriteString(separator)
	sb.WriteString("\n\n")

	_, err := io.WriteString(w, sb.String())

	return err
}

func writeLine(sb *strings.Builder, width int, tokens ...string) {
	for i, t := range tokens {
		if i == len(tokens)-1 {
			sb.WriteString(t)
			break
		}
		fmt.Fprintf(sb, "%-*s", width, t)
	}
	sb.WriteString("\n")
}

func columnWidth(c Case) int {
	longest := len("Supply")
	grow := func(s string) {
		if len(s) > longest {
			longest = len(s)
		}
	}
	p := c.Problem
	for _, s := range p.SourceLabels() {
		grow(s)
	}
	for _, s := range p.DestinationLabels() {
		grow(s)
	}
	for _, s := range itoas(p.Supply()) {
		grow(s)
	}
	for _, s := range itoas(p.Demand()) {
		grow(s)
	}
	for _, row := range p.CostRows() {
		for _, s := range itoas(row) {
			grow(s)
		}
	}
	for _, res := range c.Results {
		res.Allocation.Do(func(_, _, v int) bool {
			grow(strconv.Itoa(v))
			return true
		})
	}

	return longest + 2
}

func itoas(xs []int) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = strconv.Itoa(x)
	}

	return out
}

var _ Renderer = PlainRenderer{}
