// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	verdictStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// TableRenderer draws bordered tables with lipgloss. Colors degrade to plain
// text when the output is not a terminal.
type TableRenderer struct{}

// Render implements Renderer.
func (TableRenderer) Render(w io.Writer, c Case) error {
	var (
		p    = c.Problem
		srcs = p.SourceLabels()
		dsts = p.DestinationLabels()
		sb   strings.Builder
	)

	sb.WriteString(titleStyle.Render(c.Title()))
	sb.WriteString("\n")

	given := newTable(append(append([]string{""}, dsts...), "Supply"))
	supply := p.Supply()
	for i, row := range p.CostRows() {
		given.Row(append(append([]string{srcs[i]}, itoas(row)...), strconv.Itoa(supply[i]))...)
	}
	given.Row(append(append([]string{"Demand"}, itoas(p.Demand())...), strconv.Itoa(p.TotalDemand()))...)
	sb.WriteString(given.String())
	sb.WriteString("\n")

	if v := c.Verdict(); v != "" {
		sb.WriteString(verdictStyle.Render(v))
		sb.WriteString("\n")
	}
	for _, res := range c.Results {
		sb.WriteString(fmt.Sprintf("%s (cost %d, %d basic cells)\n", res.Method, res.Cost, res.Basic))
		alloc := newTable(append([]string{""}, dsts...))
		for i, row := range res.Allocation.ToRows() {
			alloc.Row(append([]string{srcs[i]}, itoas(row)...)...)
		}
		sb.WriteString(alloc.String())
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())

	return err
}

func newTable(headers []string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...)
}

var _ Renderer = TableRenderer{}
