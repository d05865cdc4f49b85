// SPDX-License-Identifier: MIT

package report

import (
	"encoding/json"
	"io"
)

// JSONRenderer writes one JSON object per case followed by a newline.
type JSONRenderer struct{}

type jsonCase struct {
	Index        int            `json:"index"`
	Name         string         `json:"name,omitempty"`
	Sources      []string       `json:"sources"`
	Destinations []string       `json:"destinations"`
	Supply       []int          `json:"supply"`
	Demand       []int          `json:"demand"`
	Cost         [][]int        `json:"cost"`
	Status       string         `json:"status"`
	Error        string         `json:"error,omitempty"`
	Solutions    []jsonSolution `json:"solutions,omitempty"`
}

type jsonSolution struct {
	Method     string  `json:"method"`
	Allocation [][]int `json:"allocation"`
	Cost       int     `json:"cost"`
	Steps      int     `json:"steps"`
	Basic      int     `json:"basic"`
}

// Render implements Renderer.
func (JSONRenderer) Render(w io.Writer, c Case) error {
	p := c.Problem
	out := jsonCase{
		Index:        c.Index,
		Name:         p.Name(),
		Sources:      p.SourceLabels(),
		Destinations: p.DestinationLabels(),
		Supply:       p.Supply(),
		Demand:       p.Demand(),
		Cost:         p.CostRows(),
		Status:       c.Status(),
	}
	if c.Err != nil {
		out.Error = c.Err.Error()
	}
	for _, r := range c.Results {
		out.Solutions = append(out.Solutions, jsonSolution{
			Method:     r.Method.Key(),
			Allocation: r.Allocation.ToRows(),
			Cost:       r.Cost,
			Steps:      r.Steps,
			Basic:      r.Basic,
		})
	}

	return json.NewEncoder(w).Encode(out)
}

var _ Renderer = JSONRenderer{}
