// SPDX-License-Identifier: MIT

package report_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtransport/report"
	"github.com/katalvlaran/lvtransport/transport"
)

func solvedCase(t *testing.T) report.Case {
	t.Helper()
	p := transport.MustProblem(
		[]int{30, 40, 50},
		[]int{20, 30, 40, 30},
		[][]int{{8, 6, 10, 9}, {9, 12, 3, 7}, {4, 14, 5, 8}},
		transport.WithName("textbook-1"),
	)
	results, err := transport.SolveAll(context.Background(), p, transport.DefaultOptions())
	require.NoError(t, err)

	return report.Case{Index: 1, Problem: p, Results: results}
}

func unbalancedCase() report.Case {
	p := transport.MustProblem(
		[]int{10, 15, 6},
		[]int{2, 25, 18, 6},
		[][]int{{1, 2, 2, 3}, {1, 4, 3, 1}, {3, 7, 8, 4}},
		transport.WithName("textbook-4"),
	)

	return report.Case{Index: 4, Problem: p, Err: p.Validate()}
}

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestPlain_Golden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.PlainRenderer{}.Render(&buf, solvedCase(t)))
	newGoldie(t).Assert(t, "solved", buf.Bytes())

	buf.Reset()
	require.NoError(t, report.PlainRenderer{}.Render(&buf, unbalancedCase()))
	newGoldie(t).Assert(t, "not_balanced", buf.Bytes())
}

func TestCase_VerdictAndStatus(t *testing.T) {
	neg := transport.MustProblem([]int{1}, []int{1}, [][]int{{-2}})
	cases := []struct {
		c       report.Case
		verdict string
		status  string
	}{
		{report.Case{Problem: neg}, "", "solved"},
		{unbalancedCase(), "The problem is not balanced!", "not_balanced"},
		{report.Case{Problem: neg, Err: neg.Validate()}, "The method is not applicable!", "not_applicable"},
		{report.Case{Problem: neg, Err: errors.New("boom")}, "Error: boom", "error"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.verdict, tc.c.Verdict())
		require.Equal(t, tc.status, tc.c.Status())
	}
}

func TestCase_Title(t *testing.T) {
	p := transport.MustProblem([]int{1}, []int{1}, [][]int{{1}})
	require.Equal(t, "Problem 3", report.Case{Index: 3, Problem: p}.Title())
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	r, err := report.New(report.JSON)
	require.NoError(t, err)
	require.NoError(t, r.Render(&buf, solvedCase(t)))
	require.NoError(t, r.Render(&buf, unbalancedCase()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var got struct {
		Index     int    `json:"index"`
		Name      string `json:"name"`
		Status    string `json:"status"`
		Error     string `json:"error"`
		Solutions []struct {
			Method     string  `json:"method"`
			Allocation [][]int `json:"allocation"`
			Cost       int     `json:"cost"`
			Steps      int     `json:"steps"`
		} `json:"solutions"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &got))
	require.Equal(t, 1, got.Index)
	require.Equal(t, "solved", got.Status)
	require.Len(t, got.Solutions, 3)
	require.Equal(t, "nwc", got.Solutions[0].Method)
	require.Equal(t, [][]int{{20, 10, 0, 0}, {0, 20, 20, 0}, {0, 0, 20, 30}}, got.Solutions[0].Allocation)
	require.Equal(t, 620, got.Solutions[1].Cost)
	require.Equal(t, 4, got.Solutions[1].Steps)

	got.Solutions = nil
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &got))
	require.Equal(t, "not_balanced", got.Status)
	require.Contains(t, got.Error, "supply 31, demand 51")
	require.Empty(t, got.Solutions)
}

func TestTable_Contents(t *testing.T) {
	var buf bytes.Buffer
	r, err := report.New(report.Table)
	require.NoError(t, err)
	require.NoError(t, r.Render(&buf, solvedCase(t)))

	out := buf.String()
	for _, want := range []string{
		"Problem 1: textbook-1",
		"Supply",
		"Demand",
		"North-West Corner (cost 860, 6 basic cells)",
		"Vogel's Approximation (cost 620, 4 basic cells)",
		"Russell's Approximation (cost 620, 4 basic cells)",
	} {
		require.Contains(t, out, want)
	}

	buf.Reset()
	require.NoError(t, r.Render(&buf, unbalancedCase()))
	require.Contains(t, buf.String(), "The problem is not balanced!")
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]report.Format{"plain": report.Plain, " TABLE": report.Table, "Json": report.JSON} {
		got, err := report.ParseFormat(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := report.ParseFormat("xml")
	require.ErrorIs(t, err, report.ErrUnknownFormat)
	_, err = report.New("xml")
	require.ErrorIs(t, err, report.ErrUnknownFormat)
}
