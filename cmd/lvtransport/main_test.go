// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtransport/catalog"
	"github.com/katalvlaran/lvtransport/transport"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func writeSet(t *testing.T, entries []catalog.Entry) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, catalog.Encode(&buf, entries))
	path := filepath.Join(t.TempDir(), "set.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	return path
}

func TestSolve_Textbook(t *testing.T) {
	out, err := execute(t, "solve")
	require.NoError(t, err)
	require.Contains(t, out, "Problem 1: textbook-1")
	require.Contains(t, out, "North-West Corner Solution (cost 860):")
	require.Contains(t, out, "Russell's Approximation Solution (cost 590):")
	require.Contains(t, out, "The problem is not balanced!")
	require.Contains(t, out, "The method is not applicable!")
}

func TestSolve_JSONSingleMethod(t *testing.T) {
	path := writeSet(t, catalog.Textbook()[:2])
	out, err := execute(t, "solve", "-f", path, "-m", "vogel", "--format", "json", "--sequential")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	for _, l := range lines {
		require.True(t, json.Valid([]byte(l)), l)
	}
	require.Contains(t, lines[0], `"cost":620`)
	require.NotContains(t, out, "North-West Corner")
}

func TestSolve_BadFlags(t *testing.T) {
	_, err := execute(t, "solve", "-m", "simplex")
	require.ErrorIs(t, err, transport.ErrUnsupportedMethod)

	_, err = execute(t, "solve", "--format", "xml")
	require.Error(t, err)

	_, err = execute(t, "solve", "--log-format", "logfmt")
	require.ErrorContains(t, err, "unknown log format")

	_, err = execute(t, "solve", "-f", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestSolve_BlankLabelFile(t *testing.T) {
	e := catalog.Textbook()[0]
	e.Sources = []string{"North", "", "South"}
	path := writeSet(t, []catalog.Entry{e})

	var err error
	require.NotPanics(t, func() { _, err = execute(t, "solve", "-f", path) })
	require.ErrorIs(t, err, transport.ErrDimensionMismatch)
	require.ErrorContains(t, err, "empty source label 1")
}

func TestValidate(t *testing.T) {
	out, err := execute(t, "validate", "--log-format", "console")
	require.ErrorIs(t, err, errRejected)
	require.Contains(t, out, "Problem 1: textbook-1: ok")
	require.Contains(t, out, "Problem 4: textbook-4: not_balanced")
	require.Contains(t, out, "Problem 5: textbook-5: not_applicable")

	path := writeSet(t, catalog.Textbook()[:3])
	out, err = execute(t, "validate", "-f", path)
	require.NoError(t, err)
	require.Equal(t, 3, strings.Count(out, ": ok"))
}

func TestCatalog(t *testing.T) {
	out, err := execute(t, "catalog", "list")
	require.NoError(t, err)
	require.Contains(t, out, "NAME")
	require.Contains(t, out, "textbook-5")

	out, err = execute(t, "catalog", "dump")
	require.NoError(t, err)
	entries, err := catalog.Decode(strings.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, catalog.Textbook(), entries)
}
