package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-flex/internal/fixture"
)

func decodeResult(t *testing.T, data []byte) fixture.Result {
	t.Helper()
	var res fixture.Result
	require.NoError(t, toml.Unmarshal(data, &res))
	return res
}

func TestRunCompute(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runCompute(&out, []string{filepath.Join("testdata", "row.toml")}))

	res := decodeResult(t, out.Bytes())
	require.Len(t, res.Nodes, 3)
	assert.Equal(t, fixture.NodeRect{ID: "left", X: 0, Y: 0, Width: 100, Height: 100}, res.Nodes[1])
	assert.Equal(t, fixture.NodeRect{ID: "right", X: 100, Y: 0, Width: 100, Height: 100}, res.Nodes[2])
	assert.Equal(t, 3, res.Solved)
}

func TestRunCompute_Twice(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runCompute(&out, []string{"-twice", filepath.Join("testdata", "row.toml")}))

	res := decodeResult(t, out.Bytes())
	assert.Equal(t, float32(1), res.HitRate)
	assert.Equal(t, 0, res.Solved)
}

func TestRunCompute_OverrideSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "auto.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[node]]\nid = \"root\"\n"), 0o644))

	var out bytes.Buffer
	require.NoError(t, runCompute(&out, []string{"-w", "320", "-h", "240", path}))

	res := decodeResult(t, out.Bytes())
	require.Len(t, res.Nodes, 1)
	assert.Equal(t, float32(320), res.Nodes[0].Width)
	assert.Equal(t, float32(240), res.Nodes[0].Height)
}

func TestRunCompute_Config(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "flex.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("initial_capacity = 2\nfixed_capacity = true\n"), 0o644))

	var out bytes.Buffer
	err := runCompute(&out, []string{"-config", cfg, filepath.Join("testdata", "row.toml")})
	assert.ErrorContains(t, err, "capacity exceeded")
}

func TestRunCompute_Errors(t *testing.T) {
	tests := map[string][]string{
		"no fixture":     {},
		"two fixtures":   {"a.toml", "b.toml"},
		"missing file":   {filepath.Join("testdata", "missing.toml")},
		"unknown flag":   {"-nope", filepath.Join("testdata", "row.toml")},
		"missing config": {"-config", "missing.toml", filepath.Join("testdata", "row.toml")},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			assert.Error(t, runCompute(&out, args))
			assert.Zero(t, out.Len())
		})
	}
}

func TestRunBench(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runBench(&out, []string{"-trees", "3", "-depth", "2", "-branching", "3", "-rounds", "4"}))

	s := out.String()
	assert.Contains(t, s, "trees:      3\n")
	// 1 + 3 + 9 nodes per tree
	assert.Contains(t, s, "nodes:      39\n")
	// one initial compute plus four rounds per tree
	assert.Contains(t, s, "computes:   15\n")
	assert.True(t, strings.Contains(s, "cache hits:"), s)
}

func TestRunBench_InvalidArgs(t *testing.T) {
	tests := map[string][]string{
		"zero trees":     {"-trees", "0"},
		"zero branching": {"-branching", "0"},
		"negative depth": {"-depth", "-1"},
		"bad flag":       {"-trees", "many"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			assert.Error(t, runBench(&out, args))
		})
	}
}

func TestBuildTree(t *testing.T) {
	res, err := bench(t.Context(), benchOptions{trees: 2, depth: 3, branching: 2, rounds: 2})
	require.NoError(t, err)
	require.Len(t, res, 2)
	for _, r := range res {
		assert.Equal(t, uint32(15), r.nodes)
		assert.Equal(t, uint64(3), r.stats.Computes)
		// Later rounds restyle a single leaf and leave most of the tree cached.
		assert.Less(t, r.stats.Last.Solved, 15)
	}
}
