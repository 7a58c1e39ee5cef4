package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lianlian/level"
	"github.com/katalvlaran/lianlian/logging"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGen_Text(t *testing.T) {
	out, err := run(t, "gen", "--level", "1", "--seed", "7")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 7, "header plus 6 board rows")
	assert.Contains(t, lines[0], "Level 1 (seed 7): 6×8, 24 tiles")
	for _, row := range lines[1:] {
		assert.Len(t, strings.Fields(row), 8)
	}
	assert.Equal(t, ". . . . . . . .", lines[1], "top border row")
}

func TestGen_YAML(t *testing.T) {
	out, err := run(t, "gen", "-l", "2", "--seed", "11", "--format", "yaml")
	require.NoError(t, err)

	var doc boardDoc
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 2, doc.Level)
	assert.Equal(t, int64(11), doc.Seed)
	assert.Equal(t, 8, doc.Rows)
	assert.Equal(t, 10, doc.Cols)
	assert.Equal(t, 48, doc.Tiles)
	require.Len(t, doc.Cells, 8)
	assert.Len(t, doc.Cells[0], 10)
	assert.Equal(t, doc.Playable, doc.Moves > 0)
}

func TestGen_Deterministic(t *testing.T) {
	a, err := run(t, "gen", "--seed", "5")
	require.NoError(t, err)
	b, err := run(t, "gen", "--seed", "5")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGen_Errors(t *testing.T) {
	_, err := run(t, "gen", "--level", "99")
	assert.ErrorIs(t, err, level.ErrLevelNotFound)

	_, err = run(t, "gen", "--format", "xml")
	assert.Error(t, err)
}

func TestSettings_EnvAndConfigFile(t *testing.T) {
	want, err := run(t, "gen", "--seed", "7")
	require.NoError(t, err)

	t.Run("env", func(t *testing.T) {
		t.Setenv("LIANLIAN_SEED", "7")
		got, err := run(t, "gen")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "lianlian.yaml")
		require.NoError(t, os.WriteFile(path, []byte("seed: 7\nlog:\n  level: error\n"), 0o644))
		got, err := run(t, "gen", "--config", path)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("flag beats env", func(t *testing.T) {
		t.Setenv("LIANLIAN_SEED", "8")
		got, err := run(t, "gen", "--seed", "7")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestLevels(t *testing.T) {
	out, err := run(t, "levels")
	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "4×6")
	assert.Contains(t, out, "clear_target(20)")
	assert.Contains(t, out, "obstacles=[ice chain]")
	assert.Contains(t, out, "reward")
}

func TestLevels_CustomPack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pack.yaml")
	pack := `meta:
  version: "test"
levels:
  - id: 9
    innerRows: 2
    innerCols: 2
    time: 30
    tileTypes: 1
    goal:
      type: clear_all
`
	require.NoError(t, os.WriteFile(path, []byte(pack), 0o644))

	out, err := run(t, "levels", "--pack", path)
	require.NoError(t, err)
	assert.Contains(t, out, "9")
	assert.Contains(t, out, "2×2")

	// A 2×2 board of one type always clears.
	out, err = run(t, "play", "--pack", path, "--level", "9", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "result: success, pairs removed: 2, tiles left: 0")
}

func TestPlay(t *testing.T) {
	out, err := run(t, "play", "--level", "1", "--seed", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "move 1: ")
	assert.Contains(t, out, "result: ")
	assert.Contains(t, out, "elapsed: ")
	assert.Contains(t, out, " of 2m0s")
}

func TestSettings_LogOutput(t *testing.T) {
	_, err := run(t, "gen", "--seed", "7", "--log-output", "stderr", "--log-level", "disabled")
	require.NoError(t, err)

	t.Setenv("LIANLIAN_LOG_OUTPUT", "syslog")
	_, err = run(t, "gen", "--seed", "7")
	assert.ErrorIs(t, err, logging.ErrUnknownOutput)
}

func TestPlay_MaxMoves(t *testing.T) {
	out, err := run(t, "play", "--level", "2", "--seed", "42", "--max-moves", "3", "-q")
	require.NoError(t, err)
	assert.NotContains(t, out, "move ")
	assert.Contains(t, out, "result: fail, pairs removed: 3, tiles left: 42")
}
