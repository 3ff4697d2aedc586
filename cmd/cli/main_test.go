package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/scenescript/internal/cli"
)

func TestRun_DecodeLuaAndHCL(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	lua := `SceneTimelineAddFileData("a", { actors = { Bob = { properties = { Sheathe = { events = { [1] = { isSheathed = true, isRanged = false, animated = true } } } } } } })`
	hcl := `{ actors = { Eve = { properties = { GroundSnap = { events = [{ (0) = { snap = true } }] } } } } }`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.lua"), []byte(lua), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.hcl"), []byte(hcl), 0600))

	out, logs := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, logs, []string{"decode", "--workers", "2", dir})

	// --- Assert ---
	require.NoError(t, err, "logs:\n%s", logs.String())

	var doc struct {
		Scripts []struct {
			Path   string `json:"path"`
			Actors []struct {
				Name string `json:"name"`
			} `json:"actors"`
		} `json:"scripts"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	require.Len(t, doc.Scripts, 2)
	require.Equal(t, "Bob", doc.Scripts[0].Actors[0].Name)
	require.Equal(t, "Eve", doc.Scripts[1].Actors[0].Name)
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag prints usage and succeeds.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error for help")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag makes the parser fail.
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "unknown flag: --this-is-not-a-valid-flag")
}
