package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and captures stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootRejectsInvalidFormat(t *testing.T) {
	_, err := execute(t, "--format", "xml", "place", "--motion-type", "static", "--start", "n", "--end", "n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestPlaceStaticJSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "place",
		"--motion-type", "static", "--rotation", "no_rot",
		"--start", "n", "--end", "n", "--turns", "0",
		"--start-orientation", "in", "--grid-mode", "diamond")
	require.NoError(t, err)

	var result struct {
		EndOrientation string `json:"end_orientation"`
		Placement      struct {
			Position struct {
				X float64 `json:"x"`
				Y float64 `json:"y"`
			} `json:"position"`
			RotationDegrees float64 `json:"rotation_degrees"`
			Mirrored        bool    `json:"mirrored"`
		} `json:"placement"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	assert.Equal(t, "in", result.EndOrientation)
	assert.InDelta(t, 470, result.Placement.Position.X, 1e-9)
	assert.InDelta(t, 250, result.Placement.Position.Y, 1e-9)
	assert.False(t, result.Placement.Mirrored)
}

func TestPlaceTextOutput(t *testing.T) {
	out, err := execute(t, "place",
		"--motion-type", "pro", "--rotation", "cw",
		"--start", "n", "--end", "e", "--turns", "1",
		"--grid-mode", "diamond")
	require.NoError(t, err)

	assert.Contains(t, out, "end orientation: out")
	assert.Contains(t, out, "mirrored:        false")
}

func TestPlaceRejectsInvalidMotion(t *testing.T) {
	_, err := execute(t, "place", "--motion-type", "spin", "--start", "n", "--end", "e")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestPlaceRejectsMismatchedLayout(t *testing.T) {
	_, err := execute(t, "place",
		"--motion-type", "static", "--rotation", "no_rot",
		"--start", "ne", "--end", "ne", "--grid-mode", "diamond")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

const validSequence = `
name: demo
grid_mode: diamond
beats:
  - id: beat-1
    red:
      motion_type: pro
      rotation_direction: cw
      start_location: n
      end_location: e
      turns: 1
      start_orientation: in
      end_orientation: out
      color: red
    blue:
      motion_type: static
      rotation_direction: no_rot
      start_location: s
      end_location: s
      turns: 0
      start_orientation: in
      color: blue
`

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateCleanSequence(t *testing.T) {
	path := writeTempFile(t, "seq.yaml", validSequence)

	out, err := execute(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "no integrity violations")
}

func TestValidateFlagsViolations(t *testing.T) {
	// Pro with one whole turn derives out; store in instead.
	broken := bytes.ReplaceAll([]byte(validSequence), []byte("end_orientation: out"), []byte("end_orientation: in"))
	path := writeTempFile(t, "seq.yaml", string(broken))

	out, err := execute(t, "validate", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "beat-1")
}

func TestValidateMissingFile(t *testing.T) {
	_, err := execute(t, "validate", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

const scenarioDoc = `
name: cli-scenario
grid_mode: diamond
red:
  motion_type: static
  rotation_direction: no_rot
  start_location: n
  end_location: n
  turns: 0
  start_orientation: in
  color: red
blue:
  motion_type: static
  rotation_direction: no_rot
  start_location: s
  end_location: s
  turns: 0
  start_orientation: in
  color: blue
`

func TestScenarioCommand(t *testing.T) {
	path := writeTempFile(t, "scenario.yaml", scenarioDoc)

	out, err := execute(t, "scenario", path)
	require.NoError(t, err)
	assert.Contains(t, out, "cli-scenario")
	assert.Contains(t, out, "red")
	assert.Contains(t, out, "blue")
}

func TestExitErrorUnwrap(t *testing.T) {
	inner := os.ErrNotExist
	err := WrapExitError(ExitCommandError, "load", inner)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
