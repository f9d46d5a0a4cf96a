package overrides

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkastudio/pictograph/internal/geom"
)

const validDoc = `
overrides:
  - key: "G_pro_1"
    dx: 12
    dy: -8
  - key: "Σ_anti_0.5"
    dx: 0
    dy: 30
  - key: "pro"
    dx: 5
    dy: 5
`

func TestParseValidDocument(t *testing.T) {
	table, err := Parse([]byte(validDoc))
	require.NoError(t, err)
	require.Len(t, table, 3)

	assert.Equal(t, geom.Point{X: 12, Y: -8}, table["G_pro_1"])
	assert.Equal(t, geom.Point{X: 0, Y: 30}, table["Σ_anti_0.5"])
	assert.Equal(t, geom.Point{X: 5, Y: 5}, table["pro"])
}

func TestParseRejectsEmptyKey(t *testing.T) {
	doc := `
overrides:
  - key: ""
    dx: 1
    dy: 2
`
	_, err := Parse([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema violation")
}

func TestParseRejectsNonNumericAdjustment(t *testing.T) {
	doc := `
overrides:
  - key: "pro"
    dx: "twelve"
    dy: 2
`
	_, err := Parse([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema violation")
}

func TestParseRejectsDuplicateKeys(t *testing.T) {
	doc := `
overrides:
  - key: "pro"
    dx: 1
    dy: 2
  - key: "pro"
    dx: 3
    dy: 4
`
	_, err := Parse([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate key")
}

func TestParseEmptyTableIsValid(t *testing.T) {
	table, err := Parse([]byte("overrides: []\n"))
	require.NoError(t, err)
	assert.Empty(t, table)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "overrides.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validDoc), 0o644))

	table, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, table, 3)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
