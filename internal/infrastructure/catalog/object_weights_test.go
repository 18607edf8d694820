package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObjectWeights_Defaults(t *testing.T) {
	w := NewObjectWeights()

	require.Equal(t, 8.0, w.WeightKg("box"))
	require.Equal(t, 8.0, w.WeightKg("BOX"))
	require.Equal(t, 2.0, w.WeightKg("something-new"))
}

func TestLoadObjectWeights_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.yaml")
	data := []byte("weights:\n  box: 11.5\n  barrel: 40\nfallback_kg: 3\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	w, err := LoadObjectWeights(path)
	require.NoError(t, err)

	require.Equal(t, 11.5, w.WeightKg("box"))
	require.Equal(t, 40.0, w.WeightKg("barrel"))
	// Не переопределённые классы остаются из встроенного справочника.
	require.Equal(t, 12.0, w.WeightKg("suitcase"))
	require.Equal(t, 3.0, w.WeightKg("unknown-class"))
}

func TestLoadObjectWeights_MissingFile(t *testing.T) {
	_, err := LoadObjectWeights(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadObjectWeights_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.yaml")
	require.NoError(t, os.WriteFile(path, []byte("weights: [not a map"), 0o644))

	_, err := LoadObjectWeights(path)
	require.Error(t, err)
}
