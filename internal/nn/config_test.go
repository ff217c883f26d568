package nn_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/focal/internal/nn"
)

func TestFocalConfig_Validate(t *testing.T) {
	tests := []struct {
		name  string
		cfg   nn.FocalConfig
		field string
	}{
		{"defaults", nn.DefaultFocalConfig(), ""},
		{"alpha bounds", nn.FocalConfig{Alpha: 1, Gamma: 0}, ""},
		{"negative alpha", nn.FocalConfig{Alpha: -0.1, Gamma: 2}, "alpha"},
		{"alpha above one", nn.FocalConfig{Alpha: 1.5, Gamma: 2}, "alpha"},
		{"negative gamma", nn.FocalConfig{Alpha: 0.25, Gamma: -1}, "gamma"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, nn.ErrInvalidConfig)
			var cfgErr *nn.ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}

	bad := nn.DefaultFocalConfig()
	bad.Reduction = nn.Reduction(9)
	assert.ErrorIs(t, bad.Validate(), nn.ErrUnknownReduction)
}

func TestMarshalConfig_RoundTrip(t *testing.T) {
	cfg := nn.FocalConfig{
		Alpha:      0.4,
		Gamma:      1.5,
		FromLogits: true,
		Reduction:  nn.ReductionSum,
		Name:       "custom",
	}

	for _, format := range []nn.ConfigFormat{nn.FormatYAML, nn.FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			data, err := nn.MarshalConfig(cfg, format)
			require.NoError(t, err)
			assert.Contains(t, string(data), "sum")

			got, err := nn.UnmarshalConfig(data, format)
			require.NoError(t, err)
			assert.Equal(t, cfg, got)
		})
	}
}

func TestUnmarshalConfig_Defaults(t *testing.T) {
	got, err := nn.UnmarshalConfig([]byte("gamma: 3\nreduction: NONE\n"), nn.FormatYAML)
	require.NoError(t, err)

	want := nn.DefaultFocalConfig()
	want.Gamma = 3
	want.Reduction = nn.ReductionNone
	assert.Equal(t, want, got)

	empty, err := nn.UnmarshalConfig(nil, nn.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, nn.DefaultFocalConfig(), empty)

	fromJSON, err := nn.UnmarshalConfig([]byte(`{"from_logits": true, "reduction": "auto"}`), nn.FormatJSON)
	require.NoError(t, err)
	assert.True(t, fromJSON.FromLogits)
	assert.Equal(t, nn.ReductionMean, fromJSON.Reduction)
	assert.Equal(t, nn.DefaultAlpha, fromJSON.Alpha)
}

func TestUnmarshalConfig_Errors(t *testing.T) {
	_, err := nn.UnmarshalConfig([]byte("alpha: 0.3\nbeta: 1\n"), nn.FormatYAML)
	assert.Error(t, err, "unknown yaml field")

	_, err = nn.UnmarshalConfig([]byte(`{"beta": 1}`), nn.FormatJSON)
	assert.Error(t, err, "unknown json field")

	_, err = nn.UnmarshalConfig([]byte("reduction: max\n"), nn.FormatYAML)
	assert.ErrorIs(t, err, nn.ErrUnknownReduction)

	_, err = nn.UnmarshalConfig([]byte("{}"), nn.ConfigFormat("toml"))
	assert.ErrorIs(t, err, nn.ErrUnsupportedFormat)
}

func TestFormatForPath(t *testing.T) {
	for path, want := range map[string]nn.ConfigFormat{
		"loss.yaml":    nn.FormatYAML,
		"dir/loss.YML": nn.FormatYAML,
		"loss.json":    nn.FormatJSON,
	} {
		got, err := nn.FormatForPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := nn.FormatForPath("loss.toml")
	assert.ErrorIs(t, err, nn.ErrUnsupportedFormat)
}

func TestSaveLoadConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := nn.FocalConfig{Alpha: 0.5, Gamma: 0, Reduction: nn.ReductionNone, Name: "plain"}

	for _, name := range []string{"loss.yaml", "loss.json"} {
		path := filepath.Join(dir, name)
		require.NoError(t, nn.SaveConfig(path, cfg))

		got, err := nn.LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, cfg, got)
	}

	_, err := nn.LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
