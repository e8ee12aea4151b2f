package wordfreq

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	data := `min-length: 3
exclude:
  - The
  - and
top: 5
row-format: "{{rank}} {{token}}"
`
	require.Nil(t, os.WriteFile(cfgPath, []byte(data), 0644))

	cfg, err := NewConfig(cfgPath)
	require.Nil(t, err)
	require.Equal(t, &Config{MinLength: 3, Exclude: []string{"The", "and"}, Top: 5, RowFormat: "{{rank}} {{token}}"}, cfg)

	opts := cfg.Options()
	require.Equal(t, 3, opts.MinLength)
	require.Equal(t, []string{"The", "and"}, opts.Exclude)

	table, err := New("The cat and the hat").Analyze(opts)
	require.Nil(t, err)
	require.Equal(t, []string{"cat", "hat"}, table.Tokens())
}

func TestNewConfigErrors(t *testing.T) {
	_, err := NewConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NotNil(t, err)

	for _, data := range []string{`row-format: "{{rank"`, "min-length: -3", "top: -1"} {
		cfgPath := filepath.Join(t.TempDir(), "bad.yaml")
		require.Nil(t, os.WriteFile(cfgPath, []byte(data), 0644))
		_, err = NewConfig(cfgPath)
		require.ErrorIsf(t, err, ErrInvalidParameter, "config %q", data)
	}
}

func TestConfigOptionsDefaults(t *testing.T) {
	opts := (&Config{}).Options()
	require.Equal(t, DefaultOptions(), opts)
}

func TestGenerateSample(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "sample.yaml")
	require.Nil(t, GenerateSample(cfgPath))

	cfg, err := NewConfig(cfgPath)
	require.Nil(t, err)
	require.Equal(t, DefaultConfig.MinLength, cfg.MinLength)
	require.Equal(t, DefaultConfig.Top, cfg.Top)
	require.Equal(t, DefaultConfig.RowFormat, cfg.RowFormat)
	require.Empty(t, cfg.Exclude)
}
