package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/edgesort/config"
	"github.com/katalvlaran/edgesort/radix"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, config.StrategyRadix, c.Sort.Strategy)
	assert.Equal(t, radix.DefaultConfig(), c.Radix())
	assert.Equal(t, zapcore.InfoLevel, c.Log.Level)
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "edgesort.toml", `
[sort]
strategy = "radix"
base = 16
workers = 8
parallelScatter = true

[generate]
vertices = 500
seed = 9

[log]
format = "json"
level = "debug"
`)
	c, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, radix.Config{Base: 16, WorkerCount: 8, ParallelScatter: true}, c.Radix())
	assert.Equal(t, 500, c.Generate.Vertices)
	assert.Equal(t, config.Default().Generate.Edges, c.Generate.Edges, "unset keys keep defaults")
	assert.EqualValues(t, 9, c.Generate.Seed)
	assert.Equal(t, "json", c.Log.Format)
	assert.Equal(t, zapcore.DebugLevel, c.Log.Level)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "edgesort.yml", `
sort:
  strategy: counting
generate:
  vertices: 10
  edges: 20
log:
  level: warn
`)
	c, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, config.StrategyCounting, c.Sort.Strategy)
	assert.Equal(t, 10, c.Generate.Vertices)
	assert.Equal(t, 20, c.Generate.Edges)
	assert.Equal(t, zapcore.WarnLevel, c.Log.Level)
	assert.Equal(t, radix.DefaultBase, c.Sort.Base)
}

func TestLoad_EmptyYAML(t *testing.T) {
	c, err := config.Load(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name, file, body string
		want             error
	}{
		{"unknown extension", "c.json", `{}`, config.ErrUnknownFormat},
		{"unknown toml key", "c.toml", "[sort]\nradix = 3\n", config.ErrInvalid},
		{"bad strategy", "c.toml", "[sort]\nstrategy = \"bubble\"\n", config.ErrInvalid},
		{"bad base", "c.yaml", "sort:\n  base: 1\n", config.ErrInvalid},
		{"bad workers", "c.toml", "[sort]\nworkers = 0\n", config.ErrInvalid},
		{"bad vertices", "c.toml", "[generate]\nvertices = 0\n", config.ErrInvalid},
		{"bad edges", "c.yaml", "generate:\n  edges: -4\n", config.ErrInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, tc.file, tc.body))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoad_ParseErrors(t *testing.T) {
	_, err := config.Load(writeFile(t, "c.toml", "[sort\n"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "c.yaml", "sort:\n  unknown: 1\n"))
	assert.Error(t, err)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
