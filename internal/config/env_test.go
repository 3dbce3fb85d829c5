package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnv(t *testing.T) {
	t.Setenv("ARENA_FIGHTERS", "8")
	t.Setenv("ARENA_SEED", "42")
	t.Setenv("ARENA_LOG_JSON", "true")
	path := writeFile(t, ".env", "ARENA_CONFIG=rules.yaml\nARENA_FIGHTERS=16\n")
	t.Cleanup(func() { os.Unsetenv("ARENA_CONFIG") })

	e := LoadEnv(path)

	assert.NoError(t, e.LoadErr)
	assert.Equal(t, 8, e.Fighters, "process env wins over .env")
	assert.Equal(t, int64(42), e.Seed)
	assert.Equal(t, "rules.yaml", e.RulesPath)
	assert.True(t, e.LogJSON)
	assert.Equal(t, "info", e.LogLevel)
}

func TestLoadEnv_MissingExplicitFile(t *testing.T) {
	e := LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, e.LoadErr)
}

func TestLoadEnv_BadNumberFallsBack(t *testing.T) {
	t.Setenv("ARENA_FIGHTERS", "many")
	assert.Equal(t, 0, envInt("ARENA_FIGHTERS", 0))
}
