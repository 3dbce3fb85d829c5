package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefault_Valid(t *testing.T) {
	r := Default()
	require.NoError(t, r.Validate())
	assert.Equal(t, 0.5, r.AbilityProbability)
	assert.Equal(t, 2, r.IceArrowsFor(ClassRanger).Uses)
	assert.Equal(t, 1, r.IceArrowsFor(ClassPaladin).Uses)
	assert.Equal(t, 1, r.IceArrowsFor(ClassSorcerer).Uses)
}

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	r, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), r)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := writeFile(t, "rules.yaml", `
ability_probability: 0.8
sudden_death_turn: 50
classes:
  ranger:
    ice_arrows:
      uses: 1
      freeze_turns: 4
      damage_divisor: 3
`)
	r, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.8, r.AbilityProbability)
	assert.Equal(t, 0.5, r.FirstActorThreshold)
	assert.Equal(t, 50, r.SuddenDeathTurn)
	assert.Equal(t, IceArrowsConfig{Uses: 1, FreezeTurns: 4, DamageDivisor: 3}, r.IceArrowsFor(ClassRanger))
	assert.Equal(t, 100, r.Classes.Ranger.FireTurns)
	assert.Len(t, r.Generator.Names, 18)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"probability", "ability_probability: 1.5", "ability_probability"},
		{"sudden death", "sudden_death_turn: 0", "sudden_death_turn"},
		{"health range", "generator:\n  health: {min: 90, max: 10}", "generator.health"},
		{"unknown class", "generator:\n  classes: [bard]", "unknown class"},
		{"empty names", "generator:\n  names: []", "generator.names"},
		{"negative uses", "classes:\n  default: {uses: -1, freeze_turns: 3}", "classes.default.uses"},
		{"stun turns", "classes:\n  sorcerer: {stun_turns: 0}", "stun_turns"},
		{"bad yaml", "ability_probability: [", "failed to load rules"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "rules.yaml", tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_ShippedRulesMatchDefaults(t *testing.T) {
	r, err := Load(filepath.Join("..", "..", "assets", "rules.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), r)
}
