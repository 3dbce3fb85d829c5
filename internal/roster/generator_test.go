package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arena/internal/combat"
	"arena/internal/config"
	"arena/internal/util"
)

func TestGenerate_DrawOrder(t *testing.T) {
	tests := []struct {
		name     string
		src      util.Source
		class    combat.Class
		fighter  string
		health   int
		strength int
	}{
		{"all low", util.Fixed(0), combat.Paladin, "Arthur", 50, 5},
		{"all half", util.Fixed(0.5), combat.Ranger, "Harold", 100, 28},
		{"all high", util.Fixed(0.999999), combat.Sorcerer, "Voldemort", 150, 50},
		{"class name health strength", util.Sequence(0.0, 0.99, 0.0, 0.99), combat.Paladin, "Voldemort", 50, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, err := New(nil).Generate(1, tt.src)
			require.NoError(t, err)
			require.Len(t, fs, 1)
			f := fs[0]
			assert.Equal(t, tt.class, f.Class())
			assert.Equal(t, tt.fighter, f.Name())
			assert.Equal(t, tt.health, f.Health())
			assert.Equal(t, tt.health, f.MaxHealth())
			assert.Equal(t, tt.strength, f.Strength())
		})
	}
}

func TestGenerate_StaysInRanges(t *testing.T) {
	rules := config.Default()
	fs, err := New(rules).Generate(200, util.New(5))
	require.NoError(t, err)
	require.Len(t, fs, 200)
	for _, f := range fs {
		assert.GreaterOrEqual(t, f.Health(), 50)
		assert.LessOrEqual(t, f.Health(), 150)
		assert.GreaterOrEqual(t, f.Strength(), 5)
		assert.LessOrEqual(t, f.Strength(), 50)
		assert.Contains(t, rules.Generator.Names, f.Name())
	}
}

func TestGenerate_RestrictedClassPool(t *testing.T) {
	rules := config.Default()
	rules.Generator.Classes = []string{config.ClassSorcerer}
	fs, err := New(rules).Generate(10, util.New(3))
	require.NoError(t, err)
	for _, f := range fs {
		assert.Equal(t, combat.Sorcerer, f.Class())
	}

	rules.Generator.Classes = nil
	_, err = New(rules).Generate(2, util.New(3))
	assert.Error(t, err)
}

func TestFromParams(t *testing.T) {
	g := New(nil)
	f, err := g.FromParams(combat.Ranger, Params{Name: "Robin", Health: 80, Strength: 12})
	require.NoError(t, err)
	assert.Equal(t, "(Ranger) Robin", f.Info())

	_, err = g.FromParams(combat.Class("bard"), Params{Name: "x", Health: 1, Strength: 1})
	assert.Error(t, err)
}

func TestNames_ReturnsCopy(t *testing.T) {
	g := New(nil)
	names := g.Names()
	names[0] = "changed"
	assert.Equal(t, "Arthur", g.Names()[0])
	assert.Equal(t, "Harold", g.RandomName(util.Fixed(0.5)))
}
