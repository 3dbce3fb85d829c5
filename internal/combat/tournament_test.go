package combat_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arena/internal/combat"
	"arena/internal/recording"
	"arena/internal/roster"
	"arena/internal/util"
)

func TestTournament_FixedHalfSource(t *testing.T) {
	rec := recording.New()
	eng := combat.NewEngine(roster.New(nil), rec, util.Fixed(0.5))

	require.NoError(t, eng.Initialize(4))
	champ, err := eng.Run()
	require.NoError(t, err)

	assert.True(t, champ.IsAlive())
	assert.Equal(t, 2, eng.Round())

	text := strings.Join(rec.Texts(), "\n")
	assert.Contains(t, text, "Round 1.")
	assert.Contains(t, text, "Round 2.")
	assert.Contains(t, text, "dies")
	assert.Contains(t, text, "becomes the tournament champion!")
}

func TestTournament_AlwaysTerminates(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		for _, count := range []int{2, 4, 6, 8, 10, 16} {
			eng := combat.NewEngine(roster.New(nil), nil, util.New(seed))
			require.NoError(t, eng.Initialize(count))

			champ, err := eng.Run()
			require.NoError(t, err)
			require.NotNil(t, champ)
			assert.True(t, champ.IsAlive(), "seed %d count %d", seed, count)
			assert.LessOrEqual(t, champ.Health(), champ.MaxHealth())
			assert.Len(t, eng.Roster(), 1)
		}
	}
}

func TestTournament_ByesForNonPowerOfTwo(t *testing.T) {
	rec := recording.New()
	eng := combat.NewEngine(roster.New(nil), rec, util.New(7))

	require.NoError(t, eng.Initialize(6))
	_, err := eng.Run()
	require.NoError(t, err)

	// 6 -> 3 -> 2 -> 1
	assert.Equal(t, 3, eng.Round())
	byes := 0
	for _, ev := range rec.Events() {
		if ev.Type == combat.EventBye {
			byes++
		}
	}
	assert.Equal(t, 1, byes)
}

func TestTournament_StressAbilities(t *testing.T) {
	// low draws make every fighter reach for abilities, including endless stuns
	sources := map[string]util.Source{
		"fixed 0.0":   util.Fixed(0.0),
		"fixed 0.1":   util.Fixed(0.1),
		"fixed 0.49":  util.Fixed(0.49),
		"sorcerers":   util.Sequence(0.9, 0.1),
		"mixed cycle": util.Sequence(0.8, 0.2, 0.1),
	}
	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			eng := combat.NewEngine(roster.New(nil), nil, src)
			require.NoError(t, eng.Initialize(8))
			champ, err := eng.Run()
			require.NoError(t, err)
			assert.True(t, champ.IsAlive())
		})
	}
}
