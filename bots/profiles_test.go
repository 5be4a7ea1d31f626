package bots

import (
	"testing"
	"time"

	"riverwar/game"

	"github.com/stretchr/testify/require"
)

func TestBuiltinProfiles(t *testing.T) {
	profiles := List()
	require.Len(t, profiles, 4)

	ids := make([]string, len(profiles))
	for i, p := range profiles {
		ids[i] = p.ID
		require.Equal(t, i+1, p.Depth, "Tiers are ordered by depth")
		require.Positive(t, p.TimeBudget)
		require.Equal(t, p.Randomness, p.Weights.Randomness)
	}
	require.Equal(t, []string{"novice", "squire", "captain", "warlord"}, ids)
	require.Equal(t, "novice", Weakest().ID)
}

func TestLookup(t *testing.T) {
	t.Run("known", func(t *testing.T) {
		p, err := Lookup("captain")
		require.NoError(t, err)
		require.Equal(t, 3, p.Depth)
		require.Equal(t, 1500*time.Millisecond, p.TimeBudget)

		want := game.DefaultWeights()
		want.Randomness = 8
		require.Equal(t, want, p.Weights, "No overrides keeps the default weights")
	})

	t.Run("overrides merge over defaults", func(t *testing.T) {
		p, err := Lookup("warlord")
		require.NoError(t, err)
		require.Equal(t, 160.0, p.Weights.CapturePointTriple)
		require.Equal(t, 25.0, p.Weights.PromotionProximity)
		require.Equal(t, game.DefaultWeights().Material, p.Weights.Material)

		novice, err := Lookup("novice")
		require.NoError(t, err)
		require.Zero(t, novice.Weights.Mobility)
		require.False(t, novice.OpeningBook)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := Lookup("grandmaster")
		require.ErrorIs(t, err, ErrUnknownProfile)
	})

	t.Run("list is a copy", func(t *testing.T) {
		profiles := List()
		profiles[0].Depth = 99
		p, err := Lookup(profiles[0].ID)
		require.NoError(t, err)
		require.Equal(t, 1, p.Depth)
	})
}

func TestParseRejects(t *testing.T) {
	_, err := Parse([]byte("- id: a\n  depth: 0\n"))
	require.Error(t, err)

	_, err = Parse([]byte("- id: a\n  depth: 1\n- id: a\n  depth: 2\n"))
	require.Error(t, err)

	_, err = Parse([]byte("- id: a\n  depth: 1\n  weights: [1, 2]\n"))
	require.Error(t, err)
}
