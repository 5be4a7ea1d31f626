package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"riverwar/bots"
	"riverwar/engine"

	"github.com/stretchr/testify/require"
)

func TestTournament(t *testing.T) {
	novice := bots.Weakest()
	rival := novice
	rival.ID = "rival"

	tournament := Tournament{
		Name:     "smoke",
		Profiles: []bots.Profile{novice, rival},
		Games:    1,
		Seed:     3,
		Options:  []engine.Option{engine.WithMaxTurns(6)},
	}

	standings, games, moves, err := tournament.Run()

	require.NoError(t, err)
	require.Len(t, games, 2, "Each ordered pairing should be played once")
	require.Equal(t, novice.ID, games[0].Profile1)
	require.Equal(t, rival.ID, games[1].Profile1)

	total := 0
	for _, r := range standings {
		total += r.Wins + r.Losses + r.Draws
	}
	require.Equal(t, 4, total, "Every game should count for both profiles")

	played := 0
	for _, g := range games {
		played += g.TotalMoves
	}
	require.Len(t, moves, played)

	dir, err := tournament.Store(t.TempDir(), games, moves)
	require.NoError(t, err)
	for _, file := range []string{"profiles.csv", "game_records.csv", "move_records.csv"} {
		_, err := os.Stat(filepath.Join(dir, file))
		require.NoError(t, err, "%s should be written", file)
	}
}

func TestTournamentNeedsTwoProfiles(t *testing.T) {
	_, _, _, err := Tournament{Name: "solo", Profiles: bots.List()[:1], Games: 1}.Run()
	require.Error(t, err)
}
