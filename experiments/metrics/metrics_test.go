package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"riverwar/bots"
	"riverwar/game"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start(3, time.Second)
	c.AddNode()
	c.AddNode()
	c.AddCutoff()
	c.SetDepthReached(2)
	c.SetTimedOut()

	m := c.Complete()
	require.Equal(t, 3, m.Depth)
	require.Equal(t, 2, m.DepthReached)
	require.Equal(t, time.Second, m.Budget)
	require.Equal(t, 2, m.Nodes)
	require.Equal(t, 1, m.Cutoffs)
	require.True(t, m.TimedOut)
	require.False(t, m.Book)

	c.Start(1, 0)
	require.Zero(t, c.Complete().Nodes, "Start resets the counters")

	require.Equal(t, SearchMetric{}, NewDummyCollector().Complete())
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "tournament")
	require.NoError(t, err)

	require.NoError(t, w.WriteProfiles(bots.List()))
	require.NoError(t, w.WriteGameRecords([]GameRecord{{
		ID:       1,
		Profile1: "novice",
		Profile2: "squire",
		GameMetric: GameMetric{
			StartingPlayer: game.Player1,
			Winner:         game.Player2,
			Condition:      game.Checkmate,
			TotalMoves:     42,
		},
	}}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: game.Player1, Action: "move"}}}))

	read := func(name string) [][]string {
		f, err := os.Open(filepath.Join(w.Dir(), name))
		require.NoError(t, err)
		defer f.Close()
		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		return rows
	}

	require.Len(t, read("profiles.csv"), len(bots.List())+1, "Header plus one row per profile")
	games := read("game_records.csv")
	require.Len(t, games, 2)
	require.Equal(t, "novice", games[1][1])
	require.Equal(t, "42", games[1][9])
	require.Len(t, read("move_records.csv"), 2)
}
