package engine

import (
	"testing"
	"time"

	"riverwar/bots"
	"riverwar/game"
	"riverwar/searcher"

	"github.com/stretchr/testify/require"
)

func requireBoardConsistent(t *testing.T, gs *game.GameState) {
	t.Helper()
	for row := 0; row < game.Rows; row++ {
		for col := 0; col < game.Cols; col++ {
			pos := game.Position{Row: row, Col: col}
			if piece, ok := gs.Board.Get(pos); ok {
				require.Equal(t, pos, piece.Pos, "Piece %s should know its own square", piece.ID)
			}
		}
	}
}

func TestLocalGameTerminates(t *testing.T) {
	novice := bots.Weakest()
	e := LocalEngine(novice, novice,
		WithMaxTurns(40),
		WithSeed(9),
		WithSearchOptions(searcher.WithDuration(50*time.Millisecond)),
	)

	winner, gameMetric, moveMetrics, err := e.Run()

	require.NoError(t, err)
	over, stateWinner, condition := e.State.GameOver()
	require.True(t, over, "Game should be ended, by play or by the turn cap")
	require.Equal(t, stateWinner, winner)
	require.Equal(t, condition, gameMetric.Condition)
	require.LessOrEqual(t, len(moveMetrics), 40)
	require.Equal(t, len(moveMetrics), gameMetric.TotalMoves)
	require.Len(t, e.State.History, len(moveMetrics), "Every played move should be recorded")
	require.Equal(t, game.Player1, gameMetric.StartingPlayer)
	requireBoardConsistent(t, e.State)

	for i, mm := range moveMetrics {
		require.Equal(t, i+1, mm.Step)
		require.NotEmpty(t, mm.Action)
	}
}

func TestLocalGameDraws(t *testing.T) {
	t.Run("turn cap finalizes a draw", func(t *testing.T) {
		novice := bots.Weakest()
		e := LocalEngine(novice, novice, WithMaxTurns(3))

		winner, gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.NoPlayer, winner)
		require.Equal(t, game.Draw, gameMetric.Condition)
		require.Len(t, moveMetrics, 3)
	})

	t.Run("quiet moves finalize a draw", func(t *testing.T) {
		var b game.Board
		b.Set(game.At('A', 1), game.Piece{ID: "k1", Type: game.Knight, Owner: game.Player1, HasMoved: true})
		b.Set(game.At('K', 10), game.Piece{ID: "k2", Type: game.Knight, Owner: game.Player2, HasMoved: true})
		novice := bots.Weakest()
		e := LocalEngine(novice, novice, WithState(game.NewGameFromBoard(b, game.Player1)), WithQuietMoveLimit(4))

		winner, gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.NoPlayer, winner)
		require.Equal(t, game.Draw, gameMetric.Condition)
		require.Len(t, moveMetrics, 4, "Two lone knights cannot meet within four half-moves")
	})
}

func TestLocalGameUsesBook(t *testing.T) {
	squire, err := bots.Lookup("squire")
	require.NoError(t, err)
	e := LocalEngine(squire, squire, WithMaxTurns(2), WithSeed(4))

	_, _, moveMetrics, err := e.Run()

	require.NoError(t, err)
	require.Len(t, moveMetrics, 2)
	require.True(t, moveMetrics[0].Book, "Player1 should open from the book")
}
