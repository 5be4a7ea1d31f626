package searcher

import (
	"testing"

	"riverwar/game"

	"github.com/stretchr/testify/require"
)

func TestOrderActions(t *testing.T) {
	var b game.Board
	place(&b, "k", game.Knight, game.Player1, "D5")
	place(&b, "f", game.Footman, game.Player1, "C1")
	place(&b, "prey", game.Footman, game.Player2, "F6")
	gs := game.NewGameFromBoard(b, game.Player1)

	other := game.Action{Kind: game.MoveAction, PieceID: "k", To: game.At('B', 4)}
	forward := game.Action{Kind: game.MoveAction, PieceID: "f", To: game.At('D', 1)}
	point := game.Action{Kind: game.MoveAction, PieceID: "k", To: game.At('F', 4)}
	push := game.Action{Kind: game.PushbackAction, PieceID: "f", To: game.At('C', 3), TargetID: "prey"}
	longshot := game.Action{Kind: game.LongshotAction, PieceID: "k", To: game.At('F', 6)}
	capture := game.Action{Kind: game.CaptureAction, PieceID: "k", To: game.At('F', 6)}

	got := orderActions(gs, []game.Action{other, forward, point, push, longshot, capture})

	require.Equal(t, []game.Action{capture, longshot, point, push, forward, other}, got,
		"Captures, longshots, capture points, pushbacks, forward moves, then the rest")
}

func TestOrderResurrections(t *testing.T) {
	var b game.Board
	place(&b, "runner", game.Footman, game.Player1, "K3")
	place(&b, "e", game.Knight, game.Player2, "K10")
	gs := game.NewGameFromBoard(b, game.Player1)
	gs.Captured[game.Player1] = []game.Piece{
		{ID: "cf", Type: game.Footman, Owner: game.Player1},
		{ID: "ck", Type: game.Knight, Owner: game.Player1},
		{ID: "cf2", Type: game.Footman, Owner: game.Player1},
	}

	footmanA2 := game.Action{Kind: game.PromotionAction, PieceID: "runner", TargetID: "cf", To: game.At('A', 2)}
	knightA2 := game.Action{Kind: game.PromotionAction, PieceID: "runner", TargetID: "ck", To: game.At('A', 2)}
	twinA2 := game.Action{Kind: game.PromotionAction, PieceID: "runner", TargetID: "cf2", To: game.At('A', 2)}
	twinA4 := game.Action{Kind: game.PromotionAction, PieceID: "runner", TargetID: "cf2", To: game.At('A', 4)}
	decline := game.Action{Kind: game.DeclinePromotionAction, PieceID: "runner", To: game.At('K', 3)}

	unique := dedupe(gs, []game.Action{decline, footmanA2, knightA2, twinA2, twinA4})
	require.Equal(t, []game.Action{decline, footmanA2, knightA2, twinA4}, unique,
		"A second footman returning to the same square should be collapsed")

	require.Equal(t, []game.Action{knightA2, footmanA2, twinA4, decline}, orderActions(gs, unique),
		"Resurrections should be ordered by value with the decline last")
}

func TestPromote(t *testing.T) {
	a := game.Action{Kind: game.MoveAction, PieceID: "a"}
	b := game.Action{Kind: game.MoveAction, PieceID: "b"}
	c := game.Action{Kind: game.MoveAction, PieceID: "c"}

	require.Equal(t, []game.Action{c, a, b}, promote([]game.Action{a, b, c}, c))
	require.Equal(t, []game.Action{a, b, c}, promote([]game.Action{a, b, c}, a))
}
