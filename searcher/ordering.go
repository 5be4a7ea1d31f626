package searcher

import (
	"riverwar/game"
	"riverwar/utils"

	"golang.org/x/exp/slices"
)

const (
	capturePriority      = 5000
	longshotPriority     = 4000
	capturePointPriority = 3000
	pushbackPriority     = 2000
	forwardPriority      = 1000
	declinePriority      = -1
)

type ranked struct {
	action   game.Action
	priority float64
}

// orderActions sorts actions so the likeliest refutations come first: captures, longshots,
// moves onto capture points, pushbacks, forward development, then everything else. Captures
// are ranked among themselves by victim value, resurrections by the value of the returning
// piece, and declines go last. Ties keep generation order.
func orderActions(gs *game.GameState, actions []game.Action) []game.Action {
	list := make([]ranked, len(actions))
	for i, a := range actions {
		list[i] = ranked{action: a, priority: priority(gs, a)}
	}
	slices.SortStableFunc(list, func(a, b ranked) int {
		switch {
		case a.priority > b.priority:
			return -1
		case a.priority < b.priority:
			return 1
		}
		return 0
	})

	ordered := make([]game.Action, len(list))
	for i, r := range list {
		ordered[i] = r.action
	}
	return ordered
}

func priority(gs *game.GameState, a game.Action) float64 {
	switch a.Kind {
	case game.CaptureAction:
		return capturePriority + victimValue(gs, a.To)
	case game.LongshotAction:
		return longshotPriority + victimValue(gs, a.To)
	case game.PushbackAction:
		return pushbackPriority
	case game.PromotionAction, game.RansomAction:
		if p, ok := capturedPiece(gs, a.TargetID); ok {
			return game.UnitValues[p.Type]
		}
		return 0
	case game.DeclinePromotionAction, game.DeclineRansomAction:
		return declinePriority
	}

	if game.IsCapturePoint(a.To) {
		return capturePointPriority
	}
	if piece, ok := gs.Board.Find(a.PieceID); ok && utils.Sign(a.To.Row-piece.Pos.Row) == piece.Owner.Forward() {
		return forwardPriority
	}
	return 0
}

func victimValue(gs *game.GameState, at game.Position) float64 {
	if victim, ok := gs.Board.Get(at); ok {
		return game.UnitValues[victim.Type] / 10
	}
	return 0
}

func capturedPiece(gs *game.GameState, id string) (game.Piece, bool) {
	for _, p := range gs.Captured[gs.Turn] {
		if p.ID == id {
			return p, true
		}
	}
	return game.Piece{}, false
}

// dedupe collapses resurrections that differ only in which of two identical captured pieces
// comes back. They lead to equivalent positions.
func dedupe(gs *game.GameState, actions []game.Action) []game.Action {
	type key struct {
		kind game.ActionKind
		unit game.UnitType
		to   game.Position
	}
	seen := map[key]bool{}
	out := actions[:0:0]
	for _, a := range actions {
		if a.Kind == game.PromotionAction || a.Kind == game.RansomAction {
			p, _ := capturedPiece(gs, a.TargetID)
			k := key{kind: a.Kind, unit: p.Type, to: a.To}
			if seen[k] {
				continue
			}
			seen[k] = true
		}
		out = append(out, a)
	}
	return out
}
