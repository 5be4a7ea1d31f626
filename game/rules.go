package game

// Direction is a unit step on the board.
type Direction struct {
	DRow, DCol int
}

var (
	orthogonal = [4]Direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonal   = [4]Direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	allEight   = [8]Direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

func step(p Position, d Direction, n int) Position {
	return p.Offset(d.DRow*n, d.DCol*n)
}

// PushTarget is one pushback option: the enemy piece and the square it would be shoved to.
type PushTarget struct {
	TargetID string   `json:"targetId"`
	From     Position `json:"from"`
	Landing  Position `json:"landing"`
}

// PieceActions bundles everything a single piece may currently do.
type PieceActions struct {
	Piece     Piece        `json:"piece"`
	Moves     []Position   `json:"moves"`
	Captures  []Position   `json:"captures"`
	Pushbacks []PushTarget `json:"pushbacks"`
	Longshots []Position   `json:"longshots"`
}

func (pa PieceActions) Len() int {
	return len(pa.Moves) + len(pa.Captures) + len(pa.Pushbacks) + len(pa.Longshots)
}

// Actions flattens the bundle.
func (pa PieceActions) Actions() []Action {
	actions := make([]Action, 0, pa.Len())
	id := pa.Piece.ID
	for _, to := range pa.Moves {
		actions = append(actions, Action{Kind: MoveAction, PieceID: id, To: to})
	}
	for _, to := range pa.Captures {
		actions = append(actions, Action{Kind: CaptureAction, PieceID: id, To: to})
	}
	for _, push := range pa.Pushbacks {
		actions = append(actions, Action{Kind: PushbackAction, PieceID: id, To: push.Landing, TargetID: push.TargetID})
	}
	for _, to := range pa.Longshots {
		actions = append(actions, Action{Kind: LongshotAction, PieceID: id, To: to})
	}
	return actions
}

// Contains reports whether the bundle admits the given playing-phase action.
func (pa PieceActions) Contains(a Action) bool {
	if a.PieceID != pa.Piece.ID {
		return false
	}
	switch a.Kind {
	case MoveAction:
		return containsPosition(pa.Moves, a.To)
	case CaptureAction:
		return containsPosition(pa.Captures, a.To)
	case LongshotAction:
		return containsPosition(pa.Longshots, a.To)
	case PushbackAction:
		for _, push := range pa.Pushbacks {
			if push.TargetID == a.TargetID && push.Landing == a.To {
				return true
			}
		}
	}
	return false
}

func containsPosition(list []Position, p Position) bool {
	for _, q := range list {
		if q == p {
			return true
		}
	}
	return false
}

func appendUnique(list []Position, p Position) []Position {
	if containsPosition(list, p) {
		return list
	}
	return append(list, p)
}

// pieceActions dispatches to the unit's rule set.
func pieceActions(gs *GameState, piece Piece) PieceActions {
	switch piece.Type {
	case Footman:
		return footmanActions(gs, piece)
	case Archer:
		return archerActions(&gs.Board, piece)
	case Knight:
		return knightActions(&gs.Board, piece)
	}
	panic("unexpected unit type " + piece.Type.String())
}
