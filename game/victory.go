package game

// checkThreshold is the number of capture points that puts the opponent in check.
const checkThreshold = 3

// afterAction re-derives control and runs the victory evaluator. A pending promotion or
// ransom keeps the turn with the mover; otherwise the turn completes.
func (gs *GameState) afterAction() {
	gs.refreshControl()
	if gs.checkAnnihilation() {
		return
	}
	if gs.Phase == AwaitingPromotionPhase || gs.Phase == AwaitingRansomPhase {
		return
	}
	gs.completeTurn()
}

// refreshControl rebuilds the capture-point map from occupancy.
func (gs *GameState) refreshControl() {
	control := make(map[string]Player, len(CapturePoints))
	for _, cp := range CapturePoints {
		owner := NoPlayer
		if piece, ok := gs.Board.Get(cp); ok {
			owner = piece.Owner
		}
		control[cp.String()] = owner
	}
	gs.CapturePoints = control
}

// ControlCount returns how many capture points player currently occupies.
func (gs *GameState) ControlCount(player Player) int {
	n := 0
	for _, owner := range gs.CapturePoints {
		if owner == player {
			n++
		}
	}
	return n
}

func (gs *GameState) checkAnnihilation() bool {
	for _, p := range []Player{Player1, Player2} {
		if gs.Board.Count(p) == 0 {
			gs.end(p.Opponent(), Annihilation)
			return true
		}
	}
	return false
}

// completeTurn settles check/checkmate for the side that just moved and hands the turn over.
func (gs *GameState) completeTurn() {
	mover := gs.Turn
	opponent := mover.Opponent()

	if gs.InCheck == mover {
		if gs.ControlCount(opponent) >= checkThreshold {
			gs.end(opponent, Checkmate)
			return
		}
		gs.InCheck = NoPlayer
	}
	if gs.ControlCount(mover) >= checkThreshold {
		gs.InCheck = opponent
	} else if gs.InCheck == opponent {
		gs.InCheck = NoPlayer
	}

	gs.Turn = opponent
	gs.Phase = PlayingPhase
	if !gs.HasLegalAction(opponent) {
		gs.end(NoPlayer, Stalemate)
	}
}
