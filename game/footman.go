package game

// footmanActions computes moves, diagonal captures, the opening double-step and pushbacks.
func footmanActions(gs *GameState, f Piece) PieceActions {
	b := &gs.Board
	pa := PieceActions{Piece: f}
	fwd := f.Owner.Forward()

	if GetRiverStatus(f.Pos, f.Owner) == BeyondRiver {
		for _, dRow := range [2]int{fwd, -fwd} {
			for n := 1; n <= 2; n++ {
				dst := f.Pos.Offset(dRow*n, 0)
				if !dst.Valid() || b.Occupied(dst) {
					break
				}
				pa.Moves = appendUnique(pa.Moves, dst)
			}
		}
		for _, dCol := range [2]int{-1, 1} {
			if dst := f.Pos.Offset(0, dCol); dst.Valid() && !b.Occupied(dst) {
				pa.Moves = appendUnique(pa.Moves, dst)
			}
		}
		for _, d := range diagonal {
			pa.Captures = appendEnemy(b, f, pa.Captures, step(f.Pos, d, 1))
		}
	} else {
		for _, d := range orthogonal {
			if dst := step(f.Pos, d, 1); dst.Valid() && !b.Occupied(dst) {
				pa.Moves = appendUnique(pa.Moves, dst)
			}
		}
		for _, dCol := range [2]int{-1, 1} {
			pa.Captures = appendEnemy(b, f, pa.Captures, f.Pos.Offset(fwd, dCol))
		}
	}

	if !f.HasMoved {
		mid, dst := f.Pos.Offset(fwd, 0), f.Pos.Offset(2*fwd, 0)
		if dst.Valid() && !b.Occupied(mid) && !b.Occupied(dst) {
			pa.Moves = appendUnique(pa.Moves, dst)
		}
	}

	for _, d := range orthogonal {
		target, ok := b.Get(step(f.Pos, d, 1))
		if !ok || target.Owner == f.Owner {
			continue
		}
		landing := step(f.Pos, d, 2)
		if !landing.Valid() || b.Occupied(landing) {
			continue
		}
		if gs.retaliates(f.Owner, target) {
			continue
		}
		pa.Pushbacks = append(pa.Pushbacks, PushTarget{TargetID: target.ID, From: target.Pos, Landing: landing})
	}
	return pa
}

// retaliates reports whether pushing target would answer the opponent's pushback from the previous turn.
func (gs *GameState) retaliates(mover Player, target Piece) bool {
	last := gs.LastPushback
	return last != nil && last.Player == mover.Opponent() && last.PusherID == target.ID
}

func appendEnemy(b *Board, mover Piece, list []Position, dst Position) []Position {
	if target, ok := b.Get(dst); ok && target.Owner != mover.Owner {
		return appendUnique(list, dst)
	}
	return list
}

// onPromotionRow reports whether a footman stands on the opponent's home row.
func onPromotionRow(p Piece) bool {
	return p.Type == Footman && p.Pos.Row == p.Owner.Opponent().HomeRow()
}
