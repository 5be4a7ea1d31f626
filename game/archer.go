package game

const (
	longshotForwardRange  = 3
	longshotSidewaysRange = 2
)

// archerActions never lands on an occupied square except through a longshot.
func archerActions(b *Board, a Piece) PieceActions {
	pa := PieceActions{Piece: a}

	if GetRiverStatus(a.Pos, a.Owner) == BeyondRiver {
		for _, d := range allEight {
			if dst := step(a.Pos, d, 1); dst.Valid() && !b.Occupied(dst) {
				pa.Moves = append(pa.Moves, dst)
			}
		}
	} else {
		for _, d := range orthogonal {
			for n := 1; n <= 2; n++ {
				dst := step(a.Pos, d, n)
				if !dst.Valid() || b.Occupied(dst) {
					break
				}
				pa.Moves = append(pa.Moves, dst)
			}
		}
		for _, d := range diagonal {
			if dst := step(a.Pos, d, 1); dst.Valid() && !b.Occupied(dst) {
				pa.Moves = append(pa.Moves, dst)
			}
		}
	}

	lines := [3]struct {
		dir   Direction
		reach int
	}{
		{Direction{a.Owner.Forward(), 0}, longshotForwardRange},
		{Direction{0, -1}, longshotSidewaysRange},
		{Direction{0, 1}, longshotSidewaysRange},
	}
	for _, line := range lines {
		if target, ok := longshotTarget(b, a, line.dir, line.reach); ok {
			pa.Longshots = append(pa.Longshots, target)
		}
	}
	return pa
}

// longshotTarget walks one line and returns the enemy square behind exactly one screen.
func longshotTarget(b *Board, a Piece, dir Direction, reach int) (Position, bool) {
	screens := 0
	for n := 1; n <= reach; n++ {
		sq := step(a.Pos, dir, n)
		if !sq.Valid() {
			break
		}
		piece, ok := b.Get(sq)
		if !ok {
			continue
		}
		if screens == 1 && n >= 2 && piece.Owner != a.Owner {
			return sq, true
		}
		screens++
		if screens > 1 {
			break
		}
	}
	return Position{}, false
}
