package game

// knightActions walks each 2-tile leg and bends once. An occupied first tile cuts the leg.
func knightActions(b *Board, k Piece) PieceActions {
	pa := PieceActions{Piece: k}
	for _, d := range orthogonal {
		first := step(k.Pos, d, 1)
		if !first.Valid() || b.Occupied(first) {
			continue
		}
		bend := step(k.Pos, d, 2)
		perp := [2]Direction{{d.DCol, d.DRow}, {-d.DCol, -d.DRow}}
		for _, p := range perp {
			dst := step(bend, p, 1)
			if !dst.Valid() {
				continue
			}
			target, ok := b.Get(dst)
			switch {
			case !ok:
				pa.Moves = append(pa.Moves, dst)
			case target.Owner != k.Owner:
				pa.Captures = append(pa.Captures, dst)
			}
		}
	}
	return pa
}
