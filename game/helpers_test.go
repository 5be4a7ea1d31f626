package game

// place puts a piece that has already moved on the named square.
func place(b *Board, id string, unit UnitType, owner Player, square string) Piece {
	p := Piece{ID: id, Type: unit, Owner: owner, HasMoved: true}
	b.Set(sq(square), p)
	got, _ := b.Get(sq(square))
	return got
}

func placeFresh(b *Board, id string, unit UnitType, owner Player, square string) Piece {
	p := Piece{ID: id, Type: unit, Owner: owner}
	b.Set(sq(square), p)
	got, _ := b.Get(sq(square))
	return got
}

func sq(s string) Position {
	p, err := ParsePosition(s)
	if err != nil {
		panic(err)
	}
	return p
}

func squares(names ...string) []Position {
	out := make([]Position, len(names))
	for i, n := range names {
		out[i] = sq(n)
	}
	return out
}

func actionsOf(gs *GameState, id string) PieceActions {
	piece, ok := gs.Board.Find(id)
	if !ok {
		panic("no piece " + id)
	}
	return pieceActions(gs, piece)
}
