package game

// Board is a value type: assigning a Board copies every cell.
type Board [Rows][Cols]Piece

// Get returns the piece at p and whether the cell is occupied. Off-board positions are empty.
func (b *Board) Get(p Position) (Piece, bool) {
	if !p.Valid() {
		return Piece{}, false
	}
	piece := b[p.Row][p.Col]
	return piece, !piece.Empty()
}

func (b *Board) Occupied(p Position) bool {
	_, ok := b.Get(p)
	return ok
}

// Set places a piece on p, rewriting its stored position to match.
func (b *Board) Set(p Position, piece Piece) {
	piece.Pos = p
	b[p.Row][p.Col] = piece
}

// Remove clears p and returns what was there.
func (b *Board) Remove(p Position) Piece {
	piece := b[p.Row][p.Col]
	b[p.Row][p.Col] = Piece{}
	return piece
}

// Find locates a piece by id.
func (b *Board) Find(id string) (Piece, bool) {
	for r := range b {
		for c := range b[r] {
			if piece := b[r][c]; !piece.Empty() && piece.ID == id {
				return piece, true
			}
		}
	}
	return Piece{}, false
}

// Pieces lists the pieces owned by player, or every piece for NoPlayer, in board order.
func (b *Board) Pieces(player Player) []Piece {
	pieces := make([]Piece, 0, 15)
	for r := range b {
		for c := range b[r] {
			piece := b[r][c]
			if piece.Empty() {
				continue
			}
			if player == NoPlayer || piece.Owner == player {
				pieces = append(pieces, piece)
			}
		}
	}
	return pieces
}

func (b *Board) Count(player Player) int {
	n := 0
	for r := range b {
		for c := range b[r] {
			if piece := b[r][c]; !piece.Empty() && piece.Owner == player {
				n++
			}
		}
	}
	return n
}

// NewBoard lays out the starting position: knights on the home row, archers on the second,
// footmen on the third, each side on its own colour.
func NewBoard() Board {
	var b Board
	layout := [3]UnitType{Knight, Archer, Footman}
	for _, owner := range []Player{Player1, Player2} {
		counts := map[UnitType]int{}
		for i, unit := range layout {
			row := owner.HomeRow() + i*owner.Forward()
			for col := 0; col < Cols; col++ {
				pos := Position{Row: row, Col: col}
				if pos.Light() != (owner == Player1) {
					continue
				}
				counts[unit]++
				b.Set(pos, Piece{ID: pieceID(owner, unit, counts[unit]), Type: unit, Owner: owner})
			}
		}
	}
	return b
}
