package game

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	Rows = 11 // A..K
	Cols = 10 // 1..10

	RiverRow = 5 // row F
)

var ErrInvalidPosition = errors.New("invalid position")

// Position is a board square. Row 0 is row A, Col 0 is column 1.
type Position struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// At builds a position from its notation parts, e.g. At('F', 3).
func At(row byte, col int) Position {
	return Position{Row: int(row - 'A'), Col: col - 1}
}

// ParsePosition reads notation such as "F3" or "k10".
func ParsePosition(s string) (Position, error) {
	if len(s) < 2 || len(s) > 3 {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
	row := s[0]
	if row >= 'a' && row <= 'z' {
		row -= 'a' - 'A'
	}
	col, err := strconv.Atoi(s[1:])
	if err != nil {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
	p := At(row, col)
	if !p.Valid() {
		return Position{}, fmt.Errorf("%w: %q out of bounds", ErrInvalidPosition, s)
	}
	return p, nil
}

func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < Rows && p.Col >= 0 && p.Col < Cols
}

func (p Position) String() string {
	if !p.Valid() {
		return "??"
	}
	return fmt.Sprintf("%c%d", 'A'+p.Row, p.Col+1)
}

// Offset returns the position shifted by the given row and column deltas. The result may be off-board.
func (p Position) Offset(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// Light reports the checkerboard colour used by Player1.
func (p Position) Light() bool {
	return (p.Row+p.Col)%2 == 0
}

func IsRiver(p Position) bool {
	return p.Row == RiverRow
}

// CapturePoints are the four contested river squares, in board order.
var CapturePoints = [4]Position{
	{Row: RiverRow, Col: 1},
	{Row: RiverRow, Col: 3},
	{Row: RiverRow, Col: 6},
	{Row: RiverRow, Col: 8},
}

func IsCapturePoint(p Position) bool {
	if p.Row != RiverRow {
		return false
	}
	for _, cp := range CapturePoints {
		if cp == p {
			return true
		}
	}
	return false
}

type RiverStatus int

const (
	BehindRiver RiverStatus = iota
	AtRiver
	BeyondRiver
)

func (s RiverStatus) String() string {
	switch s {
	case BehindRiver:
		return "behind"
	case AtRiver:
		return "at"
	}
	return "beyond"
}

// GetRiverStatus orients the river relative to owner's direction of advance.
func GetRiverStatus(p Position, owner Player) RiverStatus {
	switch {
	case p.Row == RiverRow:
		return AtRiver
	case (p.Row-RiverRow)*owner.Forward() < 0:
		return BehindRiver
	}
	return BeyondRiver
}

// InHomeZone reports whether p lies within the owner's first three rows.
func InHomeZone(p Position, owner Player) bool {
	if owner == Player2 {
		return p.Row >= Rows-3
	}
	return p.Row < 3
}
