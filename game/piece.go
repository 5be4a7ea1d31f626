package game

import "fmt"

type UnitType int

const (
	NoUnit UnitType = iota
	Footman
	Archer
	Knight
)

var unitNames = [...]string{"none", "footman", "archer", "knight"}

func (u UnitType) String() string {
	if u < 0 || int(u) >= len(unitNames) {
		return "unknown"
	}
	return unitNames[u]
}

// Piece is a unit on the board or in a captured pile. The zero value is an empty cell.
type Piece struct {
	ID       string   `json:"id" yaml:"id"`
	Type     UnitType `json:"type" yaml:"type"`
	Owner    Player   `json:"owner" yaml:"owner"`
	Pos      Position `json:"pos" yaml:"pos"`
	HasMoved bool     `json:"hasMoved" yaml:"hasMoved"`
}

func (p Piece) Empty() bool {
	return p.Type == NoUnit
}

func (p Piece) String() string {
	if p.Empty() {
		return "empty"
	}
	return fmt.Sprintf("%s %s %s@%s", p.Owner, p.Type, p.ID, p.Pos)
}

func pieceID(owner Player, unit UnitType, n int) string {
	return fmt.Sprintf("p%d-%s-%d", int(owner), unit, n)
}
