package game

import "fmt"

// Player identifies a side. Player1 moves first and advances from row A towards row K.
type Player int

const (
	NoPlayer Player = iota
	Player1
	Player2
)

func (p Player) String() string {
	switch p {
	case Player1, Player2:
		return fmt.Sprintf("Player%d", int(p))
	}
	return "None"
}

// Opponent returns the other side.
func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return NoPlayer
}

// Forward is the row delta of a step towards the opponent's home row.
func (p Player) Forward() int {
	if p == Player2 {
		return -1
	}
	return 1
}

// HomeRow is the first row on the player's own side.
func (p Player) HomeRow() int {
	if p == Player2 {
		return Rows - 1
	}
	return 0
}

type Phase int

const (
	PlayingPhase Phase = iota
	AwaitingPromotionPhase
	AwaitingRansomPhase
	EndedPhase
)

func (p Phase) String() string {
	switch p {
	case PlayingPhase:
		return "playing"
	case AwaitingPromotionPhase:
		return "awaiting-promotion"
	case AwaitingRansomPhase:
		return "awaiting-ransom"
	case EndedPhase:
		return "ended"
	}
	return "unknown"
}

type WinCondition int

const (
	NoCondition WinCondition = iota
	Annihilation
	Checkmate
	Forfeit
	Draw
	Stalemate
)

func (c WinCondition) String() string {
	switch c {
	case Annihilation:
		return "annihilation"
	case Checkmate:
		return "checkmate"
	case Forfeit:
		return "forfeit"
	case Draw:
		return "draw"
	case Stalemate:
		return "stalemate"
	}
	return "none"
}

// Evaluator scores a state from the given side's perspective, positive meaning favorable.
type Evaluator func(gs *GameState, side Player) float64
