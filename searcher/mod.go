package searcher

import (
	"errors"

	"riverwar/experiments/metrics"
	"riverwar/game"
)

var ErrNoLegalActions = errors.New("no legal actions")

// DefaultDepth is used when no depth option is given.
const DefaultDepth = 3

// Result is the outcome of one move search.
type Result struct {
	Action  game.Action
	Score   float64 // from the searching side's perspective
	Depth   int     // deepest iteration that contributed the action; 0 for book moves
	Book    bool
	Metrics metrics.SearchMetric
}

// mateScore is the value of a win found ply half-moves below the root. Nearer wins score higher.
func mateScore(ply int) float64 {
	return game.WinScore - float64(ply)
}
