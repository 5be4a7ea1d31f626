package engine

import (
	"riverwar/experiments/metrics"
	"riverwar/game"
)

type Engine interface {
	// Run plays a game till there's a winner or the game is adjudicated a draw
	Run() (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
