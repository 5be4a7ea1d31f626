package engine

import (
	"fmt"
	"time"

	"riverwar/bots"
	"riverwar/experiments/metrics"
	"riverwar/game"
	"riverwar/meta"
	"riverwar/opening"
	"riverwar/searcher"

	"github.com/rs/zerolog/log"
)

type Option func(e *LocalGame)

// LocalGame plays two bot profiles against each other in process.
type LocalGame struct {
	State          *game.GameState
	Profiles       map[game.Player]bots.Profile
	sessions       map[game.Player]*opening.Session
	maxTurns       int
	quietMoveLimit int
	seed           int64
	searchOptions  []searcher.Option
}

func WithMaxTurns(turns int) Option {
	return func(e *LocalGame) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// WithQuietMoveLimit sets how many half-moves without a capture draw the game. Zero disables it.
func WithQuietMoveLimit(limit int) Option {
	return func(e *LocalGame) {
		e.quietMoveLimit = limit
	}
}

func WithSeed(seed int64) Option {
	return func(e *LocalGame) {
		e.seed = seed
	}
}

// WithState starts from a given position instead of the initial one.
func WithState(state *game.GameState) Option {
	return func(e *LocalGame) {
		if state != nil {
			e.State = state
		}
	}
}

// WithSearchOptions are applied after each profile's own settings.
func WithSearchOptions(options ...searcher.Option) Option {
	return func(e *LocalGame) {
		e.searchOptions = append(e.searchOptions, options...)
	}
}

func LocalEngine(p1, p2 bots.Profile, options ...Option) *LocalGame {
	e := &LocalGame{ // Default values
		State:          game.NewGame(),
		Profiles:       map[game.Player]bots.Profile{game.Player1: p1, game.Player2: p2},
		maxTurns:       meta.MaxTurns,
		quietMoveLimit: meta.QuietMoveLimit,
		seed:           meta.DefaultSeed,
	}
	for _, option := range options {
		option(e)
	}
	e.sessions = map[game.Player]*opening.Session{
		game.Player1: opening.NewSession(nil, e.seed),
		game.Player2: opening.NewSession(nil, e.seed+1),
	}
	return e
}

// Run executes the entire game loop. Sub-decisions count as turns.
func (e *LocalGame) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Turn,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s (%s) vs %s (%s), %s to start",
		game.Player1, e.Profiles[game.Player1].ID, game.Player2, e.Profiles[game.Player2].ID, e.State.Turn)

	for turn := 1; ; turn++ {
		if over, _, _ := e.State.GameOver(); over {
			break
		}
		if turn > e.maxTurns {
			log.Info().Msgf("stopped after %d turns, drawing the game", e.maxTurns)
			e.draw()
			break
		}
		if e.quietMoveLimit > 0 && e.State.HalfMovesSinceCapture >= e.quietMoveLimit {
			log.Info().Msgf("%d half-moves without a capture, drawing the game", e.State.HalfMovesSinceCapture)
			e.draw()
			break
		}

		player := e.State.Turn
		options := append([]searcher.Option{searcher.WithSeed(e.seed + int64(turn)), searcher.WithMetrics()}, e.searchOptions...)
		result, err := searcher.Search(e.State, e.Profiles[player], e.sessions[player], options...)
		if err != nil {
			return game.NoPlayer, gameMetric, moveMetrics, fmt.Errorf("turn %d: %w", turn, err)
		}
		next, err := e.State.Apply(result.Action)
		if err != nil {
			return game.NoPlayer, gameMetric, moveMetrics, fmt.Errorf("turn %d: %w", turn, err)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       player,
			Action:       result.Action.String(),
			Score:        result.Score,
			SearchMetric: result.Metrics,
		})
		log.Debug().
			Int("turn", turn).
			Stringer("player", player).
			Stringer("action", result.Action).
			Float64("score", result.Score).
			Int("depth", result.Depth).
			Bool("book", result.Book).
			Msg("played")

		e.State = next
	}

	_, winner, condition := e.State.GameOver()
	gameMetric.Winner = winner
	gameMetric.Condition = condition
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	log.Info().Msgf("game over after %d moves: winner %s by %s", gameMetric.TotalMoves, winner, condition)
	return winner, gameMetric, moveMetrics, nil
}

func (e *LocalGame) draw() {
	drawn, err := e.State.FinalizeDraw()
	if err != nil {
		panic(fmt.Sprintf("failed to draw a live game: %v", err))
	}
	e.State = drawn
}
