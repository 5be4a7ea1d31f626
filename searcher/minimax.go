package searcher

import (
	"fmt"
	"math"
	"time"

	"riverwar/bots"
	"riverwar/experiments/metrics"
	"riverwar/game"
	"riverwar/opening"
	"riverwar/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(m *Minimax)

// Minimax is a depth-limited alpha-beta searcher with iterative deepening and an optional
// wall-clock budget. A Minimax is not safe for concurrent use.
type Minimax struct {
	depth         int
	duration      time.Duration
	weights       game.Weights
	randomness    float64
	hasRandomness bool
	seed          int64
	evaluate      game.Evaluator
	book          *opening.Session
	metrics       metrics.Collector
	rng           *rand.Rand
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithDuration bounds each FindMove call. Zero means no deadline.
func WithDuration(duration time.Duration) Option {
	return func(m *Minimax) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithWeights(weights game.Weights) Option {
	return func(m *Minimax) {
		m.weights = weights
	}
}

// WithRandomness sets the half-width of the evaluation noise, whatever the weights say.
func WithRandomness(randomness float64) Option {
	return func(m *Minimax) {
		m.randomness = randomness
		m.hasRandomness = true
	}
}

func WithSeed(seed int64) Option {
	return func(m *Minimax) {
		m.seed = seed
	}
}

// WithEvaluationFn replaces the weighted evaluation.
func WithEvaluationFn(evaluate game.Evaluator) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithBook(session *opening.Session) Option {
	return func(m *Minimax) {
		m.book = session
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:   DefaultDepth,
		weights: game.DefaultWeights(),
		seed:    time.Now().UnixNano(),
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.hasRandomness {
		m.weights.Randomness = m.randomness
	}
	m.rng = rand.New(rand.NewSource(uint64(m.seed)))
	if m.evaluate == nil {
		weights, rng := m.weights, m.rng
		m.evaluate = func(gs *game.GameState, side game.Player) float64 {
			return game.Evaluate(gs, side, weights, rng)
		}
	}
	return m
}

// NewFromProfile configures a searcher from a bot profile. Later options override the profile.
func NewFromProfile(profile bots.Profile, options ...Option) *Minimax {
	base := []Option{
		WithDepth(profile.Depth),
		WithDuration(profile.TimeBudget),
		WithWeights(profile.Weights),
		WithRandomness(profile.Randomness),
	}
	return NewMinimax(append(base, options...)...)
}

// Search picks an action for the side to move in state. Profiles that use the opening book
// consult session first; session may be nil.
func Search(state *game.GameState, profile bots.Profile, session *opening.Session, options ...Option) (Result, error) {
	if profile.OpeningBook && session != nil {
		options = append(options, WithBook(session))
	}
	return NewFromProfile(profile, options...).FindMove(state)
}

// FindMove searches state for the side to move.
func (m *Minimax) FindMove(state *game.GameState) (Result, error) {
	if over, _, _ := state.GameOver(); over {
		return Result{}, game.ErrGameEnded
	}

	m.metrics.Start(m.depth, m.duration)

	if m.book != nil {
		if action, ok := m.book.Next(state, state.Turn); ok {
			m.metrics.SetBook()
			return Result{Action: action, Book: true, Metrics: m.metrics.Complete()}, nil
		}
	}

	actions := orderActions(state, dedupe(state, state.Actions()))
	if len(actions) == 0 {
		return Result{}, fmt.Errorf("%w: %s to move in phase %s", ErrNoLegalActions, state.Turn, state.Phase)
	}

	s := &search{
		side:     state.Turn,
		evaluate: m.evaluate,
		metrics:  m.metrics,
	}
	if m.duration > 0 {
		s.deadline = time.Now().Add(m.duration)
	}

	best := Result{Action: actions[0], Score: math.Inf(-1)}
	for depth := 1; depth <= m.depth; depth++ {
		action, score, searched := s.root(state, actions, depth)
		if searched == 0 {
			break
		}
		best.Action, best.Score, best.Depth = action, score, depth
		m.metrics.SetDepthReached(depth)
		log.Debug().Int("depth", depth).Int("searched", searched).Stringer("action", action).Float64("score", score).Msg("iteration complete")

		// Stop on timeout or once the outcome is forced either way.
		if s.timedOut || utils.Abs(score) >= game.WinScore/2 {
			break
		}
		actions = promote(actions, action)
	}
	if best.Depth == 0 {
		best.Score = s.evaluate(state, s.side)
	}

	best.Metrics = m.metrics.Complete()
	return best, nil
}

// promote moves the previous iteration's best action to the front.
func promote(actions []game.Action, first game.Action) []game.Action {
	i := utils.FindIndex(actions, first)
	if i <= 0 {
		return actions
	}
	out := make([]game.Action, 0, len(actions))
	out = append(out, first)
	out = append(out, actions[:i]...)
	return append(out, actions[i+1:]...)
}

type search struct {
	side     game.Player
	evaluate game.Evaluator
	metrics  metrics.Collector
	deadline time.Time
	timedOut bool
}

func (s *search) expired() bool {
	if s.timedOut {
		return true
	}
	if !s.deadline.IsZero() && time.Now().After(s.deadline) {
		s.timedOut = true
		s.metrics.SetTimedOut()
	}
	return s.timedOut
}

// root searches every root action to depth and returns the best one among those whose subtree
// finished before the deadline.
func (s *search) root(state *game.GameState, actions []game.Action, depth int) (game.Action, float64, int) {
	alpha, beta := math.Inf(-1), math.Inf(1)
	bestScore := math.Inf(-1)
	var best game.Action
	searched := 0

	for _, a := range actions {
		if s.expired() {
			break
		}
		child := apply(state, a)
		score := s.alphaBeta(child, childDepth(child, depth), 1, alpha, beta)
		if s.timedOut {
			break
		}
		searched++
		if score > bestScore {
			bestScore, best = score, a
		}
		alpha = max(alpha, score)
	}
	return best, bestScore, searched
}

// alphaBeta scores gs from the root side's perspective. Nodes where the root side moves
// maximise, the others minimise.
func (s *search) alphaBeta(gs *game.GameState, depth, ply int, alpha, beta float64) float64 {
	s.metrics.AddNode()

	if over, winner, _ := gs.GameOver(); over {
		switch winner {
		case s.side:
			return mateScore(ply)
		case game.NoPlayer:
			return 0
		}
		return -mateScore(ply)
	}
	if s.expired() || (depth <= 0 && !pending(gs)) {
		return s.evaluate(gs, s.side)
	}

	actions := orderActions(gs, dedupe(gs, gs.Actions()))
	if len(actions) == 0 {
		return s.evaluate(gs, s.side)
	}

	maximizing := gs.Turn == s.side
	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}
	for _, a := range actions {
		child := apply(gs, a)
		score := s.alphaBeta(child, childDepth(child, depth), ply+1, alpha, beta)
		if maximizing {
			best = max(best, score)
			alpha = max(alpha, best)
		} else {
			best = min(best, score)
			beta = min(beta, best)
		}
		if alpha >= beta {
			s.metrics.AddCutoff()
			break
		}
		if s.timedOut {
			break
		}
	}
	return best
}

// pending reports whether the side to move owes a promotion or ransom decision.
func pending(gs *game.GameState) bool {
	return gs.PendingPromotion != nil || gs.PendingRansom != nil
}

// childDepth keeps the depth for a child that is a sub-decision of the same turn.
func childDepth(child *game.GameState, depth int) int {
	if pending(child) {
		return depth
	}
	return depth - 1
}

func apply(gs *game.GameState, a game.Action) *game.GameState {
	child, err := gs.Apply(a)
	if err != nil {
		panic(fmt.Sprintf("generated action %s was rejected: %v", a, err))
	}
	return child
}
