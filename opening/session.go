package opening

import (
	"riverwar/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Session follows the book for one logical game. Each side picks its line once, on its first
// book lookup, and keeps it until the game leaves the line. Sessions are not safe for
// concurrent use; one game owns one session.
type Session struct {
	ID        uuid.UUID
	book      *Book
	rng       *rand.Rand
	chosen    map[game.Player]*Line
	abandoned map[game.Player]bool
}

func NewSession(book *Book, seed int64) *Session {
	if book == nil {
		book = Default()
	}
	s := &Session{
		ID:   uuid.New(),
		book: book,
		rng:  rand.New(rand.NewSource(uint64(seed))),
	}
	s.Reset()
	return s
}

// Reset forgets the chosen lines so the session can serve a new game.
func (s *Session) Reset() {
	s.chosen = map[game.Player]*Line{}
	s.abandoned = map[game.Player]bool{}
}

// Line returns the line side is following, if any.
func (s *Session) Line(side game.Player) (Line, bool) {
	line, ok := s.chosen[side]
	if !ok || s.abandoned[side] {
		return Line{}, false
	}
	return *line, true
}

func (s *Session) Abandoned(side game.Player) bool {
	return s.abandoned[side]
}

// Next returns side's next book action for gs. It reports false when the book has nothing to
// offer: it is not side's ordinary turn, the line has run out, or the game has left the line.
// Leaving the line abandons the book for side for the rest of the game.
func (s *Session) Next(gs *game.GameState, side game.Player) (game.Action, bool) {
	if gs.Phase != game.PlayingPhase || gs.Turn != side || s.abandoned[side] {
		return game.Action{}, false
	}

	line, ok := s.chosen[side]
	if !ok {
		line = s.pick(gs, side)
		if line == nil {
			s.abandon(side, "", "no line matches the game so far")
			return game.Action{}, false
		}
		s.chosen[side] = line
		log.Debug().Str("session", s.ID.String()).Stringer("side", side).Str("line", line.Name).Msg("opening line chosen")
	}

	ply := len(gs.History)
	if !follows(gs.History, line.Plies) {
		s.abandon(side, line.Name, "game left the line")
		return game.Action{}, false
	}
	if ply >= len(line.Plies) {
		s.abandon(side, line.Name, "line exhausted")
		return game.Action{}, false
	}

	action, ok := resolve(gs, line.Plies[ply])
	if !ok {
		s.abandon(side, line.Name, "book ply "+line.Plies[ply].String()+" is not legal")
		return game.Action{}, false
	}
	return action, true
}

// pick draws a weighted line among those consistent with the game so far.
func (s *Session) pick(gs *game.GameState, side game.Player) *Line {
	lines := s.book.Lines(side)
	total := 0
	var candidates []int
	for i, line := range lines {
		if len(line.Plies) > len(gs.History) && follows(gs.History, line.Plies) {
			candidates = append(candidates, i)
			total += line.Weight
		}
	}
	if total == 0 {
		return nil
	}

	roll := s.rng.Intn(total)
	for _, i := range candidates {
		roll -= lines[i].Weight
		if roll < 0 {
			return &lines[i]
		}
	}
	return nil
}

func (s *Session) abandon(side game.Player, line, reason string) {
	s.abandoned[side] = true
	log.Debug().Str("session", s.ID.String()).Stringer("side", side).Str("line", line).Msgf("opening book abandoned: %s", reason)
}

// follows reports whether the played history is a prefix of the line.
func follows(history []game.Move, plies []Ply) bool {
	if len(history) > len(plies) {
		return false
	}
	for i, m := range history {
		if m.From != plies[i].From || m.To != plies[i].To {
			return false
		}
	}
	return true
}

// resolve maps a ply to the legal action it names. Pushbacks are never book moves.
func resolve(gs *game.GameState, ply Ply) (game.Action, bool) {
	piece, ok := gs.Board.Get(ply.From)
	if !ok || piece.Owner != gs.Turn {
		return game.Action{}, false
	}
	for _, a := range gs.Actions() {
		if a.PieceID == piece.ID && a.To == ply.To && a.Kind != game.PushbackAction {
			return a, true
		}
	}
	return game.Action{}, false
}
