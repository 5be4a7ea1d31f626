package game

import "fmt"

// GameState is the full position. It is treated as immutable: Apply, Forfeit and
// FinalizeDraw return a fresh copy and never touch the receiver.
type GameState struct {
	Board                 Board              `json:"board"`
	Turn                  Player             `json:"turn"`
	History               []Move             `json:"history"`
	Captured              map[Player][]Piece `json:"captured"`      // keyed by the owner of the captured piece
	CapturePoints         map[string]Player  `json:"capturePoints"` // derived from occupancy
	InCheck               Player             `json:"inCheck"`
	LastPushback          *Pushback          `json:"lastPushback,omitempty"`
	HalfMovesSinceCapture int                `json:"halfMovesSinceCapture"`
	Phase                 Phase              `json:"phase"`
	Won                   Player             `json:"won"`
	Condition             WinCondition       `json:"condition"`
	PendingPromotion      *PendingPromotion  `json:"pendingPromotion,omitempty"`
	PendingRansom         *PendingRansom     `json:"pendingRansom,omitempty"`
}

// NewGame returns the starting position with Player1 to move.
func NewGame() *GameState {
	gs := &GameState{
		Board:    NewBoard(),
		Turn:     Player1,
		History:  []Move{},
		Captured: map[Player][]Piece{Player1: {}, Player2: {}},
		Phase:    PlayingPhase,
	}
	gs.refreshControl()
	return gs
}

// NewGameFromBoard starts a game from an arbitrary layout, used for puzzles and tests.
func NewGameFromBoard(b Board, turn Player) *GameState {
	gs := &GameState{
		Board:    b,
		Turn:     turn,
		History:  []Move{},
		Captured: map[Player][]Piece{Player1: {}, Player2: {}},
		Phase:    PlayingPhase,
	}
	gs.refreshControl()
	return gs
}

// Copy of the GameState. Slices are clipped so that appends on the copy never write into the original.
func (gs *GameState) Copy() *GameState {
	captured := make(map[Player][]Piece, len(gs.Captured))
	for owner, pieces := range gs.Captured {
		captured[owner] = pieces[:len(pieces):len(pieces)]
	}
	control := make(map[string]Player, len(gs.CapturePoints))
	for sq, owner := range gs.CapturePoints {
		control[sq] = owner
	}

	return &GameState{
		Board:                 gs.Board, // array copy
		Turn:                  gs.Turn,
		History:               gs.History[:len(gs.History):len(gs.History)],
		Captured:              captured,
		CapturePoints:         control,
		InCheck:               gs.InCheck,
		LastPushback:          gs.LastPushback, // never mutated once set
		HalfMovesSinceCapture: gs.HalfMovesSinceCapture,
		Phase:                 gs.Phase,
		Won:                   gs.Won,
		Condition:             gs.Condition,
		PendingPromotion:      gs.PendingPromotion,
		PendingRansom:         gs.PendingRansom,
	}
}

// Player returns the side to move.
func (gs *GameState) Player() Player {
	return gs.Turn
}

// Winner returns the winning side, NoPlayer while the game is running or drawn.
func (gs *GameState) Winner() Player {
	return gs.Won
}

// GameOver reports whether the game has ended, and if so who won and how.
func (gs *GameState) GameOver() (bool, Player, WinCondition) {
	return gs.Phase == EndedPhase, gs.Won, gs.Condition
}

// Apply validates the action against the current legal set and returns the resulting state.
func (gs *GameState) Apply(a Action) (*GameState, error) {
	if gs.Phase == EndedPhase {
		return nil, ErrGameEnded
	}
	switch a.Kind {
	case MoveAction, CaptureAction, PushbackAction, LongshotAction:
		if gs.Phase != PlayingPhase {
			return nil, fmt.Errorf("%w: %s during %s", ErrWrongPhase, a.Kind, gs.Phase)
		}
		return gs.applyPlay(a)
	case PromotionAction, DeclinePromotionAction:
		if gs.Phase != AwaitingPromotionPhase {
			return nil, fmt.Errorf("%w: %s during %s", ErrWrongPhase, a.Kind, gs.Phase)
		}
		return gs.applyPromotion(a)
	case RansomAction, DeclineRansomAction:
		if gs.Phase != AwaitingRansomPhase {
			return nil, fmt.Errorf("%w: %s during %s", ErrWrongPhase, a.Kind, gs.Phase)
		}
		return gs.applyRansom(a)
	}
	return nil, fmt.Errorf("%w: unknown action kind %d", ErrIllegalAction, a.Kind)
}

func (gs *GameState) applyPlay(a Action) (*GameState, error) {
	piece, ok := gs.Board.Find(a.PieceID)
	if !ok {
		return nil, fmt.Errorf("%w: piece %q is not on the board", ErrIllegalAction, a.PieceID)
	}
	if piece.Owner != gs.Turn {
		return nil, fmt.Errorf("%w: piece %q does not belong to %s", ErrIllegalAction, a.PieceID, gs.Turn)
	}
	if !pieceActions(gs, piece).Contains(a) {
		return nil, fmt.Errorf("%w: %s is not legal for %s", ErrIllegalAction, a, piece)
	}

	next := gs.Copy()
	record := Move{Kind: a.Kind, Player: gs.Turn, Piece: piece, From: piece.Pos, To: a.To}
	moved := piece
	moved.HasMoved = true
	next.LastPushback = nil

	switch a.Kind {
	case MoveAction:
		next.Board.Remove(piece.Pos)
		next.Board.Set(a.To, moved)
	case CaptureAction, LongshotAction:
		victim := next.Board.Remove(a.To)
		next.Board.Remove(piece.Pos)
		next.Board.Set(a.To, moved)
		next.Captured[victim.Owner] = append(next.Captured[victim.Owner], victim)
		record.Captured = &victim
	case PushbackAction:
		target, _ := next.Board.Find(a.TargetID)
		record.From = target.Pos
		record.Pushed = &target
		next.Board.Remove(target.Pos)
		shoved := target
		shoved.HasMoved = true
		next.Board.Set(a.To, shoved)
		next.LastPushback = &Pushback{Player: gs.Turn, PusherID: piece.ID, PushedID: target.ID}
	}

	if record.Captured != nil {
		next.HalfMovesSinceCapture = 0
	} else {
		next.HalfMovesSinceCapture++
	}
	next.History = append(next.History, record)

	if landed, _ := next.Board.Get(a.To); a.Kind != PushbackAction && onPromotionRow(landed) {
		next.Phase = AwaitingPromotionPhase
		next.PendingPromotion = &PendingPromotion{Player: gs.Turn, FootmanID: landed.ID, Pos: landed.Pos}
	}
	if piece.Type == Knight && record.Captured != nil && record.Captured.Type == Knight &&
		len(next.ransomChoices()) > 0 {
		next.Phase = AwaitingRansomPhase
		next.PendingRansom = &PendingRansom{Player: gs.Turn, KnightID: piece.ID}
	}

	next.afterAction()
	return next, nil
}

func (gs *GameState) applyPromotion(a Action) (*GameState, error) {
	pending := gs.PendingPromotion
	if pending == nil || pending.Player != gs.Turn || a.PieceID != pending.FootmanID {
		return nil, fmt.Errorf("%w: %s does not match the pending promotion", ErrIllegalAction, a)
	}
	footman, ok := gs.Board.Find(pending.FootmanID)
	if !ok {
		return nil, fmt.Errorf("%w: promoting footman %q is gone", ErrIllegalAction, pending.FootmanID)
	}

	next := gs.Copy()
	next.PendingPromotion = nil
	next.Phase = PlayingPhase
	record := Move{Kind: a.Kind, Player: gs.Turn, Piece: footman, From: footman.Pos, To: footman.Pos}

	if a.Kind == PromotionAction {
		revived, err := next.resurrect(a, func(Piece) bool { return true })
		if err != nil {
			return nil, err
		}
		next.Board.Remove(footman.Pos)
		next.Board.Set(a.To, revived)
		record.To = a.To
		record.Promoted = &revived
	}

	next.History = append(next.History, record)
	next.afterAction()
	return next, nil
}

func (gs *GameState) applyRansom(a Action) (*GameState, error) {
	pending := gs.PendingRansom
	if pending == nil || pending.Player != gs.Turn || a.PieceID != pending.KnightID {
		return nil, fmt.Errorf("%w: %s does not match the pending ransom", ErrIllegalAction, a)
	}
	knight, ok := gs.Board.Find(pending.KnightID)
	if !ok {
		return nil, fmt.Errorf("%w: ransoming knight %q is gone", ErrIllegalAction, pending.KnightID)
	}

	next := gs.Copy()
	next.PendingRansom = nil
	next.Phase = PlayingPhase
	record := Move{Kind: a.Kind, Player: gs.Turn, Piece: knight, From: knight.Pos, To: knight.Pos}

	if a.Kind == RansomAction {
		revived, err := next.resurrect(a, ransomable)
		if err != nil {
			return nil, err
		}
		next.Board.Set(a.To, revived)
		record.To = a.To
		record.Ransomed = &revived
	}

	next.History = append(next.History, record)
	next.afterAction()
	return next, nil
}

// resurrect takes the referenced piece out of the mover's captured pile after checking the placement.
// The caller places it on the board.
func (gs *GameState) resurrect(a Action, eligible func(Piece) bool) (Piece, error) {
	pile := gs.Captured[gs.Turn]
	idx := -1
	for i, p := range pile {
		if p.ID == a.TargetID {
			idx = i
			break
		}
	}
	if idx < 0 || !eligible(pile[idx]) {
		return Piece{}, fmt.Errorf("%w: %q is not an eligible captured piece", ErrIllegalAction, a.TargetID)
	}
	if !a.To.Valid() || !InHomeZone(a.To, gs.Turn) || gs.Board.Occupied(a.To) {
		return Piece{}, fmt.Errorf("%w: cannot place a resurrected piece on %s", ErrIllegalAction, a.To)
	}

	rest := make([]Piece, 0, len(pile)-1)
	rest = append(rest, pile[:idx]...)
	rest = append(rest, pile[idx+1:]...)
	gs.Captured[gs.Turn] = rest

	revived := pile[idx]
	revived.HasMoved = false
	revived.Pos = a.To
	return revived, nil
}

func ransomable(p Piece) bool {
	return p.Type == Footman || p.Type == Archer
}

// ransomChoices lists the captured pieces the side to move could ransom, provided there is room to place them.
func (gs *GameState) ransomChoices() []Piece {
	if len(gs.emptyHomeSquares(gs.Turn)) == 0 {
		return nil
	}
	var choices []Piece
	for _, p := range gs.Captured[gs.Turn] {
		if ransomable(p) {
			choices = append(choices, p)
		}
	}
	return choices
}

func (gs *GameState) emptyHomeSquares(owner Player) []Position {
	var squares []Position
	for i := 0; i < 3; i++ {
		row := owner.HomeRow() + i*owner.Forward()
		for col := 0; col < Cols; col++ {
			if p := (Position{Row: row, Col: col}); !gs.Board.Occupied(p) {
				squares = append(squares, p)
			}
		}
	}
	return squares
}

// Forfeit ends the game in favour of player's opponent.
func (gs *GameState) Forfeit(player Player) (*GameState, error) {
	if gs.Phase == EndedPhase {
		return nil, ErrGameEnded
	}
	if player != Player1 && player != Player2 {
		return nil, fmt.Errorf("%w: cannot forfeit as %s", ErrIllegalAction, player)
	}
	next := gs.Copy()
	next.end(player.Opponent(), Forfeit)
	return next, nil
}

// FinalizeDraw unconditionally ends the game without a winner. Offering and accepting
// draws is up to the caller.
func (gs *GameState) FinalizeDraw() (*GameState, error) {
	if gs.Phase == EndedPhase {
		return nil, ErrGameEnded
	}
	next := gs.Copy()
	next.end(NoPlayer, Draw)
	return next, nil
}

func (gs *GameState) end(winner Player, condition WinCondition) {
	gs.Phase = EndedPhase
	gs.Won = winner
	gs.Condition = condition
	gs.PendingPromotion = nil
	gs.PendingRansom = nil
}
