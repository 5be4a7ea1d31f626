package game

// LegalActions returns the per-piece action bundles for player, skipping pieces that cannot act.
// It ignores whose turn it is so evaluation can measure both sides.
func (gs *GameState) LegalActions(player Player) []PieceActions {
	var bundles []PieceActions
	for _, piece := range gs.Board.Pieces(player) {
		if pa := pieceActions(gs, piece); pa.Len() > 0 {
			bundles = append(bundles, pa)
		}
	}
	return bundles
}

// HasLegalAction stops at the first piece with something to do.
func (gs *GameState) HasLegalAction(player Player) bool {
	for _, piece := range gs.Board.Pieces(player) {
		if pieceActions(gs, piece).Len() > 0 {
			return true
		}
	}
	return false
}

// Actions is the unified generator for the side to move: ordinary actions while playing,
// resurrection choices plus a decline while a promotion or ransom is pending, nothing once ended.
func (gs *GameState) Actions() []Action {
	switch gs.Phase {
	case PlayingPhase:
		var actions []Action
		for _, pa := range gs.LegalActions(gs.Turn) {
			actions = append(actions, pa.Actions()...)
		}
		return actions
	case AwaitingPromotionPhase:
		p := gs.PendingPromotion
		actions := gs.resurrectionActions(PromotionAction, p.FootmanID, gs.Captured[gs.Turn])
		return append(actions, Action{Kind: DeclinePromotionAction, PieceID: p.FootmanID, To: p.Pos})
	case AwaitingRansomPhase:
		p := gs.PendingRansom
		knight, _ := gs.Board.Find(p.KnightID)
		actions := gs.resurrectionActions(RansomAction, p.KnightID, gs.ransomChoices())
		return append(actions, Action{Kind: DeclineRansomAction, PieceID: p.KnightID, To: knight.Pos})
	}
	return nil
}

func (gs *GameState) resurrectionActions(kind ActionKind, actor string, pile []Piece) []Action {
	squares := gs.emptyHomeSquares(gs.Turn)
	actions := make([]Action, 0, len(pile)*len(squares)+1)
	for _, revived := range pile {
		for _, sq := range squares {
			actions = append(actions, Action{Kind: kind, PieceID: actor, To: sq, TargetID: revived.ID})
		}
	}
	return actions
}
