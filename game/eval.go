package game

import "golang.org/x/exp/rand"

// WinScore is the magnitude returned for decided games.
const WinScore = 100000.0

// UnitValues is the material worth of each unit type.
var UnitValues = map[UnitType]float64{
	Footman: 100,
	Archer:  300,
	Knight:  320,
}

// Weights scale the evaluation terms. A zero weight skips the term entirely.
type Weights struct {
	Material             float64 `yaml:"material"`
	CapturePoint         float64 `yaml:"capturePoint"`
	CapturePointPair     float64 `yaml:"capturePointPair"`   // bonus when exactly two points are held
	CapturePointTriple   float64 `yaml:"capturePointTriple"` // bonus when three or more are held
	Center               float64 `yaml:"center"`
	FootmanAdvance       float64 `yaml:"footmanAdvance"`
	ArcherAdvance        float64 `yaml:"archerAdvance"`
	KnightAdvance        float64 `yaml:"knightAdvance"`
	Mobility             float64 `yaml:"mobility"`
	LongshotThreat       float64 `yaml:"longshotThreat"`
	PushbackAvailability float64 `yaml:"pushbackAvailability"`
	PromotionProximity   float64 `yaml:"promotionProximity"`
	BackRowDefense       float64 `yaml:"backRowDefense"`
	CapturedAsymmetry    float64 `yaml:"capturedAsymmetry"`
	FootmanProtection    float64 `yaml:"footmanProtection"`
	FootmanIsolation     float64 `yaml:"footmanIsolation"`
	Randomness           float64 `yaml:"randomness"` // half-width of the uniform noise term
}

func DefaultWeights() Weights {
	return Weights{
		Material:             1,
		CapturePoint:         40,
		CapturePointPair:     30,
		CapturePointTriple:   120,
		Center:               6,
		FootmanAdvance:       8,
		ArcherAdvance:        5,
		KnightAdvance:        4,
		Mobility:             1.5,
		LongshotThreat:       12,
		PushbackAvailability: 4,
		PromotionProximity:   20,
		BackRowDefense:       5,
		CapturedAsymmetry:    10,
		FootmanProtection:    6,
		FootmanIsolation:     4,
	}
}

// Evaluate scores gs from side's perspective. Decided games short-circuit to ±WinScore or 0;
// the random term only applies to live positions and only when rng is non-nil.
func Evaluate(gs *GameState, side Player, w Weights, rng *rand.Rand) float64 {
	if gs.Phase == EndedPhase {
		switch gs.Won {
		case side:
			return WinScore
		case NoPlayer:
			return 0
		}
		return -WinScore
	}

	opp := side.Opponent()
	score := 0.0

	if w.Material != 0 {
		score += w.Material * (MaterialScore(gs, side) - MaterialScore(gs, opp))
	}
	if w.CapturePoint != 0 || w.CapturePointPair != 0 || w.CapturePointTriple != 0 {
		score += CapturePointScore(gs, side, w) - CapturePointScore(gs, opp, w)
	}
	if w.Center != 0 {
		score += w.Center * float64(centerCount(gs, side)-centerCount(gs, opp))
	}
	if w.FootmanAdvance != 0 || w.ArcherAdvance != 0 || w.KnightAdvance != 0 {
		score += riverAdvance(gs, side, w) - riverAdvance(gs, opp, w)
	}
	if w.Mobility != 0 || w.LongshotThreat != 0 || w.PushbackAvailability != 0 {
		mine, theirs := tallyActions(gs.LegalActions(side)), tallyActions(gs.LegalActions(opp))
		score += w.Mobility * (mine.mobility - theirs.mobility)
		score += w.LongshotThreat * float64(mine.longshots-theirs.longshots)
		score += w.PushbackAvailability * float64(mine.pushbacks-theirs.pushbacks)
	}
	if w.PromotionProximity != 0 {
		score += w.PromotionProximity * (promotionProximity(gs, side) - promotionProximity(gs, opp))
	}
	if w.BackRowDefense != 0 {
		score += w.BackRowDefense * float64(backRowCount(gs, side)-backRowCount(gs, opp))
	}
	if w.CapturedAsymmetry != 0 {
		score += w.CapturedAsymmetry * float64(len(gs.Captured[opp])-len(gs.Captured[side]))
	}
	if w.FootmanProtection != 0 || w.FootmanIsolation != 0 {
		score += footmanStructure(gs, side, w) - footmanStructure(gs, opp, w)
	}
	if w.Randomness > 0 && rng != nil {
		score += (rng.Float64()*2 - 1) * w.Randomness
	}
	return score
}

// MaterialScore sums the unit values of player's pieces on the board.
func MaterialScore(gs *GameState, player Player) float64 {
	total := 0.0
	for _, p := range gs.Board.Pieces(player) {
		total += UnitValues[p.Type]
	}
	return total
}

// CapturePointScore is player's own capture-point term: a per-point value plus one tier bonus.
func CapturePointScore(gs *GameState, player Player, w Weights) float64 {
	held := gs.ControlCount(player)
	score := w.CapturePoint * float64(held)
	switch {
	case held >= checkThreshold:
		score += w.CapturePointTriple
	case held == 2:
		score += w.CapturePointPair
	}
	return score
}

func centerCount(gs *GameState, player Player) int {
	n := 0
	for _, p := range gs.Board.Pieces(player) {
		if p.Pos.Col >= 3 && p.Pos.Col <= 6 {
			n++
		}
	}
	return n
}

func riverAdvance(gs *GameState, player Player, w Weights) float64 {
	total := 0.0
	for _, p := range gs.Board.Pieces(player) {
		var progress float64
		switch GetRiverStatus(p.Pos, player) {
		case AtRiver:
			progress = 0.5
		case BeyondRiver:
			progress = 1
		default:
			continue
		}
		switch p.Type {
		case Footman:
			total += w.FootmanAdvance * progress
		case Archer:
			total += w.ArcherAdvance * progress
		case Knight:
			total += w.KnightAdvance * progress
		}
	}
	return total
}

type actionTally struct {
	mobility  float64
	longshots int
	pushbacks int
}

func tallyActions(bundles []PieceActions) actionTally {
	var t actionTally
	for _, pa := range bundles {
		n := float64(pa.Len())
		if pa.Piece.Type == Knight {
			n *= 2
		}
		t.mobility += n
		t.longshots += len(pa.Longshots)
		t.pushbacks += len(pa.Pushbacks)
	}
	return t
}

// promotionProximity is the summed fraction of the board each footman has covered.
func promotionProximity(gs *GameState, player Player) float64 {
	total := 0.0
	for _, p := range gs.Board.Pieces(player) {
		if p.Type != Footman {
			continue
		}
		travelled := (p.Pos.Row - player.HomeRow()) * player.Forward()
		total += float64(travelled) / float64(Rows-1)
	}
	return total
}

func backRowCount(gs *GameState, player Player) int {
	n := 0
	for _, p := range gs.Board.Pieces(player) {
		if p.Pos.Row == player.HomeRow() {
			n++
		}
	}
	return n
}

// footmanStructure rewards footmen backed diagonally by a friend and penalises footmen with no
// neighbouring friendly footman.
func footmanStructure(gs *GameState, player Player, w Weights) float64 {
	total := 0.0
	back := -player.Forward()
	for _, p := range gs.Board.Pieces(player) {
		if p.Type != Footman {
			continue
		}
		for _, dCol := range [2]int{-1, 1} {
			if friend, ok := gs.Board.Get(p.Pos.Offset(back, dCol)); ok && friend.Owner == player {
				total += w.FootmanProtection
				break
			}
		}
		isolated := true
		for _, d := range allEight {
			if friend, ok := gs.Board.Get(step(p.Pos, d, 1)); ok && friend.Owner == player && friend.Type == Footman {
				isolated = false
				break
			}
		}
		if isolated {
			total -= w.FootmanIsolation
		}
	}
	return total
}
