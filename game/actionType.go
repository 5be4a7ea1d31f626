package game

import "fmt"

// ActionKind represents the kind of action a player can perform.
type ActionKind int

const (
	MoveAction ActionKind = iota
	CaptureAction
	PushbackAction
	LongshotAction
	PromotionAction
	DeclinePromotionAction
	RansomAction
	DeclineRansomAction
)

var actionNames = [...]string{
	"move", "capture", "pushback", "longshot",
	"promotion", "decline-promotion", "ransom", "decline-ransom",
}

func (k ActionKind) String() string {
	if k < 0 || int(k) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[k]
}

// Action carries only what is needed to disambiguate a player's choice.
//   - move, capture, longshot: PieceID and To
//   - pushback: PieceID (the footman), TargetID (the pushed enemy), To (where it lands)
//   - promotion: PieceID (the footman), TargetID (captured piece to return), To (placement)
//   - ransom: PieceID (the capturing knight), TargetID, To
//   - declines: PieceID of the footman or knight holding the pending choice
type Action struct {
	Kind     ActionKind `json:"kind"`
	PieceID  string     `json:"pieceId"`
	To       Position   `json:"to"`
	TargetID string     `json:"targetId,omitempty"`
}

func (a Action) String() string {
	switch a.Kind {
	case DeclinePromotionAction, DeclineRansomAction:
		return fmt.Sprintf("%s(%s)", a.Kind, a.PieceID)
	case PushbackAction, PromotionAction, RansomAction:
		return fmt.Sprintf("%s(%s %s->%s)", a.Kind, a.PieceID, a.TargetID, a.To)
	}
	return fmt.Sprintf("%s(%s->%s)", a.Kind, a.PieceID, a.To)
}

// IsCapture reports whether the action removes an enemy piece.
func (a Action) IsCapture() bool {
	return a.Kind == CaptureAction || a.Kind == LongshotAction
}
