package game

// Move is the history record of an applied action.
type Move struct {
	Kind     ActionKind `json:"kind"`
	Player   Player     `json:"player"`
	Piece    Piece      `json:"piece"` // snapshot before the action
	From     Position   `json:"from"`
	To       Position   `json:"to"`
	Captured *Piece     `json:"captured,omitempty"`
	Pushed   *Piece     `json:"pushed,omitempty"`
	Promoted *Piece     `json:"promoted,omitempty"`
	Ransomed *Piece     `json:"ransomed,omitempty"`
}

// Pushback remembers the most recent pushback for the anti-retaliation rule.
type Pushback struct {
	Player   Player `json:"player"`
	PusherID string `json:"pusherId"`
	PushedID string `json:"pushedId"`
}

// PendingPromotion describes a footman waiting on the enemy home row for its owner's choice.
type PendingPromotion struct {
	Player    Player   `json:"player"`
	FootmanID string   `json:"footmanId"`
	Pos       Position `json:"pos"`
}

// PendingRansom describes a knight that has just taken an enemy knight.
type PendingRansom struct {
	Player   Player `json:"player"`
	KnightID string `json:"knightId"`
}
