// meta/meta.go
package meta

// MaxTurns caps a self-play game; a game reaching it is drawn.
const MaxTurns = 300

// QuietMoveLimit draws a self-play game after this many half-moves without a capture.
const QuietMoveLimit = 80

// DefaultSeed seeds self-play when no seed is given.
const DefaultSeed = 1
