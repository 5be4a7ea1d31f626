package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPositionNotation(t *testing.T) {
	t.Run("round trips notation", func(t *testing.T) {
		for _, s := range []string{"A1", "F3", "K10", "E7"} {
			p, err := ParsePosition(s)
			require.NoError(t, err)
			require.Equal(t, s, p.String(), "Notation should round trip")
		}
	})

	t.Run("accepts lower case rows", func(t *testing.T) {
		p, err := ParsePosition("c4")
		require.NoError(t, err)
		require.Equal(t, Position{Row: 2, Col: 3}, p)
	})

	t.Run("rejects off-board and malformed squares", func(t *testing.T) {
		for _, s := range []string{"L1", "A0", "A11", "", "F", "Fx", "F123"} {
			_, err := ParsePosition(s)
			require.ErrorIs(t, err, ErrInvalidPosition, "%q should not parse", s)
		}
	})
}

func TestRiverStatus(t *testing.T) {
	t.Run("oriented per side", func(t *testing.T) {
		require.Equal(t, BehindRiver, GetRiverStatus(sq("C3"), Player1))
		require.Equal(t, AtRiver, GetRiverStatus(sq("F3"), Player1))
		require.Equal(t, BeyondRiver, GetRiverStatus(sq("H3"), Player1))

		require.Equal(t, BeyondRiver, GetRiverStatus(sq("C3"), Player2))
		require.Equal(t, AtRiver, GetRiverStatus(sq("F3"), Player2))
		require.Equal(t, BehindRiver, GetRiverStatus(sq("H3"), Player2))
	})

	t.Run("river and capture points", func(t *testing.T) {
		require.True(t, IsRiver(sq("F1")))
		require.False(t, IsRiver(sq("E1")))
		for _, name := range []string{"F2", "F4", "F7", "F9"} {
			require.True(t, IsCapturePoint(sq(name)), "%s should be a capture point", name)
		}
		require.False(t, IsCapturePoint(sq("F3")))
		require.False(t, IsCapturePoint(sq("E2")))
	})
}

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("thirty pieces, five of each type per side", func(t *testing.T) {
		require.Len(t, b.Pieces(NoPlayer), 30)
		for _, owner := range []Player{Player1, Player2} {
			counts := map[UnitType]int{}
			for _, p := range b.Pieces(owner) {
				counts[p.Type]++
			}
			require.Equal(t, map[UnitType]int{Footman: 5, Archer: 5, Knight: 5}, counts, "%s should have 5 of each unit", owner)
		}
	})

	t.Run("each side confined to its own colour and first three rows", func(t *testing.T) {
		for _, p := range b.Pieces(NoPlayer) {
			require.Equal(t, p.Owner == Player1, p.Pos.Light(), "%s on the wrong colour", p)
			require.True(t, InHomeZone(p.Pos, p.Owner), "%s outside its home zone", p)
			require.False(t, p.HasMoved)
		}
	})

	t.Run("stored positions match cells and ids are unique", func(t *testing.T) {
		seen := map[string]bool{}
		for r := 0; r < Rows; r++ {
			for c := 0; c < Cols; c++ {
				p, ok := b.Get(Position{Row: r, Col: c})
				if !ok {
					continue
				}
				require.Equal(t, Position{Row: r, Col: c}, p.Pos)
				require.False(t, seen[p.ID], "duplicate id %s", p.ID)
				seen[p.ID] = true
			}
		}
	})

	t.Run("footmen lead, knights guard the home row", func(t *testing.T) {
		p, ok := b.Get(sq("C1"))
		require.True(t, ok)
		require.Equal(t, Footman, p.Type)
		p, ok = b.Get(sq("K2"))
		require.True(t, ok)
		require.Equal(t, Knight, p.Type)
		require.Equal(t, Player2, p.Owner)
	})
}

func TestBoardOccupancy(t *testing.T) {
	var b Board
	place(&b, "x", Archer, Player1, "D4")

	got, ok := b.Get(sq("D4"))
	require.True(t, ok)
	require.Equal(t, sq("D4"), got.Pos, "Set should stamp the position")

	_, ok = b.Get(Position{Row: -1, Col: 0})
	require.False(t, ok, "Off-board squares are empty")

	removed := b.Remove(sq("D4"))
	require.Equal(t, "x", removed.ID)
	require.False(t, b.Occupied(sq("D4")))
}
