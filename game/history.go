package game

import (
	"fmt"

	"chess-rules/rules"
)

// History returns a copy of the moves played so far, oldest first.
func (g *Game) History() []rules.Move { return cloneMoves(g.history) }

func (g *Game) last() *rules.Move {
	if len(g.history) == 0 {
		return nil
	}
	return &g.history[len(g.history)-1]
}

// LastMove returns the most recent move, if any.
func (g *Game) LastMove() (rules.Move, bool) {
	m := g.last()
	if m == nil {
		return rules.Move{}, false
	}
	return m.Clone(), true
}

// LastMoveColor returns the color that played the last move, NoColor before
// the first move.
func (g *Game) LastMoveColor() rules.Color {
	m := g.last()
	if m == nil {
		return rules.NoColor
	}
	return g.board.PieceAt(m.To).Color
}

// PendingPromotion reports whether the last move is a promotion still
// waiting for PromoteLastMoveTo.
func (g *Game) PendingPromotion() bool {
	m := g.last()
	return m != nil && m.PendingPromotion()
}

// Undo takes back the last move and returns it, or nil when there is no
// history. The side that played it is to move again, the selection is
// cleared and a finished game is reopened.
func (g *Game) Undo() (*rules.Move, error) {
	n := len(g.history)
	if n == 0 {
		return nil, nil
	}
	m := g.history[n-1]
	mover := g.current.Opposite()

	prev := g.board
	prev.UnmakeMove(&m)
	var before *rules.Move
	if n > 1 {
		before = &g.history[n-2]
	}
	pos, err := evaluate(&prev, mover, before, true)
	if err != nil {
		return nil, fmt.Errorf("undo %s: %w", m, err)
	}

	g.board = prev
	g.history = g.history[:n-1]
	g.current = mover
	g.selected = rules.NoSquare
	g.adopt(pos)

	g.log.Debug().Str("move", m.String()).Stringer("color", mover).Int("ply", n-1).Msg("move undone")
	g.cb.undo(m.Clone())
	return &m, nil
}
