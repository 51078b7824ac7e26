package game

import (
	"fmt"

	"golang.org/x/exp/slices"

	"chess-rules/rules"
)

// ClickTile performs select, move or deselect depending on what is
// clicked. Clicks are frozen while the game is over, while a promotion is
// pending, and, unless force is set, when the side to move is in FreezeOn.
func (g *Game) ClickTile(sq rules.Square, force bool) (ClickResult, error) {
	if !sq.Valid() {
		return ClickDeselect, fmt.Errorf("click: %w: %d", rules.ErrInvalidSquare, sq)
	}
	if g.gameOver || g.PendingPromotion() {
		return ClickFrozen, nil
	}
	if !force && g.frozen(g.current) {
		return ClickFrozen, nil
	}

	if g.board.PieceAt(sq).Color == g.current {
		g.selected = sq
		return ClickSelect, nil
	}
	if g.selected != rules.NoSquare {
		if m, ok := g.findMove(g.selected, sq); ok {
			if err := g.play(m); err != nil {
				return ClickDeselect, err
			}
			return ClickMove, nil
		}
	}
	g.selected = rules.NoSquare
	return ClickDeselect, nil
}

// SimulateClicksToMove plays from -> to as if both squares had been clicked
// with force. It returns false when no legal move matches. A non-empty
// promoteTo resolves the promotion in the same step; asking for one on a
// move that does not promote fails with ErrNotPromotion and changes nothing.
func (g *Game) SimulateClicksToMove(from, to rules.Square, promoteTo rules.PieceType) (bool, error) {
	if !from.Valid() || !to.Valid() {
		return false, fmt.Errorf("simulate %d->%d: %w", from, to, rules.ErrInvalidSquare)
	}
	if g.gameOver || g.PendingPromotion() {
		return false, nil
	}
	m, ok := g.findMove(from, to)
	if !ok {
		return false, nil
	}
	if promoteTo != rules.PieceTypeNone {
		if !m.Promotion {
			return false, fmt.Errorf("%s: %w", m, ErrNotPromotion)
		}
		if !promoteTo.IsPromotionChoice() {
			return false, fmt.Errorf("%s: %w: %s", m, ErrInvalidPromotion, promoteTo)
		}
		m.PromoteToType = promoteTo
		if err := g.refreshCheck(&m); err != nil {
			return false, err
		}
	}
	if err := g.play(m); err != nil {
		return false, err
	}
	return true, nil
}

func (g *Game) findMove(from, to rules.Square) (rules.Move, bool) {
	moves := g.validMoves[from]
	i := slices.IndexFunc(moves, func(m rules.Move) bool { return m.To == to })
	if i < 0 {
		return rules.Move{}, false
	}
	return moves[i].Clone(), true
}

// refreshCheck recomputes the Check square of m against the current board,
// needed once a promotion piece is known.
func (g *Game) refreshCheck(m *rules.Move) error {
	scratch := g.board
	scratch.MakeMove(m)
	opp := g.current.Opposite()
	eks, err := scratch.FindKing(opp)
	if err != nil {
		return err
	}
	m.Check = rules.NoSquare
	if scratch.IsSquareAttacked(eks, g.current) {
		m.Check = eks
	}
	return nil
}

// play commits m. The move is applied to a copy of the board first and the
// game state only changes once the reply position has been evaluated.
func (g *Game) play(m rules.Move) error {
	mover := g.current
	next := g.board
	next.MakeMove(&m)
	pos, err := evaluate(&next, mover.Opposite(), &m, !m.PendingPromotion())
	if err != nil {
		return fmt.Errorf("play %s: %w", m, err)
	}

	g.board = next
	g.history = append(g.history, m)
	g.current = mover.Opposite()
	g.selected = rules.NoSquare
	g.adopt(pos)

	g.log.Debug().
		Str("move", m.String()).
		Stringer("color", mover).
		Int("ply", len(g.history)).
		Bool("capture", m.IsCapture()).
		Bool("check", m.GivesCheck()).
		Bool("pending_promotion", m.PendingPromotion()).
		Msg("move played")

	if m.IsCapture() {
		g.cb.capture(m.Clone())
	}
	if m.IsCastle() {
		g.cb.castle(m.Clone())
	}
	if m.IsEnPassant() {
		g.cb.enPassant(m.Clone())
	}
	g.cb.move(m.Clone())
	g.announceGameOver()
	return nil
}

func (g *Game) announceGameOver() {
	if !g.gameOver {
		return
	}
	g.log.Debug().Str("reason", string(g.reason)).Stringer("loser", g.current).Msg("game over")
	g.cb.gameOver(g.reason)
}

// PromoteLastMoveTo resolves the pending promotion of the last move: the
// pawn on the back rank becomes pt, the move record is patched, and the
// opponent's moves and the end-of-game state are recomputed.
func (g *Game) PromoteLastMoveTo(pt rules.PieceType) error {
	last := g.last()
	if last == nil || !last.PendingPromotion() {
		return ErrNoPendingPromotion
	}
	if !pt.IsPromotionChoice() {
		return fmt.Errorf("%w: %s", ErrInvalidPromotion, pt)
	}

	patched := last.Clone()
	patched.PromoteToType = pt
	next := g.board
	next.UnmakeMove(last)
	next.MakeMove(&patched)

	eks, err := next.FindKing(g.current)
	if err != nil {
		return fmt.Errorf("promote %s: %w", patched, err)
	}
	patched.Check = rules.NoSquare
	if next.IsSquareAttacked(eks, g.current.Opposite()) {
		patched.Check = eks
	}
	pos, err := evaluate(&next, g.current, &patched, true)
	if err != nil {
		return fmt.Errorf("promote %s: %w", patched, err)
	}

	g.board = next
	g.history[len(g.history)-1] = patched
	g.adopt(pos)

	g.log.Debug().Str("move", patched.String()).Stringer("piece", pt).Bool("check", patched.GivesCheck()).Msg("promotion resolved")
	g.announceGameOver()
	return nil
}
