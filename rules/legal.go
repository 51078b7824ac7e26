package rules

// GenerateMoves returns the legal moves of side (allocates a new slice).
func (b *Board) GenerateMoves(side Color, last *Move) ([]Move, error) {
	return b.GenerateMovesInto(make([]Move, 0, 64), side, last)
}

// GenerateMovesInto appends the legal moves of side into dst[:0].
//
// Every pseudo-legal move is played on a scratch copy of the board and kept
// only if the mover's king is not attacked afterwards. Kept moves record the
// enemy king's square in Check when they attack it.
func (b *Board) GenerateMovesInto(dst []Move, side Color, last *Move) ([]Move, error) {
	moves := b.GeneratePseudoMovesInto(dst, side, last)
	opp := side.Opposite()

	legal := moves[:0]
	for _, m := range moves {
		scratch := *b
		scratch.MakeMove(&m)

		ks, err := scratch.FindKing(side)
		if err != nil {
			return nil, err
		}
		if scratch.IsSquareAttacked(ks, opp) {
			continue
		}

		eks, err := scratch.FindKing(opp)
		if err != nil {
			return nil, err
		}
		if scratch.IsSquareAttacked(eks, side) {
			m.Check = eks
		}
		legal = append(legal, m)
	}
	return legal, nil
}

// InCheck reports whether the king of color c is attacked.
func (b *Board) InCheck(c Color) (bool, error) {
	ks, err := b.FindKing(c)
	if err != nil {
		return false, err
	}
	return b.IsSquareAttacked(ks, c.Opposite()), nil
}

// HasLegalMoves reports whether side has any legal move.
func (b *Board) HasLegalMoves(side Color, last *Move) (bool, error) {
	moves, err := b.GenerateMoves(side, last)
	if err != nil {
		return false, err
	}
	return len(moves) > 0, nil
}

// InCheckmate reports whether side is checkmated.
func (b *Board) InCheckmate(side Color, last *Move) (bool, error) {
	return b.terminal(side, last, true)
}

// InStalemate reports whether side is stalemated.
func (b *Board) InStalemate(side Color, last *Move) (bool, error) {
	return b.terminal(side, last, false)
}

func (b *Board) terminal(side Color, last *Move, wantCheck bool) (bool, error) {
	check, err := b.InCheck(side)
	if err != nil || check != wantCheck {
		return false, err
	}
	has, err := b.HasLegalMoves(side, last)
	if err != nil {
		return false, err
	}
	return !has, nil
}
