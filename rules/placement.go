package rules

import (
	"fmt"
	"strings"
)

// StartPlacement is the placement string of the standard initial position.
const StartPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// ParsePlacement builds a board from a slash-delimited placement string:
// eight ranks from rank 8 down to rank 1, digits for runs of empty squares,
// uppercase letters for White and lowercase for Black. Every piece starts
// with a zero move counter.
func ParsePlacement(placement string) (Board, error) {
	b := EmptyBoard()
	ranks := strings.Split(strings.TrimSpace(placement), "/")
	if len(ranks) != 8 {
		return b, fmt.Errorf("%w: %d ranks, want 8", ErrInvalidPlacement, len(ranks))
	}

	for row, rankStr := range ranks {
		if len(rankStr) == 0 {
			return b, fmt.Errorf("%w: empty rank %d", ErrInvalidPlacement, 8-row)
		}
		col := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				col += int(ch - '0')
				if col > 8 {
					return b, fmt.Errorf("%w: rank %d overflows", ErrInvalidPlacement, 8-row)
				}
				continue
			}
			pt, color := PieceFromChar(ch)
			if pt == PieceTypeNone {
				return b, fmt.Errorf("%w: unrecognized piece %q", ErrInvalidPlacement, ch)
			}
			if col >= 8 {
				return b, fmt.Errorf("%w: rank %d overflows", ErrInvalidPlacement, 8-row)
			}
			b.SetPiece(SquareAt(col, row), pt, color)
			col++
		}
		if col != 8 {
			return b, fmt.Errorf("%w: rank %d has %d columns", ErrInvalidPlacement, 8-row, col)
		}
	}
	return b, nil
}

// Placement encodes the board in the same format ParsePlacement reads.
func (b *Board) Placement() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		empty := 0
		for col := 0; col < 8; col++ {
			p := b[SquareAt(col, row)]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteRune(p.Char())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if row < 7 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
