package rules

import "fmt"

const BoardSize = 64

// Home squares of the castling pieces.
const (
	WhiteKingStart Square = 60
	BlackKingStart Square = 4
)

// RookStartSquares are the four corner squares the rooks start on.
var RookStartSquares = [4]Square{0, 7, 56, 63}

// Board is the full 64-cell position. It is a value type: assigning a Board
// copies every piece record.
type Board [BoardSize]Piece

// EmptyBoard returns a board where every cell holds the empty marker.
func EmptyBoard() Board {
	var b Board
	for sq := range b {
		b[sq] = Piece{Offset: Square(sq)}
	}
	return b
}

// InitialPosition returns the standard starting arrangement.
func InitialPosition() Board {
	b, err := ParsePlacement(StartPlacement)
	if err != nil {
		panic(err)
	}
	return b
}

// Copy returns an independent snapshot of the board.
func (b *Board) Copy() Board { return *b }

// PieceAt returns the piece on a square.
func (b *Board) PieceAt(sq Square) Piece { return b[sq] }

// FindKing returns the square of the king of the given color. A missing king
// means the position is corrupt.
func (b *Board) FindKing(c Color) (Square, error) {
	for sq := Square(0); sq < BoardSize; sq++ {
		if b[sq].Is(c, PieceTypeKing) {
			return sq, nil
		}
	}
	return NoSquare, fmt.Errorf("%w: %s", ErrNoKing, c)
}

// clearSquare puts the empty marker on sq.
func (b *Board) clearSquare(sq Square) { b[sq] = Piece{Offset: sq} }

// SetPiece places a fresh (never moved) piece on a square, replacing anything there.
func (b *Board) SetPiece(sq Square, pt PieceType, c Color) {
	if pt == PieceTypeNone {
		b.clearSquare(sq)
		return
	}
	b[sq] = Piece{Type: pt, Color: c, Offset: sq}
}

// Validate checks internal consistency: every record knows its own square,
// empty cells carry no color, and each side has exactly one king.
func (b *Board) Validate() error {
	var kings [3]int
	for sq := Square(0); sq < BoardSize; sq++ {
		p := b[sq]
		if p.Offset != sq {
			return fmt.Errorf("square %s: piece records offset %d", sq, p.Offset)
		}
		if p.IsEmpty() != (p.Color == NoColor) {
			return fmt.Errorf("square %s: type %s with color %s", sq, p.Type, p.Color)
		}
		if p.Moved < 0 {
			return fmt.Errorf("square %s: negative move counter %d", sq, p.Moved)
		}
		if p.Type == PieceTypeKing {
			kings[p.Color]++
		}
	}
	for _, c := range [2]Color{White, Black} {
		switch kings[c] {
		case 0:
			return fmt.Errorf("%w: %s", ErrNoKing, c)
		case 1:
		default:
			return fmt.Errorf("%d %s kings on board", kings[c], c)
		}
	}
	return nil
}

// String renders the board as eight text rows, rank 8 first.
func (b *Board) String() string {
	buf := make([]rune, 0, 8*18)
	for row := 0; row < 8; row++ {
		buf = append(buf, '8'-rune(row), ' ')
		for col := 0; col < 8; col++ {
			buf = append(buf, b[SquareAt(col, row)].Char())
			if col < 7 {
				buf = append(buf, ' ')
			}
		}
		buf = append(buf, '\n')
	}
	buf = append(buf, []rune("  a b c d e f g h\n")...)
	return string(buf)
}
