package rules

import "fmt"

// Square is a board index in [0,64), row-major. Row 0 is Black's back rank
// (rank 8), row 7 is White's (rank 1).
type Square int

const NoSquare Square = -1

// SquareAt returns the square at the given column and row.
func SquareAt(col, row int) Square { return Square(row*8 + col) }

func (sq Square) Row() int { return int(sq) / 8 }

func (sq Square) Col() int { return int(sq) % 8 }

// Valid reports whether sq lies on the board.
func (sq Square) Valid() bool { return sq >= 0 && sq < BoardSize }

// String returns the algebraic name of the square ("a8" for 0, "h1" for 63).
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(sq.Col()), '8' - byte(sq.Row())})
}

// ParseSquare converts an algebraic coordinate such as "e2" into a Square.
func ParseSquare(alg string) (Square, error) {
	if len(alg) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, alg)
	}
	file, rank := alg[0], alg[1]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, alg)
	}
	return SquareAt(int(file-'a'), int('8'-rank)), nil
}
