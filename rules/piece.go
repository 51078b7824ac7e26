package rules

// PieceType is a colorless representation of a chess piece.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

func (pt PieceType) String() string {
	switch pt {
	case PieceTypePawn:
		return "pawn"
	case PieceTypeKnight:
		return "knight"
	case PieceTypeBishop:
		return "bishop"
	case PieceTypeRook:
		return "rook"
	case PieceTypeQueen:
		return "queen"
	case PieceTypeKing:
		return "king"
	default:
		return "none"
	}
}

// IsPromotionChoice reports whether a pawn may promote to pt.
func (pt PieceType) IsPromotionChoice() bool {
	switch pt {
	case PieceTypeKnight, PieceTypeBishop, PieceTypeRook, PieceTypeQueen:
		return true
	}
	return false
}

// PromotionChoices lists the piece types a pawn can become, strongest first.
var PromotionChoices = [4]PieceType{PieceTypeQueen, PieceTypeRook, PieceTypeBishop, PieceTypeKnight}

type Color uint8

const (
	NoColor Color = 0
	White   Color = 1
	Black   Color = 2
)

// Opposite returns the other side. NoColor has no opposite.
func (c Color) Opposite() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return "none"
}

// Piece is the content of one board cell. Empty cells hold a Piece with
// PieceTypeNone and NoColor, so a cell is never absent.
type Piece struct {
	Type   PieceType
	Color  Color
	Offset Square // square the piece currently occupies
	Moved  int    // number of times the piece has been displaced
}

// IsEmpty reports whether the cell holds no piece.
func (p Piece) IsEmpty() bool { return p.Type == PieceTypeNone }

// Is reports whether p is a piece of the given color and type.
func (p Piece) Is(c Color, pt PieceType) bool { return p.Color == c && p.Type == pt }

// Char returns the setup-encoding letter of the piece: uppercase for White,
// lowercase for Black, '.' for an empty cell.
func (p Piece) Char() rune {
	var ch rune
	switch p.Type {
	case PieceTypePawn:
		ch = 'p'
	case PieceTypeKnight:
		ch = 'n'
	case PieceTypeBishop:
		ch = 'b'
	case PieceTypeRook:
		ch = 'r'
	case PieceTypeQueen:
		ch = 'q'
	case PieceTypeKing:
		ch = 'k'
	default:
		return '.'
	}
	if p.Color == White {
		ch -= 'a' - 'A'
	}
	return ch
}

// PieceFromChar converts a setup-encoding letter to its type and color.
// Unknown characters yield PieceTypeNone and NoColor.
func PieceFromChar(ch rune) (PieceType, Color) {
	color := Black
	if ch >= 'A' && ch <= 'Z' {
		color = White
		ch += 'a' - 'A'
	}
	switch ch {
	case 'p':
		return PieceTypePawn, color
	case 'n':
		return PieceTypeKnight, color
	case 'b':
		return PieceTypeBishop, color
	case 'r':
		return PieceTypeRook, color
	case 'q':
		return PieceTypeQueen, color
	case 'k':
		return PieceTypeKing, color
	default:
		return PieceTypeNone, NoColor
	}
}

// PieceTypeFromChar parses a promotion letter (either case).
func PieceTypeFromChar(ch rune) PieceType {
	pt, _ := PieceFromChar(ch)
	return pt
}
