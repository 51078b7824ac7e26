package rules

// Move is a self-describing move record. It carries everything needed to
// undo it: the captured piece (type, move counter and, for en passant, its
// square) and the rook displacement of a castle.
type Move struct {
	From Square
	To   Square

	// CaptureType is the type of the captured piece, PieceTypeNone for quiet moves.
	CaptureType  PieceType
	CaptureMoved int

	// Check is the square of the enemy king this move attacks, or NoSquare.
	Check Square

	// ResultingMove is the rook's move when castling, nil otherwise.
	ResultingMove *Move

	// Promotion marks a pawn reaching the last rank. PromoteToType stays
	// PieceTypeNone until the promotion choice is made.
	Promotion     bool
	PromoteToType PieceType

	// CaptureIndex is the square of the pawn taken en passant, or NoSquare.
	CaptureIndex Square

	DoublePush bool
}

// NewMove returns a quiet move with every optional field unset.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to, Check: NoSquare, CaptureIndex: NoSquare}
}

func (m *Move) IsCapture() bool { return m.CaptureType != PieceTypeNone }

func (m *Move) IsCastle() bool { return m.ResultingMove != nil }

func (m *Move) IsEnPassant() bool { return m.CaptureIndex != NoSquare }

func (m *Move) GivesCheck() bool { return m.Check != NoSquare }

// PendingPromotion reports whether the move promotes and no piece has been chosen yet.
func (m *Move) PendingPromotion() bool {
	return m.Promotion && m.PromoteToType == PieceTypeNone
}

// CapturedSquare returns the square the captured piece stood on.
func (m *Move) CapturedSquare() Square {
	if m.CaptureIndex != NoSquare {
		return m.CaptureIndex
	}
	return m.To
}

// Clone returns a deep copy; the nested rook move is not shared.
func (m Move) Clone() Move {
	if m.ResultingMove != nil {
		rm := *m.ResultingMove
		m.ResultingMove = &rm
	}
	return m
}

// String produces the coordinate form of the move (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	str := m.From.String() + m.To.String()
	if m.PromoteToType != PieceTypeNone {
		str += string(Piece{Type: m.PromoteToType, Color: Black}.Char())
	}
	return str
}
