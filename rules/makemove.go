package rules

// MakeMove applies a move produced by the generator. The move record is not
// modified, so the same record undoes it through UnmakeMove.
func (b *Board) MakeMove(m *Move) {
	if m.CaptureIndex != NoSquare {
		b.clearSquare(m.CaptureIndex)
	}
	b.relocate(m.From, m.To)
	if m.PromoteToType != PieceTypeNone {
		b[m.To].Type = m.PromoteToType
	}
	if rm := m.ResultingMove; rm != nil {
		b.relocate(rm.From, rm.To)
	}
}

// UnmakeMove reverses MakeMove: the mover (and castling rook) step back with
// their counters decremented, promotions revert to a pawn, and the captured
// piece reappears on the square it was taken from.
func (b *Board) UnmakeMove(m *Move) {
	if rm := m.ResultingMove; rm != nil {
		b.retreat(rm.To, rm.From)
	}
	mover := b[m.To].Color
	b.retreat(m.To, m.From)
	if m.Promotion {
		b[m.From].Type = PieceTypePawn
	}
	if m.CaptureType != PieceTypeNone {
		sq := m.CapturedSquare()
		b[sq] = Piece{Type: m.CaptureType, Color: mover.Opposite(), Offset: sq, Moved: m.CaptureMoved}
	}
}

// relocate moves the piece on from to to, counting the displacement.
func (b *Board) relocate(from, to Square) {
	p := b[from]
	p.Offset = to
	p.Moved++
	b[to] = p
	b.clearSquare(from)
}

func (b *Board) retreat(from, to Square) {
	p := b[from]
	p.Offset = to
	p.Moved--
	b[to] = p
	b.clearSquare(from)
}
