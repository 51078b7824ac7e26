package rules

// genMode selects what the generator produces.
type genMode uint8

const (
	// genPseudo produces every pseudo-legal move, castling and en passant included.
	genPseudo genMode = iota
	// genAttacks produces the squares a side attacks: pawns contribute their
	// diagonals instead of pushes, castling is skipped so the castling check
	// can use this mode without recursing.
	genAttacks
)

var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

// castleRule describes one castling option: the king and rook displacements,
// the squares that must be empty, and the squares the king stands on or
// crosses, which must not be attacked.
type castleRule struct {
	king, kingTo Square
	rook, rookTo Square
	between      []Square
	kingPath     []Square
}

var castleRules = [3][2]castleRule{
	White: {
		{king: 60, kingTo: 62, rook: 63, rookTo: 61, between: []Square{61, 62}, kingPath: []Square{60, 61, 62}},
		{king: 60, kingTo: 58, rook: 56, rookTo: 59, between: []Square{57, 58, 59}, kingPath: []Square{60, 59, 58}},
	},
	Black: {
		{king: 4, kingTo: 6, rook: 7, rookTo: 5, between: []Square{5, 6}, kingPath: []Square{4, 5, 6}},
		{king: 4, kingTo: 2, rook: 0, rookTo: 3, between: []Square{1, 2, 3}, kingPath: []Square{4, 3, 2}},
	},
}

func pawnForward(c Color) Direction {
	if c == White {
		return DirUp
	}
	return DirDown
}

func pawnCaptureDirections(c Color) [2]Direction {
	if c == White {
		return [2]Direction{DirUpLeft, DirUpRight}
	}
	return [2]Direction{DirDownLeft, DirDownRight}
}

func pawnStartRow(c Color) int {
	if c == White {
		return 6
	}
	return 1
}

// promotionRow is the row on which a pawn of color c promotes.
func promotionRow(c Color) int {
	if c == White {
		return 0
	}
	return 7
}

// GeneratePseudoMoves returns all pseudo-legal moves of side (allocates a new slice).
// last is the move played just before, nil if none; it decides en passant.
func (b *Board) GeneratePseudoMoves(side Color, last *Move) []Move {
	return b.GeneratePseudoMovesInto(make([]Move, 0, 64), side, last)
}

// GeneratePseudoMovesInto appends all pseudo-legal moves (no king-safety
// filtering) into dst[:0] and returns it. Castling is the exception: it is
// only produced when the king's path is not attacked.
func (b *Board) GeneratePseudoMovesInto(dst []Move, side Color, last *Move) []Move {
	return b.generate(dst[:0], side, last, genPseudo)
}

// IsSquareAttacked reports whether any piece of color by attacks sq.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	var buf [64]Move
	for _, m := range b.generate(buf[:0], by, nil, genAttacks) {
		if m.To == sq {
			return true
		}
	}
	return false
}

// attackMap marks every square attacked by color by.
func (b *Board) attackMap(by Color) (attacked [BoardSize]bool) {
	var buf [64]Move
	for _, m := range b.generate(buf[:0], by, nil, genAttacks) {
		attacked[m.To] = true
	}
	return attacked
}

func (b *Board) generate(moves []Move, side Color, last *Move, mode genMode) []Move {
	epTarget, epVictim := NoSquare, NoSquare
	if mode == genPseudo {
		epTarget, epVictim = b.enPassantTarget(side, last)
	}

	for from := Square(0); from < BoardSize; from++ {
		p := b[from]
		if p.Color != side {
			continue
		}
		switch p.Type {
		case PieceTypePawn:
			if mode == genAttacks {
				moves = b.pawnAttacks(moves, from, side)
			} else {
				moves = b.pawnMoves(moves, from, side, epTarget, epVictim)
			}
		case PieceTypeKnight:
			moves = b.knightMoves(moves, from, side)
		case PieceTypeBishop:
			moves = b.slidingMoves(moves, from, side, bishopDirections, 7)
		case PieceTypeRook:
			moves = b.slidingMoves(moves, from, side, rookDirections, 7)
		case PieceTypeQueen:
			moves = b.slidingMoves(moves, from, side, queenDirections, 7)
		case PieceTypeKing:
			moves = b.slidingMoves(moves, from, side, queenDirections, 1)
			if mode == genPseudo {
				moves = b.castlingMoves(moves, from, side)
			}
		}
	}
	return moves
}

// moveTo builds the move from -> to, recording whatever stands on to as captured.
func (b *Board) moveTo(from, to Square) Move {
	m := NewMove(from, to)
	if target := b[to]; !target.IsEmpty() {
		m.CaptureType = target.Type
		m.CaptureMoved = target.Moved
	}
	return m
}

// slidingMoves walks each direction at most limit steps, bounded by the edge table.
func (b *Board) slidingMoves(moves []Move, from Square, side Color, dirs []Direction, limit int) []Move {
	for _, d := range dirs {
		steps := min(numToEdge[from][d], limit)
		to := from
		for i := 0; i < steps; i++ {
			to += dirOffsets[d]
			target := b[to]
			if target.Color == side {
				break
			}
			moves = append(moves, b.moveTo(from, to))
			if !target.IsEmpty() {
				break
			}
		}
	}
	return moves
}

func (b *Board) knightMoves(moves []Move, from Square, side Color) []Move {
	col, row := from.Col(), from.Row()
	for _, off := range knightOffsets {
		c, r := col+off[0], row+off[1]
		if c < 0 || c > 7 || r < 0 || r > 7 {
			continue
		}
		to := SquareAt(c, r)
		if b[to].Color == side {
			continue
		}
		moves = append(moves, b.moveTo(from, to))
	}
	return moves
}

func (b *Board) pawnMoves(moves []Move, from Square, side Color, epTarget, epVictim Square) []Move {
	fwd := pawnForward(side)
	lastRow := promotionRow(side)

	if numToEdge[from][fwd] >= 1 {
		one := from + dirOffsets[fwd]
		if b[one].IsEmpty() {
			m := NewMove(from, one)
			m.Promotion = one.Row() == lastRow
			moves = append(moves, m)

			if from.Row() == pawnStartRow(side) {
				two := one + dirOffsets[fwd]
				if b[two].IsEmpty() {
					m := NewMove(from, two)
					m.DoublePush = true
					moves = append(moves, m)
				}
			}
		}
	}

	for _, d := range pawnCaptureDirections(side) {
		if numToEdge[from][d] < 1 {
			continue
		}
		to := from + dirOffsets[d]
		target := b[to]
		switch {
		case target.Color == side.Opposite():
			m := b.moveTo(from, to)
			m.Promotion = to.Row() == lastRow
			moves = append(moves, m)
		case to == epTarget && target.IsEmpty():
			m := NewMove(from, to)
			m.CaptureType = PieceTypePawn
			m.CaptureMoved = b[epVictim].Moved
			m.CaptureIndex = epVictim
			moves = append(moves, m)
		}
	}
	return moves
}

// pawnAttacks emits the diagonal squares a pawn controls, occupied or not.
func (b *Board) pawnAttacks(moves []Move, from Square, side Color) []Move {
	for _, d := range pawnCaptureDirections(side) {
		if numToEdge[from][d] < 1 {
			continue
		}
		to := from + dirOffsets[d]
		if b[to].Color == side {
			continue
		}
		moves = append(moves, b.moveTo(from, to))
	}
	return moves
}

// enPassantTarget returns the square a pawn of side may capture onto en
// passant and the square of the pawn it would take. Both are NoSquare unless
// last was an enemy double push.
func (b *Board) enPassantTarget(side Color, last *Move) (target, victim Square) {
	if last == nil || !last.DoublePush {
		return NoSquare, NoSquare
	}
	if !b[last.To].Is(side.Opposite(), PieceTypePawn) {
		return NoSquare, NoSquare
	}
	return (last.From + last.To) / 2, last.To
}

func (b *Board) castlingMoves(moves []Move, from Square, side Color) []Move {
	options := castleRules[side]
	if b[from].Moved != 0 || from != options[0].king {
		return moves
	}

	var attacked *[BoardSize]bool
	for _, cr := range options {
		rook := b[cr.rook]
		if !rook.Is(side, PieceTypeRook) || rook.Moved != 0 {
			continue
		}
		if !b.allEmpty(cr.between) {
			continue
		}
		if attacked == nil {
			a := b.attackMap(side.Opposite())
			attacked = &a
		}
		if anyMarked(attacked, cr.kingPath) {
			continue
		}
		m := NewMove(from, cr.kingTo)
		rm := NewMove(cr.rook, cr.rookTo)
		m.ResultingMove = &rm
		moves = append(moves, m)
	}
	return moves
}

func (b *Board) allEmpty(squares []Square) bool {
	for _, sq := range squares {
		if !b[sq].IsEmpty() {
			return false
		}
	}
	return true
}

func anyMarked(marks *[BoardSize]bool, squares []Square) bool {
	for _, sq := range squares {
		if marks[sq] {
			return true
		}
	}
	return false
}
