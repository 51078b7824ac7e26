// Package oracle cross-checks the rules move generator against
// dragontoothmg, an independent bitboard generator.
package oracle

import (
	"sort"
	"strings"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/maps"

	"chess-rules/rules"
)

// FEN renders a rules position as a full FEN record. Castling rights are
// inferred from unmoved kings and corner rooks, the en-passant square from
// a preceding double push. Move clocks are not tracked and always read "0 1".
func FEN(b *rules.Board, side rules.Color, last *rules.Move) string {
	var sb strings.Builder
	sb.WriteString(b.Placement())
	if side == rules.Black {
		sb.WriteString(" b ")
	} else {
		sb.WriteString(" w ")
	}
	sb.WriteString(castling(b))
	sb.WriteByte(' ')
	sb.WriteString(enPassant(b, last))
	sb.WriteString(" 0 1")
	return sb.String()
}

func castling(b *rules.Board) string {
	type right struct {
		king, rook rules.Square
		color      rules.Color
		flag       byte
	}
	rights := [4]right{
		{rules.WhiteKingStart, 63, rules.White, 'K'},
		{rules.WhiteKingStart, 56, rules.White, 'Q'},
		{rules.BlackKingStart, 7, rules.Black, 'k'},
		{rules.BlackKingStart, 0, rules.Black, 'q'},
	}
	var out []byte
	for _, r := range rights {
		k, rk := b.PieceAt(r.king), b.PieceAt(r.rook)
		if k.Is(r.color, rules.PieceTypeKing) && k.Moved == 0 && rk.Is(r.color, rules.PieceTypeRook) && rk.Moved == 0 {
			out = append(out, r.flag)
		}
	}
	if len(out) == 0 {
		return "-"
	}
	return string(out)
}

func enPassant(b *rules.Board, last *rules.Move) string {
	if last == nil || !last.DoublePush || b.PieceAt(last.To).Type != rules.PieceTypePawn {
		return "-"
	}
	return ((last.From + last.To) / 2).String()
}

// squareName converts a dragontoothmg square index (a1 = 0) to algebraic form.
func squareName(idx uint8) string {
	return string([]byte{'a' + idx%8, '1' + idx/8})
}

func moveString(m dragontoothmg.Move) string {
	s := squareName(m.From()) + squareName(m.To())
	switch m.Promote() {
	case dragontoothmg.Queen:
		s += "q"
	case dragontoothmg.Rook:
		s += "r"
	case dragontoothmg.Bishop:
		s += "b"
	case dragontoothmg.Knight:
		s += "n"
	}
	return s
}

// Perft counts leaf nodes of the FEN position with dragontoothmg.
func Perft(fen string, depth int) uint64 {
	b := dragontoothmg.ParseFen(fen)
	return perft(&b, depth)
}

func perft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		undo := b.Apply(m)
		nodes += perft(b, depth-1)
		undo()
	}
	return nodes
}

// Divide returns the per-root-move node counts, keyed like rules.PerftDivide.
func Divide(fen string, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth <= 0 {
		return result
	}
	b := dragontoothmg.ParseFen(fen)
	for _, m := range b.GenerateLegalMoves() {
		undo := b.Apply(m)
		result[moveString(m)] = perft(&b, depth-1)
		undo()
	}
	return result
}

// Mismatch is a root move whose node count differs between the generators.
// A zero count means the move is missing on that side.
type Mismatch struct {
	Move   string
	Rules  uint64
	Oracle uint64
}

// Verify divides the position with both generators and returns every root
// move where they disagree, sorted by move.
func Verify(b *rules.Board, side rules.Color, last *rules.Move, depth int) ([]Mismatch, error) {
	ours, err := rules.PerftDivide(b, side, last, depth)
	if err != nil {
		return nil, err
	}
	theirs := Divide(FEN(b, side, last), depth)

	keys := maps.Keys(ours)
	for k := range theirs {
		if _, ok := ours[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var diffs []Mismatch
	for _, k := range keys {
		if ours[k] != theirs[k] {
			diffs = append(diffs, Mismatch{Move: k, Rules: ours[k], Oracle: theirs[k]})
		}
	}
	return diffs, nil
}
