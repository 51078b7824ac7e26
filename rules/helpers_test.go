package rules_test

import (
	"testing"

	"chess-rules/rules"
)

func mustPlacement(t testing.TB, placement string) rules.Board {
	t.Helper()
	b, err := rules.ParsePlacement(placement)
	if err != nil {
		t.Fatalf("ParsePlacement(%q): %v", placement, err)
	}
	return b
}

func sq(t testing.TB, alg string) rules.Square {
	t.Helper()
	s, err := rules.ParseSquare(alg)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", alg, err)
	}
	return s
}

func legalMoves(t testing.TB, b *rules.Board, side rules.Color, last *rules.Move) []rules.Move {
	t.Helper()
	moves, err := b.GenerateMoves(side, last)
	if err != nil {
		t.Fatalf("GenerateMoves(%s): %v", side, err)
	}
	return moves
}

func findMove(moves []rules.Move, from, to rules.Square) (rules.Move, bool) {
	for _, m := range moves {
		if m.From == from && m.To == to {
			return m, true
		}
	}
	return rules.Move{}, false
}
