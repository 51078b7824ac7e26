package rules_test

import (
	"testing"

	"chess-rules/rules"
)

func benchPerft(b *testing.B, placement string, depth int) {
	board, err := rules.ParsePlacement(placement)
	if err != nil {
		b.Fatalf("ParsePlacement: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rules.Perft(&board, rules.White, nil, depth); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPerft_Initial_D3(b *testing.B) {
	benchPerft(b, rules.StartPlacement, 3)
}

func BenchmarkPerft_Kiwipete_D2(b *testing.B) {
	benchPerft(b, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R", 2)
}

func BenchmarkGenerateMovesInto(b *testing.B) {
	board := rules.InitialPosition()
	buf := make([]rules.Move, 0, 256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var err error
		buf, err = board.GenerateMovesInto(buf, rules.White, nil)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIsSquareAttacked(b *testing.B) {
	board := rules.InitialPosition()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = board.IsSquareAttacked(rules.WhiteKingStart, rules.Black)
	}
}
