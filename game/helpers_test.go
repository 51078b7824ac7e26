package game_test

import (
	"strings"
	"testing"

	"chess-rules/game"
	"chess-rules/rules"
)

func sq(t testing.TB, alg string) rules.Square {
	t.Helper()
	s, err := rules.ParseSquare(alg)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", alg, err)
	}
	return s
}

func newGame(t testing.TB, cfg game.Config) *game.Game {
	t.Helper()
	g, err := game.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

// play makes each "from to" pair through SimulateClicksToMove.
func play(t testing.TB, g *game.Game, moves ...string) {
	t.Helper()
	for _, mv := range moves {
		from, to := sq(t, mv[:2]), sq(t, mv[2:4])
		promo := rules.PieceTypeNone
		if len(mv) == 5 {
			promo = rules.PieceTypeFromChar(rune(mv[4]))
		}
		ok, err := g.SimulateClicksToMove(from, to, promo)
		if err != nil {
			t.Fatalf("move %s: %v", mv, err)
		}
		if !ok {
			t.Fatalf("move %s rejected\n%s", mv, boardString(g))
		}
	}
}

func boardString(g *game.Game) string {
	b := g.Board()
	return b.String()
}

// recorder collects callback invocations in order.
type recorder struct {
	events  []string
	reasons []game.Reason
}

func (r *recorder) config() game.Config {
	return game.Config{
		OnGameOver: func(reason game.Reason) {
			r.events = append(r.events, "gameOver")
			r.reasons = append(r.reasons, reason)
		},
		OnMove:      func(m rules.Move) { r.events = append(r.events, "move:"+m.String()) },
		OnCastle:    func(m rules.Move) { r.events = append(r.events, "castle:"+m.String()) },
		OnCapture:   func(m rules.Move) { r.events = append(r.events, "capture:"+m.String()) },
		OnEnPassant: func(m rules.Move) { r.events = append(r.events, "enPassant:"+m.String()) },
		OnUndo:      func(m rules.Move) { r.events = append(r.events, "undo:"+m.String()) },
	}
}

func (r *recorder) count(prefix string) int {
	n := 0
	for _, e := range r.events {
		if strings.HasPrefix(e, prefix) {
			n++
		}
	}
	return n
}
