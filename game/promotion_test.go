package game_test

import (
	"errors"
	"testing"

	"chess-rules/game"
	"chess-rules/rules"
)

func TestPendingPromotionThenResolve(t *testing.T) {
	var r recorder
	cfg := r.config()
	cfg.Placement = "7k/P7/8/8/8/8/8/K7"
	g := newGame(t, cfg)

	play(t, g, "a7a8")
	if !g.PendingPromotion() {
		t.Fatalf("a7a8 should leave a pending promotion")
	}
	if g.Current() != rules.Black {
		t.Fatalf("turn did not pass to black")
	}
	if res, _ := g.ClickTile(sq(t, "h8"), true); res != game.ClickFrozen {
		t.Fatalf("clicks must be frozen while a promotion is pending, got %s", res)
	}
	if ok, _ := g.SimulateClicksToMove(sq(t, "h8"), sq(t, "g8"), rules.PieceTypeNone); ok {
		t.Fatalf("move accepted while a promotion is pending")
	}

	if err := g.PromoteLastMoveTo(rules.PieceTypeQueen); err != nil {
		t.Fatal(err)
	}
	if g.PendingPromotion() {
		t.Fatalf("promotion still pending")
	}
	if !g.PieceAt(sq(t, "a8")).Is(rules.White, rules.PieceTypeQueen) {
		t.Fatalf("a8 is not a white queen:\n%s", boardString(g))
	}
	last, _ := g.LastMove()
	if last.PromoteToType != rules.PieceTypeQueen || last.Check != sq(t, "h8") {
		t.Fatalf("history not patched: %+v", last)
	}
	inCheck, err := g.InCheck()
	if err != nil || !inCheck {
		t.Fatalf("black should be in check: %v %v", inCheck, err)
	}
	for _, m := range g.AllValidMoves() {
		if m.To == sq(t, "g8") {
			t.Fatalf("king may not stay on the checked rank: %s", m)
		}
	}
	if !errors.Is(g.PromoteLastMoveTo(rules.PieceTypeRook), game.ErrNoPendingPromotion) {
		t.Fatalf("second promotion should fail")
	}
}

func TestPromotionDeliversMate(t *testing.T) {
	var r recorder
	cfg := r.config()
	cfg.Placement = "k7/7P/1K6/8/8/8/8/8"
	g := newGame(t, cfg)

	play(t, g, "h7h8")
	if over, _ := g.GameOver(); over {
		t.Fatalf("game decided before the promotion piece was chosen")
	}
	if r.count("gameOver") != 0 {
		t.Fatalf("game over fired early: %v", r.events)
	}
	if err := g.PromoteLastMoveTo(rules.PieceTypeQueen); err != nil {
		t.Fatal(err)
	}
	over, reason := g.GameOver()
	if !over || reason != game.ReasonCheckMate {
		t.Fatalf("expected mate after h8=Q, got %v %q", over, reason)
	}
	if r.count("gameOver") != 1 {
		t.Fatalf("game over callback: %v", r.events)
	}
}

func TestUnderpromotionAvoidsMate(t *testing.T) {
	g := newGame(t, game.Config{Placement: "k7/7P/1K6/8/8/8/8/8"})
	play(t, g, "h7h8n")
	if over, _ := g.GameOver(); over {
		t.Fatalf("h8=N does not end the game")
	}
	if !g.PieceAt(sq(t, "h8")).Is(rules.White, rules.PieceTypeKnight) {
		t.Fatalf("h8 is not a knight")
	}
	last, _ := g.LastMove()
	if last.GivesCheck() {
		t.Fatalf("h8=N gives no check: %+v", last)
	}
}

func TestSimulateWithPromotionIsAtomic(t *testing.T) {
	var r recorder
	cfg := r.config()
	cfg.Placement = "k7/7P/1K6/8/8/8/8/8"
	g := newGame(t, cfg)
	play(t, g, "h7h8r")
	if g.PendingPromotion() {
		t.Fatalf("promotion left pending")
	}
	over, reason := g.GameOver()
	if !over || reason != game.ReasonCheckMate {
		t.Fatalf("h8=R mates: got %v %q", over, reason)
	}
	want := "move:h7h8r"
	if len(r.events) != 2 || r.events[0] != want || r.events[1] != "gameOver" {
		t.Fatalf("events: %v", r.events)
	}
}

func TestPromoteToOnNonPromotionFails(t *testing.T) {
	var r recorder
	g := newGame(t, r.config())
	before := g.Board()
	ok, err := g.SimulateClicksToMove(sq(t, "e2"), sq(t, "e4"), rules.PieceTypeQueen)
	if ok || !errors.Is(err, game.ErrNotPromotion) {
		t.Fatalf("expected ErrNotPromotion, got %v %v", ok, err)
	}
	if g.Board() != before || len(g.History()) != 0 || g.Current() != rules.White {
		t.Fatalf("state changed by a rejected promotion")
	}
	if len(r.events) != 0 {
		t.Fatalf("callbacks fired for a rejected promotion: %v", r.events)
	}
}

func TestPromotionErrors(t *testing.T) {
	g := newGame(t, game.Config{})
	if err := g.PromoteLastMoveTo(rules.PieceTypeQueen); !errors.Is(err, game.ErrNoPendingPromotion) {
		t.Fatalf("expected ErrNoPendingPromotion, got %v", err)
	}

	p := newGame(t, game.Config{Placement: "7k/P7/8/8/8/8/8/K7"})
	if _, err := p.SimulateClicksToMove(sq(t, "a7"), sq(t, "a8"), rules.PieceTypeKing); !errors.Is(err, game.ErrInvalidPromotion) {
		t.Fatalf("expected ErrInvalidPromotion, got %v", err)
	}
	play(t, p, "a7a8")
	for _, pt := range []rules.PieceType{rules.PieceTypeKing, rules.PieceTypePawn, rules.PieceTypeNone} {
		if err := p.PromoteLastMoveTo(pt); !errors.Is(err, game.ErrInvalidPromotion) {
			t.Fatalf("promote to %s: expected ErrInvalidPromotion, got %v", pt, err)
		}
	}
	if !p.PendingPromotion() {
		t.Fatalf("failed promotion cleared the pending state")
	}
}

func TestUndoPendingPromotion(t *testing.T) {
	g := newGame(t, game.Config{Placement: "7k/P7/8/8/8/8/8/K7"})
	before := g.Board()
	play(t, g, "a7a8")
	if _, err := g.Undo(); err != nil {
		t.Fatal(err)
	}
	if g.Board() != before || g.PendingPromotion() || g.Current() != rules.White {
		t.Fatalf("undo of a pending promotion did not restore the start:\n%s", boardString(g))
	}
}
