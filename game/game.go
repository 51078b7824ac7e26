package game

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"

	"chess-rules/rules"
)

// Game is the click-driven state machine around a board: selection, move
// history, turn order and end-of-game detection. It is not safe for
// concurrent use.
type Game struct {
	board      rules.Board
	history    []rules.Move
	validMoves [rules.BoardSize][]rules.Move
	selected   rules.Square
	current    rules.Color
	gameOver   bool
	reason     Reason
	freezeOn   []rules.Color

	cb  callbacks
	log zerolog.Logger
}

// New builds a game from cfg, generates the first side's moves and
// classifies the starting position. A position that is already over is
// reported through GameOver; OnGameOver is not called for it.
func New(cfg Config) (*Game, error) {
	placement := cfg.Placement
	if placement == "" {
		placement = rules.StartPlacement
	}
	board, err := rules.ParsePlacement(placement)
	if err != nil {
		return nil, err
	}
	if err := board.Validate(); err != nil {
		return nil, fmt.Errorf("starting position: %w", err)
	}

	current := cfg.Current
	if current == rules.NoColor {
		current = rules.White
	}

	g := &Game{
		board:    board,
		selected: rules.NoSquare,
		current:  current,
		freezeOn: slices.Clone(cfg.FreezeOn),
		cb:       cfg.callbacks(),
		log:      cfg.logger(),
	}
	pos, err := evaluate(&g.board, current, nil, true)
	if err != nil {
		return nil, err
	}
	g.adopt(pos)
	return g, nil
}

// position is the derived state of a board for the side to move.
type position struct {
	valid  [rules.BoardSize][]rules.Move
	over   bool
	reason Reason
}

// evaluate generates the legal moves of side and, when classify is set,
// decides whether the game has ended. Nothing is mutated, so callers can
// compute it on a candidate board and commit only on success.
func evaluate(b *rules.Board, side rules.Color, last *rules.Move, classify bool) (position, error) {
	var pos position
	moves, err := b.GenerateMoves(side, last)
	if err != nil {
		return pos, err
	}
	for _, m := range moves {
		pos.valid[m.From] = append(pos.valid[m.From], m)
	}
	if !classify || len(moves) > 0 {
		return pos, nil
	}
	inCheck, err := b.InCheck(side)
	if err != nil {
		return pos, err
	}
	pos.over = true
	pos.reason = ReasonStaleMate
	if inCheck {
		pos.reason = ReasonCheckMate
	}
	return pos, nil
}

func (g *Game) adopt(pos position) {
	g.validMoves = pos.valid
	g.gameOver = pos.over
	g.reason = pos.reason
}

// Board returns a copy of the current board.
func (g *Game) Board() rules.Board { return g.board }

func (g *Game) PieceAt(sq rules.Square) rules.Piece { return g.board.PieceAt(sq) }

// Current returns the side to move.
func (g *Game) Current() rules.Color { return g.current }

// Selected returns the selected square, NoSquare when nothing is selected.
func (g *Game) Selected() rules.Square { return g.selected }

// GameOver reports whether the game has ended and why.
func (g *Game) GameOver() (bool, Reason) { return g.gameOver, g.reason }

// ValidMoves returns the legal moves of the piece on sq.
func (g *Game) ValidMoves(sq rules.Square) []rules.Move {
	if !sq.Valid() {
		return nil
	}
	return cloneMoves(g.validMoves[sq])
}

// AllValidMoves returns every legal move of the side to move.
func (g *Game) AllValidMoves() []rules.Move {
	var all []rules.Move
	for _, moves := range g.validMoves {
		all = append(all, cloneMoves(moves)...)
	}
	return all
}

// FreezeOn returns the colors that cannot be moved by unforced clicks.
func (g *Game) FreezeOn() []rules.Color { return slices.Clone(g.freezeOn) }

// SetRole freezes the colors the role does not play. Any role other than
// white or black watches and freezes both.
func (g *Game) SetRole(r Role) {
	g.freezeOn = freezeFor(r)
	g.log.Debug().Str("role", string(r)).Msg("role set")
}

func (g *Game) frozen(c rules.Color) bool { return slices.Contains(g.freezeOn, c) }

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() (bool, error) { return g.board.InCheck(g.current) }

func cloneMoves(moves []rules.Move) []rules.Move {
	if moves == nil {
		return nil
	}
	out := make([]rules.Move, len(moves))
	for i, m := range moves {
		out[i] = m.Clone()
	}
	return out
}
