package game

import (
	"github.com/rs/zerolog"

	"chess-rules/rules"
)

// Config configures a Game. The zero value starts a standard game with
// nothing frozen and no callbacks.
type Config struct {
	// FreezeOn lists colors whose pieces ClickTile refuses to move unless forced.
	FreezeOn []rules.Color

	// Placement is the starting arrangement in the slash-delimited setup
	// format. Empty means the standard initial position.
	Placement string
	// Current is the side to move first. NoColor means White.
	Current rules.Color

	// Logger receives debug events for moves, undos, promotions and game
	// over. Nil disables logging.
	Logger *zerolog.Logger

	// Callbacks run synchronously after the state change has been committed.
	OnGameOver  func(Reason)
	OnMove      func(rules.Move)
	OnCastle    func(rules.Move)
	OnCapture   func(rules.Move)
	OnEnPassant func(rules.Move)
	OnUndo      func(rules.Move)
}

type callbacks struct {
	gameOver  func(Reason)
	move      func(rules.Move)
	castle    func(rules.Move)
	capture   func(rules.Move)
	enPassant func(rules.Move)
	undo      func(rules.Move)
}

func noopMove(rules.Move) {}

func orNoop(fn func(rules.Move)) func(rules.Move) {
	if fn == nil {
		return noopMove
	}
	return fn
}

func (c *Config) callbacks() callbacks {
	cb := callbacks{
		gameOver:  c.OnGameOver,
		move:      orNoop(c.OnMove),
		castle:    orNoop(c.OnCastle),
		capture:   orNoop(c.OnCapture),
		enPassant: orNoop(c.OnEnPassant),
		undo:      orNoop(c.OnUndo),
	}
	if cb.gameOver == nil {
		cb.gameOver = func(Reason) {}
	}
	return cb
}

func (c *Config) logger() zerolog.Logger {
	if c.Logger == nil {
		return zerolog.Nop()
	}
	return *c.Logger
}
