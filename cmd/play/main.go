package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"chess-rules/game"
	"chess-rules/internal/cli"
	"chess-rules/rules"
)

func main() {
	cli.LoadEnv()
	log := cli.Logger(os.Stderr)
	s := &session{out: os.Stdout, log: log}
	if err := s.reset(cli.Getenv("PLAY_PLACEMENT", ""), rules.White); err != nil {
		log.Fatal().Err(err).Msg("start position")
	}
	s.loop(os.Stdin)
}

type session struct {
	g   *game.Game
	out io.Writer
	log zerolog.Logger
}

func (s *session) config(placement string, side rules.Color) game.Config {
	return game.Config{
		Placement: placement,
		Current:   side,
		Logger:    &s.log,
		OnGameOver: func(r game.Reason) {
			fmt.Fprintf(s.out, "gameover %s\n", r)
		},
		OnCapture: func(m rules.Move) {
			fmt.Fprintf(s.out, "info capture %s %s\n", m, m.CaptureType)
		},
		OnCastle: func(m rules.Move) {
			fmt.Fprintf(s.out, "info castle %s rook %s\n", m, *m.ResultingMove)
		},
		OnEnPassant: func(m rules.Move) {
			fmt.Fprintf(s.out, "info enpassant %s takes %s\n", m, m.CaptureIndex)
		},
		OnUndo: func(m rules.Move) {
			fmt.Fprintf(s.out, "info undo %s\n", m)
		},
	}
}

func (s *session) reset(placement string, side rules.Color) error {
	g, err := game.New(s.config(placement, side))
	if err != nil {
		return err
	}
	s.g = g
	return nil
}

func (s *session) loop(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		if !s.handle(tokens) {
			return
		}
	}
	if err := scanner.Err(); err != nil {
		s.log.Error().Err(err).Msg("reading commands")
	}
}

// handle runs one command and reports whether the loop should continue.
func (s *session) handle(tokens []string) bool {
	var err error
	switch strings.ToLower(tokens[0]) {
	case "quit":
		return false
	case "board":
		s.printBoard()
	case "moves":
		err = s.printMoves(tokens[1:])
	case "click":
		err = s.click(tokens[1:])
	case "move":
		err = s.move(tokens[1:])
	case "promote":
		err = s.promote(tokens[1:])
	case "undo":
		var m *rules.Move
		m, err = s.g.Undo()
		if err == nil && m == nil {
			fmt.Fprintln(s.out, "info nothing to undo")
		}
	case "role":
		if len(tokens) < 2 {
			err = fmt.Errorf("usage: role <white|black|watching>")
			break
		}
		s.g.SetRole(game.Role(strings.ToLower(tokens[1])))
		fmt.Fprintf(s.out, "info frozen %v\n", s.g.FreezeOn())
	case "position":
		err = s.position(tokens[1:])
	default:
		err = fmt.Errorf("unknown command %q", tokens[0])
	}
	if err != nil {
		fmt.Fprintf(s.out, "error %v\n", err)
	}
	return true
}

func (s *session) printBoard() {
	b := s.g.Board()
	fmt.Fprint(s.out, b.String())
	fmt.Fprintf(s.out, "placement %s\n", b.Placement())
	fmt.Fprintf(s.out, "turn %s\n", s.g.Current())
	if over, reason := s.g.GameOver(); over {
		fmt.Fprintf(s.out, "gameover %s\n", reason)
	}
	if s.g.PendingPromotion() {
		fmt.Fprintln(s.out, "info promotion pending")
	}
}

func (s *session) printMoves(args []string) error {
	moves := s.g.AllValidMoves()
	if len(args) > 0 {
		sq, err := rules.ParseSquare(args[0])
		if err != nil {
			return err
		}
		moves = s.g.ValidMoves(sq)
	}
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	fmt.Fprintf(s.out, "moves %d %s\n", len(moves), strings.Join(names, " "))
	return nil
}

func (s *session) click(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: click <square> [force]")
	}
	sq, err := rules.ParseSquare(args[0])
	if err != nil {
		return err
	}
	force := len(args) > 1 && args[1] == "force"
	res, err := s.g.ClickTile(sq, force)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "click %s\n", res)
	return nil
}

// move plays coordinate notation such as e2e4 or e7e8q.
func (s *session) move(args []string) error {
	if len(args) == 0 || (len(args[0]) != 4 && len(args[0]) != 5) {
		return fmt.Errorf("usage: move <from><to>[q|r|b|n]")
	}
	mv := args[0]
	from, err := rules.ParseSquare(mv[:2])
	if err != nil {
		return err
	}
	to, err := rules.ParseSquare(mv[2:4])
	if err != nil {
		return err
	}
	promo := rules.PieceTypeNone
	if len(mv) == 5 {
		promo = rules.PieceTypeFromChar(rune(mv[4]))
		if !promo.IsPromotionChoice() {
			return fmt.Errorf("%w: %q", game.ErrInvalidPromotion, mv[4:])
		}
	}
	ok, err := s.g.SimulateClicksToMove(from, to, promo)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("illegal move %s", mv)
	}
	fmt.Fprintf(s.out, "ok %s\n", mv)
	return nil
}

func (s *session) promote(args []string) error {
	if len(args) == 0 || len(args[0]) != 1 {
		return fmt.Errorf("usage: promote <q|r|b|n>")
	}
	return s.g.PromoteLastMoveTo(rules.PieceTypeFromChar(rune(args[0][0])))
}

func (s *session) position(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: position <placement|startpos> [w|b]")
	}
	placement := args[0]
	if placement == "startpos" {
		placement = rules.StartPlacement
	}
	side := rules.White
	if len(args) > 1 && strings.HasPrefix(args[1], "b") {
		side = rules.Black
	}
	return s.reset(placement, side)
}
