package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"golang.org/x/exp/maps"

	"chess-rules/internal/cli"
	"chess-rules/internal/oracle"
	"chess-rules/rules"
)

func main() {
	cli.LoadEnv()
	log := cli.Logger(os.Stderr)

	placement := flag.String("placement", cli.Getenv("PERFT_PLACEMENT", rules.StartPlacement), "Placement string (defaults to initial position)")
	sideFlag := flag.String("side", "w", "Side to move: w or b")
	epFlag := flag.String("ep", "-", "En passant target square left by the previous double push, e.g. d6")
	depth := flag.Int("depth", cli.GetenvInt("PERFT_DEPTH", 0), "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	verify := flag.Bool("verify", false, "Compare the root divide against dragontoothmg")
	prof := flag.String("profile", "", "Profile the run: cpu or mem")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	board, err := rules.ParsePlacement(*placement)
	if err != nil {
		log.Fatal().Err(err).Str("placement", *placement).Msg("bad placement")
	}
	if err := board.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid position")
	}
	side := rules.White
	switch *sideFlag {
	case "w", "white":
	case "b", "black":
		side = rules.Black
	default:
		log.Fatal().Str("side", *sideFlag).Msg("side must be w or b")
	}
	last, err := lastFromEnPassant(*epFlag, side)
	if err != nil {
		log.Fatal().Err(err).Msg("bad en passant square")
	}

	if *verify {
		os.Exit(runVerify(log, &board, side, last, *depth))
	}

	if *divide {
		div, err := rules.PerftDivide(&board, side, last, *depth)
		if err != nil {
			log.Fatal().Err(err).Msg("divide")
		}
		keys := maps.Keys(div)
		sort.Strings(keys)
		var sum uint64
		for _, k := range keys {
			fmt.Printf("%s: %d\n", k, div[k])
			sum += div[k]
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	switch *prof {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	default:
		log.Fatal().Str("profile", *prof).Msg("profile must be cpu or mem")
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		n, err := rules.Perft(&board, side, last, *depth)
		if err != nil {
			log.Fatal().Err(err).Int("depth", *depth).Msg("perft")
		}
		totalNodes += n
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)
}

// lastFromEnPassant rebuilds the double push that left target behind.
func lastFromEnPassant(target string, side rules.Color) (*rules.Move, error) {
	if target == "" || target == "-" {
		return nil, nil
	}
	sq, err := rules.ParseSquare(target)
	if err != nil {
		return nil, err
	}
	// The pusher is the side not to move; White pushes up the board.
	step := rules.Square(8)
	if side == rules.White {
		step = -8
	}
	m := rules.NewMove(sq+step, sq-step)
	m.DoublePush = true
	return &m, nil
}

func runVerify(log zerolog.Logger, b *rules.Board, side rules.Color, last *rules.Move, depth int) int {
	fen := oracle.FEN(b, side, last)
	diffs, err := oracle.Verify(b, side, last, depth)
	if err != nil {
		log.Error().Err(err).Msg("verify")
		return 1
	}
	for _, d := range diffs {
		log.Warn().Str("move", d.Move).Uint64("rules", d.Rules).Uint64("oracle", d.Oracle).Msg("node count mismatch")
	}
	if len(diffs) > 0 {
		log.Error().Str("fen", fen).Int("depth", depth).Int("mismatches", len(diffs)).Msg("generators disagree")
		return 1
	}
	log.Info().Str("fen", fen).Int("depth", depth).Msg("generators agree")
	return 0
}
