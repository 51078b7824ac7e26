package game

import "chess-rules/rules"

// Tile background colors.
const (
	LightTile = "#f2dcb6"
	DarkTile  = "#b57d45"
)

// Palette holds the overlay colors of a rendered board.
type Palette struct {
	LastMoveFrom  string
	LastMoveTo    string
	AvailableMove string
	Selected      string
	KingCheck     string
}

var DefaultPalette = Palette{
	LastMoveFrom:  "rgba(220,200,0,.3)",
	LastMoveTo:    "rgba(250,200,0,.3)",
	AvailableMove: "rgba(200,0,0,.5)",
	Selected:      "rgba(200,0,0,.5)",
	KingCheck:     "rgba(255,0,0,.5)",
}

// TileColor returns the background color of sq. a8 is light.
func TileColor(sq rules.Square) string {
	if (sq.Row()+sq.Col())%2 == 0 {
		return LightTile
	}
	return DarkTile
}

// OverlayColor returns the highlight for sq, or "" for none. Destinations of
// the selected piece win over the selection itself, which wins over a king
// in check, which wins over the last-move markers.
func OverlayColor(g *Game, sq rules.Square, p Palette) string {
	var col string
	last := g.last()
	if last != nil {
		switch sq {
		case last.From:
			col = p.LastMoveFrom
		case last.To:
			col = p.LastMoveTo
		}
	}
	if g.selected.Valid() {
		for _, m := range g.validMoves[g.selected] {
			if m.To == sq {
				return p.AvailableMove
			}
		}
		if sq == g.selected {
			return p.Selected
		}
	}
	if last != nil && last.Check == sq {
		return p.KingCheck
	}
	return col
}

// BoardGrid maps screen cells to squares, row by row from the top. The
// flipped grid is Black's view, with h1 in the top-left corner.
func BoardGrid(flipped bool) [8][8]rules.Square {
	var grid [8][8]rules.Square
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if flipped {
				grid[y][x] = rules.SquareAt(7-x, 7-y)
			} else {
				grid[y][x] = rules.SquareAt(x, y)
			}
		}
	}
	return grid
}

// FlippedFor reports whether a role should see the board from Black's side.
func FlippedFor(r Role) bool { return r == RoleBlack }
