package rules

// Direction indexes the edge-distance table.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	DirUpLeft
	DirUpRight
	DirDownLeft
	DirDownRight
)

// dirOffsets gives the square delta of one step in each direction.
var dirOffsets = [8]Square{-8, 8, -1, 1, -9, -7, 7, 9}

var (
	rookDirections   = []Direction{DirUp, DirDown, DirLeft, DirRight}
	bishopDirections = []Direction{DirUpLeft, DirUpRight, DirDownLeft, DirDownRight}
	queenDirections  = []Direction{DirUp, DirDown, DirLeft, DirRight, DirUpLeft, DirUpRight, DirDownLeft, DirDownRight}
)

// numToEdge[sq][dir] is the number of steps from sq to the board edge.
// Sliding walks never go further than this, which is what keeps them from
// wrapping across a rank or file.
var numToEdge [BoardSize][8]int

func init() {
	initEdgeTable()
}

func initEdgeTable() {
	for sq := Square(0); sq < BoardSize; sq++ {
		up := sq.Row()
		down := 7 - sq.Row()
		left := sq.Col()
		right := 7 - sq.Col()
		numToEdge[sq] = [8]int{
			DirUp:        up,
			DirDown:      down,
			DirLeft:      left,
			DirRight:     right,
			DirUpLeft:    min(up, left),
			DirUpRight:   min(up, right),
			DirDownLeft:  min(down, left),
			DirDownRight: min(down, right),
		}
	}
}

// StepsToEdge returns how many squares remain from sq to the edge in dir.
func StepsToEdge(sq Square, dir Direction) int { return numToEdge[sq][dir] }

// Offset returns the square delta of a single step in dir.
func (d Direction) Offset() Square { return dirOffsets[d] }
