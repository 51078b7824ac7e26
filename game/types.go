package game

import "chess-rules/rules"

// Reason explains why a game ended. The empty reason means it has not.
type Reason string

const (
	ReasonNone      Reason = ""
	ReasonCheckMate Reason = "checkMate"
	ReasonStaleMate Reason = "staleMate"
)

// ClickResult is the outcome of a single tile click.
type ClickResult string

const (
	ClickSelect   ClickResult = "select"
	ClickMove     ClickResult = "move"
	ClickDeselect ClickResult = "deselect"
	ClickFrozen   ClickResult = "frozen"
)

// Role is the seat a front end plays from. It decides which colors are frozen.
type Role string

const (
	RoleWhite    Role = "white"
	RoleBlack    Role = "black"
	RoleWatching Role = "watching"
)

// freezeFor returns the colors a role may not move.
func freezeFor(r Role) []rules.Color {
	switch r {
	case RoleWhite:
		return []rules.Color{rules.Black}
	case RoleBlack:
		return []rules.Color{rules.White}
	default:
		return []rules.Color{rules.White, rules.Black}
	}
}
