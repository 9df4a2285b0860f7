package holdem

// Status is a player's standing within the current hand
type Status string

// status constants
const (
	// StatusActive means the player is still live in the hand
	StatusActive Status = "active"
	// StatusFolded means the player folded this hand
	StatusFolded Status = "folded"
	// StatusAllIn means the player has wagered their entire stack
	StatusAllIn Status = "all-in"
	// StatusOut means the player has no chips left; terminal
	StatusOut Status = "out"
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusFolded:
		return "Folded"
	case StatusAllIn:
		return "All in"
	case StatusOut:
		return "Out"
	}

	panic("unknown status")
}

// Position is a player's table position for the current hand
type Position string

// position constants
const (
	PositionNone       Position = ""
	PositionSmallBlind Position = "small-blind"
	PositionBigBlind   Position = "big-blind"
	PositionButton     Position = "button"
)

func (p Position) String() string {
	switch p {
	case PositionNone:
		return ""
	case PositionSmallBlind:
		return "Small blind"
	case PositionBigBlind:
		return "Big blind"
	case PositionButton:
		return "Button"
	}

	panic("unknown position")
}
