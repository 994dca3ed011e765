package board

type Side uint8

const (
	SideUnknown Side = iota
	SideWhite
	SideBlack
)

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	switch s {
	case SideWhite:
		return SideBlack
	case SideBlack:
		return SideWhite
	default:
		return SideUnknown
	}
}

// Forward is the rank delta of a pawn advance for the side.
func (s Side) Forward() int {
	switch s {
	case SideWhite:
		return 1
	case SideBlack:
		return -1
	default:
		return 0
	}
}

// homeRank is the rank pawns of the side start on.
func (s Side) homeRank() int {
	if s == SideBlack {
		return 7
	}
	return 2
}
