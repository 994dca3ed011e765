package board

// Kind is the type of a chess piece.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindPawn
	KindBishop
	KindKnight
	KindRook
	KindQueen
	KindKing
)

// Kinds lists every valid kind in ascending order.
var Kinds = []Kind{KindPawn, KindBishop, KindKnight, KindRook, KindQueen, KindKing}

func (k Kind) String() string {
	return k.Name()
}

func (k Kind) Name() string {
	switch k {
	case KindPawn:
		return "Pawn"
	case KindBishop:
		return "Bishop"
	case KindKnight:
		return "Knight"
	case KindRook:
		return "Rook"
	case KindQueen:
		return "Queen"
	case KindKing:
		return "King"
	default:
		return ""
	}
}

func (k Kind) SymbolFEN(s Side) string {
	var sym rune
	switch k {
	case KindPawn:
		sym = 'P'
	case KindBishop:
		sym = 'B'
	case KindKnight:
		sym = 'N'
	case KindRook:
		sym = 'R'
	case KindQueen:
		sym = 'Q'
	case KindKing:
		sym = 'K'
	default:
		return ""
	}
	if s == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

func (k Kind) SymbolUnicode(s Side, invert bool) string {
	if invert {
		s = s.Opposite()
	}
	switch s {
	case SideWhite:
		switch k {
		case KindPawn:
			return "♙"
		case KindBishop:
			return "♗"
		case KindKnight:
			return "♘"
		case KindRook:
			return "♖"
		case KindQueen:
			return "♕"
		case KindKing:
			return "♔"
		default:
			return ""
		}
	case SideBlack:
		switch k {
		case KindPawn:
			return "♟"
		case KindBishop:
			return "♝"
		case KindKnight:
			return "♞"
		case KindRook:
			return "♜"
		case KindQueen:
			return "♛"
		case KindKing:
			return "♚"
		default:
			return ""
		}
	default:
		return ""
	}
}

// Piece is a plain value owned by the square it stands on. The zero Piece
// means "no piece". Only pawns use the moved flag.
type Piece struct {
	kind  Kind
	side  Side
	moved bool
}

func NewPiece(k Kind, s Side) Piece {
	return Piece{kind: k, side: s}
}

func (p Piece) Kind() Kind {
	return p.kind
}

func (p Piece) Side() Side {
	return p.side
}

// HasMoved reports whether a pawn has completed a move. Always false for
// other kinds.
func (p Piece) HasMoved() bool {
	return p.kind == KindPawn && p.moved
}

func (p Piece) IsZero() bool {
	return p.kind == KindUnknown
}

// MarkMoved returns the piece with the pawn moved flag set.
func (p Piece) MarkMoved() Piece {
	if p.kind == KindPawn {
		p.moved = true
	}
	return p
}

// SameKind compares kind and side, ignoring the pawn moved flag.
func (p Piece) SameKind(o Piece) bool {
	return p.kind == o.kind && p.side == o.side
}

func (p Piece) SymbolFEN() string {
	return p.kind.SymbolFEN(p.side)
}

func (p Piece) String() string {
	if p.IsZero() {
		return ""
	}
	return p.side.String() + " " + p.kind.Name()
}
