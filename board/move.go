package board

import "github.com/daystram/duel/position"

type Move struct {
	From, To position.Pos
	Piece    Piece
	Captured Piece

	IsCapture       bool
	IsDoubleAdvance bool
}

func (m Move) String() string {
	return m.Algebra()
}

// Algebra returns a long algebraic form, e.g. "Ng1-f3" or "e4xd5".
func (m Move) Algebra() string {
	var nt string
	if m.Piece.Kind() != KindPawn {
		nt = m.Piece.Kind().SymbolFEN(SideWhite) // SideWhite because it returns capital symbols
	}
	nt += m.From.Notation()
	if m.IsCapture {
		nt += "x"
	} else {
		nt += "-"
	}
	return nt + m.To.Notation()
}

func (m Move) UCI() string {
	return m.From.Notation() + m.To.Notation()
}
