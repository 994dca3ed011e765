package board

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var ErrInvalidFEN = errors.New("invalid fen")

// UnmarshalFEN loads the piece placement and side to move. Castling, en
// passant and clock fields are accepted but ignored. Pawns away from their
// home rank are marked as moved.
func UnmarshalFEN(fen string, b *Board) error {
	if b == nil {
		return fmt.Errorf("invalid board")
	}
	segments := strings.Fields(fen)
	if len(segments) != 2 && len(segments) != 6 {
		return fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	var cells [TotalCells]Piece
	rows := strings.Split(segments[0], "/")
	if len(rows) != Height {
		return fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	for y := 0; y < Height; y++ {
		row := rows[Height-y-1]
		ptrX := -1
		for x := 0; x < Width; x++ {
			ptrX++
			if ptrX >= len(row) {
				return fmt.Errorf("%w: missing cells", ErrInvalidFEN)
			}
			var s Side
			var k Kind
			switch cell := rune(row[ptrX]); cell {
			case 'P':
				s, k = SideWhite, KindPawn
			case 'B':
				s, k = SideWhite, KindBishop
			case 'N':
				s, k = SideWhite, KindKnight
			case 'R':
				s, k = SideWhite, KindRook
			case 'Q':
				s, k = SideWhite, KindQueen
			case 'K':
				s, k = SideWhite, KindKing
			case 'p':
				s, k = SideBlack, KindPawn
			case 'b':
				s, k = SideBlack, KindBishop
			case 'n':
				s, k = SideBlack, KindKnight
			case 'r':
				s, k = SideBlack, KindRook
			case 'q':
				s, k = SideBlack, KindQueen
			case 'k':
				s, k = SideBlack, KindKing
			default:
				if cell != '0' && unicode.IsDigit(cell) {
					skip := int(cell - '0')
					if x+skip-1 < Width {
						x += skip - 1
						continue
					}
					return fmt.Errorf("%w: skip out of bounds", ErrInvalidFEN)
				}
				return fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(cell))
			}
			pc := NewPiece(k, s)
			if k == KindPawn && y+1 != s.homeRank() {
				pc = pc.MarkMoved()
			}
			cells[y*Width+x] = pc
		}
		if ptrX != len(row)-1 {
			return fmt.Errorf("%w: extra cells", ErrInvalidFEN)
		}
	}

	var turn Side
	switch segments[1] {
	case "w":
		turn = SideWhite
	case "b":
		turn = SideBlack
	default:
		return fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}

	b.cells = cells
	b.turn = turn
	return nil
}

// MarshalFEN writes the piece placement and side to move.
func MarshalFEN(b *Board) (string, error) {
	if b == nil {
		return "", fmt.Errorf("invalid board")
	}
	builder := strings.Builder{}
	for y := Height - 1; y >= 0; y-- {
		var skip int
		for x := 0; x < Width; x++ {
			pc := b.cells[y*Width+x]
			if pc.IsZero() {
				skip++
				continue
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune(skip + '0'))
				skip = 0
			}
			_, _ = builder.WriteString(pc.SymbolFEN())
		}
		if skip != 0 {
			_, _ = builder.WriteRune(rune(skip + '0'))
		}
		if y > 0 {
			_, _ = builder.WriteRune('/')
		}
	}

	switch b.turn {
	case SideWhite:
		_, _ = builder.WriteString(" w")
	case SideBlack:
		_, _ = builder.WriteString(" b")
	default:
		return "", fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}

	return builder.String(), nil
}
