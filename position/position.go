package position

import (
	"errors"
	"fmt"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar = 8

	// TotalCells is the number of addressable squares.
	TotalCells = MaxComponentScalar * MaxComponentScalar
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")

	// ErrOutOfRange represents a file or rank outside of the board.
	ErrOutOfRange = errors.New("position out of range")
)

// Pos is a (file, rank) pair stored zero-based. A Pos built with New or
// Offset may lie outside of the board; check Valid before addressing cells.
type Pos struct {
	x, y int
}

// New makes a Pos from a file letter and a rank number without bounds checking.
func New(file byte, rank int) Pos {
	return Pos{x: int(file) - 'a', y: rank - 1}
}

// NewChecked makes a Pos, failing with ErrOutOfRange when it is off the board.
func NewChecked(file byte, rank int) (Pos, error) {
	if file < 'a' || 'h' < file || rank < 1 || MaxComponentScalar < rank {
		return Pos{}, fmt.Errorf("%w: file=%q rank=%d", ErrOutOfRange, file, rank)
	}
	return New(file, rank), nil
}

// Index returns the linear index of the square at file and rank.
func Index(file byte, rank int) (int, error) {
	p, err := NewChecked(file, rank)
	if err != nil {
		return 0, err
	}
	return p.Index()
}

// FromIndex is the inverse of Index.
func FromIndex(i int) (Pos, error) {
	if i < 0 || TotalCells <= i {
		return Pos{}, fmt.Errorf("%w: index=%d", ErrOutOfRange, i)
	}
	return Pos{x: i % MaxComponentScalar, y: i / MaxComponentScalar}, nil
}

func NewPosFromNotation(n string) (Pos, error) {
	x, y, err := notationToXY(n)
	if err != nil {
		return Pos{}, err
	}
	return Pos{x: x, y: y}, nil
}

func (p Pos) Valid() bool {
	return 0 <= p.x && p.x < MaxComponentScalar && 0 <= p.y && p.y < MaxComponentScalar
}

// Index returns (file - 'a') + (rank - 1) * 8.
func (p Pos) Index() (int, error) {
	if !p.Valid() {
		return 0, fmt.Errorf("%w: x=%d y=%d", ErrOutOfRange, p.x, p.y)
	}
	return p.y*MaxComponentScalar + p.x, nil
}

func (p Pos) Offset(dx, dy int) Pos {
	return Pos{x: p.x + dx, y: p.y + dy}
}

func (p Pos) X() int {
	return p.x
}

func (p Pos) Y() int {
	return p.y
}

func (p Pos) File() byte {
	return byte('a' + p.x)
}

func (p Pos) Rank() int {
	return p.y + 1
}

func (p Pos) String() string {
	return p.Notation()
}

func (p Pos) Notation() string {
	if !p.Valid() {
		return ""
	}
	return p.NotationComponentX() + p.NotationComponentY()
}

func (p Pos) NotationComponentX() string {
	if p.x < 0 || MaxComponentScalar <= p.x {
		return ""
	}
	return string(rune('a' + p.x))
}

func (p Pos) NotationComponentY() string {
	if p.y < 0 || MaxComponentScalar <= p.y {
		return ""
	}
	return string(rune('1' + p.y))
}

func notationToXY(n string) (int, int, error) {
	if len(n) != 2 {
		return 0, 0, ErrInvalidNotation
	}
	pX, err := notationToX(n[0])
	if err != nil {
		return 0, 0, err
	}
	pY, err := notationToY(n[1])
	if err != nil {
		return 0, 0, err
	}
	return pX, pY, nil
}

func notationToX(x byte) (int, error) {
	if x < 'a' || 'a'+MaxComponentScalar <= x {
		return 0, ErrInvalidNotation
	}
	return int(x - 'a'), nil
}

func notationToY(y byte) (int, error) {
	if y < '1' || '1'+MaxComponentScalar <= y {
		return 0, ErrInvalidNotation
	}
	return int(y - '1'), nil
}
