package board

import (
	"errors"
	"fmt"

	"github.com/daystram/duel/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = position.TotalCells

	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w"
)

var (
	ErrEmptySquareSelected = errors.New("an empty square was selected")
	ErrWrongSideSelected   = errors.New("wrong piece was selected")
	ErrIllegalDestination  = errors.New("specified move is impossible")
)

// Little-endian rank-file (LERF) mapping, see position.Pos.Index.
type Board struct {
	cells [TotalCells]Piece
	turn  Side
}

type boardConfig struct {
	fen string
}

type BoardOption func(*boardConfig)

// WithFEN loads the piece placement and side to move from a FEN string.
func WithFEN(fen string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.fen = fen
	}
}

// NewBoard returns a board in the standard initial position with White to
// move, unless overridden by options.
func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{
		fen: DefaultStartingPositionFEN,
	}
	for _, f := range opts {
		f(cfg)
	}
	b := &Board{}
	if err := UnmarshalFEN(cfg.fen, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Board) Turn() Side {
	return b.turn
}

// PieceAt returns the piece on p. The second value is false when the square
// is empty or off the board.
func (b *Board) PieceAt(p position.Pos) (Piece, bool) {
	i, err := p.Index()
	if err != nil {
		return Piece{}, false
	}
	pc := b.cells[i]
	return pc, !pc.IsZero()
}

// MovePiece validates and applies a single ply. The board is left untouched
// when an error is returned.
func (b *Board) MovePiece(from, to position.Pos) error {
	fromIdx, err := from.Index()
	if err != nil {
		return fmt.Errorf("invalid start: %w", err)
	}
	toIdx, err := to.Index()
	if err != nil {
		return fmt.Errorf("invalid destination: %w", err)
	}

	pc := b.cells[fromIdx]
	if pc.IsZero() {
		return fmt.Errorf("%w: %s", ErrEmptySquareSelected, from)
	}
	if pc.Side() != b.turn {
		return fmt.Errorf("%w: %s belongs to %s", ErrWrongSideSelected, from, pc.Side())
	}
	if !containsPos(b.LegalDestinations(from), to) {
		return fmt.Errorf("%w: %s %s to %s", ErrIllegalDestination, pc.Kind(), from, to)
	}

	b.cells[toIdx] = pc.MarkMoved()
	b.cells[fromIdx] = Piece{}
	b.turn = b.turn.Opposite()
	return nil
}

// Apply plays a move produced by GenerateMoves.
func (b *Board) Apply(mv Move) error {
	return b.MovePiece(mv.From, mv.To)
}

func (b *Board) Clone() *Board {
	bb := *b
	return &bb
}

func (b *Board) FEN() string {
	fen, _ := MarshalFEN(b)
	return fen
}

// Pieces counts the pieces of side s on the board.
func (b *Board) Pieces(s Side) int {
	var n int
	for _, pc := range b.cells {
		if !pc.IsZero() && pc.Side() == s {
			n++
		}
	}
	return n
}

// PlacePiece puts pc on p, replacing whatever stood there. Used to set up
// positions outside of play.
func (b *Board) PlacePiece(p position.Pos, pc Piece) error {
	i, err := p.Index()
	if err != nil {
		return err
	}
	b.cells[i] = pc
	return nil
}

func containsPos(ps []position.Pos, p position.Pos) bool {
	for _, q := range ps {
		if q == p {
			return true
		}
	}
	return false
}
