package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/daystram/duel/board"
	"github.com/daystram/duel/position"
)

// Interface runs a two-player game on a text terminal.
type Interface struct {
	board   *board.Board
	in      io.Reader
	out     io.Writer
	options DrawOptions

	reader *squareReader
}

type Option func(*Interface)

func WithInput(r io.Reader) Option {
	return func(i *Interface) {
		i.in = r
	}
}

func WithOutput(w io.Writer) Option {
	return func(i *Interface) {
		i.out = w
	}
}

// WithBoard starts the session from b instead of the initial position.
func WithBoard(b *board.Board) Option {
	return func(i *Interface) {
		i.board = b
	}
}

func WithDrawOptions(o DrawOptions) Option {
	return func(i *Interface) {
		i.options = o
	}
}

// NewInterface builds an Interface reading stdin and writing stdout. Without
// WithBoard it plays from the default starting layout.
func NewInterface(opts ...Option) (*Interface, error) {
	i := &Interface{
		in:  os.Stdin,
		out: os.Stdout,
	}
	for _, f := range opts {
		f(i)
	}
	if i.board == nil {
		b, err := board.NewBoard()
		if err != nil {
			return nil, err
		}
		i.board = b
	}
	i.reader = newSquareReader(i.in)
	return i, nil
}

func (i *Interface) Board() *board.Board {
	return i.board
}

// Run plays until the quit sentinel is entered, the input ends or ctx is
// done. Parse and movement failures are reported and the player is
// prompted again.
func (i *Interface) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		i.println(Draw(i.board, i.options))
		i.println()
		i.println("Current move is:", i.board.Turn())

		from, to, err := i.queryInput()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			i.println("Parsing position failed, reason:", err)
			if errors.Is(err, ErrQuit) {
				return nil
			}
			i.println()
			continue
		}

		if err := i.board.MovePiece(from, to); err != nil {
			i.println("Movement failed, reason:", err)
		}
		i.println()
	}
}

func (i *Interface) queryInput() (position.Pos, position.Pos, error) {
	i.println("Select piece (example: d2), '" + QuitSentinel + "' - quits:")
	from, err := i.readSquare()
	if err != nil {
		return position.Pos{}, position.Pos{}, err
	}
	i.println("Select move (example: d4), '" + QuitSentinel + "' - quits:")
	to, err := i.readSquare()
	if err != nil {
		return position.Pos{}, position.Pos{}, err
	}
	return from, to, nil
}

func (i *Interface) readSquare() (position.Pos, error) {
	s, err := i.reader.Next()
	if err != nil {
		return position.Pos{}, err
	}
	return ParseSquare(s)
}

func (i *Interface) println(a ...any) {
	fmt.Fprintln(i.out, a...)
}
