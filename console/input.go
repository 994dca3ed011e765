package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/daystram/duel/position"
)

// QuitSentinel is the two character input that ends a session.
const QuitSentinel = "qq"

var (
	ErrInvalidPos        = errors.New("invalid position specified")
	ErrInsufficientInput = errors.New("insufficient arguments provided")
	ErrQuit              = errors.New("quitting game")
)

// ParseSquare parses a two character coordinate such as "e4".
func ParseSquare(s string) (position.Pos, error) {
	if len(s) < 2 {
		return position.Pos{}, fmt.Errorf("%w: %q", ErrInsufficientInput, s)
	}
	if s == QuitSentinel {
		return position.Pos{}, ErrQuit
	}
	if len(s) > 2 {
		return position.Pos{}, fmt.Errorf("%w: %q", ErrInvalidPos, s)
	}
	p, err := position.NewChecked(s[0], int(s[1])-'0')
	if err != nil {
		return position.Pos{}, fmt.Errorf("%w: %w", ErrInvalidPos, err)
	}
	return p, nil
}

// squareReader cuts whitespace separated input into fixed two character
// chunks, so "e2e4" reads the same as "e2 e4".
type squareReader struct {
	scanner *bufio.Scanner
	pending []string
}

func newSquareReader(r io.Reader) *squareReader {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &squareReader{scanner: s}
}

// Next returns the next chunk, or io.EOF once the input is exhausted.
func (r *squareReader) Next() (string, error) {
	for len(r.pending) == 0 {
		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		r.pending = chunk(r.scanner.Text(), 2)
	}
	s := r.pending[0]
	r.pending = r.pending[1:]
	return s, nil
}

func chunk(s string, n int) []string {
	var cs []string
	for len(s) > n {
		cs = append(cs, s[:n])
		s = s[n:]
	}
	return append(cs, s)
}
