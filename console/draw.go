package console

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/duel/board"
	"github.com/daystram/duel/position"
)

const gridRule = "+---+---+---+---+---+---+---+---+"

type DrawOptions struct {
	// ASCII draws FEN letters instead of unicode chess symbols.
	ASCII bool
	// NoColor disables colouring pieces by side.
	NoColor bool
}

// Draw renders the board with rank labels on the right and file labels below.
func Draw(b *board.Board, opts DrawOptions) string {
	colors := map[board.Side]*color.Color{
		board.SideWhite: color.New(color.FgHiWhite, color.Bold),
		board.SideBlack: color.New(color.FgRed, color.Bold),
	}
	if opts.NoColor {
		for _, c := range colors {
			c.DisableColor()
		}
	}

	builder := strings.Builder{}
	for rank := position.MaxComponentScalar; rank >= 1; rank-- {
		_, _ = builder.WriteString(gridRule + "\n|")
		for x := 0; x < position.MaxComponentScalar; x++ {
			pc, ok := b.PieceAt(position.New(byte('a'+x), rank))
			if !ok {
				_, _ = builder.WriteString("   |")
				continue
			}
			sym := pc.Kind().SymbolUnicode(pc.Side(), false)
			if opts.ASCII {
				sym = pc.SymbolFEN()
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", colors[pc.Side()].Sprint(sym)))
		}
		_, _ = builder.WriteString(fmt.Sprintf(" %d\n", rank))
	}
	_, _ = builder.WriteString(gridRule + "\n")
	for x := 0; x < position.MaxComponentScalar; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %c ", 'a'+x))
	}
	return builder.String()
}
