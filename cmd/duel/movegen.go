package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/daystram/duel/board"
	"github.com/daystram/duel/console"
)

func movegen(fen string, drawOpts console.DrawOptions) error {
	log.Println("============ movegen")
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	fmt.Println("to move:", b.Turn())
	fmt.Println(console.Draw(b, drawOpts))
	fmt.Println(b.FEN())
	dumpMoves(b)
	return nil
}

func dumpMoves(b *board.Board) {
	mvs := b.GenerateMoves()
	for i, mv := range mvs {
		fmt.Printf("option %*d: [%s] [%s] %s %s %s => %s (cap=%v) (dbl=%v)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv.UCI(), mv.Algebra(), mv.Piece.Side(), mv.Piece.Kind(), mv.From, mv.To, mv.IsCapture, mv.IsDoubleAdvance)
	}
}
