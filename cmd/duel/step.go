package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/daystram/duel/board"
	"github.com/daystram/duel/console"
)

// step plays random plies from fen and reports average timings.
func step(fen string, plies int, seed int64, drawOpts console.DrawOptions) error {
	log.Println("============ step")
	var (
		timesGenerateMoves []time.Duration
		timesApply         []time.Duration
	)
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	r := rand.New(rand.NewSource(seed))

	for ply := 0; ply < plies; ply++ {
		t1 := time.Now()
		mvs := b.GenerateMoves()
		t2 := time.Now()
		timesGenerateMoves = append(timesGenerateMoves, t2.Sub(t1))
		if len(mvs) == 0 {
			log.Printf("no moves left for %s\n", b.Turn())
			break
		}
		mv := mvs[r.Intn(len(mvs))]

		t1 = time.Now()
		if err := b.Apply(mv); err != nil {
			return fmt.Errorf("generated move rejected: %s: %w", mv, err)
		}
		t2 = time.Now()
		timesApply = append(timesApply, t2.Sub(t1))

		fmt.Printf("\n===== [#%d] %s: %s\n", ply/2+1, mv.Piece.Side(), mv)
		fmt.Println(console.Draw(b, drawOpts))
		fmt.Println(b.FEN())
	}

	avg := func(ds []time.Duration) time.Duration {
		if len(ds) == 0 {
			return 0
		}
		var s time.Duration
		for _, d := range ds {
			s += d
		}
		return s / time.Duration(len(ds))
	}

	fmt.Println()
	fmt.Println("genmv:", avg(timesGenerateMoves))
	fmt.Println("apply:", avg(timesApply))
	return nil
}
