package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/duel/board"
)

// Result holds the counters collected by a perft walk.
type Result struct {
	Nodes    uint64
	Captures uint64
	Doubles  uint64
}

// Perft walks every ply sequence of the given depth from fen and reports the
// leaf counters on out. Root breakdowns are sent when verbose is set.
func Perft(depth int, fen string, parallel, verbose bool, out chan string) (Result, error) {
	var res Result
	b, err := board.NewBoard(
		board.WithFEN(fen),
	)
	if err != nil {
		return res, err
	}

	var run perftFunc
	if parallel {
		run = runPerftParallel
	} else {
		run = runPerft
	}

	start := time.Now()
	run(b, depth, true, verbose, out, &res)
	end := time.Now()

	out <- message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d rate=%dn/s cap=%d dbl=%d (%.3fs elapsed)",
			depth, res.Nodes, int(float64(res.Nodes)/end.Sub(start).Seconds()), res.Captures, res.Doubles, end.Sub(start).Seconds())

	return res, nil
}

type perftFunc func(b *board.Board, d int, root, verbose bool, out chan string, res *Result) uint64

func runPerft(b *board.Board, d int, root, verbose bool, out chan string, res *Result) uint64 {
	if d == 0 {
		res.Nodes++
		return 1
	}

	var sum uint64
	for _, mv := range b.GenerateMoves() {
		var child uint64
		if d != 1 {
			bb := b.Clone()
			if err := bb.Apply(mv); err != nil {
				continue
			}
			child = runPerft(bb, d-1, false, verbose, out, res)
		} else {
			child = 1
			res.Nodes++
			if mv.IsCapture {
				res.Captures++
			}
			if mv.IsDoubleAdvance {
				res.Doubles++
			}
		}
		if verbose && root {
			out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
		}
		sum += child
	}
	return sum
}

func runPerftParallel(b *board.Board, d int, root, verbose bool, out chan string, res *Result) uint64 {
	if d == 0 {
		atomic.AddUint64(&res.Nodes, 1)
		return 1
	}

	var sum uint64
	var wg sync.WaitGroup
	for _, mv := range b.GenerateMoves() {
		mv := mv
		wg.Add(1)
		go func() {
			defer wg.Done()
			var child uint64
			if d != 1 {
				bb := b.Clone()
				if err := bb.Apply(mv); err != nil {
					return
				}
				child = runPerftParallel(bb, d-1, false, verbose, out, res)
			} else {
				child = 1
				atomic.AddUint64(&res.Nodes, 1)
				if mv.IsCapture {
					atomic.AddUint64(&res.Captures, 1)
				}
				if mv.IsDoubleAdvance {
					atomic.AddUint64(&res.Doubles, 1)
				}
			}
			if verbose && root {
				out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
			}
			atomic.AddUint64(&sum, child)
		}()
	}
	wg.Wait()
	return sum
}
