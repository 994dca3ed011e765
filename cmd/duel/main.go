package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"strings"

	"github.com/daystram/duel/bench"
	"github.com/daystram/duel/board"
	"github.com/daystram/duel/console"
)

const (
	exitOK = iota
	exitErr
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")

	movegenRun = flag.Bool("movegen", false, "run movegen mode")

	perftDepth    = flag.Int("perft", 0, "run perft mode to the given depth")
	perftParallel = flag.Bool("perft.parallel", true, "walk root moves concurrently in perft mode")

	stepRun  = flag.Int("step", 0, "run step mode for the given number of plies")
	stepSeed = flag.Int64("step.seed", 1, "random seed in step mode")

	ascii   = flag.Bool("ascii", false, "draw pieces with letters")
	noColor = flag.Bool("nocolor", false, "disable coloured pieces")
)

func main() {
	flag.Parse()

	if *profile {
		runProfiler()
	}

	err := realMain(flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

func realMain(args []string) error {
	fen := board.DefaultStartingPositionFEN
	if len(args) > 0 {
		fen = strings.Join(args, " ")
	}
	drawOpts := console.DrawOptions{ASCII: *ascii, NoColor: *noColor}

	if *movegenRun {
		return movegen(fen, drawOpts)
	}
	if *perftDepth > 0 {
		return perft(*perftDepth, fen, *perftParallel)
	}
	if *stepRun > 0 {
		return step(fen, *stepRun, *stepSeed, drawOpts)
	}

	return play(fen, drawOpts)
}

func play(fen string, drawOpts console.DrawOptions) error {
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	i, err := console.NewInterface(
		console.WithBoard(b),
		console.WithDrawOptions(drawOpts),
	)
	if err != nil {
		return err
	}
	return i.Run(ctx)
}

func perft(depth int, fen string, parallel bool) error {
	log.Printf("============ perft(%d)\n", depth)
	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			log.Println(s)
		}
	}()

	_, err := bench.Perft(depth, fen, parallel, true, out)
	close(out)
	<-done
	return err
}
