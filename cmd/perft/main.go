package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"

	"minchess/board"
)

func main() {
	fen := flag.String("fen", board.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	ref := flag.Bool("ref", false, "Also run the reference generator (dragontoothmg) and compare node counts")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	b, err := board.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		div := board.PerftDivide(&b, *depth)
		byName := make(map[string]uint64, len(div))
		names := make([]string, 0, len(div))
		var sum uint64
		for m, n := range div {
			byName[m.String()] = n
			names = append(names, m.String())
			sum += n
		}
		slices.Sort(names)
		for _, name := range names {
			fmt.Printf("%s: %d\n", name, byName[name])
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += board.Perft(&b, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	prefix := ""
	if *label != "" {
		prefix = *label + ": "
	}
	fmt.Printf("%snodes=%d depth=%d repeat=%d time=%s nps=%.0f\n",
		prefix, totalNodes, *depth, *repeat, elapsed.Round(time.Millisecond), nps)

	if *ref {
		refBoard := dragontoothmg.ParseFen(*fen)
		refStart := time.Now()
		var refNodes uint64
		for i := 0; i < *repeat; i++ {
			refNodes += refPerft(&refBoard, *depth)
		}
		refElapsed := time.Since(refStart)
		fmt.Printf("%sref nodes=%d time=%s\n", prefix, refNodes, refElapsed.Round(time.Millisecond))
		if refNodes != totalNodes {
			fmt.Fprintf(os.Stderr, "MISMATCH: got %d, reference %d\n", totalNodes, refNodes)
			os.Exit(1)
		}
	}

	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
		}
		_ = f.Close()
	}
}

// refPerft walks the reference generator's legal tree with make/unmake.
func refPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range b.GenerateLegalMoves() {
		undo := b.Apply(m)
		nodes += refPerft(b, depth-1)
		undo()
	}
	return nodes
}
