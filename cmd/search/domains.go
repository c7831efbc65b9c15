package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/heurisearch/domain/blocksworld"
	"github.com/katalvlaran/heurisearch/domain/pancake"
	"github.com/katalvlaran/heurisearch/domain/synthtree"
	"github.com/katalvlaran/heurisearch/domain/tiles"
	"github.com/katalvlaran/heurisearch/domain/vacuum"
	"github.com/katalvlaran/heurisearch/gridgraph"
	"github.com/katalvlaran/heurisearch/metrics"
)

// readInts reads the next whitespace/newline-separated tokens from r and
// parses them as integers, matching spec §6's "each domain reads a plain
// text description from stdin".
func readInts(r *bufio.Reader, n int) ([]int, error) {
	out := make([]int, 0, n)
	for len(out) < n {
		// fmt.Fscan on a *bufio.Reader consumes only the token it reads, so
		// the next readInts call on the same reader continues from here.
		var tok string
		if _, err := fmt.Fscan(r, &tok); err != nil {
			return nil, fmt.Errorf("unexpected end of instance input")
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("parsing instance integer: %w", err)
		}
		out = append(out, v)
	}
	return out, nil
}

// runPancake parses `-cost` then a permutation instance and dispatches to
// the chosen algorithm. args holds everything after the "pancake" domain
// word: the domain's own flags, stopping at the first non-flag token
// (flag.FlagSet's ordinary parsing behavior), which is the algorithm
// subcommand and its own flags, recovered via fs.Args().
func runPancake(args []string, stdin io.Reader, sink metrics.Sink) int {
	fs := flag.NewFlagSet("pancake", flag.ExitOnError)
	cost := fs.String("cost", "unit", "heavy|unit|sqrt|inverse|reverse|revinv")
	fs.Parse(args)
	rest := fs.Args()

	kind, err := parsePancakeCost(*cost)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}

	br := bufio.NewReader(stdin)
	header, err := readInts(br, 1)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	n := header[0]
	cakes, err := readInts(br, n)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}

	algo, algoArgs, err := splitSubcommand(rest)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	a, err := parseAlgoFlags(algo, algoArgs)
	if err != nil {
		return 1
	}

	d := pancake.Pancake{N: n, Cost: kind, Init: cakes}
	res, openKind, runErr := runAlgorithm(d, algo, a)
	emitTrailer(res, openKind, runErr, sink)
	return 0
}

func parsePancakeCost(s string) (pancake.CostKind, error) {
	switch s {
	case "unit":
		return pancake.Unit, nil
	case "heavy":
		return pancake.Heavy, nil
	case "sqrt":
		return pancake.Sqrt, nil
	case "inverse":
		return pancake.Inverse, nil
	case "reverse":
		return pancake.Reverse, nil
	case "revinv":
		return pancake.RevInv, nil
	default:
		return 0, fmt.Errorf("search: unknown -cost %q", s)
	}
}

func runBlocksworld(args []string, stdin io.Reader, sink metrics.Sink) int {
	fs := flag.NewFlagSet("blocksworld", flag.ExitOnError)
	fs.Parse(args)
	rest := fs.Args()

	br := bufio.NewReader(stdin)
	header, err := readInts(br, 1)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	n := header[0]
	init, err := readInts(br, n)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	goal, err := readInts(br, n)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}

	algo, algoArgs, err := splitSubcommand(rest)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	a, err := parseAlgoFlags(algo, algoArgs)
	if err != nil {
		return 1
	}

	d := blocksworld.Blocksworld{N: n, Init: init, Goal: goal}
	res, openKind, runErr := runAlgorithm(d, algo, a)
	emitTrailer(res, openKind, runErr, sink)
	return 0
}

func runTiles(args []string, stdin io.Reader, sink metrics.Sink) int {
	fs := flag.NewFlagSet("tiles", flag.ExitOnError)
	rows := fs.Int("rows", 0, "board rows")
	cols := fs.Int("cols", 0, "board columns")
	fs.Parse(args)
	rest := fs.Args()

	br := bufio.NewReader(stdin)
	n := *rows * *cols
	if n == 0 {
		header, err := readInts(br, 1)
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 1
		}
		n = header[0]
		*rows, *cols = 1, n
	}
	board, err := readInts(br, n)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}

	algo, algoArgs, err := splitSubcommand(rest)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	a, err := parseAlgoFlags(algo, algoArgs)
	if err != nil {
		return 1
	}

	d := tiles.Tiles{Rows: *rows, Cols: *cols, Init: board}
	res, openKind, runErr := runAlgorithm(d, algo, a)
	emitTrailer(res, openKind, runErr, sink)
	return 0
}

func runSynthtree(args []string, stdin io.Reader, sink metrics.Sink) int {
	fs := flag.NewFlagSet("synthtree", flag.ExitOnError)
	seed := fs.Int64("seed", 42, "root seed")
	agd := fs.Int("agd", 500, "admissible goal distance budget")
	maxErr := fs.Float64("err", 0, "maximum heuristic relative error")
	fs.Parse(args)
	rest := fs.Args()

	algo, algoArgs, err := splitSubcommand(rest)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	a, err := parseAlgoFlags(algo, algoArgs)
	if err != nil {
		return 1
	}

	d := synthtree.SynthTree{Seed: *seed, AGD: *agd, MaxErr: *maxErr}
	res, openKind, runErr := runAlgorithm(d, algo, a)
	emitTrailer(res, openKind, runErr, sink)
	return 0
}

func runVacuum(args []string, stdin io.Reader, sink metrics.Sink) int {
	fs := flag.NewFlagSet("vacuum", flag.ExitOnError)
	variant := fs.String("variant", "mst", "mst|bbox")
	back := fs.Bool("back", false, "bbox variant: require returning to start")
	fs.Parse(args)
	rest := fs.Args()

	br := bufio.NewReader(stdin)
	header, err := readInts(br, 2)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	w, h := header[0], header[1]
	grid, err := readInts(br, w*h)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	agent, err := readInts(br, 2)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}

	algo, algoArgs, err := splitSubcommand(rest)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	a, err := parseAlgoFlags(algo, algoArgs)
	if err != nil {
		return 1
	}

	dirty := make([]bool, w*h)
	for i, v := range grid {
		dirty[i] = v != 0
	}

	switch *variant {
	case "mst":
		values := make([][]int, h)
		for y := 0; y < h; y++ {
			values[y] = make([]int, w)
			for x := 0; x < w; x++ {
				values[y][x] = 1
			}
		}
		gg, err := gridgraph.NewGridGraph(values, gridgraph.DefaultGridOptions())
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 1
		}
		d := vacuum.MSTVacuum{Grid: gg, InitX: agent[0], InitY: agent[1], InitDirty: dirty}
		res, openKind, runErr := runAlgorithm(d, algo, a)
		emitTrailer(res, openKind, runErr, sink)
	case "bbox":
		d := vacuum.BBoxVacuum{Width: w, Height: h, InitX: agent[0], InitY: agent[1], InitDirty: dirty, CostMod: 1, Back: *back}
		res, openKind, runErr := runAlgorithm(d, algo, a)
		emitTrailer(res, openKind, runErr, sink)
	default:
		fmt.Fprintf(errOut, "search: unknown -variant %q\n", *variant)
		return 1
	}
	return 0
}

// splitSubcommand pulls the algorithm name (spec §6's subcommand) off the
// front of the remaining argument list, rejecting a name runAlgorithm does
// not dispatch so it is reported as a configuration error.
func splitSubcommand(args []string) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, fmt.Errorf("search: missing algorithm subcommand")
	}
	switch args[0] {
	case "ucs", "greedy", "speedy", "bugsy", "aees", "beam", "bead", "monobeam", "monobead",
		"monofloor", "phc", "phcd", "trianglebead", "rectanglebead", "mintest":
		return args[0], args[1:], nil
	}
	return "", nil, fmt.Errorf("search: unknown algorithm %q", args[0])
}
