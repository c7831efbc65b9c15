package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/heurisearch/metrics"
)

// errOut is where every parse/configuration error in this package goes,
// per spec §7's taxonomy: configuration and input-parse failures are
// reported to stderr and the process exits non-zero, everything else
// (including "no solution found", which is resource exhaustion, not a
// fatal error) is reported only through the metrics trailer on stdout.
var errOut io.Writer = os.Stderr

func main() {
	os.Exit(run(os.Args[1:], os.Stdin))
}

func run(args []string, stdin io.Reader) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "search: usage: search <domain> [domain flags] <algorithm> [algorithm flags]")
		return 1
	}
	domainName, rest := args[0], args[1:]
	sink := metrics.WriterSink{W: os.Stdout}

	switch domainName {
	case "pancake":
		return runPancake(rest, stdin, sink)
	case "blocksworld":
		return runBlocksworld(rest, stdin, sink)
	case "tiles":
		return runTiles(rest, stdin, sink)
	case "synthtree":
		return runSynthtree(rest, stdin, sink)
	case "vacuum":
		return runVacuum(rest, stdin, sink)
	default:
		fmt.Fprintf(errOut, "search: unknown domain %q\n", domainName)
		return 1
	}
}
