// Package metrics defines the injected collaborator every engine reports
// its counters to (spec §9 "the metrics sink is an injected
// collaborator") and the key/value trailer format spec §6 describes. The
// Sink interface is the "opaque emit key/value" surface spec.md's
// Overview places out of scope for output formatting; this package only
// defines the contract and a couple of concrete sinks.
package metrics

import (
	"fmt"
	"io"
	"time"
)

// Sink receives the metrics trailer's key/value rows. A driver decides
// how to render them (stdout text, JSON, Prometheus); engines only ever
// call Emit.
type Sink interface {
	Emit(key string, value any)
}

// WriterSink formats every Emit as one "key value" line to an
// io.Writer, the driver's default stdout trailer.
type WriterSink struct {
	W io.Writer
}

// Emit writes "key value\n" to the underlying writer.
func (s WriterSink) Emit(key string, value any) {
	fmt.Fprintf(s.W, "%s %v\n", key, value)
}

// Trailer is the structured summary spec §6 names: wall-clock bounds,
// expansion/generation/duplicate/reopen counts, the final solution's
// cost and length, node record size, and closed-table stats.
type Trailer struct {
	WallStart, WallFinish      time.Time
	Expd, Gend, Dups, Reopnd   int64
	Cost                       float64
	PathLength                 int
	NodeSizeBytes              int
	OpenListKind, ClosedStats  string
}

// EmitTo writes every field of t to sink under its spec-named key.
func (t Trailer) EmitTo(sink Sink) {
	sink.Emit("wall start", t.WallStart.Format(time.RFC3339Nano))
	sink.Emit("wall finish", t.WallFinish.Format(time.RFC3339Nano))
	sink.Emit("expansions", t.Expd)
	sink.Emit("generated", t.Gend)
	sink.Emit("duplicates", t.Dups)
	sink.Emit("reopened", t.Reopnd)
	sink.Emit("final cost", t.Cost)
	sink.Emit("path length", t.PathLength)
	sink.Emit("node size bytes", t.NodeSizeBytes)
	sink.Emit("open list kind", t.OpenListKind)
	sink.Emit("closed list stats", t.ClosedStats)
}
