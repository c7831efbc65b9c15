// Package search implements the node/closed/open substrate shared by every
// engine (spec §3 "Node", §4.3 "Common harness") and the engines
// themselves live in its subpackages (ucs, greedy, speedy, bugsy, aees,
// beam).
//
// Node carries every field any engine needs: common bookkeeping (packed
// state, parent link, g/h/f, d, the generating operator and its reverse)
// plus the algorithm-specific extras spec §3 calls out — AEES's ĥ/d̂/f̂,
// beam's width_seen/depth — rather than one struct per engine, because
// every engine draws its nodes from the same pool.Pool[Node[...]] and the
// pool's record layout (and the "node size in bytes" metrics row) is only
// meaningful if it is one fixed layout, matching spec §3's "Node records
// live in the pool ... ownership is exclusive to the engine".
package search

import "github.com/katalvlaran/heurisearch/domain"

// NotInQueue is the sentinel index value meaning "not currently a member
// of this queue" (spec invariant 3).
const NotInQueue = -1

// Node is the per-search record every engine draws from its pool.Pool.
type Node[P any, O comparable, C domain.Cost] struct {
	Packed P
	Parent *Node[P, O, C]

	Op  O // operator that produced this node from its parent
	Pop O // reverse of Op; the operator that would undo this transition

	G C
	H C
	F C
	D float64 // estimated remaining edges to goal

	// Index positions in each priority queue this node may belong to.
	// NotInQueue (-1) when the node is not a member of that queue.
	CleanupIndex int
	OpenIndex    int
	FocalIndex   int
	BeamIndex    int

	// AEES extras (spec §4.3 "AEES"): corrected estimates.
	HHat C
	DHat float64
	FHat C

	// Beam-family extras (spec §4.3 "Beam family").
	WidthSeen int
	Depth     int

	popped bool
}

// Reset restores every index field to NotInQueue and clears the popped
// flag; callers must call this right after pool.Construct(), since a
// freshly zeroed record's int fields default to 0, a valid index, not the
// sentinel.
func (n *Node[P, O, C]) Reset() {
	n.CleanupIndex = NotInQueue
	n.OpenIndex = NotInQueue
	n.FocalIndex = NotInQueue
	n.BeamIndex = NotInQueue
	n.popped = false
}

// IsPopped reports whether this node has already been popped from an open
// list and finalized (UCS's and BUGSY's "visited" bookkeeping,
// spec §4.3's dijkstra-style duplicate handling).
func (n *Node[P, O, C]) IsPopped() bool { return n.popped }

// MarkPopped records that this node has been popped and finalized.
func (n *Node[P, O, C]) MarkPopped() { n.popped = true }

// Reopen clears the popped flag, returning a previously finalized node to
// circulation after a cheaper g was found (spec's "Reopening").
func (n *Node[P, O, C]) Reopen() { n.popped = false }
