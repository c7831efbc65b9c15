// Package heurisearch is a library of generic single-agent heuristic
// search algorithms — uniform-cost, greedy, speedy, BUGSY, AEES, and the
// beam-search family (beam, bead, monobeam, monobead, monofloor, PHC,
// PHCD, triangle/rectangle bead, and the MinTest basin counter) — plus a
// handful of benchmark domains they run against: pancake sorting,
// blocksworld, sliding tiles, a seeded synthetic tree, and two vacuum-world
// variants.
//
// Every search algorithm is generic over a problem's state, packed-state,
// operator, and cost types (see package domain) so one implementation of
// each algorithm serves every domain in this module, and any caller's own
// domain besides. cmd/search is a thin CLI adapter over the library; the
// library itself has no flag or stdin dependency and is usable standalone.
//
//	core/, gridgraph/, prim_kruskal/ — graph primitives the vacuum-world
//	  MST heuristic is built on.
//	domain/                          — the benchmark domains.
//	search/                          — the algorithms themselves.
//	metrics/, config/, diag/         — the ambient run-reporting, instance
//	  configuration, and diagnostics stack shared by every algorithm.
package heurisearch
