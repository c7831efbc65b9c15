// Package domain defines the abstract contract every search problem plugs
// into (spec §4.1): a State/PackedState/Oper/Cost vocabulary, a scoped Edge
// transition, and the handful of pure functions (h, d, isgoal, pack, unpack,
// pathcost, dumpstate) every search engine in this module is generic over.
//
// A concrete domain (pancake, blocksworld, vacuum, tiles, synthtree) never
// imports a search engine; engines import this package and are generic over
// Domain[S, P, O, C]. This mirrors the "deep generic dispatch" design note:
// engines are parameterized over a capability interface rather than a
// compile-time template of one domain type.
package domain

// Cost is the totally ordered additive numeric type a domain measures edge
// weight, g, h, and f in. Both the integer and floating encodings the
// reference domains use (unit costs, heavy/sqrt/inverse pancake costs,
// Manhattan-distance tile costs) satisfy it.
type Cost interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Operators is a domain's successor-operator enumeration for a given state.
// It is sized and indexed rather than returning a slice so that domains can
// lazily generate legal operators without an intermediate allocation.
type Operators[O comparable] interface {
	// Size returns the number of operators available from the state this
	// view was built over.
	Size() int
	// At returns the i'th operator, 0 <= i < Size().
	At(i int) O
}

// Edge is the scoped transition object obtained from Domain.Apply(s, o).
// It exposes the successor State (which, for in-place mutable domains, may
// be the same storage as the input State, mutated), the step Cost, the
// reverse operator RevOp that would undo this transition, and its RevCost.
//
// Release restores the state Apply mutated to its pre-Apply contents on
// every path. Callers that want to keep exploring past this transition
// (path walking, verification) must not call Release — they simply keep
// using Edge.State as their new current state and apply the next operator
// to it. Callers that are done inspecting a transient candidate (the
// generic successor loop in every engine's expand()) must call Release
// before reading the parent state again; while the Edge is alive the
// parent state is unreadable, per spec §3.
type Edge[S any, O comparable, C Cost] struct {
	State   S
	Cost    C
	RevOp   O
	RevCost C

	release func()
}

// Release undoes the mutation Apply performed, restoring the state the
// Edge was derived from. It is safe to call multiple times; only the first
// call has an effect.
func (e *Edge[S, O, C]) Release() {
	if e.release == nil {
		return
	}
	release := e.release
	e.release = nil
	release()
}

// NewEdge constructs an Edge with an explicit release callback. Domain
// implementations call this from Apply; release is invoked at most once.
func NewEdge[S any, O comparable, C Cost](state S, cost C, revop O, revcost C, release func()) *Edge[S, O, C] {
	return &Edge[S, O, C]{State: state, Cost: cost, RevOp: revop, RevCost: revcost, release: release}
}

// Domain is the abstract interface every problem plugs in through (spec
// §4.1). S is the mutable working State, P the hashable/comparable
// PackedState stored in Node and the closed table, O the operator
// identifier type, C the cost type.
type Domain[S any, P any, O comparable, C Cost] interface {
	// InitialState returns the problem's start state.
	InitialState() S

	// H returns the heuristic estimate of remaining cost from s to a goal.
	// Must be admissible for engines that claim optimality (UCS makes no
	// use of H; AEES claims only bounded suboptimality).
	H(s S) C

	// D returns the estimated number of remaining operators (edges) to a
	// goal. Used as a tie-breaker and in AEES's error correction, never
	// for bounding.
	D(s S) float64

	// IsGoal reports whether s satisfies the domain's goal test.
	IsGoal(s S) bool

	// Pack writes a canonical, hashable encoding of src into *dst.
	Pack(dst *P, src S)

	// Unpack returns a State usable for exactly one expansion, built from
	// a packed encoding.
	Unpack(packed P) S

	// DumpState renders s for diagnostics.
	DumpState(out Writer, s S)

	// PathCost recomputes the total cost of walking path via ops, used to
	// verify a reconstructed solution independently of the engine's
	// running g values.
	PathCost(path []S, ops []O) C

	// Operators enumerates every successor operator available from s.
	// Duplicates across operators are the engine's problem, not the
	// domain's.
	Operators(s S) Operators[O]

	// Apply executes operator o against s, returning a scoped Edge. The
	// domain guarantees Apply(Apply(s,o).State, revop).State == s up to
	// State equality, where revop == Apply(s,o).RevOp.
	Apply(s S, o O) (*Edge[S, O, C], error)

	// Nop is the sentinel operator meaning "no operator" (used on the
	// root node and as "no reverse").
	Nop() O

	// Equal reports whether two packed states denote the same state.
	Equal(a, b P) bool

	// Hash returns a 64-bit hash of a packed state, consistent with Equal.
	Hash(p P) uint64
}

// Writer is the minimal sink DumpState writes diagnostic text to; it is
// satisfied by *bufio.Writer, *os.File, *bytes.Buffer, and the diag
// package's loggers.
type Writer interface {
	Write(p []byte) (n int, err error)
}
