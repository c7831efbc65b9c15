package search

import "github.com/katalvlaran/heurisearch/domain"

// Expand implements the generic successor loop shared by every engine
// (spec §4.3): increment Expd, then for each operator available from
// state, skip the one that would immediately reverse how parent was
// reached, construct an Edge, compute the kid's g and pack its successor
// state, hand it to onKid, and release the Edge before trying the next
// operator — since the Edge discipline makes state unreadable for any
// other purpose while the Edge is alive.
//
// onKid receives the packed successor state, its tentative g, the
// operator that produced it, and the operator that would reverse it
// (stored as the kid's Pop field by the caller). Engine-specific
// acceptance, duplicate handling, and insertion all happen inside onKid;
// Expand itself makes no policy decisions.
func Expand[S any, P any, O comparable, C domain.Cost](
	h *Harness,
	d domain.Domain[S, P, O, C],
	parent *Node[P, O, C],
	state S,
	onKid func(packed P, g C, op O, revop O, stepCost C) error,
) error {
	h.Expd++

	ops := d.Operators(state)
	for i := 0; i < ops.Size(); i++ {
		o := ops.At(i)
		if parent.Parent != nil && o == parent.Pop {
			continue
		}

		edge, err := d.Apply(state, o)
		if err != nil {
			return err
		}

		h.Gend++
		g := parent.G + edge.Cost

		var packed P
		d.Pack(&packed, edge.State)

		kidErr := onKid(packed, g, o, edge.RevOp, edge.Cost)
		edge.Release()

		if kidErr != nil {
			return kidErr
		}
	}

	return nil
}
