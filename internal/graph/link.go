package graph

import "github.com/plexus-ml/plexus/internal/fns"

// Link is a weighted directed edge between two nodes in adjacent layers.
//
// A Link does not own its endpoints; Source and Dest are shared references
// into the Network's layers. ErrorDer is a per-pass quantity rewritten by
// every Backward call; AccErrorDer and NumAccumulatedDers carry the running
// gradient sum until an optimizer step consumes them.
type Link struct {
	// ID is derived from the endpoint IDs as "source-dest".
	ID string

	Source *Node
	Dest   *Node

	// Weight of the edge. Updated only by an optimizer step.
	Weight float64

	// Regularizer is the optional weight penalty for this link.
	// Nil means no penalty.
	Regularizer fns.Regularizer

	// ErrorDer is dError/dWeight for the most recent backward pass.
	ErrorDer float64

	// AccErrorDer is the sum of ErrorDer across accumulated passes.
	AccErrorDer float64

	// NumAccumulatedDers counts the backward passes accumulated since the
	// last optimizer step.
	NumAccumulatedDers int
}

func newLink(source, dest *Node, weight float64, reg fns.Regularizer) *Link {
	return &Link{
		ID:          source.ID + "-" + dest.ID,
		Source:      source,
		Dest:        dest,
		Weight:      weight,
		Regularizer: reg,
	}
}
