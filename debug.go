package sway

import (
	"fmt"
	"log/slog"
)

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode; in release mode callers
// skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("sway debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugMaxTreeDepth is the depth past which LogTree warns.
const debugMaxTreeDepth = 32

// LogTree writes the node tree to the scene logger at debug level, one
// record per node, and warns about subtrees deeper than debugMaxTreeDepth.
func (s *Scene) LogTree() {
	s.logTree(s.root, 0)
}

func (s *Scene) logTree(n *Node, depth int) {
	s.logger.Debug("sway: node",
		slog.String("name", n.Name),
		slog.Int("depth", depth),
		slog.Bool("visible", n.Visible),
		slog.Bool("interactable", n.Interactable),
		slog.Float64("alpha", n.Alpha),
		slog.Group("position", slog.Float64("x", n.X), slog.Float64("y", n.Y)),
	)
	if depth == debugMaxTreeDepth {
		s.logger.Warn("sway: tree depth exceeds threshold",
			"node", n.Name, "threshold", debugMaxTreeDepth)
	}
	for _, c := range n.children {
		s.logTree(c, depth+1)
	}
}
