package parallax

import (
	"fmt"
	"io"
	"os"
)

// globalDebug enables tree-depth warnings and debug effects. Parallax trees
// carry no shared context object, so the flag is package-wide.
var globalDebug bool

// debugOut is where debug diagnostics are written. Tests swap it.
var debugOut io.Writer = os.Stderr

// SetDebugMode enables or disables debug mode. When enabled, attaching a
// child deeper than debugMaxTreeDepth prints a warning and effects added with
// AddDebugEffect print their progress on every seed.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// DebugMode reports whether debug mode is enabled.
func DebugMode() bool {
	return globalDebug
}

// debugMaxTreeDepth is the deepest tree seeding is expected to handle
// comfortably in a frame.
const debugMaxTreeDepth = 10

// debugCheckTreeDepth warns on stderr if attaching n made the tree deeper
// than debugMaxTreeDepth.
func debugCheckTreeDepth[T Float](n *Effect[T]) {
	depth := n.Depth() + subtreeHeight(n)
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(debugOut, "[parallax] warning: tree depth %d exceeds %d (effect %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

func subtreeHeight[T Float](n *Effect[T]) int {
	h := 0
	for i := range n.children {
		if ch := subtreeHeight(n.children[i].effect) + 1; ch > h {
			h = ch
		}
	}
	return h
}

// AddDebugEffect attaches a child to effect that prints its progress as a
// percentage on every seed while debug mode is enabled:
//
//	[parallax] debug effect (slide): 42%
//
// Use it to check that an effect's interval behaves as expected.
func AddDebugEffect[T Float](effect *Effect[T], name string) *Effect[T] {
	if name == "" {
		name = "unnamed"
	}
	percent := NewEffect("debug:"+name, MustInterval[T](0, 100))
	percent.OnChange = func(v T) {
		if !globalDebug {
			return
		}
		_, _ = fmt.Fprintf(debugOut, "[parallax] debug effect (%s): %d%%\n", name, int(v))
	}
	effect.AddChild(percent)
	return percent
}
