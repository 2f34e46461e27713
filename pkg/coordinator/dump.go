package coordinator

import (
	"fmt"
	"strings"
)

// Named lets a coordinator choose its label in Dump output.
type Named interface {
	Name() string
}

func label(c Coordinating) string {
	if n, ok := c.(Named); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", c)
}

// Dump renders the subtree under root, one coordinator per line:
//
//	*app.Root
//	├─ *app.Tabs
//	│  └─ *app.List
//	└─ *app.Login
func Dump(root Coordinating) string {
	if root == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(label(root))
	sb.WriteString("\n")
	dumpChildren(&sb, root, "", 0)
	return sb.String()
}

func dumpChildren(sb *strings.Builder, parent Coordinating, prefix string, depth int) {
	// A node attached under two parents can form a cycle; the tree contract
	// does not forbid it, so stop rather than recurse forever.
	if depth > 64 {
		sb.WriteString(prefix + "└─ ...\n")
		return
	}

	children := parent.Children()
	for i, child := range children {
		branch, indent := "├─ ", "│  "
		if i == len(children)-1 {
			branch, indent = "└─ ", "   "
		}
		sb.WriteString(prefix + branch + label(child) + "\n")
		dumpChildren(sb, child, prefix+indent, depth+1)
	}
}
