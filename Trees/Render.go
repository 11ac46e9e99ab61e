package Trees

import (
	"fmt"
	"strings"
)

const renderSpacer = 2

// Render returns a text drawing of the tree, minimum at the top, one node
// per line, child blocks indented and connected with diagonal rules.
// Subtrees deeper than maxDepth are elided as "- ...", an empty slot shows
// as "- EMPTY". frame wraps the drawing in a MIN/MAX ruler. showKey
// annotates each node with its cached sort key; it has no effect on
// self-keyed trees, where the key is the value. Purely cosmetic. Recursive.
func (u *SortedTree[T, K, S]) Render(maxDepth int, frame, showKey bool) string {
	t, m, b := u.render(u.root, maxDepth, showKey)
	lines := append(append(t, m), b...)
	if !frame {
		return strings.Join(lines, "\n")
	}
	width := 40
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}
	var sb strings.Builder
	sb.WriteString("+-")
	sb.WriteString(strings.Repeat("-", width-3))
	sb.WriteString("MIN-+\n")
	for _, line := range lines {
		fmt.Fprintf(&sb, "| %-*s |\n", width, line)
	}
	sb.WriteString("+-")
	sb.WriteString(strings.Repeat("-", width-3))
	sb.WriteString("MAX-+\n")
	return sb.String()
}

// String renders with the default options: 10 levels, framed, keys shown.
func (u *SortedTree[T, K, S]) String() string {
	return u.Render(10, true, true)
}

// render builds the block for one subtree as (lines above the node, the
// node's own line, lines below). The left child's block goes above with a
// "/" rule pointing down at this node's line, the right child's below with
// a "\" rule, each shifted right by renderSpacer.
func (u *SortedTree[T, K, S]) render(i S, maxDepth int, showKey bool) (top []string, mid string, bot []string) {
	if maxDepth == 0 {
		return nil, "- ...", nil
	}
	if i == 0 {
		return nil, "- EMPTY", nil
	}
	mid = fmt.Sprintf("-%v", u.vs[i-1])
	if showKey && u.ks != nil {
		mid += fmt.Sprintf(" (key=%v)", u.ks[i-1])
	}
	if l := u.ifs[i].l; l != 0 {
		t, m, b := u.render(l, maxDepth-1, showKey)
		indent := strings.Repeat(" ", len(b)+renderSpacer)
		for _, line := range t {
			top = append(top, indent+" "+line)
		}
		top = append(top, indent+"/"+m)
		for j, line := range b {
			top = append(top, strings.Repeat(" ", len(b)-j+renderSpacer-1)+"/"+strings.Repeat(" ", j+1)+line)
		}
	}
	if r := u.ifs[i].r; r != 0 {
		t, m, b := u.render(r, maxDepth-1, showKey)
		for j, line := range t {
			bot = append(bot, strings.Repeat(" ", j+renderSpacer)+"\\"+strings.Repeat(" ", len(t)-j)+line)
		}
		bot = append(bot, strings.Repeat(" ", len(t)+renderSpacer)+"\\"+m)
		for _, line := range b {
			bot = append(bot, strings.Repeat(" ", len(t)+renderSpacer)+" "+line)
		}
	}
	return
}
