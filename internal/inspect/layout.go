package inspect

import (
	"github.com/rivo/uniseg"

	"github.com/dshills/arbor/internal/engine/bst"
)

// MaxLabelWidth caps how many cells one node label may occupy.
const MaxLabelWidth = 24

// Box is the placed rendering of one tree node: grid coordinates plus
// the label text. Column is the node's inorder index, Row its depth;
// the classic layout in which no two nodes collide and parents sit
// between their children.
type Box struct {
	Key    string
	Label  string
	Column int
	Row    int
}

// Layout is the computed node placement for one tree snapshot.
type Layout struct {
	Boxes []Box // in inorder (ascending Column) order

	// Columns and Rows are the grid extents.
	Columns int
	Rows    int

	// ColumnWidth is the cell width of one grid column: the widest
	// label plus one cell of separation.
	ColumnWidth int

	byKey map[string]int
}

// ComputeLayout places every node of the tree on the grid.
func ComputeLayout(t *bst.Tree[string, string]) *Layout {
	l := &Layout{byKey: make(map[string]int, t.Len())}

	maxLabel := 0
	place(t.Root(), 1, l, &maxLabel)

	l.Columns = len(l.Boxes)
	l.ColumnWidth = maxLabel + 1
	return l
}

// place performs the inorder walk assigning columns left to right.
func place(h *bst.Handle[string, string], depth int, l *Layout, maxLabel *int) {
	if h == nil {
		return
	}
	place(h.Left(), depth+1, l, maxLabel)

	label := makeLabel(h.Key(), h.Value())
	if w := uniseg.StringWidth(label); w > *maxLabel {
		*maxLabel = w
	}
	l.byKey[h.Key()] = len(l.Boxes)
	l.Boxes = append(l.Boxes, Box{
		Key:    h.Key(),
		Label:  label,
		Column: len(l.Boxes),
		Row:    depth - 1,
	})
	if depth > l.Rows {
		l.Rows = depth
	}

	place(h.Right(), depth+1, l, maxLabel)
}

// makeLabel renders "key=value" truncated to MaxLabelWidth display
// cells, respecting grapheme cluster boundaries.
func makeLabel(key, value string) string {
	label := key + "=" + value
	if uniseg.StringWidth(label) <= MaxLabelWidth {
		return label
	}

	out := ""
	width := 0
	state := -1
	remaining := label
	for len(remaining) > 0 {
		var cluster string
		var w int
		cluster, remaining, w, state = uniseg.FirstGraphemeClusterInString(remaining, state)
		if width+w > MaxLabelWidth-1 {
			break
		}
		out += cluster
		width += w
	}
	return out + "…"
}

// Find returns the box for key, or false if the key is not in the
// layout.
func (l *Layout) Find(key string) (Box, bool) {
	i, ok := l.byKey[key]
	if !ok {
		return Box{}, false
	}
	return l.Boxes[i], true
}
