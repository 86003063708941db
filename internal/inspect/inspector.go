// Package inspect provides an interactive terminal view of a tree.
//
// Nodes are placed on a grid (inorder position across, depth down),
// colored by depth, and navigated with the arrow keys following the
// tree's own child links. The inspector is strictly read-only; it
// never mutates the tree it displays.
package inspect

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/arbor/internal/engine/bst"
)

// ErrEmptyTree indicates there is nothing to inspect.
var ErrEmptyTree = errors.New("inspect: tree is empty")

// Inspector displays one tree in a terminal session.
type Inspector struct {
	tree   *bst.Tree[string, string]
	layout *Layout
	style  styler

	cursor *bst.Handle[string, string]
	path   []*bst.Handle[string, string] // ancestors, root first

	offsetX int
	offsetY int
}

// New prepares an inspector for the given tree. theme is ThemeDepth or
// ThemeMono.
func New(tree *bst.Tree[string, string], theme string) (*Inspector, error) {
	if tree.IsEmpty() {
		return nil, ErrEmptyTree
	}
	layout := ComputeLayout(tree)
	return &Inspector{
		tree:   tree,
		layout: layout,
		style:  newStyler(theme, layout.Rows),
		cursor: tree.Root(),
	}, nil
}

// Run opens a tcell screen and blocks until the user quits.
func (ins *Inspector) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("inspect: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("inspect: %w", err)
	}
	defer screen.Fini()

	for {
		ins.draw(screen)
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ins.handleKey(ev) {
				return nil
			}
		}
	}
}

// handleKey processes one key event; true means quit.
func (ins *Inspector) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		ins.descend(ins.cursor.Left())
	case tcell.KeyRight:
		ins.descend(ins.cursor.Right())
	case tcell.KeyUp:
		ins.ascend()
	case tcell.KeyHome:
		ins.reset()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'h':
			ins.descend(ins.cursor.Left())
		case 'l':
			ins.descend(ins.cursor.Right())
		case 'k':
			ins.ascend()
		case 'g':
			ins.reset()
		}
	}
	return false
}

func (ins *Inspector) descend(child *bst.Handle[string, string]) {
	if child == nil {
		return
	}
	ins.path = append(ins.path, ins.cursor)
	ins.cursor = child
}

func (ins *Inspector) ascend() {
	if len(ins.path) == 0 {
		return
	}
	ins.cursor = ins.path[len(ins.path)-1]
	ins.path = ins.path[:len(ins.path)-1]
}

func (ins *Inspector) reset() {
	ins.cursor = ins.tree.Root()
	ins.path = ins.path[:0]
}

// Grid-to-cell spacing: rows are doubled to leave space for connector
// glyphs between parent and child.
const rowSpacing = 2

// draw renders the current state onto the surface.
func (ins *Inspector) draw(s surface) {
	s.Clear()
	width, height := s.Size()
	ins.ensureVisible(width, height)

	ins.drawEdges(s, ins.tree.Root())

	for _, box := range ins.layout.Boxes {
		x := box.Column*ins.layout.ColumnWidth - ins.offsetX
		y := box.Row*rowSpacing - ins.offsetY
		if y < 0 || y >= height-1 {
			continue
		}

		style := ins.style.rowStyle(box.Row)
		if box.Key == ins.cursor.Key() {
			style = ins.style.selectedStyle(box.Row)
		}
		drawText(s, x, y, box.Label, style)
	}

	ins.drawStatus(s, width, height)
	s.Show()
}

// drawEdges draws a connector glyph between every parent and child.
func (ins *Inspector) drawEdges(s surface, h *bst.Handle[string, string]) {
	if h == nil {
		return
	}
	parent, _ := ins.layout.Find(h.Key())

	for _, child := range []*bst.Handle[string, string]{h.Left(), h.Right()} {
		if child == nil {
			continue
		}
		box, _ := ins.layout.Find(child.Key())

		glyph := '/'
		if box.Column > parent.Column {
			glyph = '\\'
		}
		mid := (parent.Column + box.Column) * ins.layout.ColumnWidth / 2
		x := mid - ins.offsetX
		y := parent.Row*rowSpacing + 1 - ins.offsetY
		s.SetContent(x, y, glyph, nil, ins.style.edgeStyle())

		ins.drawEdges(s, child)
	}
}

// drawStatus renders the bottom status line.
func (ins *Inspector) drawStatus(s surface, width, height int) {
	status := fmt.Sprintf(" %s=%s | depth %d | %d keys, height %d | arrows move, q quits ",
		ins.cursor.Key(), ins.cursor.Value(), len(ins.path)+1, ins.tree.Len(), ins.layout.Rows)

	style := ins.style.statusStyle()
	for x := 0; x < width; x++ {
		s.SetContent(x, height-1, ' ', nil, style)
	}
	drawText(s, 0, height-1, status, style)
}

// ensureVisible scrolls so the cursor node stays on screen.
func (ins *Inspector) ensureVisible(width, height int) {
	box, ok := ins.layout.Find(ins.cursor.Key())
	if !ok {
		return
	}

	x := box.Column * ins.layout.ColumnWidth
	y := box.Row * rowSpacing

	if x < ins.offsetX {
		ins.offsetX = x
	}
	if right := x + ins.layout.ColumnWidth; right > ins.offsetX+width {
		ins.offsetX = right - width
	}
	if y < ins.offsetY {
		ins.offsetY = y
	}
	if bottom := y + rowSpacing; bottom > ins.offsetY+height-1 {
		ins.offsetY = bottom - (height - 1)
	}
}

// drawText writes a string starting at (x, y), clipping to the
// surface.
func drawText(s surface, x, y int, text string, style tcell.Style) {
	width, _ := s.Size()
	for _, r := range text {
		if x >= width {
			return
		}
		if x >= 0 {
			s.SetContent(x, y, r, nil, style)
		}
		x++
	}
}
