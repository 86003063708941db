package inspect

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme names accepted by the inspector.
const (
	ThemeDepth = "depth"
	ThemeMono  = "mono"
)

// Hue range for the depth gradient, green at the root shading to
// violet at the deepest row.
const (
	hueShallow = 140.0
	hueDeep    = 280.0
)

// styler produces per-row styles for one rendering pass.
type styler struct {
	mono bool
	rows int
}

func newStyler(theme string, rows int) styler {
	return styler{mono: theme == ThemeMono, rows: rows}
}

// rowStyle returns the base style for nodes at the given depth row.
func (s styler) rowStyle(row int) tcell.Style {
	if s.mono {
		return tcell.StyleDefault
	}

	frac := 0.0
	if s.rows > 1 {
		frac = float64(row) / float64(s.rows-1)
	}
	hue := hueShallow + frac*(hueDeep-hueShallow)
	c := colorful.Hsv(hue, 0.55, 0.95)
	r, g, b := c.RGB255()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}

// selectedStyle highlights the cursor node.
func (s styler) selectedStyle(row int) tcell.Style {
	return s.rowStyle(row).Reverse(true).Bold(true)
}

// statusStyle renders the bottom status line.
func (s styler) statusStyle() tcell.Style {
	if s.mono {
		return tcell.StyleDefault.Reverse(true)
	}
	return tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Foreground(tcell.ColorWhite)
}

// edgeStyle renders parent-child connector glyphs.
func (s styler) edgeStyle() tcell.Style {
	if s.mono {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.ColorGray)
}
