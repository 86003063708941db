package inspect

import "github.com/gdamore/tcell/v2"

// surface is the drawing target for the inspector. tcell.Screen
// satisfies it in production; tests substitute an in-memory fake.
type surface interface {
	Size() (int, int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Clear()
	Show()
}
