package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

var (
	styleText    = tcell.StyleDefault
	styleButton  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleOption  = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleField   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleFocused = tcell.StyleDefault.Reverse(true)
)

// Text renders one informational line.
func (a *App) Text(s string) {
	a.widgets = append(a.widgets, widget{kind: kindText, display: s})
}

// Confirm renders a button and reports whether it was activated since the
// last frame. A press is consumed by the read.
func (a *App) Confirm(label string) bool {
	a.widgets = append(a.widgets, widget{kind: kindButton, label: label, display: "[ " + label + " ]"})
	if a.pressed[label] {
		delete(a.pressed, label)
		return true
	}
	return false
}

// Choice renders a heading plus one focusable row per option and reports a
// selection made since the last frame. A selection is consumed by the read.
func (a *App) Choice(label string, options []string) (int, bool) {
	a.widgets = append(a.widgets, widget{kind: kindText, display: label + ":"})
	for i, opt := range options {
		a.widgets = append(a.widgets, widget{
			kind:    kindOption,
			label:   label,
			display: "  " + opt,
			option:  i,
		})
	}
	if i, ok := a.selected[label]; ok {
		delete(a.selected, label)
		if i >= 0 && i < len(options) {
			return i, true
		}
	}
	return 0, false
}

// IntField renders an editable integer adjusted with the left/right keys.
// The stored edit wins over the caller's value until Reset clears it.
func (a *App) IntField(label string, v int) int {
	cur, ok := a.values[label]
	if !ok {
		cur = v
		a.values[label] = v
	}
	a.widgets = append(a.widgets, widget{
		kind:    kindIntField,
		label:   label,
		display: fmt.Sprintf("%s: < %d >", label, cur),
	})
	return cur
}

// Reset drops all pending presses, selections, and field edits. Callers use
// it when switching screens so stale widget state cannot leak across.
func (a *App) Reset() {
	clear(a.pressed)
	clear(a.selected)
	clear(a.values)
	a.focus = 0
	a.scroll = 0
}

func (a *App) beginFrame() {
	a.widgets = a.widgets[:0]
}

func (a *App) endFrame() {
	a.drawn = append(a.drawn[:0], a.widgets...)
	a.draw()
}

func (a *App) draw() {
	a.screen.Clear()
	_, height := a.screen.Size()

	focusRow := -1
	if _, ok := a.focusedWidget(); ok {
		seen := 0
		for i, w := range a.drawn {
			if w.kind == kindText {
				continue
			}
			if seen == a.focus {
				focusRow = i
				break
			}
			seen++
		}
	}

	// Keep the focused row inside the viewport.
	if focusRow >= 0 {
		if focusRow < a.scroll {
			a.scroll = focusRow
		}
		if focusRow >= a.scroll+height {
			a.scroll = focusRow - height + 1
		}
	}
	if a.scroll > len(a.drawn)-1 {
		a.scroll = 0
	}

	for row, i := 0, a.scroll; i < len(a.drawn) && row < height; i, row = i+1, row+1 {
		w := a.drawn[i]
		style := styleFor(w.kind)
		if i == focusRow {
			style = styleFocused
		}
		drawString(a.screen, 0, row, w.display, style)
	}
	a.screen.Show()
}

func styleFor(k widgetKind) tcell.Style {
	switch k {
	case kindButton:
		return styleButton
	case kindOption:
		return styleOption
	case kindIntField:
		return styleField
	default:
		return styleText
	}
}

func drawString(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
