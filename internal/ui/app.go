// Package ui is the terminal front end: an immediate-mode widget layer over
// tcell. Each frame the caller re-declares its widgets top to bottom; key
// events between frames are translated into presses, selections, and edits
// that the matching widget reports on the next declaration.
package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 33 * time.Millisecond

type widgetKind int

const (
	kindText widgetKind = iota
	kindButton
	kindOption
	kindIntField
)

type widget struct {
	kind    widgetKind
	label   string // widget identity; empty for plain text
	display string
	option  int // option index within its choice list
}

// App owns the terminal screen and the per-frame widget state.
type App struct {
	screen tcell.Screen

	widgets []widget // declared this frame
	drawn   []widget // snapshot of the last finished frame

	focus  int // index into the focusable widgets of the last frame
	scroll int

	pressed  map[string]bool
	selected map[string]int
	values   map[string]int

	quit bool
}

// New initializes the terminal screen.
func New() (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	return &App{
		screen:   screen,
		pressed:  make(map[string]bool),
		selected: make(map[string]int),
		values:   make(map[string]int),
	}, nil
}

// Fini restores the terminal.
func (a *App) Fini() {
	a.screen.Fini()
}

// Quit asks the run loop to stop after the current frame.
func (a *App) Quit() {
	a.quit = true
}

// Run drives the frame loop: poll input, rebuild the widget tree via frame,
// draw. It returns when frame returns false or the operator quits with
// Escape or Ctrl+C.
func (a *App) Run(frame func(a *App) bool) {
	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			a.handleEvent(ev)
		case <-ticker.C:
			a.beginFrame()
			cont := frame(a)
			a.endFrame()
			if !cont || a.quit {
				return
			}
		}
	}
}

func (a *App) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		a.handleKey(ev)
	}
}

func (a *App) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.quit = true
	case tcell.KeyUp:
		a.moveFocus(-1)
	case tcell.KeyDown:
		a.moveFocus(1)
	case tcell.KeyEnter:
		a.activateFocused()
	case tcell.KeyLeft:
		a.adjustFocused(-1)
	case tcell.KeyRight:
		a.adjustFocused(1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			a.moveFocus(-1)
		case 'j':
			a.moveFocus(1)
		case '-':
			a.adjustFocused(-1)
		case '+', '=':
			a.adjustFocused(1)
		case ' ':
			a.activateFocused()
		}
	}
}

// focusable returns the interactive widgets of the last drawn frame.
func (a *App) focusable() []widget {
	var out []widget
	for _, w := range a.drawn {
		if w.kind != kindText {
			out = append(out, w)
		}
	}
	return out
}

func (a *App) moveFocus(delta int) {
	n := len(a.focusable())
	if n == 0 {
		return
	}
	a.focus = (a.focus + delta + n) % n
}

func (a *App) focusedWidget() (widget, bool) {
	f := a.focusable()
	if len(f) == 0 {
		return widget{}, false
	}
	if a.focus >= len(f) {
		a.focus = len(f) - 1
	}
	return f[a.focus], true
}

func (a *App) activateFocused() {
	w, ok := a.focusedWidget()
	if !ok {
		return
	}
	switch w.kind {
	case kindButton:
		a.pressed[w.label] = true
	case kindOption:
		a.selected[w.label] = w.option
	}
}

func (a *App) adjustFocused(delta int) {
	w, ok := a.focusedWidget()
	if !ok || w.kind != kindIntField {
		return
	}
	if v := a.values[w.label] + delta; v >= 0 {
		a.values[w.label] = v
	}
}
