// Package editor drives the refresh/decode/dispatch cycle of the viewer.
package editor

import (
	"log"

	"github.com/pkg/errors"

	"github.com/lixenwraith/kilo/document"
	"github.com/lixenwraith/kilo/input"
	"github.com/lixenwraith/kilo/render"
	"github.com/lixenwraith/kilo/terminal"
	"github.com/lixenwraith/kilo/viewport"
)

// ErrQuit is returned by Run when the user quits
var ErrQuit = errors.New("quit")

// Screen is the terminal as seen by the loop
type Screen interface {
	ReadKeyByte() (b byte, ok bool, err error)
	Write(p []byte) error
}

// Editor is the state owned by the control loop
type Editor struct {
	screen   Screen
	decoder  *terminal.Decoder
	keys     *input.KeyTable
	renderer *render.FrameRenderer

	doc    *document.Document
	cursor viewport.Cursor
	view   *viewport.Viewport

	resizes <-chan terminal.ResizeEvent
}

// New creates an editor over doc for a screen of rows x cols
// keys may be nil for the default bindings
func New(screen Screen, doc *document.Document, rows, cols int, keys *input.KeyTable) *Editor {
	if keys == nil {
		keys = input.DefaultKeyTable()
	}
	return &Editor{
		screen:   screen,
		decoder:  terminal.NewDecoder(screen),
		keys:     keys,
		renderer: render.NewFrameRenderer(render.WelcomeBanner()),
		doc:      doc,
		view:     viewport.New(rows, cols),
	}
}

// WatchResize makes the loop pick up window size changes while idle
func (e *Editor) WatchResize(events <-chan terminal.ResizeEvent) {
	e.resizes = events
}

// Cursor returns the current cursor
func (e *Editor) Cursor() viewport.Cursor {
	return e.cursor
}

// Viewport returns the current window
func (e *Editor) Viewport() viewport.Viewport {
	return *e.view
}

// Run loops until quit or a fatal error
// Both end with the screen cleared; the quit case returns ErrQuit
func (e *Editor) Run() error {
	for {
		if err := e.Step(); err != nil {
			if !errors.Is(err, ErrQuit) {
				log.Printf("editor: fatal: %v", err)
			}
			e.resetScreen()
			return err
		}
	}
}

// Step refreshes the screen, then blocks for one key and dispatches it
// Read timeouts are absorbed here and only end the step when the window was resized
func (e *Editor) Step() error {
	if err := e.Refresh(); err != nil {
		return err
	}

	for {
		ev, err := e.decoder.Next()
		if err != nil {
			return err
		}
		if ev.Type != terminal.EventTimeout {
			return e.Dispatch(ev)
		}
		if e.pollResize() {
			return nil
		}
	}
}

// pollResize applies a pending resize event, if any
func (e *Editor) pollResize() bool {
	select {
	case ev := <-e.resizes:
		log.Printf("editor: resize %dx%d", ev.Cols, ev.Rows)
		e.view.ScreenRows = ev.Rows
		e.view.ScreenCols = ev.Cols
		return true
	default:
		return false
	}
}

// Refresh recomputes the viewport and redraws the full frame
func (e *Editor) Refresh() error {
	e.view.Recompute(&e.cursor, e.doc)
	return e.renderer.Refresh(e.screen, e.doc, e.view, e.cursor)
}

// Dispatch applies one decoded key event
func (e *Editor) Dispatch(ev terminal.Event) error {
	intent := e.keys.Lookup(ev)

	switch intent.Type {
	case input.IntentQuit:
		log.Printf("editor: quit at row %d col %d", e.cursor.Y, e.cursor.X)
		return ErrQuit
	case input.IntentMotion:
		e.applyMotion(intent.Motion)
	}
	return nil
}

// resetScreen clears the screen and homes the cursor, best-effort
func (e *Editor) resetScreen() {
	if err := e.screen.Write(terminal.ClearScreenSequence()); err != nil {
		log.Printf("editor: reset screen: %v", err)
	}
}
