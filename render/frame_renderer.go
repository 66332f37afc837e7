package render

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/kilo/constants"
	"github.com/lixenwraith/kilo/document"
	"github.com/lixenwraith/kilo/terminal"
	"github.com/lixenwraith/kilo/viewport"
)

// FrameWriter receives one complete frame per call
type FrameWriter interface {
	Write(p []byte) error
}

// FrameRenderer redraws the whole screen every refresh
type FrameRenderer struct {
	banner string
}

// WelcomeBanner is shown centered on an empty document
func WelcomeBanner() string {
	return fmt.Sprintf("Kilo editor -- version %s", constants.Version)
}

// NewFrameRenderer creates a renderer showing banner on empty documents
func NewFrameRenderer(banner string) *FrameRenderer {
	return &FrameRenderer{banner: banner}
}

// Frame assembles hide-cursor, home, every screen line, cursor placement and show-cursor
// The viewport must have been recomputed for c
func (r *FrameRenderer) Frame(doc *document.Document, v *viewport.Viewport, c viewport.Cursor) *terminal.Frame {
	f := terminal.NewFrame(v.ScreenRows, v.ScreenCols)
	f.Begin()
	r.drawRows(f, doc, v)
	row, col := v.ScreenCursor(c)
	f.End(row, col)
	return f
}

// Refresh builds the frame and hands it to w in a single write
func (r *FrameRenderer) Refresh(w FrameWriter, doc *document.Document, v *viewport.Viewport, c viewport.Cursor) error {
	return w.Write(r.Frame(doc, v, c).Bytes())
}

func (r *FrameRenderer) drawRows(f *terminal.Frame, doc *document.Document, v *viewport.Viewport) {
	numRows := doc.NumRows()

	for y := 0; y < v.ScreenRows; y++ {
		filerow := v.RowOff + y

		if filerow >= numRows {
			if numRows == 0 && y == v.ScreenRows/constants.BannerRowDivisor {
				r.drawBanner(f, v.ScreenCols)
			} else {
				f.WriteByte(constants.FillerMarker)
			}
		} else {
			f.Write(visibleSlice(doc.Row(filerow).Render(), v.ColOff, v.ScreenCols))
		}

		f.ClearLine()
		if y < v.ScreenRows-1 {
			f.NewLine()
		}
	}
}

// drawBanner centers the banner, keeping the filler marker in the first column
func (r *FrameRenderer) drawBanner(f *terminal.Frame, cols int) {
	banner := runewidth.Truncate(r.banner, cols, "")
	padding := (cols - runewidth.StringWidth(banner)) / 2
	if padding > 0 {
		f.WriteByte(constants.FillerMarker)
		padding--
	}
	for ; padding > 0; padding-- {
		f.WriteByte(' ')
	}
	f.WriteString(banner)
}

// visibleSlice clips render to [coloff, coloff+cols), never padding
func visibleSlice(render []byte, coloff, cols int) []byte {
	if coloff >= len(render) || cols <= 0 {
		return nil
	}
	s := render[coloff:]
	if len(s) > cols {
		s = s[:cols]
	}
	return s
}
