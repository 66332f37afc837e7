// Package document holds the rows of the file being viewed.
//
// Each row keeps its logical bytes and a derived render form with tabs expanded
// to spaces. The render form is rebuilt whenever the logical bytes change; rows
// are only ever created here, so it is computed once in newRow.
package document

// Row is one line of the document
type Row struct {
	chars   []byte
	render  []byte
	tabStop int
}

func newRow(chars []byte, tabStop int) *Row {
	r := &Row{
		chars:   append([]byte(nil), chars...),
		tabStop: tabStop,
	}
	r.updateRender()
	return r
}

// updateRender rebuilds the render buffer from chars
// A tab emits at least one space and pads up to the next tab stop
func (r *Row) updateRender() {
	tabs := 0
	for _, c := range r.chars {
		if c == '\t' {
			tabs++
		}
	}

	render := make([]byte, 0, len(r.chars)+tabs*(r.tabStop-1))
	for _, c := range r.chars {
		if c == '\t' {
			render = append(render, ' ')
			for len(render)%r.tabStop != 0 {
				render = append(render, ' ')
			}
			continue
		}
		render = append(render, c)
	}
	r.render = render
}

// Len returns the logical length in bytes
func (r *Row) Len() int {
	return len(r.chars)
}

// RenderLen returns the rendered length in columns
func (r *Row) RenderLen() int {
	return len(r.render)
}

// Chars returns the logical bytes; callers must not modify them
func (r *Row) Chars() []byte {
	return r.chars
}

// Render returns the tab-expanded bytes; callers must not modify them
func (r *Row) Render() []byte {
	return r.render
}

// CxToRx maps a logical column to its render column
// cx past the end of the row is treated as the end
func (r *Row) CxToRx(cx int) int {
	if cx > len(r.chars) {
		cx = len(r.chars)
	}
	rx := 0
	for j := 0; j < cx; j++ {
		if r.chars[j] == '\t' {
			rx += (r.tabStop - 1) - (rx % r.tabStop)
		}
		rx++
	}
	return rx
}
