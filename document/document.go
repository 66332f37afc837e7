package document

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/lixenwraith/kilo/constants"
)

// Document is an append-only ordered sequence of rows
type Document struct {
	rows    []*Row
	tabStop int
}

// New creates an empty document, tabStop < 1 selects the default
func New(tabStop int) *Document {
	if tabStop < 1 {
		tabStop = constants.DefaultTabStop
	}
	return &Document{tabStop: tabStop}
}

// AppendRow appends a row built from b; b is copied
func (d *Document) AppendRow(b []byte) {
	d.rows = append(d.rows, newRow(b, d.tabStop))
}

// NumRows returns the number of rows
func (d *Document) NumRows() int {
	return len(d.rows)
}

// Row returns row i, or nil when i is outside [0, NumRows)
func (d *Document) Row(i int) *Row {
	if i < 0 || i >= len(d.rows) {
		return nil
	}
	return d.rows[i]
}

// RowLen returns the logical length of row i, 0 for the past-end row
func (d *Document) RowLen(i int) int {
	if r := d.Row(i); r != nil {
		return r.Len()
	}
	return 0
}

// TabStop returns the tab stop width
func (d *Document) TabStop() int {
	return d.tabStop
}

// Load appends every line read from r
// Line terminators (\n, \r\n) are stripped; a final line without one is kept
func (d *Document) Load(r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			d.AppendRow(bytes.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "read")
		}
	}
}

// Open loads the file at path
func (d *Document) Open(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open")
	}
	defer f.Close()

	return errors.Wrapf(d.Load(f), "load %s", path)
}
