package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_AppendAndAccess(t *testing.T) {
	d := New(0)
	assert.Equal(t, 8, d.TabStop())
	assert.Zero(t, d.NumRows())

	d.AppendRow([]byte("first"))
	d.AppendRow([]byte("\tsecond"))

	require.Equal(t, 2, d.NumRows())
	assert.Equal(t, "first", string(d.Row(0).Chars()))
	assert.Equal(t, 7, d.RowLen(1))
	assert.Equal(t, 14, d.Row(1).RenderLen())

	assert.Nil(t, d.Row(-1))
	assert.Nil(t, d.Row(2))
	assert.Zero(t, d.RowLen(2), "past-end row has length 0")
}

func TestDocument_Load(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single no newline", "abc", []string{"abc"}},
		{"single with newline", "abc\n", []string{"abc"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"blank lines", "\n\nx\n", []string{"", "", "x"}},
		{"last without newline", "a\nb", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(8)
			require.NoError(t, d.Load(strings.NewReader(tt.in)))

			got := make([]string, 0, d.NumRows())
			for i := 0; i < d.NumRows(); i++ {
				got = append(got, string(d.Row(i).Chars()))
			}
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDocument_LoadLongLine(t *testing.T) {
	long := strings.Repeat("x", 200000)
	d := New(8)
	require.NoError(t, d.Load(strings.NewReader(long+"\n")))
	assert.Equal(t, len(long), d.RowLen(0))
}

func TestDocument_Open(t *testing.T) {
	path := filepath.Join(t.TempDir(), "three.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n\tthree\n"), 0o644))

	d := New(8)
	require.NoError(t, d.Open(path))
	assert.Equal(t, 3, d.NumRows())
	assert.Equal(t, "        three", string(d.Row(2).Render()))
}

func TestDocument_OpenMissing(t *testing.T) {
	d := New(8)
	err := d.Open(filepath.Join(t.TempDir(), "missing.txt"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "open")
}
