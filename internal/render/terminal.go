package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/Mearkatz/spreading-colors-ca/internal/spread"
)

const cellGlyph = "█"

// Terminal renders grid frames as ANSI 24-bit truecolor block characters.
// Only the interior is drawn; the border ring is bookkeeping, not art.
type Terminal struct {
	out io.Writer
	buf strings.Builder
}

// NewTerminal returns a renderer writing to out.
func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

// Clear erases the screen and homes the cursor.
func (t *Terminal) Clear() error {
	_, err := io.WriteString(t.out, "\x1b[2J\x1b[H")
	return err
}

// Frame writes one frame of the grid interior, one text row per grid row.
// Dead cells carry a zero color and show up black.
func (t *Terminal) Frame(g *spread.Grid) error {
	t.buf.Reset()
	for y := 1; y < g.Height()-1; y++ {
		for x := 1; x < g.Width()-1; x++ {
			c := g.ColorAt(y, x)
			t.buf.WriteString("\x1b[38;2;")
			t.buf.WriteString(strconv.Itoa(int(c.R)))
			t.buf.WriteByte(';')
			t.buf.WriteString(strconv.Itoa(int(c.G)))
			t.buf.WriteByte(';')
			t.buf.WriteString(strconv.Itoa(int(c.B)))
			t.buf.WriteByte('m')
			t.buf.WriteString(cellGlyph)
		}
		t.buf.WriteString("\x1b[0m\n")
	}
	_, err := io.WriteString(t.out, t.buf.String())
	return err
}
