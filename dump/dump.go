// Package dump renders a machine snapshot as rows of hex and ASCII, with
// the storage cell, code region and data region told apart by color.
package dump

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/ezrec/bfvm/vm"
)

const (
	ROW_WIDTH = 16 // Bytes per row.
)

var _region_color = map[vm.Region]termenv.Color{
	vm.REGION_STORAGE: termenv.ANSIRed,
	vm.REGION_CODE:    termenv.ANSIBrightBlue,
	vm.REGION_DATA:    termenv.ANSIGreen,
}

// Dump renders snapshots.
type Dump struct {
	Color bool // If set, colors bytes by region and underlines the data pointer.
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// ColorFor resolves a color mode of "always", "never" or "auto" for w.
// Auto colors terminals, unless NO_COLOR is set.
func ColorFor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return IsTerminal(w) && os.Getenv("NO_COLOR") == ""
	}
}

func (d *Dump) style(text string, cell vm.Cell, ptr int) string {
	if !d.Color {
		return text
	}

	style := termenv.ANSI.String(text).Foreground(_region_color[cell.Region])
	if cell.Index == ptr {
		style = style.Underline()
	}

	return style.String()
}

func printable(b byte) string {
	if b >= 32 && b <= 126 {
		return string(rune(b))
	}
	return "."
}

// Row renders one row of up to ROW_WIDTH cells starting at offset.
func (d *Dump) Row(offset int, cells []vm.Cell, ptr int) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%08X ", offset)
	for _, cell := range cells {
		sb.WriteString(" " + d.style(fmt.Sprintf("%02X", cell.Value), cell, ptr))
	}
	for range ROW_WIDTH - len(cells) {
		sb.WriteString(" 00")
	}

	sb.WriteString("  |")
	for _, cell := range cells {
		sb.WriteString(d.style(printable(cell.Value), cell, ptr))
	}
	for range ROW_WIDTH - len(cells) {
		sb.WriteString(".")
	}
	sb.WriteString("|\n")

	return sb.String()
}

// Render writes every byte of the snapshot to w.
func (d *Dump) Render(w io.Writer, snap vm.Snapshot) (err error) {
	cells := slices.Collect(snap.Cells())

	offset := 0
	for row := range slices.Chunk(cells, ROW_WIDTH) {
		_, err = io.WriteString(w, d.Row(offset, row, snap.DataPtr))
		if err != nil {
			return
		}
		offset += len(row)
	}

	return
}
