package grid

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/rivo/uniseg"
)

// Printer renders a Grid as text, one line per row of the bounding
// rectangle. Configure it with the chainable With* methods; each returns the
// same Printer.
//
// Widths are measured in terminal display columns, so wide runes and
// multi-rune graphemes are padded and truncated as single units.
//
// Cells of type int32 render as the rune they encode unless WithFormatter
// says otherwise.
type Printer[K Key, D comparable] struct {
	g         *Grid[K, D]
	legend    bool
	cellWidth int
	fill      []D
	override  func(Point[K]) (string, bool)
	format    func(D) string
}

// Printer returns a Printer with cell width 1, no legend, no fill values and
// no override.
func (g *Grid[K, D]) Printer() *Printer[K, D] {
	return &Printer[K, D]{g: g, cellWidth: 1, format: formatAny[D]}
}

// String renders g with the default Printer. For a grid parsed by FromRunes
// this reproduces the input text without its trailing newline.
func (g *Grid[K, D]) String() string {
	return g.Printer().String()
}

// WithLegend prefixes a header of column keys and labels each row with its key.
func (p *Printer[K, D]) WithLegend() *Printer[K, D] {
	p.legend = true
	return p
}

// WithCellWidth sets the display width of every cell. Longer content keeps
// its trailing columns; shorter content is centred.
// Panics with ErrBadCellWidth if width < 1.
func (p *Printer[K, D]) WithCellWidth(width int) *Printer[K, D] {
	if width < 1 {
		panic(fmt.Errorf("%w: %d", ErrBadCellWidth, width))
	}
	p.cellWidth = width
	return p
}

// WithCellFill makes cells holding value repeat its text across the whole
// cell width instead of being centred.
func (p *Printer[K, D]) WithCellFill(value D) *Printer[K, D] {
	p.fill = append(p.fill, value)
	return p
}

// WithCellOverride installs fn. Whenever fn returns true for a point its text
// replaces the cell, including empty cells.
func (p *Printer[K, D]) WithCellOverride(fn func(Point[K]) (string, bool)) *Printer[K, D] {
	p.override = fn
	return p
}

// WithFormatter replaces the text conversion of cell values.
// By default runes and strings print as themselves, fmt.Stringer values use
// String and everything else uses fmt.Sprint. Since rune is an alias of
// int32, int32 cells print as characters too; numeric int32 grids need a
// formatter such as fmt.Sprint.
func (p *Printer[K, D]) WithFormatter(fn func(D) string) *Printer[K, D] {
	if fn != nil {
		p.format = fn
	}
	return p
}

// WriteTo renders the grid into w.
func (p *Printer[K, D]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, p.String())
	return int64(n), err
}

// String renders the grid. Rows are separated by '\n' with no trailing newline.
func (p *Printer[K, D]) String() string {
	var sb strings.Builder
	it := p.g.GridIter()

	if p.legend {
		sb.WriteString(p.pad(" "))
		for pt := range it.XIter().All() {
			sb.WriteString(p.pad(fmt.Sprint(pt.X)))
		}
		sb.WriteByte('\n')
	}

	first := true
	var lastY K
	for pt := range it.All() {
		if first || pt.Y != lastY {
			if !first {
				sb.WriteByte('\n')
			}
			if p.legend {
				sb.WriteString(p.pad(fmt.Sprint(pt.Y)))
			}
			first, lastY = false, pt.Y
		}
		sb.WriteString(p.pad(p.cell(pt)))
	}
	return sb.String()
}

func (p *Printer[K, D]) cell(pt Point[K]) string {
	if p.override != nil {
		if s, ok := p.override(pt); ok {
			return s
		}
	}
	v, ok := p.g.Get(pt.X, pt.Y)
	if !ok {
		return " "
	}
	s := p.format(v)
	if s != "" && slices.Contains(p.fill, v) {
		return truncateLeft(strings.Repeat(s, p.cellWidth), p.cellWidth)
	}
	return s
}

// pad fits s into the cell width: trailing columns are kept, then the text
// is centred with the odd space on the right.
func (p *Printer[K, D]) pad(s string) string {
	s = truncateLeft(s, p.cellWidth)
	gap := p.cellWidth - uniseg.StringWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// truncateLeft drops leading graphemes until s fits in width display columns.
func truncateLeft(s string, width int) string {
	total := uniseg.StringWidth(s)
	if total <= width {
		return s
	}
	gr := uniseg.NewGraphemes(s)
	var b strings.Builder
	for gr.Next() {
		if total > width {
			total -= gr.Width()
			continue
		}
		b.WriteString(gr.Str())
	}
	return b.String()
}

func formatAny[D any](v D) string {
	switch x := any(v).(type) {
	case rune:
		return string(x)
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
