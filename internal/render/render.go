// Package render draws operator matrices for terminals. Cell and column
// widths are measured in display cells so wide runes such as █ or CJK
// characters stay aligned.
package render

import (
	"strings"

	"github.com/mattn/go-runewidth"

	opmatrix "github.com/njchilds90/opmatrix"
)

// Style selects the strings drawn for set and unset cells.
type Style struct {
	On  string
	Off string
	Sep string
}

// DefaultStyle is used when a Style field is empty.
var DefaultStyle = Style{On: "█", Off: "·", Sep: " "}

func (s Style) withDefaults() Style {
	if s.On == "" {
		s.On = DefaultStyle.On
	}
	if s.Off == "" {
		s.Off = DefaultStyle.Off
	}
	if s.Sep == "" {
		s.Sep = DefaultStyle.Sep
	}
	return s
}

// Grid renders m with every cell padded to the same display width.
func Grid(m opmatrix.Matrix, style Style) string {
	return strings.Join(gridLines(m, style.withDefaults()), "\n") + "\n"
}

func gridLines(m opmatrix.Matrix, s Style) []string {
	w := max(runewidth.StringWidth(s.On), runewidth.StringWidth(s.Off))
	on := runewidth.FillRight(s.On, w)
	off := runewidth.FillRight(s.Off, w)

	lines := make([]string, opmatrix.Size)
	for i := 0; i < opmatrix.Size; i++ {
		cells := make([]string, opmatrix.Size)
		for j := 0; j < opmatrix.Size; j++ {
			if m.Cell(i, j) != 0 {
				cells[j] = on
			} else {
				cells[j] = off
			}
		}
		lines[i] = strings.Join(cells, s.Sep)
	}
	return lines
}

// Panel is one titled matrix in a side-by-side layout.
type Panel struct {
	Title  string
	Matrix opmatrix.Matrix
}

// SideBySide renders panels in a single row, titles above their grids,
// separated by gap spaces.
func SideBySide(panels []Panel, style Style, gap int) string {
	if len(panels) == 0 {
		return ""
	}
	s := style.withDefaults()
	spacer := strings.Repeat(" ", max(gap, 1))

	blocks := make([][]string, len(panels))
	widths := make([]int, len(panels))
	for i, p := range panels {
		lines := append([]string{p.Title}, gridLines(p.Matrix, s)...)
		for _, l := range lines {
			widths[i] = max(widths[i], runewidth.StringWidth(l))
		}
		blocks[i] = lines
	}

	var sb strings.Builder
	for row := 0; row < opmatrix.Size+1; row++ {
		parts := make([]string, len(blocks))
		for i, b := range blocks {
			parts[i] = runewidth.FillRight(b[row], widths[i])
		}
		sb.WriteString(strings.TrimRight(strings.Join(parts, spacer), " "))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Table renders rows as aligned columns. The first row is treated as the
// header and underlined.
func Table(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}
	var widths []int
	for _, r := range rows {
		for i, c := range r {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], runewidth.StringWidth(c))
		}
	}

	var sb strings.Builder
	writeRow := func(r []string) {
		parts := make([]string, len(r))
		for i, c := range r {
			parts[i] = runewidth.FillRight(c, widths[i])
		}
		sb.WriteString(strings.TrimRight(strings.Join(parts, "  "), " "))
		sb.WriteString("\n")
	}
	writeRow(rows[0])
	rule := make([]string, len(rows[0]))
	for i := range rule {
		rule[i] = strings.Repeat("-", widths[i])
	}
	writeRow(rule)
	for _, r := range rows[1:] {
		writeRow(r)
	}
	return sb.String()
}
