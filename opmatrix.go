// Package opmatrix provides a fixed registry of 5×5 operator indicator matrices.
//
// Design goals:
//   - Literal, bit-exact tables; nothing is derived at runtime
//   - Immutable value types, safe for any number of concurrent readers
//   - Deterministic ordering and stable text/JSON/LaTeX output
//   - AI/LLM friendly: JSON and MCP-ready tool APIs
package opmatrix

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ============================================================
// Errors
// ============================================================

var (
	// ErrUnsupportedCombination is returned when no table is defined for
	// the requested (operator, scale) pair.
	ErrUnsupportedCombination = errors.New("opmatrix: unsupported operator/scale combination")

	ErrUnknownOperator = errors.New("opmatrix: unknown operator")
	ErrUnknownGlyph    = errors.New("opmatrix: unknown glyph")
	ErrInvalidScale    = errors.New("opmatrix: invalid scale")
	ErrBadShape        = errors.New("opmatrix: matrix must be 5x5")
)

// ============================================================
// Matrix — immutable 5×5 integer grid
// ============================================================

// Size is the edge length of every table.
const Size = 5

// Matrix is a value type; copies never alias the registry.
type Matrix [Size][Size]int

// Rows and Cols are always Size.
func (m Matrix) Rows() int { return Size }
func (m Matrix) Cols() int { return Size }

func checkBounds(row, col int) {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		panic(fmt.Sprintf("opmatrix: matrix index out of range [%d,%d] for %dx%d", row, col, Size, Size))
	}
}

// Cell returns the value at (row, col). It panics on out-of-range indices.
func (m Matrix) Cell(row, col int) int {
	checkBounds(row, col)
	return m[row][col]
}

// Equal reports cell-by-cell equality.
func (m Matrix) Equal(other Matrix) bool { return m == other }

// Magnitude returns the value shared by all non-zero cells, or 0 when the
// matrix is empty or the non-zero cells disagree.
func (m Matrix) Magnitude() int {
	mag := 0
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			v := m[i][j]
			if v == 0 {
				continue
			}
			if mag == 0 {
				mag = v
			} else if v != mag {
				return 0
			}
		}
	}
	return mag
}

// NonZero counts the set cells.
func (m Matrix) NonZero() int {
	count := 0
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if m[i][j] != 0 {
				count++
			}
		}
	}
	return count
}

// Mask returns the 0/1 indicator pattern of m.
func (m Matrix) Mask() Matrix {
	var out Matrix
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if m[i][j] != 0 {
				out[i][j] = 1
			}
		}
	}
	return out
}

// Transpose swaps rows and columns.
func (m Matrix) Transpose() Matrix {
	var out Matrix
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			out[j][i] = m[i][j]
		}
	}
	return out
}

// MirrorH reflects m across its vertical axis.
func (m Matrix) MirrorH() Matrix {
	var out Matrix
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			out[i][Size-1-j] = m[i][j]
		}
	}
	return out
}

func (m Matrix) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i := 0; i < Size; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("[")
		for j := 0; j < Size; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Itoa(m[i][j]))
		}
		sb.WriteString("]")
	}
	sb.WriteString("]")
	return sb.String()
}

func (m Matrix) LaTeX() string {
	var sb strings.Builder
	sb.WriteString("\\begin{pmatrix}")
	for i := 0; i < Size; i++ {
		if i > 0 {
			sb.WriteString(" \\\\ ")
		}
		for j := 0; j < Size; j++ {
			if j > 0 {
				sb.WriteString(" & ")
			}
			sb.WriteString(strconv.Itoa(m[i][j]))
		}
	}
	sb.WriteString("\\end{pmatrix}")
	return sb.String()
}

// Render draws m one row per line, using on for non-zero cells and off for
// zeros. Cells are not separated.
func (m Matrix) Render(on, off string) string {
	var sb strings.Builder
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			if m[i][j] != 0 {
				sb.WriteString(on)
			} else {
				sb.WriteString(off)
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ============================================================
// Operator
// ============================================================

// Operator is one of the six arithmetic operators with a table.
type Operator int

const (
	Add Operator = iota
	Subtract
	Multiply
	Divide
	Modulo
	Power
)

var operatorNames = [...]string{"add", "subtract", "multiply", "divide", "modulo", "power"}
var operatorSymbols = [...]string{"+", "-", "*", "/", "%", "^"}

// Operators lists every operator in declaration order.
func Operators() []Operator {
	return []Operator{Add, Subtract, Multiply, Divide, Modulo, Power}
}

func (op Operator) valid() bool { return op >= Add && op <= Power }

func (op Operator) String() string {
	if !op.valid() {
		return "Operator(" + strconv.Itoa(int(op)) + ")"
	}
	return operatorNames[op]
}

func (op Operator) Symbol() string {
	if !op.valid() {
		return "?"
	}
	return operatorSymbols[op]
}

var operatorAliases = map[string]Operator{
	"+": Add, "add": Add, "sum": Add, "plus": Add,
	"-": Subtract, "subtract": Subtract, "minus": Subtract, "sub": Subtract,
	"*": Multiply, "multiply": Multiply, "mul": Multiply, "times": Multiply,
	"/": Divide, "divide": Divide, "div": Divide,
	"%": Modulo, "modulo": Modulo, "module": Modulo, "mod": Modulo,
	"^": Power, "power": Power, "pow": Power,
}

// ParseOperator accepts a symbol (+ - * / % ^), a canonical name, or one of
// the historical aliases (sum, minus, div, module, pow).
func ParseOperator(s string) (Operator, error) {
	if op, ok := operatorAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return op, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, s)
}

// ============================================================
// Scale
// ============================================================

// Scale is the multiplier applied to every non-zero cell of a table.
type Scale int

const (
	Unit   Scale = 1 // n
	Double Scale = 2 // nn
	Triple Scale = 3 // nnn
)

// ParseScale accepts 1, 2, 3 or the n, nn, nnn spellings.
func ParseScale(s string) (Scale, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "n":
		return Unit, nil
	case "2", "nn":
		return Double, nil
	case "3", "nnn":
		return Triple, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidScale, s)
}

// ============================================================
// Registry
// ============================================================

type tableKey struct {
	op    Operator
	scale Scale
}

// Table identifies one registered matrix.
type Table struct {
	Operator Operator
	Scale    Scale
}

func (t Table) String() string { return fmt.Sprintf("%s@%d", t.Operator, t.Scale) }

var registry = map[tableKey]Matrix{
	{Add, Unit}:      addUnit,
	{Subtract, Unit}: subtractUnit,
	{Multiply, Unit}: multiplyUnit,
	{Divide, Unit}:   divideUnit,
	{Modulo, Unit}:   moduloUnit,
	{Power, Unit}:    powerUnit,

	{Multiply, Double}: multiplyDouble,
	{Add, Triple}:      sumTriple,
}

// Get returns the matrix registered for op at scale.
func Get(op Operator, scale Scale) (Matrix, error) {
	m, ok := registry[tableKey{op, scale}]
	if !ok {
		return Matrix{}, fmt.Errorf("%w: %s at scale %d", ErrUnsupportedCombination, op, scale)
	}
	return m, nil
}

// Lookup parses op and scale from text and calls Get. Parse failures are
// reported as unsupported combinations as well as their specific cause.
func Lookup(op, scale string) (Matrix, error) {
	o, err := ParseOperator(op)
	if err != nil {
		return Matrix{}, errors.Join(ErrUnsupportedCombination, err)
	}
	s, err := ParseScale(scale)
	if err != nil {
		return Matrix{}, errors.Join(ErrUnsupportedCombination, err)
	}
	return Get(o, s)
}

// Tables lists every registered pair ordered by operator, then scale.
func Tables() []Table {
	out := make([]Table, 0, len(registry))
	for k := range registry {
		out = append(out, Table{Operator: k.op, Scale: k.scale})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Operator != out[j].Operator {
			return out[i].Operator < out[j].Operator
		}
		return out[i].Scale < out[j].Scale
	})
	return out
}

// Scales lists the scales defined for op in ascending order.
func Scales(op Operator) []Scale {
	var out []Scale
	for _, t := range Tables() {
		if t.Operator == op {
			out = append(out, t.Scale)
		}
	}
	return out
}

// ============================================================
// Glyphs — K stroke patterns
// ============================================================

// Glyph names a literal K stroke pattern.
type Glyph int

const (
	LeftK Glyph = iota
	RightK
	MidK
)

var glyphNames = [...]string{"leftK", "rightK", "midK"}

// Glyphs lists every glyph in declaration order.
func Glyphs() []Glyph { return []Glyph{LeftK, RightK, MidK} }

func (g Glyph) String() string {
	if g < LeftK || g > MidK {
		return "Glyph(" + strconv.Itoa(int(g)) + ")"
	}
	return glyphNames[g]
}

// ParseGlyph accepts leftK, rightK or midK, ignoring case.
func ParseGlyph(s string) (Glyph, error) {
	t := strings.TrimSpace(s)
	for i, name := range glyphNames {
		if strings.EqualFold(t, name) {
			return Glyph(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGlyph, s)
}

var glyphs = map[Glyph]Matrix{
	LeftK:  leftK,
	RightK: rightK,
	MidK:   midK,
}

// GlyphMatrix returns the literal stroke pattern for g.
func GlyphMatrix(g Glyph) (Matrix, error) {
	m, ok := glyphs[g]
	if !ok {
		return Matrix{}, fmt.Errorf("%w: %s", ErrUnknownGlyph, g)
	}
	return m, nil
}

// pairings holds the glyph each operator's X, Y and Z lines were tagged with.
var pairings = map[Operator][3]Glyph{
	Add:      {LeftK, MidK, RightK},
	Subtract: {MidK, LeftK, RightK},
	Multiply: {RightK, LeftK, MidK},
	Divide:   {MidK, LeftK, RightK},
	Modulo:   {RightK, LeftK, MidK},
	Power:    {RightK, MidK, LeftK},
}

// Pairing returns the glyphs recorded for op's X, Y and Z lines, in that
// order. The association is data only; nothing selects by it.
func Pairing(op Operator) ([3]Glyph, error) {
	p, ok := pairings[op]
	if !ok {
		return [3]Glyph{}, fmt.Errorf("%w: %s", ErrUnknownOperator, op)
	}
	return p, nil
}
