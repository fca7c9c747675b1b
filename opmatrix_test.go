package opmatrix_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	opmatrix "github.com/njchilds90/opmatrix"
)

// ============================================================
// Literal tables
// ============================================================

func TestGet_UnitTables(t *testing.T) {
	tests := []struct {
		op   opmatrix.Operator
		want opmatrix.Matrix
	}{
		{opmatrix.Add, opmatrix.Matrix{
			{0, 0, 1, 0, 0},
			{0, 0, 1, 0, 0},
			{1, 1, 1, 1, 1},
			{0, 0, 1, 0, 0},
			{0, 0, 1, 0, 0},
		}},
		{opmatrix.Subtract, opmatrix.Matrix{
			{0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0},
			{1, 1, 1, 1, 1},
			{0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0},
		}},
		{opmatrix.Multiply, opmatrix.Matrix{
			{1, 0, 1, 0, 1},
			{0, 1, 1, 1, 0},
			{0, 0, 1, 0, 0},
			{0, 1, 1, 1, 0},
			{1, 0, 1, 0, 1},
		}},
		{opmatrix.Divide, opmatrix.Matrix{
			{0, 0, 0, 0, 1},
			{0, 0, 0, 1, 0},
			{0, 0, 1, 0, 0},
			{0, 1, 0, 0, 0},
			{1, 0, 0, 0, 0},
		}},
		{opmatrix.Modulo, opmatrix.Matrix{
			{1, 0, 0, 0, 1},
			{0, 0, 0, 1, 0},
			{0, 0, 1, 0, 0},
			{0, 1, 0, 0, 0},
			{1, 0, 0, 0, 1},
		}},
		{opmatrix.Power, opmatrix.Matrix{
			{0, 0, 1, 0, 0},
			{0, 1, 0, 1, 0},
			{1, 0, 0, 0, 1},
			{0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			got, err := opmatrix.Get(tt.op, opmatrix.Unit)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Get(%s, 1) mismatch (-want +got):\n%s", tt.op, diff)
			}
			assert.Equal(t, 1, got.Magnitude())
		})
	}
}

func TestGet_MultiplyDouble(t *testing.T) {
	got, err := opmatrix.Get(opmatrix.Multiply, opmatrix.Double)
	require.NoError(t, err)
	want := opmatrix.Matrix{
		{2, 2, 2, 2, 2},
		{0, 2, 0, 2, 0},
		{0, 2, 0, 2, 0},
		{0, 2, 0, 2, 0},
		{0, 2, 0, 2, 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, got.Magnitude())
}

func TestGet_AddTriple(t *testing.T) {
	got, err := opmatrix.Get(opmatrix.Add, opmatrix.Triple)
	require.NoError(t, err)
	want := opmatrix.Matrix{
		{3, 3, 3, 3, 3},
		{0, 3, 0, 0, 0},
		{0, 0, 3, 0, 0},
		{0, 3, 0, 0, 0},
		{3, 3, 3, 3, 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, got.Magnitude())
}

func TestGet_MagnitudeMatchesScale(t *testing.T) {
	for _, tbl := range opmatrix.Tables() {
		m, err := opmatrix.Get(tbl.Operator, tbl.Scale)
		require.NoError(t, err, tbl.String())
		assert.Equal(t, int(tbl.Scale), m.Magnitude(), tbl.String())
		assert.Positive(t, m.NonZero(), tbl.String())
	}
}

// ============================================================
// Unsupported combinations
// ============================================================

func TestGet_Unsupported(t *testing.T) {
	tests := []struct {
		name  string
		op    opmatrix.Operator
		scale opmatrix.Scale
	}{
		{"divide at 2", opmatrix.Divide, opmatrix.Double},
		{"add at 2", opmatrix.Add, opmatrix.Double},
		{"multiply at 3", opmatrix.Multiply, opmatrix.Triple},
		{"power at 3", opmatrix.Power, opmatrix.Triple},
		{"scale 0", opmatrix.Add, 0},
		{"scale 4", opmatrix.Add, 4},
		{"unknown operator", opmatrix.Operator(42), opmatrix.Unit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := opmatrix.Get(tt.op, tt.scale)
			require.Error(t, err)
			assert.True(t, errors.Is(err, opmatrix.ErrUnsupportedCombination))
			assert.Equal(t, opmatrix.Matrix{}, m)
		})
	}
}

func TestLookup(t *testing.T) {
	m, err := opmatrix.Lookup("*", "nn")
	require.NoError(t, err)
	assert.Equal(t, 2, m.Magnitude())

	m, err = opmatrix.Lookup("sum", "nnn")
	require.NoError(t, err)
	assert.Equal(t, 3, m.Magnitude())

	_, err = opmatrix.Lookup("/", "2")
	assert.ErrorIs(t, err, opmatrix.ErrUnsupportedCombination)

	_, err = opmatrix.Lookup("sqrt", "1")
	assert.ErrorIs(t, err, opmatrix.ErrUnsupportedCombination)
	assert.ErrorIs(t, err, opmatrix.ErrUnknownOperator)

	_, err = opmatrix.Lookup("+", "7")
	assert.ErrorIs(t, err, opmatrix.ErrUnsupportedCombination)
	assert.ErrorIs(t, err, opmatrix.ErrInvalidScale)
}

// ============================================================
// Immutability and concurrency
// ============================================================

func TestGet_ReturnsCopies(t *testing.T) {
	first, err := opmatrix.Get(opmatrix.Power, opmatrix.Unit)
	require.NoError(t, err)
	first[0][0] = 99

	second, err := opmatrix.Get(opmatrix.Power, opmatrix.Unit)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Cell(0, 0))

	third, err := opmatrix.Get(opmatrix.Power, opmatrix.Unit)
	require.NoError(t, err)
	assert.True(t, second.Equal(third))
}

func TestGet_ConcurrentReaders(t *testing.T) {
	want, err := opmatrix.Get(opmatrix.Modulo, opmatrix.Unit)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := opmatrix.Get(opmatrix.Modulo, opmatrix.Unit)
			if err != nil || got != want {
				errs <- "concurrent read diverged"
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}

// ============================================================
// Cell access
// ============================================================

func TestCell_Power(t *testing.T) {
	m, err := opmatrix.Get(opmatrix.Power, opmatrix.Unit)
	require.NoError(t, err)
	if m.Cell(1, 1) != 1 {
		t.Errorf("want 1 at (1,1), got %d", m.Cell(1, 1))
	}
	if m.Cell(0, 0) != 0 {
		t.Errorf("want 0 at (0,0), got %d", m.Cell(0, 0))
	}
}

func TestCell_OutOfRangePanics(t *testing.T) {
	m, _ := opmatrix.Get(opmatrix.Add, opmatrix.Unit)
	assert.Panics(t, func() { m.Cell(5, 0) })
	assert.Panics(t, func() { m.Cell(0, -1) })
}

// ============================================================
// Glyphs
// ============================================================

func TestGlyph_RightKIsShiftedLeftK(t *testing.T) {
	left, err := opmatrix.GlyphMatrix(opmatrix.LeftK)
	require.NoError(t, err)
	right, err := opmatrix.GlyphMatrix(opmatrix.RightK)
	require.NoError(t, err)

	for i := 0; i < opmatrix.Size; i++ {
		assert.Equal(t, 0, right.Cell(i, 0), "row %d", i)
		for j := 1; j < opmatrix.Size; j++ {
			assert.Equal(t, left.Cell(i, j-1), right.Cell(i, j), "cell (%d,%d)", i, j)
		}
	}
}

func TestGlyph_MidK(t *testing.T) {
	m, err := opmatrix.GlyphMatrix(opmatrix.MidK)
	require.NoError(t, err)
	want := opmatrix.Matrix{
		{1, 0, 0, 0, 1},
		{1, 0, 0, 1, 0},
		{1, 1, 1, 0, 0},
		{1, 0, 0, 1, 0},
		{1, 0, 0, 0, 1},
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("midK mismatch (-want +got):\n%s", diff)
	}
}

func TestGlyph_Unknown(t *testing.T) {
	_, err := opmatrix.GlyphMatrix(opmatrix.Glyph(9))
	assert.ErrorIs(t, err, opmatrix.ErrUnknownGlyph)
	_, err = opmatrix.ParseGlyph("topK")
	assert.ErrorIs(t, err, opmatrix.ErrUnknownGlyph)
}

func TestParseGlyph_CaseInsensitive(t *testing.T) {
	g, err := opmatrix.ParseGlyph("LEFTK")
	require.NoError(t, err)
	assert.Equal(t, opmatrix.LeftK, g)
	assert.Equal(t, "leftK", g.String())
}

func TestPairing(t *testing.T) {
	tests := []struct {
		op      opmatrix.Operator
		x, y, z opmatrix.Glyph
	}{
		{opmatrix.Add, opmatrix.LeftK, opmatrix.MidK, opmatrix.RightK},
		{opmatrix.Subtract, opmatrix.MidK, opmatrix.LeftK, opmatrix.RightK},
		{opmatrix.Multiply, opmatrix.RightK, opmatrix.LeftK, opmatrix.MidK},
		{opmatrix.Divide, opmatrix.MidK, opmatrix.LeftK, opmatrix.RightK},
		{opmatrix.Modulo, opmatrix.RightK, opmatrix.LeftK, opmatrix.MidK},
		{opmatrix.Power, opmatrix.RightK, opmatrix.MidK, opmatrix.LeftK},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			got, err := opmatrix.Pairing(tt.op)
			require.NoError(t, err)
			assert.Equal(t, [3]opmatrix.Glyph{tt.x, tt.y, tt.z}, got)
		})
	}
	assert.Len(t, tests, len(opmatrix.Operators()))
}

func TestPairing_UnknownOperator(t *testing.T) {
	_, err := opmatrix.Pairing(opmatrix.Operator(42))
	assert.ErrorIs(t, err, opmatrix.ErrUnknownOperator)
}

// ============================================================
// Parsing
// ============================================================

func TestParseOperator(t *testing.T) {
	tests := map[string]opmatrix.Operator{
		"+": opmatrix.Add, "sum": opmatrix.Add,
		"-": opmatrix.Subtract, "minus": opmatrix.Subtract,
		"*": opmatrix.Multiply, " Multiply ": opmatrix.Multiply,
		"/": opmatrix.Divide, "div": opmatrix.Divide,
		"%": opmatrix.Modulo, "module": opmatrix.Modulo,
		"^": opmatrix.Power, "pow": opmatrix.Power,
	}
	for in, want := range tests {
		got, err := opmatrix.ParseOperator(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := opmatrix.ParseOperator("&")
	assert.ErrorIs(t, err, opmatrix.ErrUnknownOperator)
}

func TestParseScale(t *testing.T) {
	for in, want := range map[string]opmatrix.Scale{"1": 1, "n": 1, "2": 2, "NN": 2, "3": 3, "nnn": 3} {
		got, err := opmatrix.ParseScale(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := opmatrix.ParseScale("4")
	assert.ErrorIs(t, err, opmatrix.ErrInvalidScale)
}

func TestOperator_SymbolAndString(t *testing.T) {
	var syms []string
	for _, op := range opmatrix.Operators() {
		syms = append(syms, op.Symbol())
	}
	assert.Equal(t, "+ - * / % ^", strings.Join(syms, " "))
	assert.Equal(t, "modulo", opmatrix.Modulo.String())
	assert.Equal(t, "Operator(42)", opmatrix.Operator(42).String())
	assert.Equal(t, "?", opmatrix.Operator(-1).Symbol())
}

// ============================================================
// Registry listing
// ============================================================

func TestTables_Ordered(t *testing.T) {
	var got []string
	for _, tbl := range opmatrix.Tables() {
		got = append(got, tbl.String())
	}
	want := []string{
		"add@1", "add@3",
		"subtract@1",
		"multiply@1", "multiply@2",
		"divide@1", "modulo@1", "power@1",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tables() mismatch (-want +got):\n%s", diff)
	}
}

func TestScales(t *testing.T) {
	assert.Equal(t, []opmatrix.Scale{1, 2}, opmatrix.Scales(opmatrix.Multiply))
	assert.Equal(t, []opmatrix.Scale{1, 3}, opmatrix.Scales(opmatrix.Add))
	assert.Equal(t, []opmatrix.Scale{1}, opmatrix.Scales(opmatrix.Divide))
	assert.Empty(t, opmatrix.Scales(opmatrix.Operator(42)))
}

// ============================================================
// Matrix helpers
// ============================================================

func TestMatrix_MaskAndMagnitude(t *testing.T) {
	m, _ := opmatrix.Get(opmatrix.Multiply, opmatrix.Double)
	mask := m.Mask()
	assert.Equal(t, 1, mask.Magnitude())
	assert.Equal(t, m.NonZero(), mask.NonZero())

	assert.Equal(t, 0, opmatrix.Matrix{}.Magnitude())
	mixed := opmatrix.Matrix{{1, 2}}
	assert.Equal(t, 0, mixed.Magnitude())
}

func TestMatrix_TransposeSubtract(t *testing.T) {
	sub, _ := opmatrix.Get(opmatrix.Subtract, opmatrix.Unit)
	tr := sub.Transpose()
	for i := 0; i < opmatrix.Size; i++ {
		assert.Equal(t, 1, tr.Cell(i, 2))
	}
	assert.Equal(t, sub, tr.Transpose())
}

func TestMatrix_MirrorDivideIsDiagonal(t *testing.T) {
	div, _ := opmatrix.Get(opmatrix.Divide, opmatrix.Unit)
	mirrored := div.MirrorH()
	for i := 0; i < opmatrix.Size; i++ {
		assert.Equal(t, 1, mirrored.Cell(i, i))
	}
	assert.Equal(t, opmatrix.Size, mirrored.NonZero())
}

func TestMatrix_String(t *testing.T) {
	m, _ := opmatrix.Get(opmatrix.Subtract, opmatrix.Unit)
	want := "[[0, 0, 0, 0, 0], [0, 0, 0, 0, 0], [1, 1, 1, 1, 1], [0, 0, 0, 0, 0], [0, 0, 0, 0, 0]]"
	if m.String() != want {
		t.Errorf("want %s, got %s", want, m.String())
	}
}

func TestMatrix_LaTeX(t *testing.T) {
	m, _ := opmatrix.Get(opmatrix.Divide, opmatrix.Unit)
	latex := m.LaTeX()
	assert.True(t, strings.HasPrefix(latex, `\begin{pmatrix}0 & 0 & 0 & 0 & 1 \\ `))
	assert.True(t, strings.HasSuffix(latex, `1 & 0 & 0 & 0 & 0\end{pmatrix}`))
}

func TestMatrix_Render(t *testing.T) {
	m, _ := opmatrix.Get(opmatrix.Add, opmatrix.Unit)
	want := "..#..\n..#..\n#####\n..#..\n..#..\n"
	assert.Equal(t, want, m.Render("#", "."))
}
