package aperture

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// Mask is a generated transmission mask. Rows follow the y axis and columns
// follow the x axis.
type Mask struct {
	grid   *mat.Dense
	x, y   []float64
	params Parameters
}

// Bounds is the rectangle covered by the mask pixels. It is the sample range
// widened by half a step on every side, so each sample sits at a pixel centre.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

func (m *Mask) Dims() (rows, cols int) {
	return m.grid.Dims()
}

// At returns the transmission at row i (y) and column j (x).
func (m *Mask) At(i, j int) float64 {
	return m.grid.At(i, j)
}

func (m *Mask) X() []float64 {
	return slices.Clone(m.x)
}

func (m *Mask) Y() []float64 {
	return slices.Clone(m.y)
}

func (m *Mask) Parameters() Parameters {
	return m.params
}

// Grid returns a copy of the mask as a dense matrix.
func (m *Mask) Grid() *mat.Dense {
	return mat.DenseCopyOf(m.grid)
}

// Rows returns the mask as a row-major slice of rows.
func (m *Mask) Rows() [][]float64 {
	r, _ := m.grid.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = mat.Row(nil, i, m.grid)
	}
	return rows
}

// Row returns the horizontal cross-section at row i.
func (m *Mask) Row(i int) ([]float64, error) {
	r, _ := m.grid.Dims()
	if i < 0 || i >= r {
		return nil, fmt.Errorf("%w: row %d of %d", ErrOutOfRange, i, r)
	}
	return mat.Row(nil, i, m.grid), nil
}

// CenterRow is the row index closest to y = 0.
func (m *Mask) CenterRow() int {
	return len(m.y) / 2
}

// Step returns the sample spacing along x and y.
func (m *Mask) Step() (dx, dy float64) {
	return spacing(m.x), spacing(m.y)
}

func (m *Mask) Bounds() Bounds {
	dx, dy := m.Step()
	return Bounds{
		XMin: m.x[0] - dx/2,
		XMax: m.x[len(m.x)-1] + dx/2,
		YMin: m.y[0] - dy/2,
		YMax: m.y[len(m.y)-1] + dy/2,
	}
}

// Transmissive counts the cells that let light through.
func (m *Mask) Transmissive() int {
	return int(mat.Sum(m.grid))
}

func spacing(a []float64) float64 {
	return (a[len(a)-1] - a[0]) / float64(len(a)-1)
}
