package aperture

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/AnkushinDaniil/doubleslit/entity/mode"
)

const minResolution = 2

// Parameters describe the slit geometry and the sampling grid.
type Parameters struct {
	Width      float64 // slit width, w
	Height     float64 // slit height, h
	Separation float64 // distance between slit centres, d
	Resolution int     // samples per axis, n
	Square     bool    // give both axes the same extent
	Extent     mode.ExtentPolicy
}

// Validate reports the first problem with p, wrapped in ErrInvalidGeometry.
func (p Parameters) Validate() error {
	for _, l := range []struct {
		name  string
		value float64
	}{
		{"slit width", p.Width},
		{"slit height", p.Height},
		{"slit separation", p.Separation},
	} {
		if math.IsNaN(l.value) || math.IsInf(l.value, 0) {
			return invalid("%s must be finite, got %v", l.name, l.value)
		}
		if l.value <= 0 {
			return invalid("%s must be positive, got %v", l.name, l.value)
		}
	}
	if p.Width > p.Separation {
		return invalid("slit width %v exceeds slit separation %v", p.Width, p.Separation)
	}
	if p.Resolution < minResolution {
		return invalid("resolution must be at least %d, got %d", minResolution, p.Resolution)
	}
	if p.Extent != mode.Truncated && p.Extent != mode.Exact {
		return invalid("unknown extent policy %v", p.Extent)
	}
	_, _, err := p.extents()
	return err
}

func (p Parameters) extents() (x, y float64, err error) {
	x, y = p.Width+p.Separation, p.Height
	if p.Extent == mode.Truncated {
		x, y = math.Trunc(x), math.Trunc(y)
	}
	if p.Square {
		x = math.Max(x, y)
		y = x
	}
	if x <= 0 || y <= 0 {
		return 0, 0, invalid("axis extent truncates to zero (x=%v, y=%v)", x, y)
	}
	return x, y, nil
}

// Generate builds the mask for slits of width w, height h and separation d on
// an n×n grid, using truncated extents.
func Generate(w, h, d float64, n int, square bool) (*Mask, error) {
	return New(Parameters{
		Width:      w,
		Height:     h,
		Separation: d,
		Resolution: n,
		Square:     square,
	})
}

// New builds the mask described by p.
func New(p Parameters) (*Mask, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	xe, ye, err := p.extents()
	if err != nil {
		return nil, err
	}

	n := p.Resolution
	xs := axis(xe, n)
	ys := axis(ye, n)

	inner := (p.Separation - p.Width) / 2
	outer := (p.Separation + p.Width) / 2
	half := p.Height / 2

	open := make([]bool, n)
	for j, x := range xs {
		ax := math.Abs(x)
		open[j] = ax > inner && ax < outer
	}

	grid := mat.NewDense(n, n, nil)
	for i, y := range ys {
		if math.Abs(y) >= half {
			continue
		}
		for j := range xs {
			if open[j] {
				grid.Set(i, j, 1)
			}
		}
	}

	return &Mask{grid: grid, x: xs, y: ys, params: p}, nil
}

// axis returns n evenly spaced samples over [-e, e]. The upper half mirrors
// the lower half exactly, so a[i] == -a[n-1-i].
func axis(e float64, n int) []float64 {
	a := floats.Span(make([]float64, n), -e, e)
	for i := 0; i < n/2; i++ {
		a[n-1-i] = -a[i]
	}
	if n%2 == 1 {
		a[n/2] = 0
	}
	return a
}
