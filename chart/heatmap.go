package chart

import (
	"fmt"
	"math"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/AnkushinDaniil/doubleslit/entity/aperture"
)

// DefaultMaxPoints caps the cells emitted into an HTML heatmap.
const DefaultMaxPoints = 40000

// HeatMap renders the mask as a grayscale echarts heatmap. Rows and columns
// are decimated by a common stride so that at most maxPoints cells are
// emitted; maxPoints <= 0 selects DefaultMaxPoints.
func HeatMap(m *aperture.Mask, maxPoints int) *charts.HeatMap {
	if maxPoints <= 0 {
		maxPoints = DefaultMaxPoints
	}
	rows, cols := m.Dims()
	stride := Stride(rows, cols, maxPoints)

	xs, ys := m.X(), m.Y()
	xLabels := make([]string, 0, cols/stride+1)
	for j := 0; j < cols; j += stride {
		xLabels = append(xLabels, label(xs[j]))
	}
	yLabels := make([]string, 0, rows/stride+1)
	for i := 0; i < rows; i += stride {
		yLabels = append(yLabels, label(ys[i]))
	}

	data := make([]opts.HeatMapData, 0, len(xLabels)*len(yLabels))
	for i, yi := 0, 0; i < rows; i, yi = i+stride, yi+1 {
		for j, xj := 0, 0; j < cols; j, xj = j+stride, xj+1 {
			data = append(data, opts.HeatMapData{Value: [3]interface{}{xj, yi, m.At(i, j)}})
		}
	}

	p := m.Parameters()
	b := m.Bounds()
	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "900px",
			Height:          "900px",
			PageTitle:       "Double slit aperture",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Double slit aperture",
			Subtitle: fmt.Sprintf("w=%g h=%g d=%g n=%d stride=%d extent=[%.4g, %.4g]x[%.4g, %.4g]",
				p.Width, p.Height, p.Separation, p.Resolution, stride, b.XMin, b.XMax, b.YMin, b.YMax),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "category",
			Name:      "x",
			Data:      xLabels,
			SplitArea: &opts.SplitArea{Show: opts.Bool(false)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:      "category",
			Name:      "y",
			Data:      yLabels,
			SplitArea: &opts.SplitArea{Show: opts.Bool(false)},
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:    opts.Bool(true),
			Min:     0,
			Max:     1,
			InRange: &opts.VisualMapInRange{Color: []string{"#000000", "#ffffff"}},
		}),
	)
	hm.SetXAxis(xLabels).AddSeries("transmission", data)
	return hm
}

// Stride returns the smallest step s such that sampling every s-th row and
// column of a rows×cols grid keeps at most maxPoints cells.
func Stride(rows, cols, maxPoints int) int {
	if rows*cols <= maxPoints || maxPoints <= 0 {
		return 1
	}
	s := int(math.Sqrt(float64(rows*cols) / float64(maxPoints)))
	if s < 1 {
		s = 1
	}
	for ceilDiv(rows, s)*ceilDiv(cols, s) > maxPoints {
		s++
	}
	return s
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func label(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
