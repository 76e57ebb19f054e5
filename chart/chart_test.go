package chart

import (
	"bytes"
	"encoding/csv"
	"image/png"
	"strconv"
	"testing"

	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/AnkushinDaniil/doubleslit/entity/aperture"
	"github.com/AnkushinDaniil/doubleslit/entity/format"
	"github.com/AnkushinDaniil/doubleslit/entity/mode"
)

func newMask(t *testing.T, n int) *aperture.Mask {
	t.Helper()
	m, err := aperture.Generate(5, 100, 40, n, true)
	require.NoError(t, err)
	return m
}

func TestStride(t *testing.T) {
	tests := []struct {
		name               string
		rows, cols, budget int
		want               int
	}{
		{"fits", 100, 100, 10000, 1},
		{"no budget", 100, 100, 0, 1},
		{"reference grid", 1001, 1001, 40000, 6},
		{"tiny budget", 10, 10, 1, 10},
		{"rectangular", 10, 1000, 100, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Stride(tt.rows, tt.cols, tt.budget)
			assert.Equal(t, tt.want, got)
			if tt.budget > 0 {
				assert.LessOrEqual(t, ceilDiv(tt.rows, got)*ceilDiv(tt.cols, got), tt.budget)
			}
		})
	}
}

func TestHeatMap(t *testing.T) {
	m := newMask(t, 101)

	hm := HeatMap(m, 0)
	require.Len(t, hm.MultiSeries, 1)
	data, ok := hm.MultiSeries[0].Data.([]opts.HeatMapData)
	require.True(t, ok)
	assert.Len(t, data, 101*101)

	open := 0
	for _, d := range data {
		if d.Value.([3]interface{})[2].(float64) == 1 {
			open++
		}
	}
	assert.Equal(t, m.Transmissive(), open)

	small := HeatMap(m, 100)
	data = small.MultiSeries[0].Data.([]opts.HeatMapData)
	assert.LessOrEqual(t, len(data), 100)

	var buf bytes.Buffer
	require.NoError(t, hm.Render(&buf))
	assert.Contains(t, buf.String(), "Double slit aperture")
	assert.Contains(t, buf.String(), "transmission")
}

func TestProfile(t *testing.T) {
	m := newMask(t, 51)

	line, err := Profile(m)
	require.NoError(t, err)
	require.Len(t, line.MultiSeries, 1)
	assert.Equal(t, "y = 0", line.MultiSeries[0].Name)

	line, err = Profile(m, 0, 25)
	require.NoError(t, err)
	assert.Len(t, line.MultiSeries, 2)

	_, err = Profile(m, 51)
	require.ErrorIs(t, err, aperture.ErrOutOfRange)
}

func TestWritePNG(t *testing.T) {
	m := newMask(t, 64)

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, m, 4*vg.Inch, 3*vg.Inch))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Greater(t, img.Bounds().Dx(), img.Bounds().Dy())
}

func TestImage(t *testing.T) {
	m, err := aperture.Generate(5, 20, 40, 11, false)
	require.NoError(t, err)

	img := Image(m)
	rows, cols := m.Dims()
	require.Equal(t, cols, img.Bounds().Dx())
	require.Equal(t, rows, img.Bounds().Dy())
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			want := uint8(0)
			if m.At(i, j) == 1 {
				want = 255
			}
			require.Equal(t, want, img.GrayAt(j, rows-1-i).Y)
		}
	}
}

func TestWriteCSV(t *testing.T) {
	m := newMask(t, 21)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, m))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 22)

	xs, ys := m.X(), m.Y()
	assert.Equal(t, "y\\x", records[0][0])
	for j, x := range xs {
		got, err := strconv.ParseFloat(records[0][j+1], 64)
		require.NoError(t, err)
		assert.Equal(t, x, got)
	}
	for i, y := range ys {
		rec := records[i+1]
		require.Len(t, rec, 22)
		got, err := strconv.ParseFloat(rec[0], 64)
		require.NoError(t, err)
		assert.Equal(t, y, got)
		for j := range xs {
			assert.Equal(t, strconv.FormatFloat(m.At(i, j), 'g', -1, 64), rec[j+1])
		}
	}
}

func TestWriteProfileCSV(t *testing.T) {
	m := newMask(t, 21)

	var buf bytes.Buffer
	require.NoError(t, WriteProfileCSV(&buf, m, 10, 0))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 22)
	assert.Equal(t, []string{"x", "y=0", "y=-100"}, records[0])

	row, err := m.Row(10)
	require.NoError(t, err)
	for j, v := range row {
		assert.Equal(t, strconv.FormatFloat(v, 'g', -1, 64), records[j+1][1])
		assert.Equal(t, "0", records[j+1][2])
	}

	require.ErrorIs(t, WriteProfileCSV(&buf, m, -1), aperture.ErrOutOfRange)
}

func TestRender(t *testing.T) {
	m := newMask(t, 31)

	tests := []struct {
		mode    mode.Mode
		format  format.Format
		wantErr error
	}{
		{mode.Aperture, format.HTML, nil},
		{mode.Aperture, format.Png, nil},
		{mode.Aperture, format.Csv, nil},
		{mode.Profile, format.HTML, nil},
		{mode.Profile, format.Csv, nil},
		{mode.Profile, format.Png, ErrUnsupported},
		{mode.Mode(9), format.HTML, ErrUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String()+"/"+tt.format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			err := Render(&buf, m, Options{Mode: tt.mode, Format: tt.format, Width: 2 * vg.Inch, Height: 2 * vg.Inch})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, buf.Len())
		})
	}
}
