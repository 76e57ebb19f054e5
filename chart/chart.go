// Package chart hands generated masks to charting libraries: go-echarts for
// interactive HTML and gonum/plot for PNG images. CSV is written directly.
package chart

import (
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/plot/vg"

	"github.com/AnkushinDaniil/doubleslit/entity/aperture"
	"github.com/AnkushinDaniil/doubleslit/entity/format"
	"github.com/AnkushinDaniil/doubleslit/entity/mode"
)

var ErrUnsupported = errors.New("chart: unsupported mode and format")

type Options struct {
	Mode      mode.Mode
	Format    format.Format
	Rows      []int // profile rows; empty means the centre row
	MaxPoints int   // heatmap cell budget
	Width     vg.Length
	Height    vg.Length
}

func (o Options) size() (vg.Length, vg.Length) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = 8 * vg.Inch
	}
	if h <= 0 {
		h = 8 * vg.Inch
	}
	return w, h
}

// Render writes m to w in the mode and format chosen by opt.
func Render(w io.Writer, m *aperture.Mask, opt Options) error {
	switch opt.Mode {
	case mode.Aperture:
		switch opt.Format {
		case format.HTML:
			if err := HeatMap(m, opt.MaxPoints).Render(w); err != nil {
				return fmt.Errorf("failed to render heatmap: %w", err)
			}
			return nil
		case format.Png:
			width, height := opt.size()
			return WritePNG(w, m, width, height)
		case format.Csv:
			return WriteCSV(w, m)
		}
	case mode.Profile:
		switch opt.Format {
		case format.HTML:
			line, err := Profile(m, opt.Rows...)
			if err != nil {
				return err
			}
			if err := line.Render(w); err != nil {
				return fmt.Errorf("failed to render profile: %w", err)
			}
			return nil
		case format.Csv:
			return WriteProfileCSV(w, m, opt.Rows...)
		}
	}
	return fmt.Errorf("%w: %v as %v", ErrUnsupported, opt.Mode, opt.Format)
}
