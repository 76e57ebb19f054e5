package chart

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/AnkushinDaniil/doubleslit/entity/aperture"
)

// Image converts the mask to a grayscale image, black where light is blocked.
// Image row 0 is the top of the mask, i.e. the largest y.
func Image(m *aperture.Mask) *image.Gray {
	rows, cols := m.Dims()
	img := image.NewGray(image.Rect(0, 0, cols, rows))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			img.SetGray(j, rows-1-i, color.Gray{Y: uint8(255 * m.At(i, j))})
		}
	}
	return img
}

// WritePNG draws the mask with gonum/plot. The image spans the pixel-edge
// bounds so every sample lands on a pixel centre.
func WritePNG(w io.Writer, m *aperture.Mask, width, height vg.Length) error {
	b := m.Bounds()
	p := m.Parameters()

	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("Double slit aperture (w=%g, h=%g, d=%g)", p.Width, p.Height, p.Separation)
	pl.X.Label.Text = "x"
	pl.Y.Label.Text = "y"
	pl.Add(plotter.NewImage(Image(m), b.XMin, b.YMin, b.XMax, b.YMax))
	pl.X.Min, pl.X.Max = b.XMin, b.XMax
	pl.Y.Min, pl.Y.Max = b.YMin, b.YMax

	wt, err := pl.WriterTo(width, height, "png")
	if err != nil {
		return fmt.Errorf("failed to create png writer: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write png: %w", err)
	}
	return nil
}
