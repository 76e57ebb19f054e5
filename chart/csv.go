package chart

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/AnkushinDaniil/doubleslit/entity/aperture"
)

// WriteCSV writes the mask as a table: the header holds the x coordinates,
// every following record starts with its y coordinate.
func WriteCSV(w io.Writer, m *aperture.Mask) error {
	cw := csv.NewWriter(w)
	xs, ys := m.X(), m.Y()

	record := make([]string, len(xs)+1)
	record[0] = "y\\x"
	for j, x := range xs {
		record[j+1] = formatFloat(x)
	}
	if err := cw.Write(record); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for i, y := range ys {
		record[0] = formatFloat(y)
		for j := range xs {
			record[j+1] = formatFloat(m.At(i, j))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteProfileCSV writes one record per x sample with a column per row.
func WriteProfileCSV(w io.Writer, m *aperture.Mask, rows ...int) error {
	if len(rows) == 0 {
		rows = []int{m.CenterRow()}
	}
	ys := m.Y()
	profiles := make([][]float64, len(rows))
	header := make([]string, len(rows)+1)
	header[0] = "x"
	for k, i := range rows {
		row, err := m.Row(i)
		if err != nil {
			return fmt.Errorf("failed to get profile row: %w", err)
		}
		profiles[k] = row
		header[k+1] = "y=" + formatFloat(ys[i])
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	record := make([]string, len(rows)+1)
	for j, x := range m.X() {
		record[0] = formatFloat(x)
		for k := range profiles {
			record[k+1] = formatFloat(profiles[k][j])
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row %d: %w", j, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
