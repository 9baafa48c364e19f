package visualization

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ProfilePlot writes the bottom-half column histogram as a line chart.
// The x axis is the column index, the y axis the summed intensity; the
// two peaks are the proposed lane base positions.
func ProfilePlot(profile []float64, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating plot directory: %w", err)
	}

	pts := make(plotter.XYs, len(profile))
	for i, v := range profile {
		pts[i].X = float64(i)
		pts[i].Y = v
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("error building profile line: %w", err)
	}

	p := plot.New()
	p.Title.Text = "Column histogram (bottom half)"
	p.X.Label.Text = "column"
	p.Y.Label.Text = "summed intensity"
	p.Add(line)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("error saving profile plot: %w", err)
	}
	return nil
}
