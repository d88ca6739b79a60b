package utils

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// LossCurve renders the per-epoch losses as a line chart and saves it to
// filename; the image format follows the extension (e.g. "loss.png").
func LossCurve(losses []float64, filename string) error {
	if len(losses) == 0 {
		return fmt.Errorf("loss curve: no losses to plot")
	}

	pts := make(plotter.XYs, len(losses))
	for i, l := range losses {
		pts[i].X = float64(i)
		pts[i].Y = l
	}

	p := plot.New()
	p.Title.Text = "training loss"
	p.X.Label.Text = "epoch"
	p.Y.Label.Text = "loss"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("loss curve: %w", err)
	}
	p.Add(plotter.NewGrid(), line)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("loss curve: %w", err)
	}
	return nil
}
