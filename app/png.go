package app

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// renderPNG draws the ray fan, circular-aperture diffraction, temperature
// sweep and interference curves on a single 2x2 figure.
func (a *App) renderPNG(d *dataset) error {
	path := a.Output + ".png"
	renderTime := time.Now()

	rayPlot, err := rayPanel(d)
	if err != nil {
		return fmt.Errorf("failed to build ray panel: %w", err)
	}
	diffractionPlot, err := curvePanel(
		"Diffraction pattern", "r, mm", "Intensity, a.u.",
		xyPairs(scaled(d.diffractionR, 1000), d.diffractionI),
	)
	if err != nil {
		return fmt.Errorf("failed to build diffraction panel: %w", err)
	}
	temperaturePlot, err := curvePanel(
		"Temperature effects", "Temperature, °C", "Effective focal length, m",
		xyPairs(d.temps, d.focals),
	)
	if err != nil {
		return fmt.Errorf("failed to build temperature panel: %w", err)
	}
	interferencePlot, err := curvePanel(
		"Double-slit interference", "Angle, deg", "Intensity, a.u.",
		xyPairs(degrees(d.angles), d.interference),
	)
	if err != nil {
		return fmt.Errorf("failed to build interference panel: %w", err)
	}

	plots := [][]*plot.Plot{
		{rayPlot, diffractionPlot},
		{temperaturePlot, interferencePlot},
	}

	img := vgimg.New(15*vg.Inch, 10*vg.Inch)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      2,
		Cols:      2,
		PadX:      vg.Millimeter * 5,
		PadY:      vg.Millimeter * 5,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	canvases := plot.Align(plots, tiles, dc)
	for row := range plots {
		for col := range plots[row] {
			plots[row][col].Draw(canvases[row][col])
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		return fmt.Errorf("failed to write figure: %w", err)
	}
	log.WithFields(log.Fields{
		"path": path,
		"time": time.Since(renderTime),
	}).Info("Analysis figure rendered")
	return nil
}

func rayPanel(d *dataset) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Ray tracing"
	p.X.Label.Text = "z, m"
	p.Y.Label.Text = "y, m"
	p.Add(plotter.NewGrid())

	series := make([]interface{}, 0, 2*len(d.rays))
	for i, ray := range d.rays {
		xys := make(plotter.XYs, len(ray))
		for j, pt := range ray {
			xys[j].X = pt.Z
			xys[j].Y = pt.Y
		}
		series = append(series, fmt.Sprintf("y0 = %.2f m", d.launchHeights[i]), xys)
	}
	if err := plotutil.AddLines(p, series...); err != nil {
		return nil, fmt.Errorf("failed to add ray series: %w", err)
	}
	return p, nil
}

func curvePanel(title, xName, yName string, xys plotter.XYs) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xName
	p.Y.Label.Text = yName
	p.Add(plotter.NewGrid())

	if err := plotutil.AddLines(p, xys); err != nil {
		return nil, fmt.Errorf("failed to add series: %w", err)
	}
	return p, nil
}

func xyPairs(xs, ys []float64) plotter.XYs {
	xys := make(plotter.XYs, len(xs))
	for i := range xs {
		xys[i].X = xs[i]
		xys[i].Y = ys[i]
	}
	return xys
}
