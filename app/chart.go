package app

import (
	"fmt"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	log "github.com/sirupsen/logrus"
)

func (a *App) renderHTML(d *dataset) error {
	path := a.Output + ".html"

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	renderTime := time.Now()
	page := components.NewPage()
	page.AddCharts(
		a.rayChart(d),
		a.diffractionChart(d),
		a.slitChart(d),
		a.temperatureChart(d),
		a.interferenceChart(d),
	)
	if err := page.Render(f); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	log.WithFields(log.Fields{
		"path": path,
		"time": time.Since(renderTime),
	}).Info("Analysis page rendered")
	return nil
}

func newChart(title, xName, yName string) *charts.Line {
	line := charts.NewLine()

	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "100%",
			Height:          "600px",
			PageTitle:       "Optical system analysis",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "slider",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithLegendOpts(opts.Legend{
			Orient:       "horizontal",
			Show:         opts.Bool(true),
			SelectedMode: "multiple",
			Type:         "scroll",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
			AxisPointer: &opts.AxisPointer{
				Type: "cross",
				Snap: opts.Bool(true),
			},
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Top:  "0%",
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  opts.Bool(true),
					Type:  "png",
					Name:  "chart",
					Title: "Save as image",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show:       opts.Bool(true),
					YAxisIndex: "default",
					Title: map[string]string{
						"zoom": "area zooming",
						"back": "restore area zooming",
					},
				},
				DataView: &opts.ToolBoxFeatureDataView{
					Show:  opts.Bool(true),
					Title: "Data view",
					Lang:  []string{"data view", "turn off", "refresh"},
				},
				Restore: &opts.ToolBoxFeatureRestore{
					Show:  opts.Bool(true),
					Title: "refresh",
				},
			},
		}),
		// AXIS
		charts.WithXAxisOpts(opts.XAxis{
			Name: xName,
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  yName,
			Type:  "value",
			Show:  opts.Bool(true),
			Scale: opts.Bool(true),
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
	)

	return line
}

func lineData(values []float64) []opts.LineData {
	data := make([]opts.LineData, len(values))
	for i, v := range values {
		data[i] = opts.LineData{Value: v}
	}
	return data
}

func (a *App) rayChart(d *dataset) *charts.Line {
	line := newChart("Ray tracing", "z, m", "y, m")

	x := make([]float64, len(d.rays[0]))
	for i, pt := range d.rays[0] {
		x[i] = pt.Z
	}
	line.SetXAxis(x)

	for i, ray := range d.rays {
		heights := make([]float64, len(ray))
		for j, pt := range ray {
			heights[j] = pt.Y
		}
		line.AddSeries(fmt.Sprintf("y0 = %.2f m", d.launchHeights[i]), lineData(heights))
	}
	return line
}

func (a *App) diffractionChart(d *dataset) *charts.Line {
	line := newChart("Diffraction pattern", "r, mm", "Intensity, a.u.")
	line.SetXAxis(scaled(d.diffractionR, 1000))
	line.AddSeries("Circular aperture", lineData(d.diffractionI))
	return line
}

func (a *App) slitChart(d *dataset) *charts.Line {
	line := newChart("Slit diffraction", "x, mm", "Intensity, a.u.")
	line.SetXAxis(scaled(d.slitX, 1000))
	line.AddSeries("Slit aperture", lineData(d.slitI))
	return line
}

func (a *App) temperatureChart(d *dataset) *charts.Line {
	line := newChart("Temperature effects", "Temperature, °C", "Effective focal length, m")
	line.SetXAxis(d.temps)
	line.AddSeries("Effective focal length", lineData(d.focals))
	return line
}

func (a *App) interferenceChart(d *dataset) *charts.Line {
	line := newChart("Double-slit interference", "Angle, deg", "Intensity, a.u.")
	line.SetXAxis(degrees(d.angles))
	line.AddSeries("Two-slit pattern", lineData(d.interference))
	return line
}
