package app

import (
	"fmt"
	"image/color"
	"math"
	"time"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"optica/entity"
	"optica/entity/lenstype"
)

const lensHalfHeight = 3.0

// RenderRayDiagram saves a thin-lens ray diagram for an object of the given
// height placed objectDistance in front of the lens. Distances and heights
// are in centimeters. Principal rays are drawn for converging lenses only.
func RenderRayDiagram(lens *entity.Lens, objectDistance, height float64, path string) error {
	renderTime := time.Now()

	imageDistance, err := lens.ImageDistance(objectDistance)
	if err != nil {
		return fmt.Errorf("failed to place image: %w", err)
	}
	magnification, err := lens.Magnification(objectDistance)
	if err != nil {
		return fmt.Errorf("failed to compute magnification: %w", err)
	}
	f := lens.FocalLength()

	p := plot.New()
	p.Title.Text = fmt.Sprintf(
		"%s lens ray diagram\nf = %.1f cm, do = %.1f cm",
		capitalize(lens.Type().String()), f, objectDistance,
	)
	p.X.Label.Text = "Distance, cm"
	p.Y.Label.Text = "Height, cm"
	p.Add(plotter.NewGrid())

	var addErr error
	add := func(c color.Color, width vg.Length, dashes []vg.Length, pts ...plotter.XY) {
		if addErr != nil {
			return
		}
		l, err := plotter.NewLine(plotter.XYs(pts))
		if err != nil {
			addErr = err
			return
		}
		l.Color = c
		l.Width = width
		l.Dashes = dashes
		p.Add(l)
	}
	arrow := func(c color.Color, dashes []vg.Length, x, tipY float64) {
		s := 1.0
		if tipY < 0 {
			s = -1.0
		}
		add(c, vg.Points(1), dashes,
			plotter.XY{X: x, Y: 0},
			plotter.XY{X: x, Y: tipY},
			plotter.XY{X: x - 0.1, Y: tipY - 0.2*s},
			plotter.XY{X: x, Y: tipY},
			plotter.XY{X: x + 0.1, Y: tipY - 0.2*s},
		)
	}

	maxDist := 1.2 * math.Max(math.Abs(objectDistance),
		math.Max(math.Abs(imageDistance), math.Abs(f)))

	gray := color.Gray{Y: 180}
	dashed := []vg.Length{vg.Points(4), vg.Points(2)}
	dotted := []vg.Length{vg.Points(1), vg.Points(3)}

	// optical axis
	add(gray, vg.Points(1), nil,
		plotter.XY{X: -maxDist, Y: 0}, plotter.XY{X: maxDist, Y: 0})

	lensColor := color.RGBA{B: 255, A: 255}
	if lens.Type() != lenstype.Converging {
		lensColor = color.RGBA{R: 255, A: 255}
	}
	add(lensColor, vg.Points(2), nil,
		plotter.XY{X: 0, Y: -lensHalfHeight}, plotter.XY{X: 0, Y: lensHalfHeight})
	add(lensColor, vg.Points(1), nil,
		plotter.XY{X: -0.5, Y: lensHalfHeight}, plotter.XY{X: 0.5, Y: lensHalfHeight})
	add(lensColor, vg.Points(1), nil,
		plotter.XY{X: -0.5, Y: -lensHalfHeight}, plotter.XY{X: 0.5, Y: -lensHalfHeight})

	// focal points
	add(color.Black, vg.Points(1), nil,
		plotter.XY{X: f, Y: -0.2}, plotter.XY{X: f, Y: 0.2})
	add(color.Black, vg.Points(1), nil,
		plotter.XY{X: -f, Y: -0.2}, plotter.XY{X: -f, Y: 0.2})
	focalLabels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: f, Y: -0.5}, {X: -f, Y: -0.5}},
		Labels: []string{"F", "F"},
	})
	if err != nil {
		return fmt.Errorf("failed to label focal points: %w", err)
	}
	p.Add(focalLabels)

	// object
	arrow(color.Black, nil, -objectDistance, height)

	if lens.Type() == lenstype.Converging {
		green := color.RGBA{G: 128, A: 255}
		red := color.RGBA{R: 255, A: 255}
		blue := color.RGBA{B: 255, A: 255}
		imageHeight := -height * magnification

		// ray parallel to the axis, refracted through the far focal point
		add(green, vg.Points(1), dashed,
			plotter.XY{X: -objectDistance, Y: height}, plotter.XY{X: 0, Y: height})
		add(green, vg.Points(1), dashed,
			plotter.XY{X: 0, Y: height}, plotter.XY{X: f, Y: 0})

		// ray through the lens center
		add(red, vg.Points(1), dashed,
			plotter.XY{X: -objectDistance, Y: height},
			plotter.XY{X: imageDistance, Y: imageHeight})

		// ray through the near focal point, refracted parallel
		add(blue, vg.Points(1), dashed,
			plotter.XY{X: -objectDistance, Y: height}, plotter.XY{X: 0, Y: f})
		add(blue, vg.Points(1), dashed,
			plotter.XY{X: 0, Y: f}, plotter.XY{X: imageDistance, Y: imageHeight})

		if imageDistance > 0 {
			arrow(color.Black, dashed, imageDistance, imageHeight)
		} else {
			arrow(color.Black, dotted, imageDistance, imageHeight)
		}
	}
	if addErr != nil {
		return fmt.Errorf("failed to draw diagram: %w", addErr)
	}

	p.X.Min, p.X.Max = -maxDist, maxDist
	p.Y.Min, p.Y.Max = -maxDist/2, maxDist/2

	if err := p.Save(12*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save diagram: %w", err)
	}
	log.WithFields(log.Fields{
		"path": path,
		"time": time.Since(renderTime),
	}).Info("Ray diagram rendered")
	return nil
}
