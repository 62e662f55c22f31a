package app

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/soniakeys/unit"
	"gonum.org/v1/gonum/floats"

	"optica/entity"
	"optica/entity/format"
	"optica/entity/parameters"
)

type App struct {
	Output string
	System *entity.LensSystem
	Wave   *entity.WaveProperties
	Params *parameters.Parameters
}

func New(output string, system *entity.LensSystem, wave *entity.WaveProperties, params *parameters.Parameters) *App {
	return &App{
		Output: output,
		System: system,
		Wave:   wave,
		Params: params,
	}
}

// dataset holds every curve of the system analysis: the traced ray fan, the
// circular-aperture and slit diffraction patterns, the focal length over the
// temperature sweep and the two-slit interference pattern.
type dataset struct {
	launchHeights []float64
	rays          [][]entity.TracePoint

	diffractionR []float64
	diffractionI []float64
	slitX        []float64
	slitI        []float64

	temps  []float64
	focals []float64

	angles       []float64
	interference []float64
}

func (a *App) Run(ctx context.Context) error {
	appTime := time.Now()
	defer func() {
		log.WithField("time", time.Since(appTime)).Debug("Analysis finished")
	}()
	log.WithFields(log.Fields{
		"output":      a.Output,
		"elements":    len(a.System.Elements()),
		"wavelength":  a.Wave.Wavelength(),
		"temperature": a.System.Temperature(),
	}).Debug("Analysis started")

	data, err := a.analyze()
	if err != nil {
		return fmt.Errorf("failed to analyze system: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	switch a.Params.Format {
	case format.HTML:
		return a.renderHTML(data)
	case format.Png:
		return a.renderPNG(data)
	case format.Csv:
		return a.exportCSV(data)
	case format.Xlsx:
		return a.exportXLSX(data)
	default:
		return fmt.Errorf("unsupported format %d", a.Params.Format)
	}
}

func (a *App) analyze() (*dataset, error) {
	p := a.Params
	if p.RayCount < 2 {
		return nil, fmt.Errorf("%w: ray_count %d", entity.ErrSampleCount, p.RayCount)
	}
	if p.TempSamples < 2 {
		return nil, fmt.Errorf("%w: temp_samples %d", entity.ErrSampleCount, p.TempSamples)
	}
	if p.InterferencePoints < 2 {
		return nil, fmt.Errorf("%w: interference_points %d", entity.ErrSampleCount, p.InterferencePoints)
	}

	d := &dataset{}

	rayTime := time.Now()
	tracer := entity.NewRayTracer(a.System)
	d.launchHeights = floats.Span(make([]float64, p.RayCount), -p.RayMaxHeight, p.RayMaxHeight)
	d.rays = make([][]entity.TracePoint, 0, len(d.launchHeights))
	for _, y0 := range d.launchHeights {
		points, err := tracer.Trace(y0, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to trace ray at y0 = %g: %w", y0, err)
		}
		d.rays = append(d.rays, points)
	}
	log.WithFields(log.Fields{
		"rays": len(d.rays),
		"time": time.Since(rayTime),
	}).Debug("Ray fan traced")

	calc := entity.NewWaveOpticsCalculator(a.Wave)
	var err error
	d.diffractionR, d.diffractionI, err = calc.Diffraction(p.ApertureRadius, p.ScreenDistance, p.DiffractionPoints)
	if err != nil {
		return nil, fmt.Errorf("failed to compute diffraction pattern: %w", err)
	}
	d.slitX, d.slitI, err = calc.SlitDiffraction(2*p.ApertureRadius, p.ScreenDistance, p.DiffractionPoints)
	if err != nil {
		return nil, fmt.Errorf("failed to compute slit diffraction: %w", err)
	}

	sweepTime := time.Now()
	d.temps = floats.Span(make([]float64, p.TempSamples), p.TempMin, p.TempMax)
	d.focals = make([]float64, len(d.temps))
	for i, T := range d.temps {
		d.focals[i], err = a.System.EffectiveFocalLengthAt(T)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate focal length at %g °C: %w", T, err)
		}
	}
	log.WithFields(log.Fields{
		"samples": len(d.temps),
		"time":    time.Since(sweepTime),
	}).Debug("Temperature sweep done")

	halfAngle := unit.AngleFromDeg(p.HalfAngle).Rad()
	d.angles = floats.Span(make([]float64, p.InterferencePoints), -halfAngle, halfAngle)
	d.interference = calc.Interference(p.SlitSeparation, d.angles)

	return d, nil
}

func scaled(values []float64, factor float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v * factor
	}
	return out
}

func degrees(radians []float64) []float64 {
	return scaled(radians, 180/math.Pi)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
