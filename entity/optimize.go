package entity

import (
	"fmt"
	"math"
)

// SystemOptimizer searches for inter-element spacings that give a lens
// system a requested effective focal length. The search space is a single
// uniform scale factor applied to every spacing.
type SystemOptimizer struct {
	system *LensSystem
}

func NewSystemOptimizer(system *LensSystem) *SystemOptimizer {
	return &SystemOptimizer{system: system}
}

// OptimizeFocalLength rescales every spacing by target/current in one shot.
// The rescale is exact and idempotent when the target equals the current
// focal length; for systems whose focal length is not linear in the spacing
// scale it is only a first-order estimate.
func (o *SystemOptimizer) OptimizeFocalLength(target float64) ([]float64, error) {
	scale, err := o.linearScale(target)
	if err != nil {
		return nil, err
	}
	return o.scaledSpacings(scale), nil
}

// RefineFocalLength improves the linear rescale by bisecting the scale
// factor until the system focal length is within reach of the target. tol
// bounds the width of the final scale bracket. When no sign change brackets
// the target, or refinement does not beat the linear estimate, the linear
// rescale is returned unchanged.
func (o *SystemOptimizer) RefineFocalLength(target, tol float64, maxIter int) ([]float64, error) {
	estimate, err := o.linearScale(target)
	if err != nil {
		return nil, err
	}
	linear := o.scaledSpacings(estimate)
	if len(linear) == 0 {
		return linear, nil
	}

	residual := func(scale float64) (float64, bool) {
		f, err := o.system.scaledBy(scale).EffectiveFocalLength()
		if err != nil {
			return 0, false
		}
		return f - target, true
	}

	rEstimate, ok := residual(estimate)
	if !ok {
		return linear, nil
	}

	lo, hi := 0.5*estimate, 1.5*estimate
	if lo > hi {
		lo, hi = hi, lo
	}
	rLo, okLo := residual(lo)
	rHi, okHi := residual(hi)
	for i := 0; i < 8 && (!okLo || !okHi || rLo*rHi > 0); i++ {
		span := hi - lo
		lo -= span / 2
		hi += span / 2
		rLo, okLo = residual(lo)
		rHi, okHi = residual(hi)
	}
	if !okLo || !okHi || rLo*rHi > 0 {
		return linear, nil
	}

	for i := 0; i < maxIter && hi-lo > tol; i++ {
		mid := 0.5 * (lo + hi)
		rMid, ok := residual(mid)
		if !ok {
			return linear, nil
		}
		if rLo*rMid <= 0 {
			hi = mid
		} else {
			lo, rLo = mid, rMid
		}
	}

	scale := 0.5 * (lo + hi)
	rScale, ok := residual(scale)
	if !ok || math.Abs(rScale) >= math.Abs(rEstimate) {
		return linear, nil
	}
	return o.scaledSpacings(scale), nil
}

func (o *SystemOptimizer) linearScale(target float64) (float64, error) {
	if target == 0 || math.IsInf(target, 0) || math.IsNaN(target) {
		return 0, fmt.Errorf("%w: %g", ErrTarget, target)
	}
	current, err := o.system.EffectiveFocalLength()
	if err != nil {
		return 0, fmt.Errorf("failed to read current focal length: %w", err)
	}
	return target / current, nil
}

func (o *SystemOptimizer) scaledSpacings(scale float64) []float64 {
	spacings := o.system.Spacings()
	for i := range spacings {
		spacings[i] *= scale
	}
	return spacings
}
