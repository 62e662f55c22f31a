package entity

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
)

// WaveOpticsCalculator derives diffraction and interference intensity
// curves from a set of wave properties. All methods are pure.
type WaveOpticsCalculator struct {
	wave *WaveProperties
}

func NewWaveOpticsCalculator(wave *WaveProperties) *WaveOpticsCalculator {
	return &WaveOpticsCalculator{wave: wave}
}

// Diffraction samples the Fraunhofer pattern of a circular aperture on a
// screen. The radial coordinate runs from 0 to ten aperture radii and the
// intensity is (a·J0(k·a·r/D))², unnormalized.
func (c *WaveOpticsCalculator) Diffraction(apertureRadius, distance float64, points int) ([]float64, []float64, error) {
	if apertureRadius <= 0 {
		return nil, nil, ErrAperture
	}
	if distance == 0 {
		return nil, nil, ErrScreenDistance
	}
	if points < 2 {
		return nil, nil, fmt.Errorf("%w: %d", ErrSampleCount, points)
	}
	r := floats.Span(make([]float64, points), 0, 10*apertureRadius)
	intensity := make([]float64, points)
	k := c.wave.waveNumber
	for i, ri := range r {
		amplitude := apertureRadius * math.J0(k*apertureRadius*ri/distance)
		intensity[i] = amplitude * amplitude
	}
	return r, intensity, nil
}

// Interference evaluates the two-slit pattern cos²(k·d·sinθ/2) at each
// angle. The single-slit envelope is deliberately omitted; SlitDiffraction
// provides it separately.
func (c *WaveOpticsCalculator) Interference(slitSeparation float64, theta []float64) []float64 {
	intensity := make([]float64, len(theta))
	k := c.wave.waveNumber
	for i, angle := range theta {
		amplitude := math.Cos(k * slitSeparation * math.Sin(angle) / 2)
		intensity[i] = amplitude * amplitude
	}
	return intensity
}

// SlitDiffraction computes the far-field pattern of a single slit
// numerically, as the squared magnitude of the Fourier transform of the
// aperture transmission. The spectrum is shifted so the central maximum
// sits mid-slice, peak-normalized, and mapped to screen positions
// x = λ·D·ν. The aperture window spans eight slit widths.
func (c *WaveOpticsCalculator) SlitDiffraction(slitWidth, screenDistance float64, samples int) ([]float64, []float64, error) {
	if slitWidth <= 0 {
		return nil, nil, ErrAperture
	}
	if screenDistance == 0 {
		return nil, nil, ErrScreenDistance
	}
	if samples < 2 {
		return nil, nil, fmt.Errorf("%w: %d", ErrSampleCount, samples)
	}

	window := 8 * slitWidth
	du := window / float64(samples)
	aperture := make([]float64, samples)
	for i := range aperture {
		u := -window/2 + float64(i)*du
		if math.Abs(u) <= slitWidth/2 {
			aperture[i] = 1
		}
	}

	spectrum := fft.FFTReal(aperture)

	half := samples / 2
	shift := samples - half
	x := make([]float64, samples)
	intensity := make([]float64, samples)
	peak := 0.0
	for i := range intensity {
		magnitude := cmplx.Abs(spectrum[(i+shift)%samples])
		intensity[i] = magnitude * magnitude
		if intensity[i] > peak {
			peak = intensity[i]
		}
		x[i] = c.wave.wavelength * screenDistance * float64(i-half) / window
	}
	if peak > 0 {
		for i := range intensity {
			intensity[i] /= peak
		}
	}
	return x, intensity, nil
}
