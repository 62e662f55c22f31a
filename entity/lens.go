package entity

import (
	"math"

	"optica/entity/aberration"
	"optica/entity/lenstype"
)

// DefaultDiameter is the lens diameter assumed when none is given, cm.
const DefaultDiameter = 5.0

const (
	glassIndex      = 1.5  // crown glass
	glassDispersion = 0.02 // Abbe number related
)

// Lens is a single thin lens in the lens calculator. Focal length and
// diameter share a unit (centimeters in the calculator CLI).
type Lens struct {
	focalLength     float64
	lensType        lenstype.Type
	diameter        float64
	refractiveIndex float64
	dispersion      float64
}

func NewLens(focalLength float64, lensType lenstype.Type, diameter float64) (*Lens, error) {
	if focalLength == 0 {
		return nil, ErrZeroFocal
	}
	return &Lens{
		focalLength:     focalLength,
		lensType:        lensType,
		diameter:        diameter,
		refractiveIndex: glassIndex,
		dispersion:      glassDispersion,
	}, nil
}

func (l *Lens) FocalLength() float64 {
	return l.focalLength
}

func (l *Lens) Type() lenstype.Type {
	return l.lensType
}

func (l *Lens) Diameter() float64 {
	return l.diameter
}

// Aberrations returns the closed-form aberration coefficients of the lens.
func (l *Lens) Aberrations() map[aberration.Kind]float64 {
	f := l.focalLength
	d := l.diameter
	return map[aberration.Kind]float64{
		aberration.Spherical:   0.125 * math.Pow(d, 4) / math.Pow(f, 3),
		aberration.Chromatic:   f * l.dispersion,
		aberration.Coma:        0.25 * math.Pow(d, 3) / (f * f),
		aberration.Astigmatism: 0.5 * d * d / f,
	}
}

// ImageDistance solves the thin-lens equation for an object at the given
// distance in front of the lens. Negative results are virtual images.
func (l *Lens) ImageDistance(objectDistance float64) (float64, error) {
	if objectDistance == l.focalLength {
		return 0, ErrObjectAtFocus
	}
	return objectDistance * l.focalLength / (objectDistance - l.focalLength), nil
}

// Magnification is the transverse magnification for an object at the given
// distance. Negative values mean an inverted image.
func (l *Lens) Magnification(objectDistance float64) (float64, error) {
	if objectDistance == 0 {
		return 0, ErrObjectDistance
	}
	imageDistance, err := l.ImageDistance(objectDistance)
	if err != nil {
		return 0, err
	}
	return -imageDistance / objectDistance, nil
}

// SeriesFocalLength combines lenses stacked along a common axis. Opposite
// powers can cancel exactly, in which case the result is +Inf.
func SeriesFocalLength(lenses []*Lens) float64 {
	if len(lenses) == 0 {
		return 0
	}
	power := 0.0
	for _, l := range lenses {
		power += 1 / l.focalLength
	}
	if power == 0 {
		return math.Inf(1)
	}
	return 1 / power
}

// ParallelFocalLength combines lenses side by side, summing focal lengths.
func ParallelFocalLength(lenses []*Lens) float64 {
	total := 0.0
	for _, l := range lenses {
		total += l.focalLength
	}
	return total
}
