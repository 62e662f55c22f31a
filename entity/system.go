package entity

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Element is one thin lens in a system together with the free-space
// propagation applied before it. The last element of a system has zero
// spacing after it, so Spacing always describes the gap in front.
type Element struct {
	Spacing     float64 // meters
	FocalLength float64 // meters
	Material    OpticalMaterial
}

// LensSystem is an ordered chain of thin lenses. The operating temperature
// is a mutable dial; the element list is fixed at construction.
type LensSystem struct {
	elements    []Element
	temperature float64 // Celsius
}

// NewLensSystem builds a system from aligned slices: focalLengths[i] pairs
// with materials[i], and distances[i] is the gap applied before element i.
// A system of N lenses takes exactly N-1 distances.
func NewLensSystem(focalLengths, distances []float64, materials []OpticalMaterial) (*LensSystem, error) {
	if len(focalLengths) == 0 {
		return nil, ErrNoElements
	}
	if len(distances) != len(focalLengths)-1 {
		return nil, fmt.Errorf("%w: %d focal lengths take %d distances, got %d",
			ErrElementMismatch, len(focalLengths), len(focalLengths)-1, len(distances))
	}
	if len(materials) != len(focalLengths) {
		return nil, fmt.Errorf("%w: %d focal lengths, %d materials",
			ErrElementMismatch, len(focalLengths), len(materials))
	}
	elements := make([]Element, len(focalLengths))
	for i, f := range focalLengths {
		if f == 0 {
			return nil, fmt.Errorf("%w: element %d", ErrZeroFocal, i+1)
		}
		if materials[i].N0 <= 0 {
			return nil, fmt.Errorf("%w: element %d has n0 = %g",
				ErrRefractiveIndex, i+1, materials[i].N0)
		}
		spacing := 0.0
		if i < len(distances) {
			spacing = distances[i]
		}
		elements[i] = Element{
			Spacing:     spacing,
			FocalLength: f,
			Material:    materials[i],
		}
	}
	return &LensSystem{elements: elements, temperature: ReferenceTemperature}, nil
}

func (s *LensSystem) Elements() []Element {
	elements := make([]Element, len(s.elements))
	copy(elements, s.elements)
	return elements
}

// Spacings returns the inter-element gaps in order, length len(elements)-1.
func (s *LensSystem) Spacings() []float64 {
	spacings := make([]float64, 0, len(s.elements)-1)
	for _, el := range s.elements[:len(s.elements)-1] {
		spacings = append(spacings, el.Spacing)
	}
	return spacings
}

func (s *LensSystem) Temperature() float64 {
	return s.temperature
}

func (s *LensSystem) SetTemperature(T float64) {
	s.temperature = T
}

// TransferMatrix composes the system ABCD matrix at the operating
// temperature. It is recomputed on every call, so temperature changes are
// visible immediately.
func (s *LensSystem) TransferMatrix() (*mat.Dense, error) {
	return s.TransferMatrixAt(s.temperature)
}

// TransferMatrixAt composes the system ABCD matrix at an explicit
// temperature without touching the operating temperature. Each element
// contributes a propagation matrix for its spacing followed by a thin-lens
// matrix with the temperature-adjusted refractive index.
func (s *LensSystem) TransferMatrixAt(temperature float64) (*mat.Dense, error) {
	m := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	for i, el := range s.elements {
		n := el.Material.IndexAt(temperature)
		if n <= 0 {
			return nil, fmt.Errorf("%w: element %d at %g °C yields n = %g",
				ErrRefractiveIndex, i+1, temperature, n)
		}
		p := mat.NewDense(2, 2, []float64{1, el.Spacing, 0, 1})
		l := mat.NewDense(2, 2, []float64{1, 0, -1 / (el.FocalLength * n), 1})
		m.Mul(m, p)
		m.Mul(m, l)
	}
	return m, nil
}

// EffectiveFocalLength reads the focal length out of the transfer matrix as
// -1/C. Systems with C == 0 are afocal and have no focal length.
func (s *LensSystem) EffectiveFocalLength() (float64, error) {
	return s.EffectiveFocalLengthAt(s.temperature)
}

func (s *LensSystem) EffectiveFocalLengthAt(temperature float64) (float64, error) {
	m, err := s.TransferMatrixAt(temperature)
	if err != nil {
		return 0, err
	}
	c := m.At(1, 0)
	if c == 0 {
		return 0, ErrAfocal
	}
	return -1 / c, nil
}

// scaledBy returns a copy of the system with every spacing multiplied by
// scale. Focal lengths, materials and temperature are unchanged.
func (s *LensSystem) scaledBy(scale float64) *LensSystem {
	elements := make([]Element, len(s.elements))
	for i, el := range s.elements {
		el.Spacing *= scale
		elements[i] = el
	}
	return &LensSystem{elements: elements, temperature: s.temperature}
}
