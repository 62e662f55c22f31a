package entity

// ReferenceTemperature is the temperature at which refractive indices are
// specified, degrees Celsius.
const ReferenceTemperature = 20.0

// OpticalMaterial models a glass whose refractive index drifts linearly
// with temperature around the reference point.
type OpticalMaterial struct {
	N0   float64 // refractive index at the reference temperature
	DnDT float64 // thermal coefficient, 1/°C
}

// IndexAt returns the refractive index at temperature T in degrees Celsius.
func (m OpticalMaterial) IndexAt(T float64) float64 {
	return m.N0 + m.DnDT*(T-ReferenceTemperature)
}
