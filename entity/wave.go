package entity

import "math"

const lightSpeed = 3e8 // m/s

// WaveProperties carries a wavelength and the quantities derived from it.
// Immutable after construction.
type WaveProperties struct {
	wavelength       float64
	waveNumber       float64
	angularFrequency float64
}

func NewWaveProperties(wavelength float64) (*WaveProperties, error) {
	if wavelength <= 0 {
		return nil, ErrWavelength
	}
	k := 2 * math.Pi / wavelength
	return &WaveProperties{
		wavelength:       wavelength,
		waveNumber:       k,
		angularFrequency: lightSpeed * k,
	}, nil
}

func (w *WaveProperties) Wavelength() float64 {
	return w.wavelength
}

func (w *WaveProperties) WaveNumber() float64 {
	return w.waveNumber
}

func (w *WaveProperties) AngularFrequency() float64 {
	return w.angularFrequency
}
