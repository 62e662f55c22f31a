package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func air() OpticalMaterial {
	return OpticalMaterial{N0: 1, DnDT: 0}
}

func mustSystem(t *testing.T, focalLengths, distances []float64, materials []OpticalMaterial) *LensSystem {
	t.Helper()
	system, err := NewLensSystem(focalLengths, distances, materials)
	require.NoError(t, err)
	return system
}

func TestNewLensSystem_Validation(t *testing.T) {
	tests := []struct {
		name         string
		focalLengths []float64
		distances    []float64
		materials    []OpticalMaterial
		want         error
	}{
		{
			name: "no elements",
			want: ErrNoElements,
		},
		{
			name:         "distance count mismatch",
			focalLengths: []float64{0.2, 0.4},
			distances:    []float64{0.1, 0.2},
			materials:    []OpticalMaterial{air(), air()},
			want:         ErrElementMismatch,
		},
		{
			name:         "material count mismatch",
			focalLengths: []float64{0.2, 0.4},
			distances:    []float64{0.1},
			materials:    []OpticalMaterial{air()},
			want:         ErrElementMismatch,
		},
		{
			name:         "zero focal length",
			focalLengths: []float64{0.2, 0},
			distances:    []float64{0.1},
			materials:    []OpticalMaterial{air(), air()},
			want:         ErrZeroFocal,
		},
		{
			name:         "non-positive refractive index",
			focalLengths: []float64{0.2},
			distances:    nil,
			materials:    []OpticalMaterial{{N0: 0, DnDT: 0}},
			want:         ErrRefractiveIndex,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLensSystem(tt.focalLengths, tt.distances, tt.materials)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLensSystem_SingleLensMatrix(t *testing.T) {
	system := mustSystem(t, []float64{0.5}, nil, []OpticalMaterial{air()})

	m, err := system.TransferMatrix()
	require.NoError(t, err)

	assert.InDelta(t, 1.0, m.At(0, 0), 1e-15)
	assert.InDelta(t, 0.0, m.At(0, 1), 1e-15)
	assert.InDelta(t, -2.0, m.At(1, 0), 1e-15, "C = -1/f for a bare thin lens")
	assert.InDelta(t, 1.0, m.At(1, 1), 1e-15)

	f, err := system.EffectiveFocalLength()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, f, 1e-15)
}

func TestLensSystem_TwoLensMatrixMatchesHandProduct(t *testing.T) {
	system := mustSystem(t,
		[]float64{0.2, 0.4},
		[]float64{0.1},
		[]OpticalMaterial{air(), air()},
	)

	m, err := system.TransferMatrix()
	require.NoError(t, err)

	// P(0.1)·L(0.2)·L(0.4) = [[0.25, 0.1], [-7.5, 1]]
	assert.InDelta(t, 0.25, m.At(0, 0), 1e-12)
	assert.InDelta(t, 0.1, m.At(0, 1), 1e-12)
	assert.InDelta(t, -7.5, m.At(1, 0), 1e-12)
	assert.InDelta(t, 1.0, m.At(1, 1), 1e-12)

	det := m.At(0, 0)*m.At(1, 1) - m.At(0, 1)*m.At(1, 0)
	assert.InDelta(t, 1.0, det, 1e-12, "ABCD matrices are unimodular")

	f, err := system.EffectiveFocalLength()
	require.NoError(t, err)
	assert.InDelta(t, 1.0/7.5, f, 1e-12)
}

func TestLensSystem_TemperatureChangesNextMatrix(t *testing.T) {
	glass := OpticalMaterial{N0: 1.5, DnDT: 0.01}
	system := mustSystem(t, []float64{0.5}, nil, []OpticalMaterial{glass})

	m, err := system.TransferMatrix()
	require.NoError(t, err)
	assert.InDelta(t, -1/(0.5*1.5), m.At(1, 0), 1e-12)

	system.SetTemperature(30)
	m, err = system.TransferMatrix()
	require.NoError(t, err)
	assert.InDelta(t, -1/(0.5*1.6), m.At(1, 0), 1e-12, "index at 30 °C is 1.6")
}

func TestLensSystem_TransferMatrixAtLeavesStateAlone(t *testing.T) {
	glass := OpticalMaterial{N0: 1.5, DnDT: 0.01}
	system := mustSystem(t, []float64{0.5}, nil, []OpticalMaterial{glass})

	before, err := system.EffectiveFocalLength()
	require.NoError(t, err)

	_, err = system.TransferMatrixAt(35)
	require.NoError(t, err)

	assert.Equal(t, ReferenceTemperature, system.Temperature())
	after, err := system.EffectiveFocalLength()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestLensSystem_AfocalHasNoFocalLength(t *testing.T) {
	// Equal and opposite lenses in contact compose to the identity matrix.
	system := mustSystem(t,
		[]float64{0.3, -0.3},
		[]float64{0},
		[]OpticalMaterial{air(), air()},
	)

	_, err := system.EffectiveFocalLength()
	assert.ErrorIs(t, err, ErrAfocal)
}

func TestLensSystem_IndexCollapseAtTemperature(t *testing.T) {
	// n0 is valid but the drift drives the index to zero at 30 °C.
	material := OpticalMaterial{N0: 0.1, DnDT: -0.01}
	system := mustSystem(t, []float64{0.5}, nil, []OpticalMaterial{material})

	_, err := system.TransferMatrixAt(30)
	assert.ErrorIs(t, err, ErrRefractiveIndex)
}

func TestLensSystem_Spacings(t *testing.T) {
	system := mustSystem(t,
		[]float64{0.2, 0.3, 0.4},
		[]float64{0.1, 0.2},
		[]OpticalMaterial{air(), air(), air()},
	)

	assert.Equal(t, []float64{0.1, 0.2}, system.Spacings())

	single := mustSystem(t, []float64{0.5}, nil, []OpticalMaterial{air()})
	assert.Empty(t, single.Spacings())
}
