package parameters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optica/entity/format"
)

func TestDefault(t *testing.T) {
	p := Default()

	assert.Equal(t, 550e-9, p.Wavelength)
	assert.Equal(t, 20.0, p.Temperature)
	assert.Equal(t, 0.0, p.TempMin)
	assert.Equal(t, 40.0, p.TempMax)
	assert.Equal(t, 100, p.TempSamples)
	assert.Equal(t, 0.001, p.ApertureRadius)
	assert.Equal(t, 1.0, p.ScreenDistance)
	assert.Equal(t, 0.0001, p.SlitSeparation)
	assert.Equal(t, 45.0, p.HalfAngle)
	assert.Equal(t, 1000, p.DiffractionPoints)
	assert.Equal(t, 1000, p.InterferencePoints)
	assert.Equal(t, 5, p.RayCount)
	assert.Equal(t, 1.0, p.RayMaxHeight)
	assert.Equal(t, format.Png, p.Format)
}

func TestLoad_OverridesOnTopOfDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	content := "wavelength: 632.8e-9\ntemp_samples: 25\nhalf_angle: 30\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	p, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 632.8e-9, p.Wavelength)
	assert.Equal(t, 25, p.TempSamples)
	assert.Equal(t, 30.0, p.HalfAngle)
	assert.Equal(t, 0.001, p.ApertureRadius, "untouched fields keep their defaults")
	assert.Equal(t, 1000, p.InterferencePoints)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte("wavelength: [not a number"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
