package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"optica/entity"
	"optica/entity/format"
	"optica/entity/parameters"
)

func testApp(t *testing.T, dir string, f format.Format) *App {
	t.Helper()

	materials := []entity.OpticalMaterial{
		{N0: 1.5, DnDT: 1e-6},
		{N0: 1.5, DnDT: 1e-6},
	}
	system, err := entity.NewLensSystem([]float64{0.2, 0.4}, []float64{0.1}, materials)
	require.NoError(t, err)

	wave, err := entity.NewWaveProperties(550e-9)
	require.NoError(t, err)

	params := parameters.Default()
	params.DiffractionPoints = 32
	params.InterferencePoints = 32
	params.TempSamples = 5
	params.RayCount = 3
	params.Format = f

	return New(filepath.Join(dir, "analysis"), system, wave, params)
}

func TestAppRunPNG(t *testing.T) {
	dir := t.TempDir()
	a := testApp(t, dir, format.Png)

	require.NoError(t, a.Run(context.Background()))

	info, err := os.Stat(filepath.Join(dir, "analysis.png"))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestAppRunHTML(t *testing.T) {
	dir := t.TempDir()
	a := testApp(t, dir, format.HTML)

	require.NoError(t, a.Run(context.Background()))

	data, err := os.ReadFile(filepath.Join(dir, "analysis.html"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Ray tracing")
	assert.Contains(t, string(data), "Double-slit interference")
}

func TestAppRunCSV(t *testing.T) {
	dir := t.TempDir()
	a := testApp(t, dir, format.Csv)

	require.NoError(t, a.Run(context.Background()))

	for _, name := range []string{"rays", "diffraction", "slit", "temperature", "interference"} {
		_, err := os.Stat(filepath.Join(dir, "analysis_"+name+".csv"))
		assert.NoError(t, err, name)
	}

	data, err := os.ReadFile(filepath.Join(dir, "analysis_interference.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 33)
	assert.Equal(t, "angle_deg,intensity", lines[0])
}

func TestAppRunXLSX(t *testing.T) {
	dir := t.TempDir()
	a := testApp(t, dir, format.Xlsx)

	require.NoError(t, a.Run(context.Background()))

	f, err := excelize.OpenFile(filepath.Join(dir, "analysis.xlsx"))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t,
		[]string{"Rays", "Diffraction", "Slit", "Temperature", "Interference"},
		f.GetSheetList())

	rows, err := f.GetRows("Interference")
	require.NoError(t, err)
	assert.Len(t, rows, 33)
}

func TestAppRunCanceled(t *testing.T) {
	a := testApp(t, t.TempDir(), format.Png)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := a.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestAppRunRejectsTinySampleCounts(t *testing.T) {
	a := testApp(t, t.TempDir(), format.Png)
	a.Params.RayCount = 1

	err := a.Run(context.Background())
	require.ErrorIs(t, err, entity.ErrSampleCount)
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Rays", capitalize("rays"))
	assert.Equal(t, "", capitalize(""))
}
