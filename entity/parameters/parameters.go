package parameters

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"optica/entity/format"
)

// Parameters drives the system analysis. Physical quantities are loadable
// from YAML; output routing comes from command-line flags.
type Parameters struct {
	Wavelength         float64 `yaml:"wavelength"`          // meters
	Temperature        float64 `yaml:"temperature"`         // Celsius
	TempMin            float64 `yaml:"temp_min"`            // Celsius
	TempMax            float64 `yaml:"temp_max"`            // Celsius
	TempSamples        int     `yaml:"temp_samples"`
	ApertureRadius     float64 `yaml:"aperture_radius"`     // meters
	ScreenDistance     float64 `yaml:"screen_distance"`     // meters
	SlitSeparation     float64 `yaml:"slit_separation"`     // meters
	HalfAngle          float64 `yaml:"half_angle"`          // degrees
	DiffractionPoints  int     `yaml:"diffraction_points"`
	InterferencePoints int     `yaml:"interference_points"`
	RayCount           int     `yaml:"ray_count"`
	RayMaxHeight       float64 `yaml:"ray_max_height"`      // meters

	Format format.Format `yaml:"-"`
}

// Default returns the analysis parameters for green light through a
// hand-sized system: a 1 mm aperture viewed at 1 m, 100 µm slit separation,
// and a 0–40 °C temperature sweep.
func Default() *Parameters {
	return &Parameters{
		Wavelength:         550e-9,
		Temperature:        20.0,
		TempMin:            0.0,
		TempMax:            40.0,
		TempSamples:        100,
		ApertureRadius:     0.001,
		ScreenDistance:     1.0,
		SlitSeparation:     0.0001,
		HalfAngle:          45.0,
		DiffractionPoints:  1000,
		InterferencePoints: 1000,
		RayCount:           5,
		RayMaxHeight:       1.0,
		Format:             format.Png,
	}
}

// Load reads YAML parameters from path on top of the defaults, so a file
// only needs the fields it changes.
func Load(path string) (*Parameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parameters file: %w", err)
	}
	params := Default()
	if err := yaml.Unmarshal(data, params); err != nil {
		return nil, fmt.Errorf("failed to parse parameters file: %w", err)
	}
	return params, nil
}
