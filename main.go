package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"optica/app"
	"optica/entity"
	"optica/entity/format"
	"optica/entity/parameters"
)

func main() {
	output := flag.String("o", "optical_analysis", "output basename")
	formatName := flag.String("format", "png", "output format (html, png, csv, xlsx)")
	configPath := flag.String("config", "", "YAML parameters file")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	outputFormat, err := format.UnmarshalText(*formatName)
	if err != nil {
		log.Fatal(err)
	}

	params := parameters.Default()
	if *configPath != "" {
		params, err = parameters.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	params.Format = outputFormat

	wave, err := entity.NewWaveProperties(params.Wavelength)
	if err != nil {
		log.Fatal(err)
	}

	in := bufio.NewReader(os.Stdin)
	system := readSystem(in, params.Temperature)
	if system == nil {
		fmt.Println("No lenses entered. Exiting.")
		return
	}

	fmt.Println("\nAnalyzing optical system...")

	m, err := system.TransferMatrix()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("\nSystem transfer matrix:")
	fmt.Printf("%v\n", mat.Formatted(m, mat.Prefix(""), mat.Squeeze()))

	fEff, err := system.EffectiveFocalLength()
	switch {
	case errors.Is(err, entity.ErrAfocal):
		fmt.Println("\nEffective focal length: none, the system is afocal")
	case err != nil:
		log.Fatal(err)
	default:
		fmt.Printf("\nEffective focal length: %s\n", humanize.SIWithDigits(fEff, 3, "m"))
	}

	if err := app.New(*output, system, wave, params).Run(context.Background()); err != nil {
		log.Fatal(err)
	}

	target := promptFloat(in, "\nEnter desired focal length for optimization (m): ")
	spacings, err := entity.NewSystemOptimizer(system).RefineFocalLength(target, 1e-9, 100)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("\nOptimized lens separations:")
	for i, d := range spacings {
		fmt.Printf("d%d = %.3f m\n", i+1, d)
	}
}

func readSystem(in *bufio.Reader, temperature float64) *entity.LensSystem {
	fmt.Println("Enter lens system parameters:")

	focalLengths := make([]float64, 0)
	distances := make([]float64, 0)
	materials := make([]entity.OpticalMaterial, 0)

	for {
		f := promptFloat(in, fmt.Sprintf(
			"Enter focal length #%d (m, or 0 to finish): ", len(focalLengths)+1))
		if f == 0 {
			break
		}
		if len(focalLengths) > 0 {
			distances = append(distances, promptFloat(in, "Enter distance to next lens (m): "))
		}
		n := promptFloatDefault(in, "Enter refractive index: ", 1.5)
		dnDT := promptFloatDefault(in, "Enter dn/dT (1e-6/°C): ", 1.0) * 1e-6

		focalLengths = append(focalLengths, f)
		materials = append(materials, entity.OpticalMaterial{N0: n, DnDT: dnDT})
	}

	if len(focalLengths) == 0 {
		return nil
	}

	system, err := entity.NewLensSystem(focalLengths, distances, materials)
	if err != nil {
		log.Fatal(err)
	}
	system.SetTemperature(temperature)
	return system
}

func promptFloat(in *bufio.Reader, prompt string) float64 {
	for {
		fmt.Print(prompt)
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			log.Fatal("failed to read input: ", err)
		}
		value, parseErr := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if parseErr != nil {
			fmt.Println("Please enter valid numbers.")
			continue
		}
		return value
	}
}

func promptFloatDefault(in *bufio.Reader, prompt string, fallback float64) float64 {
	for {
		fmt.Print(prompt)
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			log.Fatal("failed to read input: ", err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return fallback
		}
		value, parseErr := strconv.ParseFloat(line, 64)
		if parseErr != nil {
			fmt.Println("Please enter valid numbers.")
			continue
		}
		return value
	}
}
