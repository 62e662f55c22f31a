package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"optica/app"
	"optica/entity"
	"optica/entity/aberration"
	"optica/entity/lenstype"
)

func main() {
	output := flag.String("o", "ray_diagram.png", "output image path")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	fmt.Println("Available lens types:")
	for _, t := range lenstype.Types {
		fmt.Printf("- %s\n", t)
	}

	in := bufio.NewReader(os.Stdin)
	lenses := make([]*entity.Lens, 0)

	for {
		f := promptFloat(in, fmt.Sprintf(
			"\nEnter focal length #%d (cm, or 0 to finish): ", len(lenses)+1))
		if f == 0 {
			break
		}

		typeName := strings.ToLower(promptLine(in, "Enter lens type: "))
		lensType, err := lenstype.UnmarshalText(typeName)
		if err != nil {
			fmt.Println("Invalid lens type. Using converging lens.")
			lensType = lenstype.Converging
		}

		diameter := promptFloatDefault(in,
			"Enter lens diameter (cm, default 5.0): ", entity.DefaultDiameter)

		lens, err := entity.NewLens(f, lensType, diameter)
		if err != nil {
			fmt.Println("Please enter valid numbers.")
			continue
		}
		lenses = append(lenses, lens)

		fmt.Println("\nAberration Analysis:")
		values := lens.Aberrations()
		for _, kind := range aberration.Kinds {
			name := kind.String()
			fmt.Printf("%s%s aberration: %.2e\n",
				strings.ToUpper(name[:1]), name[1:], values[kind])
		}
	}

	if len(lenses) == 0 {
		fmt.Println("No lenses entered. Exiting.")
		return
	}

	fmt.Println("\nResults:")
	fmt.Printf("Series combination focal length: %.2f cm\n", entity.SeriesFocalLength(lenses))
	fmt.Printf("Parallel combination focal length: %.2f cm\n", entity.ParallelFocalLength(lenses))

	objectDistance := promptFloat(in, "\nEnter object distance (cm) for ray diagram: ")
	if err := app.RenderRayDiagram(lenses[0], objectDistance, 2.0, *output); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Ray diagram saved as %q\n", *output)
}

func promptLine(in *bufio.Reader, prompt string) string {
	fmt.Print(prompt)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		log.Fatal("failed to read input: ", err)
	}
	return strings.TrimSpace(line)
}

func promptFloat(in *bufio.Reader, prompt string) float64 {
	for {
		value, parseErr := strconv.ParseFloat(promptLine(in, prompt), 64)
		if parseErr != nil {
			fmt.Println("Please enter valid numbers.")
			continue
		}
		return value
	}
}

func promptFloatDefault(in *bufio.Reader, prompt string, fallback float64) float64 {
	for {
		line := promptLine(in, prompt)
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
