package app

import (
	"fmt"
	"os"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// table is one named block of analysis output, a column per header.
type table struct {
	name    string
	headers []string
	columns [][]float64
}

func (a *App) tables(d *dataset) []table {
	rayHeaders := make([]string, 0, len(d.rays)+1)
	rayColumns := make([][]float64, 0, len(d.rays)+1)
	z := make([]float64, len(d.rays[0]))
	for i, pt := range d.rays[0] {
		z[i] = pt.Z
	}
	rayHeaders = append(rayHeaders, "z_m")
	rayColumns = append(rayColumns, z)
	for i, ray := range d.rays {
		heights := make([]float64, len(ray))
		for j, pt := range ray {
			heights[j] = pt.Y
		}
		rayHeaders = append(rayHeaders, fmt.Sprintf("y%d_m", i+1))
		rayColumns = append(rayColumns, heights)
	}

	return []table{
		{
			name:    "rays",
			headers: rayHeaders,
			columns: rayColumns,
		},
		{
			name:    "diffraction",
			headers: []string{"r_mm", "intensity"},
			columns: [][]float64{scaled(d.diffractionR, 1000), d.diffractionI},
		},
		{
			name:    "slit",
			headers: []string{"x_mm", "intensity"},
			columns: [][]float64{scaled(d.slitX, 1000), d.slitI},
		},
		{
			name:    "temperature",
			headers: []string{"temperature_c", "focal_length_m"},
			columns: [][]float64{d.temps, d.focals},
		},
		{
			name:    "interference",
			headers: []string{"angle_deg", "intensity"},
			columns: [][]float64{degrees(d.angles), d.interference},
		},
	}
}

func (a *App) exportCSV(d *dataset) error {
	exportTime := time.Now()
	paths := make([]string, 0, 5)

	for _, tb := range a.tables(d) {
		cols := make([]series.Series, len(tb.columns))
		for i, col := range tb.columns {
			cols[i] = series.New(col, series.Float, tb.headers[i])
		}
		df := dataframe.New(cols...)

		path := fmt.Sprintf("%s_%s.csv", a.Output, tb.name)
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create file: %w", err)
		}
		if err := df.WriteCSV(f, dataframe.WriteHeader(true)); err != nil {
			f.Close()
			return fmt.Errorf("failed to write %s table: %w", tb.name, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to close file: %w", err)
		}
		paths = append(paths, path)
	}

	log.WithFields(log.Fields{
		"files": paths,
		"time":  time.Since(exportTime),
	}).Info("Analysis tables exported")
	return nil
}

func (a *App) exportXLSX(d *dataset) error {
	path := a.Output + ".xlsx"
	exportTime := time.Now()

	f := excelize.NewFile()
	defer f.Close()

	for i, tb := range a.tables(d) {
		sheet := capitalize(tb.name)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
			}
		}

		sw, err := f.NewStreamWriter(sheet)
		if err != nil {
			return fmt.Errorf("failed to open stream writer for %s: %w", sheet, err)
		}

		header := make([]interface{}, len(tb.headers))
		for c, h := range tb.headers {
			header[c] = h
		}
		if err := sw.SetRow("A1", header); err != nil {
			return fmt.Errorf("failed to write header of %s: %w", sheet, err)
		}

		for r := range tb.columns[0] {
			row := make([]interface{}, len(tb.columns))
			for c := range tb.columns {
				row[c] = tb.columns[c][r]
			}
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return fmt.Errorf("failed to address row %d: %w", r+2, err)
			}
			if err := sw.SetRow(cell, row); err != nil {
				return fmt.Errorf("failed to write row %d of %s: %w", r+2, sheet, err)
			}
		}

		if err := sw.Flush(); err != nil {
			return fmt.Errorf("failed to flush %s: %w", sheet, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	log.WithFields(log.Fields{
		"path": path,
		"time": time.Since(exportTime),
	}).Info("Analysis workbook exported")
	return nil
}
