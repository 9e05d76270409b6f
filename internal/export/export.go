// Package export reconstructs the cleaned table for download: first
// column "Species", remaining columns the cleaned sample names with
// the abundance values.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"mitoviz/domain/abundance"
)

// utf8BOM prefixes CSV downloads so spreadsheet applications pick up
// UTF-8 for the Japanese species names
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Exporter writes cleaned tables as CSV or xlsx
type Exporter struct{}

// NewExporter creates an exporter
func NewExporter() *Exporter {
	return &Exporter{}
}

// WriteCSV writes the cleaned table as UTF-8-with-BOM comma-separated
// text, no index column
func (e *Exporter) WriteCSV(w io.Writer, tbl *abundance.Table) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(headerRow(tbl)); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, species := range tbl.Species {
		record := make([]string, 0, len(tbl.Samples)+1)
		record = append(record, species)
		for _, v := range tbl.Matrix[i] {
			record = append(record, formatValue(v))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the cleaned table as a single-sheet workbook
func (e *Exporter) WriteXLSX(w io.Writer, tbl *abundance.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	for j, name := range headerRow(tbl) {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}

	for i, species := range tbl.Species {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, species); err != nil {
			return err
		}
		for j, v := range tbl.Matrix[i] {
			cell, err := excelize.CoordinatesToCellName(j+2, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}

func headerRow(tbl *abundance.Table) []string {
	header := make([]string, 0, len(tbl.Samples)+1)
	header = append(header, "Species")
	header = append(header, tbl.Samples...)
	return header
}

// formatValue keeps integral counts readable while preserving
// fractional values exactly
func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
