// Package tabfile reads uploaded results files into the raw table
// representation. Delimited text (comma or tab) is attempted under a
// fixed sequence of character encodings; .xlsx workbooks go through
// excelize. Column types are inferred from cell contents.
package tabfile

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"mitoviz/domain/table"
	"mitoviz/internal"
	"mitoviz/internal/errors"
)

// Reader parses uploaded files into raw tables
type Reader struct {
	log *internal.Logger
}

// NewReader creates a file reader
func NewReader(logger *internal.Logger) *Reader {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Reader{log: logger.WithComponent("TabfileReader")}
}

// Read parses the uploaded content into a raw table. The filename is
// only used to route .xlsx workbooks to the spreadsheet path.
func (r *Reader) Read(src io.Reader, filename string) (*table.RawTable, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, errors.FileDecodeFailure(err)
	}
	if len(data) == 0 {
		return nil, errors.FileDecodeFailure(fmt.Errorf("file is empty"))
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".xlsx" || ext == ".xls" {
		return r.readWorkbook(data)
	}
	return r.readDelimited(data)
}

// readDelimited decodes text under the candidate encodings and parses
// it as comma- or tab-separated values
func (r *Reader) readDelimited(data []byte) (*table.RawTable, error) {
	text, encodingName, err := decodeText(data)
	if err != nil {
		return nil, errors.FileDecodeFailure(err)
	}
	r.log.Debug("decoded file with encoding %s", encodingName)

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = detectDelimiter(text)
	// Tolerate ragged rows; short rows coerce to missing cells later
	reader.FieldsPerRecord = -1

	// Decoding succeeded, so structural problems from here on are
	// parse failures, not decode failures
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.ParseFailure(err)
	}
	if len(rows) == 0 {
		return nil, errors.ParseFailure(fmt.Errorf("file has no rows"))
	}

	return buildRawTable(rows), nil
}

// readWorkbook parses the first sheet of an xlsx workbook
func (r *Reader) readWorkbook(data []byte) (*table.RawTable, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.FileDecodeFailure(err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.FileDecodeFailure(fmt.Errorf("workbook has no sheets"))
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.ParseFailure(err)
	}
	if len(rows) == 0 {
		return nil, errors.ParseFailure(fmt.Errorf("workbook sheet %s is empty", sheets[0]))
	}

	r.log.Debug("read workbook sheet %s (%d rows)", sheets[0], len(rows))
	return buildRawTable(rows), nil
}

// detectDelimiter picks tab when the header line carries more tabs
// than commas, otherwise comma
func detectDelimiter(text string) rune {
	header := text
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		header = text[:idx]
	}
	if strings.Count(header, "\t") > strings.Count(header, ",") {
		return '\t'
	}
	return ','
}

// buildRawTable converts header+data string rows into typed columns
func buildRawTable(rows [][]string) *table.RawTable {
	headers := rows[0]
	dataRows := rows[1:]

	columns := make([]table.Column, len(headers))
	for colIdx, header := range headers {
		cells := make([]table.Cell, len(dataRows))
		for rowIdx, row := range dataRows {
			cells[rowIdx] = parseCell(row, colIdx)
		}
		columns[colIdx] = table.Column{
			Name:  strings.TrimSpace(header),
			Kind:  inferKind(cells),
			Cells: cells,
		}
	}

	return &table.RawTable{Columns: columns}
}

// parseCell reads one cell, marking absent or blank cells as missing
func parseCell(row []string, colIdx int) table.Cell {
	if colIdx >= len(row) {
		return table.Cell{Missing: true}
	}
	raw := strings.TrimSpace(row[colIdx])
	if raw == "" {
		return table.Cell{Missing: true}
	}
	cell := table.Cell{Raw: raw}
	if num, err := strconv.ParseFloat(raw, 64); err == nil {
		cell.Number = num
		cell.Numeric = true
	}
	return cell
}

// inferKind types a column numeric when every present cell parses as a
// number and at least one cell is present
func inferKind(cells []table.Cell) table.ValueKind {
	present := 0
	for _, cell := range cells {
		if cell.Missing {
			continue
		}
		present++
		if !cell.Numeric {
			return table.KindText
		}
	}
	if present == 0 {
		return table.KindText
	}
	return table.KindNumeric
}
