// Package testkit provides fixture data: the built-in demo dataset
// shown before any upload, and pipeline-shaped tables for tests.
package testkit

import (
	"strconv"
	"strings"

	"mitoviz/domain/abundance"
	"mitoviz/domain/table"
)

// DemoTable returns the bundled demo dataset: ten Japanese freshwater
// fish taxa across five sampling sites.
func DemoTable() *abundance.Table {
	return &abundance.Table{
		Species: []string{
			"コイ/モツゴ類",
			"ボラ",
			"ギンブナ/キンギョ",
			"ニゴイ",
			"オイカワ",
			"ゲンゴロウブナ",
			"モロコ類",
			"チチブ類",
			"メダカ",
			"ナマズ",
		},
		Samples: []string{"多摩川-1", "多摩川-2", "二ヶ領用水-1", "無尽ヶ池-1", "二ヶ領用水-2"},
		Matrix: [][]float64{
			{14, 77, 19, 84, 30},
			{10, 69, 11, 103, 27},
			{0, 31, 0, 57, 23},
			{0, 19, 9, 44, 10},
			{10, 41, 0, 90, 20},
			{0, 0, 8, 20, 0},
			{0, 16, 0, 36, 20},
			{0, 24, 0, 56, 15},
			{0, 0, 0, 458, 0},
			{0, 11, 0, 18, 0},
		},
	}
}

// PipelineCSV returns a small results file in the sequencing
// pipeline's output shape, usable as reader input in tests.
func PipelineCSV() string {
	return strings.Join([]string{
		"TaxonID,Species,Identity,1-1-tamagawa-6000.fastq,1-2-tamagawa-6000.fastq,2-1-nikaryo-6000.fastq",
		"101,Carp,99.1,10,5,3",
		"102,Goby,98.4,0,20,7",
		"103,Medaka,97.2,2,0,11",
	}, "\n") + "\n"
}

// RawTableFromColumns builds a raw table from name/value pairs, typing
// each column the way the file reader would.
func RawTableFromColumns(names []string, cells [][]string) *table.RawTable {
	columns := make([]table.Column, len(names))
	for i, name := range names {
		col := table.Column{Name: name}
		numeric := 0
		text := 0
		for _, raw := range cells[i] {
			cell := parseRaw(raw)
			if !cell.Missing {
				if cell.Numeric {
					numeric++
				} else {
					text++
				}
			}
			col.Cells = append(col.Cells, cell)
		}
		col.Kind = table.KindText
		if numeric > 0 && text == 0 {
			col.Kind = table.KindNumeric
		}
		columns[i] = col
	}
	return &table.RawTable{Columns: columns}
}

func parseRaw(raw string) table.Cell {
	raw = strings.TrimSpace(raw)
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
