// Command export converts a results file into the cleaned table
// offline: the same classify → build pipeline as the web UI, written
// out as UTF-8-with-BOM CSV or as an xlsx workbook.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"mitoviz/adapters/tabfile"
	visualizer "mitoviz/app"
	"mitoviz/internal"
	"mitoviz/internal/export"
)

func main() {
	input := flag.String("in", "", "input results file (csv, tsv, or xlsx)")
	output := flag.String("out", "mitoviz_processed.csv", "output file (.csv or .xlsx)")
	flag.Parse()

	if *input == "" {
		log.Fatal("usage: export -in tax-results.csv [-out cleaned.csv]")
	}

	src, err := os.Open(*input)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", *input, err)
	}
	defer src.Close()

	logger := internal.NewDefaultLogger()
	service := visualizer.NewVisualizerService(tabfile.NewReader(logger), logger)

	tbl, err := service.ProcessUpload(src, *input)
	if err != nil {
		log.Fatalf("Failed to process %s: %v", *input, err)
	}

	dst, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *output, err)
	}
	defer dst.Close()

	exporter := export.NewExporter()
	if strings.EqualFold(filepath.Ext(*output), ".xlsx") {
		err = exporter.WriteXLSX(dst, tbl)
	} else {
		err = exporter.WriteCSV(dst, tbl)
	}
	if err != nil {
		log.Fatalf("Failed to write %s: %v", *output, err)
	}

	log.Printf("Wrote %s: %d species × %d samples", *output, tbl.SpeciesCount(), tbl.SampleCount())
}
