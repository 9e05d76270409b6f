package ports

import (
	"io"

	"mitoviz/domain/abundance"
)

// TableExporter writes the cleaned table back out for download
type TableExporter interface {
	WriteCSV(w io.Writer, tbl *abundance.Table) error
	WriteXLSX(w io.Writer, tbl *abundance.Table) error
}
