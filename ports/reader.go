package ports

import (
	"io"

	"mitoviz/domain/table"
)

// TableReader parses an uploaded results file into a raw table.
// The filename is advisory (format routing only).
type TableReader interface {
	Read(src io.Reader, filename string) (*table.RawTable, error)
}
