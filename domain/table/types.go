// Package table holds the raw tabular representation of an uploaded
// results file, before any classification or reshaping happens.
package table

// ValueKind is the inferred type of a column
type ValueKind string

const (
	KindNumeric ValueKind = "numeric"
	KindText    ValueKind = "text"
)

// Cell is one parsed cell. A missing cell keeps Missing=true and the
// zero values; a non-numeric cell in a numeric column keeps Raw only.
type Cell struct {
	Raw     string
	Number  float64
	Numeric bool
	Missing bool
}

// Column is one named column with heterogeneous cells
type Column struct {
	Name  string
	Kind  ValueKind
	Cells []Cell
}

// IsNumeric reports whether the column was inferred as numeric
func (c Column) IsNumeric() bool {
	return c.Kind == KindNumeric
}

// RawTable is an ordered sequence of named columns as parsed from an
// uploaded file. It exists only for one upload-to-render cycle.
type RawTable struct {
	Columns []Column
}

// RowCount returns the number of data rows (header excluded)
func (t *RawTable) RowCount() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Cells)
}

// ColumnNames returns column names in table order
func (t *RawTable) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

// ColumnIndex returns the index of the column with the given name, or
// -1 if no column matches exactly
func (t *RawTable) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if col.Name == name {
			return i
		}
	}
	return -1
}
