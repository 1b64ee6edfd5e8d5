// Package dataset contains the domain model of the offline dataset import:
// the tables of the published tariff spreadsheets and the contract of the
// service that bulk-loads them into the database.
package dataset

import (
	"context"
	"fmt"
	"time"
)

// Table identifies one of the loadable tariff tables.
type Table string

// Loadable tables
const (
	TableSections    Table = "sections"
	TableChapters    Table = "chapters"
	TableHeadings    Table = "headings"
	TableSubheadings Table = "subheadings"
	TableExportLines Table = "export_lines"
	TableImportLines Table = "import_lines"
)

// AllTables lists every loadable table in dependency order.
func AllTables() []Table {
	return []Table{
		TableSections,
		TableChapters,
		TableHeadings,
		TableSubheadings,
		TableExportLines,
		TableImportLines,
	}
}

// ParseTable converts a user-supplied table name into a Table.
func ParseTable(name string) (Table, error) {
	for _, t := range AllTables() {
		if string(t) == name {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown table: %s", name)
}

// ImportReport summarizes the outcome of loading one table.
type ImportReport struct {
	BatchID  string
	Table    Table
	Rows     int
	Duration time.Duration
}

// DatasetImportService defines bulk loading of tariff tables from files.
type DatasetImportService interface {
	// ImportTable replaces the contents of a single table with the rows
	// parsed from the given file.
	ImportTable(ctx context.Context, table Table, path string) (*ImportReport, error)

	// ImportAll loads every table from its conventional file name inside
	// dir, fanning out across tables. Reports are returned in table order.
	ImportAll(ctx context.Context, dir string) ([]*ImportReport, error)
}
