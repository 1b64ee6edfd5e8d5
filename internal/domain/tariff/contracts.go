package tariff

import (
	"context"
	"errors"
)

// ErrCodeNotFound is returned by single-code lookups when the statistical
// code does not exist in the table.
var ErrCodeNotFound = errors.New("statistical code not found")

// TariffLookupService defines single-record retrieval by statistical code.
type TariffLookupService interface {
	// GetExportByCode retrieves the export record for a statistical code.
	// It returns ErrCodeNotFound when the code is unknown.
	GetExportByCode(ctx context.Context, code string) (*Record, error)

	// GetImportByCode retrieves the import record, including duty rates,
	// for a statistical code. It returns ErrCodeNotFound when the code is
	// unknown.
	GetImportByCode(ctx context.Context, code string) (*ImportRecord, error)
}

// TariffSearchService defines keyword search over item names and
// classification titles.
type TariffSearchService interface {
	// SearchExport returns export records matching the query, ordered by
	// statistical code.
	SearchExport(ctx context.Context, query *SearchQuery) ([]*Record, error)

	// SearchImport returns import records matching the query, ordered by
	// statistical code.
	SearchImport(ctx context.Context, query *SearchQuery) ([]*ImportRecord, error)
}

// ExportLineRepository defines persistence operations for the export table.
type ExportLineRepository interface {
	GetByCode(ctx context.Context, code string) (*Record, error)
	Search(ctx context.Context, query *SearchQuery) ([]*Record, error)
	BulkInsert(ctx context.Context, lines []*ExportLine) error
	ReplaceAll(ctx context.Context, lines []*ExportLine) error
	Count(ctx context.Context) (int64, error)
}

// ImportLineRepository defines persistence operations for the import table.
type ImportLineRepository interface {
	GetByCode(ctx context.Context, code string) (*ImportRecord, error)
	Search(ctx context.Context, query *SearchQuery) ([]*ImportRecord, error)
	BulkInsert(ctx context.Context, lines []*ImportLine) error
	ReplaceAll(ctx context.Context, lines []*ImportLine) error
	Count(ctx context.Context) (int64, error)
}

// ClassificationRepository defines persistence operations for the
// classification hierarchy tables.
type ClassificationRepository interface {
	ReplaceSections(ctx context.Context, sections []*Section) error
	ReplaceChapters(ctx context.Context, chapters []*Chapter) error
	ReplaceHeadings(ctx context.Context, headings []*Heading) error
	ReplaceSubheadings(ctx context.Context, subheadings []*Subheading) error
	Counts(ctx context.Context) (sections, chapters, headings, subheadings int64, err error)
}
