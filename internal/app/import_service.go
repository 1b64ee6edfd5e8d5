package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/lllpei/tonban/internal/domain/dataset"
	"github.com/lllpei/tonban/internal/domain/tariff"
	"github.com/lllpei/tonban/internal/infrastructure/loader"
	"github.com/lllpei/tonban/internal/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ImportObserver receives import outcomes for instrumentation.
type ImportObserver interface {
	ObserveImport(table string, rows int, duration time.Duration)
	ObserveImportFailure(table string)
}

// importService implements the DatasetImportService interface
type importService struct {
	classificationRepo tariff.ClassificationRepository
	exportLineRepo     tariff.ExportLineRepository
	importLineRepo     tariff.ImportLineRepository
	observer           ImportObserver
	workers            int
	logger             logger.Logger
}

// NewDatasetImportService creates a new importService instance. The
// observer may be nil when no instrumentation is wanted.
func NewDatasetImportService(
	classificationRepo tariff.ClassificationRepository,
	exportLineRepo tariff.ExportLineRepository,
	importLineRepo tariff.ImportLineRepository,
	observer ImportObserver,
	workers int,
	logger logger.Logger,
) (dataset.DatasetImportService, error) {
	if workers < 1 {
		return nil, fmt.Errorf("workers must be positive, got %d", workers)
	}
	return &importService{
		classificationRepo: classificationRepo,
		exportLineRepo:     exportLineRepo,
		importLineRepo:     importLineRepo,
		observer:           observer,
		workers:            workers,
		logger:             logger,
	}, nil
}

// ImportTable replaces the contents of a single table with the rows parsed
// from the given file.
func (s *importService) ImportTable(ctx context.Context, table dataset.Table, path string) (*dataset.ImportReport, error) {
	return s.importTable(ctx, uuid.NewString(), table, path)
}

// ImportAll loads every table from its conventional file name inside dir,
// fanning out across tables. Reports are returned in table order.
func (s *importService) ImportAll(ctx context.Context, dir string) ([]*dataset.ImportReport, error) {
	batchID := uuid.NewString()
	tables := dataset.AllTables()
	reports := make([]*dataset.ImportReport, len(tables))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, table := range tables {
		i, table := i, table
		g.Go(func() error {
			path := filepath.Join(dir, string(table)+".csv")
			report, err := s.importTable(gctx, batchID, table, path)
			if err != nil {
				return fmt.Errorf("table %s: %w", table, err)
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Info("Dataset import batch ", batchID, " completed")
	return reports, nil
}

func (s *importService) importTable(ctx context.Context, batchID string, table dataset.Table, path string) (*dataset.ImportReport, error) {
	start := time.Now()

	rows, err := s.loadTable(ctx, table, path)
	if err != nil {
		if s.observer != nil {
			s.observer.ObserveImportFailure(string(table))
		}
		return nil, err
	}

	duration := time.Since(start)
	if s.observer != nil {
		s.observer.ObserveImport(string(table), rows, duration)
	}

	s.logger.Info("Imported ", rows, " rows into ", table, " in ", duration)
	return &dataset.ImportReport{
		BatchID:  batchID,
		Table:    table,
		Rows:     rows,
		Duration: duration,
	}, nil
}

func (s *importService) loadTable(ctx context.Context, table dataset.Table, path string) (int, error) {
	f, err := loader.OpenTableFile(path)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = f.Close()
	}()

	switch table {
	case dataset.TableSections:
		sections, err := loader.DecodeSections(f)
		if err != nil {
			return 0, err
		}
		return len(sections), s.classificationRepo.ReplaceSections(ctx, sections)

	case dataset.TableChapters:
		chapters, err := loader.DecodeChapters(f)
		if err != nil {
			return 0, err
		}
		return len(chapters), s.classificationRepo.ReplaceChapters(ctx, chapters)

	case dataset.TableHeadings:
		headings, err := loader.DecodeHeadings(f)
		if err != nil {
			return 0, err
		}
		return len(headings), s.classificationRepo.ReplaceHeadings(ctx, headings)

	case dataset.TableSubheadings:
		subheadings, err := loader.DecodeSubheadings(f)
		if err != nil {
			return 0, err
		}
		return len(subheadings), s.classificationRepo.ReplaceSubheadings(ctx, subheadings)

	case dataset.TableExportLines:
		lines, err := loader.DecodeExportLines(f)
		if err != nil {
			return 0, err
		}
		return len(lines), s.exportLineRepo.ReplaceAll(ctx, lines)

	case dataset.TableImportLines:
		lines, err := loader.DecodeImportLines(f)
		if err != nil {
			return 0, err
		}
		return len(lines), s.importLineRepo.ReplaceAll(ctx, lines)

	default:
		return 0, fmt.Errorf("unknown table: %s", table)
	}
}
