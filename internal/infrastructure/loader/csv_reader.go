// Package loader decodes the published tariff table CSV files into domain
// entities. Each table has a fixed column layout; the first row must be a
// header and every error is reported with its 1-based line number.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/lllpei/tonban/internal/domain/tariff"
)

// Column counts per table shape
const (
	sectionColumns    = 3  // code, title, notes
	chapterColumns    = 4  // code, section_code, title, notes
	headingColumns    = 3  // code, chapter_code, title
	subheadingColumns = 3  // code, heading_code, title
	exportLineColumns = 5  // code, item_name, unit_1, unit_2, other_laws
	importLineColumns = 32 // export line columns + 27 duty rate columns
)

// DecodeSections reads the section table from r.
func DecodeSections(r io.Reader) ([]*tariff.Section, error) {
	rows, err := readRows(r, sectionColumns)
	if err != nil {
		return nil, err
	}

	sections := make([]*tariff.Section, len(rows))
	for i, row := range rows {
		sections[i] = &tariff.Section{
			Code:  row[0],
			Title: row[1],
			Notes: row[2],
		}
	}
	return sections, nil
}

// DecodeChapters reads the chapter table from r.
func DecodeChapters(r io.Reader) ([]*tariff.Chapter, error) {
	rows, err := readRows(r, chapterColumns)
	if err != nil {
		return nil, err
	}

	chapters := make([]*tariff.Chapter, len(rows))
	for i, row := range rows {
		chapters[i] = &tariff.Chapter{
			Code:        row[0],
			SectionCode: row[1],
			Title:       row[2],
			Notes:       row[3],
		}
	}
	return chapters, nil
}

// DecodeHeadings reads the heading table from r.
func DecodeHeadings(r io.Reader) ([]*tariff.Heading, error) {
	rows, err := readRows(r, headingColumns)
	if err != nil {
		return nil, err
	}

	headings := make([]*tariff.Heading, len(rows))
	for i, row := range rows {
		headings[i] = &tariff.Heading{
			Code:        row[0],
			ChapterCode: row[1],
			Title:       row[2],
		}
	}
	return headings, nil
}

// DecodeSubheadings reads the subheading table from r.
func DecodeSubheadings(r io.Reader) ([]*tariff.Subheading, error) {
	rows, err := readRows(r, subheadingColumns)
	if err != nil {
		return nil, err
	}

	subheadings := make([]*tariff.Subheading, len(rows))
	for i, row := range rows {
		subheadings[i] = &tariff.Subheading{
			Code:        row[0],
			HeadingCode: row[1],
			Title:       row[2],
		}
	}
	return subheadings, nil
}

// DecodeExportLines reads the export statistical code table from r.
func DecodeExportLines(r io.Reader) ([]*tariff.ExportLine, error) {
	rows, err := readRows(r, exportLineColumns)
	if err != nil {
		return nil, err
	}

	lines := make([]*tariff.ExportLine, len(rows))
	for i, row := range rows {
		lines[i] = &tariff.ExportLine{
			Code:      row[0],
			ItemName:  row[1],
			Unit1:     row[2],
			Unit2:     row[3],
			OtherLaws: row[4],
		}
	}
	return lines, nil
}

// DecodeImportLines reads the import statistical code table from r. The
// 27 duty rate columns follow the common columns in the published order.
func DecodeImportLines(r io.Reader) ([]*tariff.ImportLine, error) {
	rows, err := readRows(r, importLineColumns)
	if err != nil {
		return nil, err
	}

	lines := make([]*tariff.ImportLine, len(rows))
	for i, row := range rows {
		lines[i] = &tariff.ImportLine{
			Code:      row[0],
			ItemName:  row[1],
			Unit1:     row[2],
			Unit2:     row[3],
			OtherLaws: row[4],
			Rates: tariff.DutyRates{
				Basic:     row[5],
				Temporary: row[6],
				WTO:       row[7],
				GSP:       row[8],
				LDC:       row[9],
				EPASG:     row[10],
				EPAMX:     row[11],
				EPAMY:     row[12],
				EPACL:     row[13],
				EPATH:     row[14],
				EPAID:     row[15],
				EPABN:     row[16],
				EPAASEAN:  row[17],
				EPAPH:     row[18],
				EPACH:     row[19],
				EPAVN:     row[20],
				EPAIN:     row[21],
				EPAPE:     row[22],
				EPAAU:     row[23],
				EPAMN:     row[24],
				EPACPTPP:  row[25],
				EPAEU:     row[26],
				EPAUK:     row[27],
				EPARCEP1:  row[28],
				EPARCEP2:  row[29],
				EPARCEP3:  row[30],
				US:        row[31],
			},
		}
	}
	return lines, nil
}

// OpenTableFile opens a table file for decoding.
func OpenTableFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open table file: %w", err)
	}
	return f, nil
}

// readRows reads all data rows, enforcing the header and column count.
func readRows(r io.Reader, columns int) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = columns

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}
	if len(header) != columns {
		return nil, fmt.Errorf("expected %d columns in header, got %d", columns, len(header))
	}

	var rows [][]string
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
