package models

import (
	"github.com/lllpei/tonban/internal/domain/tariff"
)

// RecordRow is the flat row the lookup/search joins scan into. Column
// names follow the aliases of the shared SELECT clause.
type RecordRow struct {
	SectionCode     string `gorm:"column:section_code"`
	ChapterCode     string `gorm:"column:chapter_code"`
	HeadingCode     string `gorm:"column:heading_code"`
	SubheadingCode  string `gorm:"column:subheading_code"`
	Code            string `gorm:"column:code"`
	SectionTitle    string `gorm:"column:section_title"`
	ChapterTitle    string `gorm:"column:chapter_title"`
	HeadingTitle    string `gorm:"column:heading_title"`
	SubheadingTitle string `gorm:"column:subheading_title"`
	SectionNotes    string `gorm:"column:section_notes"`
	ChapterNotes    string `gorm:"column:chapter_notes"`
	ItemName        string `gorm:"column:item_name"`
	Unit1           string `gorm:"column:unit_1"`
	Unit2           string `gorm:"column:unit_2"`
	OtherLaws       string `gorm:"column:other_laws"`
}

// ToDomain converts the row to the domain read model
func (r *RecordRow) ToDomain() *tariff.Record {
	return &tariff.Record{
		SectionCode:     r.SectionCode,
		ChapterCode:     r.ChapterCode,
		HeadingCode:     r.HeadingCode,
		SubheadingCode:  r.SubheadingCode,
		Code:            r.Code,
		SectionTitle:    r.SectionTitle,
		ChapterTitle:    r.ChapterTitle,
		HeadingTitle:    r.HeadingTitle,
		SubheadingTitle: r.SubheadingTitle,
		SectionNotes:    r.SectionNotes,
		ChapterNotes:    r.ChapterNotes,
		ItemName:        r.ItemName,
		Unit1:           r.Unit1,
		Unit2:           r.Unit2,
		OtherLaws:       r.OtherLaws,
	}
}

// ImportRecordRow extends RecordRow with the duty rate columns.
type ImportRecordRow struct {
	RecordRow
	DutyRateColumns
}

// ToDomain converts the row to the domain read model
func (r *ImportRecordRow) ToDomain() *tariff.ImportRecord {
	return &tariff.ImportRecord{
		Record: *r.RecordRow.ToDomain(),
		Rates:  r.DutyRateColumns.ToDomain(),
	}
}
