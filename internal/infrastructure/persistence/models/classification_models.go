package models

import (
	"github.com/lllpei/tonban/internal/domain/tariff"
)

// SectionModel is the GORM database model for sections (部番)
type SectionModel struct {
	Code  string `gorm:"primaryKey;type:varchar(2)"`
	Title string `gorm:"not null;type:varchar(255)"`
	Notes string `gorm:"type:text"`
}

// TableName specifies the table name for GORM
func (SectionModel) TableName() string {
	return "sections"
}

// ToDomain converts GORM model to domain entity
func (m *SectionModel) ToDomain() *tariff.Section {
	return &tariff.Section{
		Code:  m.Code,
		Title: m.Title,
		Notes: m.Notes,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SectionModel) FromDomain(s *tariff.Section) {
	m.Code = s.Code
	m.Title = s.Title
	m.Notes = s.Notes
}

// ChapterModel is the GORM database model for chapters (類番)
type ChapterModel struct {
	Code        string `gorm:"primaryKey;type:varchar(2)"`
	SectionCode string `gorm:"not null;index;type:varchar(2)"`
	Title       string `gorm:"not null;type:varchar(255)"`
	Notes       string `gorm:"type:text"`
}

// TableName specifies the table name for GORM
func (ChapterModel) TableName() string {
	return "chapters"
}

// ToDomain converts GORM model to domain entity
func (m *ChapterModel) ToDomain() *tariff.Chapter {
	return &tariff.Chapter{
		Code:        m.Code,
		SectionCode: m.SectionCode,
		Title:       m.Title,
		Notes:       m.Notes,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ChapterModel) FromDomain(c *tariff.Chapter) {
	m.Code = c.Code
	m.SectionCode = c.SectionCode
	m.Title = c.Title
	m.Notes = c.Notes
}

// HeadingModel is the GORM database model for headings (項番)
type HeadingModel struct {
	Code        string `gorm:"primaryKey;type:varchar(4)"`
	ChapterCode string `gorm:"not null;index;type:varchar(2)"`
	Title       string `gorm:"not null;type:varchar(1023)"`
}

// TableName specifies the table name for GORM
func (HeadingModel) TableName() string {
	return "headings"
}

// ToDomain converts GORM model to domain entity
func (m *HeadingModel) ToDomain() *tariff.Heading {
	return &tariff.Heading{
		Code:        m.Code,
		ChapterCode: m.ChapterCode,
		Title:       m.Title,
	}
}

// FromDomain converts domain entity to GORM model
func (m *HeadingModel) FromDomain(h *tariff.Heading) {
	m.Code = h.Code
	m.ChapterCode = h.ChapterCode
	m.Title = h.Title
}

// SubheadingModel is the GORM database model for subheadings (号番)
type SubheadingModel struct {
	Code        string `gorm:"primaryKey;type:varchar(7)"`
	HeadingCode string `gorm:"not null;index;type:varchar(4)"`
	Title       string `gorm:"type:varchar(1023)"`
}

// TableName specifies the table name for GORM
func (SubheadingModel) TableName() string {
	return "subheadings"
}

// ToDomain converts GORM model to domain entity
func (m *SubheadingModel) ToDomain() *tariff.Subheading {
	return &tariff.Subheading{
		Code:        m.Code,
		HeadingCode: m.HeadingCode,
		Title:       m.Title,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SubheadingModel) FromDomain(s *tariff.Subheading) {
	m.Code = s.Code
	m.HeadingCode = s.HeadingCode
	m.Title = s.Title
}
