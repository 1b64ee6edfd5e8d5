package persistence

import (
	"gorm.io/gorm"
)

// Shared SELECT clause for the lookup/search joins. Aliases line up with
// models.RecordRow.
const selectRecordColumns = `
	b.code AS section_code,
	r.code AS chapter_code,
	k.code AS heading_code,
	g.code AS subheading_code,
	te.code AS code,
	b.title AS section_title,
	r.title AS chapter_title,
	k.title AS heading_title,
	g.title AS subheading_title,
	b.notes AS section_notes,
	r.notes AS chapter_notes,
	te.item_name AS item_name,
	te.unit_1 AS unit_1,
	te.unit_2 AS unit_2,
	te.other_laws AS other_laws`

// Duty rate columns appended for import records. Column names already
// match models.DutyRateColumns, no aliasing needed.
const selectDutyRateColumns = `,
	te.duty_basic,
	te.duty_temporary,
	te.duty_wto,
	te.duty_gsp,
	te.duty_ldc,
	te.duty_epa_sg,
	te.duty_epa_mx,
	te.duty_epa_my,
	te.duty_epa_cl,
	te.duty_epa_th,
	te.duty_epa_id,
	te.duty_epa_bn,
	te.duty_epa_asean,
	te.duty_epa_ph,
	te.duty_epa_ch,
	te.duty_epa_vn,
	te.duty_epa_in,
	te.duty_epa_pe,
	te.duty_epa_au,
	te.duty_epa_mn,
	te.duty_epa_cptpp,
	te.duty_epa_eu,
	te.duty_epa_uk,
	te.duty_epa_rcep1,
	te.duty_epa_rcep2,
	te.duty_epa_rcep3,
	te.duty_us`

// joinedLines builds the line-to-section join chain. The subheading is
// derived from the first seven characters of the statistical code, the
// rest of the hierarchy follows the stored parent codes.
func joinedLines(db *gorm.DB, table string) *gorm.DB {
	return db.Table(table+" AS te").
		Joins("JOIN subheadings AS g ON g.code = substr(te.code, 1, 7)").
		Joins("JOIN headings AS k ON k.code = g.heading_code").
		Joins("JOIN chapters AS r ON r.code = k.chapter_code").
		Joins("JOIN sections AS b ON b.code = r.section_code")
}

// keywordClause applies the LIKE filter over the item name and the four
// classification titles.
func keywordClause(db *gorm.DB, keyword string) *gorm.DB {
	kw := "%" + keyword + "%"
	return db.Where(
		"te.item_name LIKE ? OR b.title LIKE ? OR r.title LIKE ? OR k.title LIKE ? OR g.title LIKE ?",
		kw, kw, kw, kw, kw,
	)
}
