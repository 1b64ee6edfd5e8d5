package models

import (
	"github.com/lllpei/tonban/internal/domain/tariff"
)

// ExportLineModel is the GORM database model for export lines (輸出統番)
type ExportLineModel struct {
	Code      string `gorm:"primaryKey;type:varchar(9)"`
	ItemName  string `gorm:"not null;type:varchar(1023)"`
	Unit1     string `gorm:"column:unit_1;type:varchar(10)"`
	Unit2     string `gorm:"column:unit_2;type:varchar(10)"`
	OtherLaws string `gorm:"type:varchar(255)"`
}

// TableName specifies the table name for GORM
func (ExportLineModel) TableName() string {
	return "export_lines"
}

// ToDomain converts GORM model to domain entity
func (m *ExportLineModel) ToDomain() *tariff.ExportLine {
	return &tariff.ExportLine{
		Code:      m.Code,
		ItemName:  m.ItemName,
		Unit1:     m.Unit1,
		Unit2:     m.Unit2,
		OtherLaws: m.OtherLaws,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ExportLineModel) FromDomain(l *tariff.ExportLine) {
	m.Code = l.Code
	m.ItemName = l.ItemName
	m.Unit1 = l.Unit1
	m.Unit2 = l.Unit2
	m.OtherLaws = l.OtherLaws
}

// DutyRateColumns holds the duty rate columns shared by the import line
// model and the import record row.
type DutyRateColumns struct {
	DutyBasic     string `gorm:"column:duty_basic;type:varchar(255)"`
	DutyTemporary string `gorm:"column:duty_temporary;type:varchar(255)"`
	DutyWTO       string `gorm:"column:duty_wto;type:varchar(255)"`
	DutyGSP       string `gorm:"column:duty_gsp;type:varchar(255)"`
	DutyLDC       string `gorm:"column:duty_ldc;type:varchar(255)"`
	DutyEPASG     string `gorm:"column:duty_epa_sg;type:varchar(255)"`
	DutyEPAMX     string `gorm:"column:duty_epa_mx;type:varchar(255)"`
	DutyEPAMY     string `gorm:"column:duty_epa_my;type:varchar(255)"`
	DutyEPACL     string `gorm:"column:duty_epa_cl;type:varchar(255)"`
	DutyEPATH     string `gorm:"column:duty_epa_th;type:varchar(255)"`
	DutyEPAID     string `gorm:"column:duty_epa_id;type:varchar(255)"`
	DutyEPABN     string `gorm:"column:duty_epa_bn;type:varchar(255)"`
	DutyEPAASEAN  string `gorm:"column:duty_epa_asean;type:varchar(255)"`
	DutyEPAPH     string `gorm:"column:duty_epa_ph;type:varchar(255)"`
	DutyEPACH     string `gorm:"column:duty_epa_ch;type:varchar(255)"`
	DutyEPAVN     string `gorm:"column:duty_epa_vn;type:varchar(255)"`
	DutyEPAIN     string `gorm:"column:duty_epa_in;type:varchar(255)"`
	DutyEPAPE     string `gorm:"column:duty_epa_pe;type:varchar(255)"`
	DutyEPAAU     string `gorm:"column:duty_epa_au;type:varchar(255)"`
	DutyEPAMN     string `gorm:"column:duty_epa_mn;type:varchar(255)"`
	DutyEPACPTPP  string `gorm:"column:duty_epa_cptpp;type:varchar(255)"`
	DutyEPAEU     string `gorm:"column:duty_epa_eu;type:varchar(255)"`
	DutyEPAUK     string `gorm:"column:duty_epa_uk;type:varchar(255)"`
	DutyEPARCEP1  string `gorm:"column:duty_epa_rcep1;type:varchar(255)"`
	DutyEPARCEP2  string `gorm:"column:duty_epa_rcep2;type:varchar(255)"`
	DutyEPARCEP3  string `gorm:"column:duty_epa_rcep3;type:varchar(255)"`
	DutyUS        string `gorm:"column:duty_us;type:varchar(255)"`
}

// ToDomain converts the duty columns to the domain value object
func (c *DutyRateColumns) ToDomain() tariff.DutyRates {
	return tariff.DutyRates{
		Basic:     c.DutyBasic,
		Temporary: c.DutyTemporary,
		WTO:       c.DutyWTO,
		GSP:       c.DutyGSP,
		LDC:       c.DutyLDC,
		EPASG:     c.DutyEPASG,
		EPAMX:     c.DutyEPAMX,
		EPAMY:     c.DutyEPAMY,
		EPACL:     c.DutyEPACL,
		EPATH:     c.DutyEPATH,
		EPAID:     c.DutyEPAID,
		EPABN:     c.DutyEPABN,
		EPAASEAN:  c.DutyEPAASEAN,
		EPAPH:     c.DutyEPAPH,
		EPACH:     c.DutyEPACH,
		EPAVN:     c.DutyEPAVN,
		EPAIN:     c.DutyEPAIN,
		EPAPE:     c.DutyEPAPE,
		EPAAU:     c.DutyEPAAU,
		EPAMN:     c.DutyEPAMN,
		EPACPTPP:  c.DutyEPACPTPP,
		EPAEU:     c.DutyEPAEU,
		EPAUK:     c.DutyEPAUK,
		EPARCEP1:  c.DutyEPARCEP1,
		EPARCEP2:  c.DutyEPARCEP2,
		EPARCEP3:  c.DutyEPARCEP3,
		US:        c.DutyUS,
	}
}

// FromDomain fills the duty columns from the domain value object
func (c *DutyRateColumns) FromDomain(r tariff.DutyRates) {
	c.DutyBasic = r.Basic
	c.DutyTemporary = r.Temporary
	c.DutyWTO = r.WTO
	c.DutyGSP = r.GSP
	c.DutyLDC = r.LDC
	c.DutyEPASG = r.EPASG
	c.DutyEPAMX = r.EPAMX
	c.DutyEPAMY = r.EPAMY
	c.DutyEPACL = r.EPACL
	c.DutyEPATH = r.EPATH
	c.DutyEPAID = r.EPAID
	c.DutyEPABN = r.EPABN
	c.DutyEPAASEAN = r.EPAASEAN
	c.DutyEPAPH = r.EPAPH
	c.DutyEPACH = r.EPACH
	c.DutyEPAVN = r.EPAVN
	c.DutyEPAIN = r.EPAIN
	c.DutyEPAPE = r.EPAPE
	c.DutyEPAAU = r.EPAAU
	c.DutyEPAMN = r.EPAMN
	c.DutyEPACPTPP = r.EPACPTPP
	c.DutyEPAEU = r.EPAEU
	c.DutyEPAUK = r.EPAUK
	c.DutyEPARCEP1 = r.EPARCEP1
	c.DutyEPARCEP2 = r.EPARCEP2
	c.DutyEPARCEP3 = r.EPARCEP3
	c.DutyUS = r.US
}

// ImportLineModel is the GORM database model for import lines (輸入統番)
type ImportLineModel struct {
	Code      string `gorm:"primaryKey;type:varchar(9)"`
	ItemName  string `gorm:"not null;type:varchar(1023)"`
	Unit1     string `gorm:"column:unit_1;type:varchar(10)"`
	Unit2     string `gorm:"column:unit_2;type:varchar(10)"`
	OtherLaws string `gorm:"type:varchar(255)"`
	DutyRateColumns
}

// TableName specifies the table name for GORM
func (ImportLineModel) TableName() string {
	return "import_lines"
}

// ToDomain converts GORM model to domain entity
func (m *ImportLineModel) ToDomain() *tariff.ImportLine {
	return &tariff.ImportLine{
		Code:      m.Code,
		ItemName:  m.ItemName,
		Unit1:     m.Unit1,
		Unit2:     m.Unit2,
		OtherLaws: m.OtherLaws,
		Rates:     m.DutyRateColumns.ToDomain(),
	}
}

// FromDomain converts domain entity to GORM model
func (m *ImportLineModel) FromDomain(l *tariff.ImportLine) {
	m.Code = l.Code
	m.ItemName = l.ItemName
	m.Unit1 = l.Unit1
	m.Unit2 = l.Unit2
	m.OtherLaws = l.OtherLaws
	m.DutyRateColumns.FromDomain(l.Rates)
}
