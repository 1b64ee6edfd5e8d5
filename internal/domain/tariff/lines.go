package tariff

// ExportLine is a single row of the export statistical code table (輸出統番).
type ExportLine struct {
	Code      string `validate:"required,len=9"`
	ItemName  string `validate:"required,max=1023"`
	Unit1     string `validate:"max=10"`
	Unit2     string `validate:"max=10"`
	OtherLaws string `validate:"max=255"`
}

// DutyRates holds the tariff rate columns of an import line. Values are
// opaque strings ("3.4%", "無税", EPA staging notes) and are never parsed.
type DutyRates struct {
	Basic     string
	Temporary string
	WTO       string
	GSP       string
	LDC       string
	EPASG     string
	EPAMX     string
	EPAMY     string
	EPACL     string
	EPATH     string
	EPAID     string
	EPABN     string
	EPAASEAN  string
	EPAPH     string
	EPACH     string
	EPAVN     string
	EPAIN     string
	EPAPE     string
	EPAAU     string
	EPAMN     string
	EPACPTPP  string
	EPAEU     string
	EPAUK     string
	EPARCEP1  string
	EPARCEP2  string
	EPARCEP3  string
	US        string
}

// ImportLine is a single row of the import statistical code table (輸入統番),
// which carries duty rates on top of the common columns.
type ImportLine struct {
	Code      string `validate:"required,len=9"`
	ItemName  string `validate:"required,max=1023"`
	Unit1     string `validate:"max=10"`
	Unit2     string `validate:"max=10"`
	OtherLaws string `validate:"max=255"`
	Rates     DutyRates
}

// SubheadingCode returns the subheading the line belongs to.
func (l *ExportLine) SubheadingCode() string {
	return l.Code[:SubheadingCodeLen]
}

// SubheadingCode returns the subheading the line belongs to.
func (l *ImportLine) SubheadingCode() string {
	return l.Code[:SubheadingCodeLen]
}

// Validate checks the ExportLine fields against the domain rules
func (l *ExportLine) Validate() error {
	return validateStruct(l)
}

// Validate checks the ImportLine fields against the domain rules
func (l *ImportLine) Validate() error {
	return validateStruct(l)
}
