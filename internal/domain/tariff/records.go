package tariff

// Record is the flattened read model served by code lookup and keyword
// search: a statistical code line joined with the titles and notes of its
// four classification ancestors.
type Record struct {
	SectionCode     string
	ChapterCode     string
	HeadingCode     string
	SubheadingCode  string
	Code            string
	SectionTitle    string
	ChapterTitle    string
	HeadingTitle    string
	SubheadingTitle string
	SectionNotes    string
	ChapterNotes    string
	ItemName        string
	Unit1           string
	Unit2           string
	OtherLaws       string
}

// ImportRecord extends Record with the duty rate columns of the import table.
type ImportRecord struct {
	Record
	Rates DutyRates
}
