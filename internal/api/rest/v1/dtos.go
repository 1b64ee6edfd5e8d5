package v1

import (
	"github.com/lllpei/tonban/internal/domain/tariff"
)

// APIResponse is the common envelope of every endpoint. resultCd reports
// success, message is set on failure only, data carries the records.
type APIResponse struct {
	ResultCd bool        `json:"resultCd"`
	Message  string      `json:"message,omitempty"`
	Data     interface{} `json:"data,omitempty"`
}

// successResponse wraps data in the common envelope
func successResponse(data interface{}) APIResponse {
	return APIResponse{ResultCd: true, Data: data}
}

// errorResponse wraps an error message in the common envelope
func errorResponse(message string) APIResponse {
	return APIResponse{ResultCd: false, Message: message}
}

// RecordResponse is the wire representation of a joined tariff record
type RecordResponse struct {
	SectionCode     string `json:"sectionCode"`
	ChapterCode     string `json:"chapterCode"`
	HeadingCode     string `json:"headingCode"`
	SubheadingCode  string `json:"subheadingCode"`
	Code            string `json:"code"`
	SectionTitle    string `json:"sectionTitle"`
	ChapterTitle    string `json:"chapterTitle"`
	HeadingTitle    string `json:"headingTitle"`
	SubheadingTitle string `json:"subheadingTitle"`
	SectionNotes    string `json:"sectionNotes,omitempty"`
	ChapterNotes    string `json:"chapterNotes,omitempty"`
	ItemName        string `json:"itemName"`
	Unit1           string `json:"unit1,omitempty"`
	Unit2           string `json:"unit2,omitempty"`
	OtherLaws       string `json:"otherLaws,omitempty"`
}

// DutyRatesResponse carries the duty rate columns of an import record
type DutyRatesResponse struct {
	DutyBasic     string `json:"dutyBasic,omitempty"`
	DutyTemporary string `json:"dutyTemporary,omitempty"`
	DutyWTO       string `json:"dutyWto,omitempty"`
	DutyGSP       string `json:"dutyGsp,omitempty"`
	DutyLDC       string `json:"dutyLdc,omitempty"`
	DutyEPASG     string `json:"dutyEpaSg,omitempty"`
	DutyEPAMX     string `json:"dutyEpaMx,omitempty"`
	DutyEPAMY     string `json:"dutyEpaMy,omitempty"`
	DutyEPACL     string `json:"dutyEpaCl,omitempty"`
	DutyEPATH     string `json:"dutyEpaTh,omitempty"`
	DutyEPAID     string `json:"dutyEpaId,omitempty"`
	DutyEPABN     string `json:"dutyEpaBn,omitempty"`
	DutyEPAASEAN  string `json:"dutyEpaAsean,omitempty"`
	DutyEPAPH     string `json:"dutyEpaPh,omitempty"`
	DutyEPACH     string `json:"dutyEpaCh,omitempty"`
	DutyEPAVN     string `json:"dutyEpaVn,omitempty"`
	DutyEPAIN     string `json:"dutyEpaIn,omitempty"`
	DutyEPAPE     string `json:"dutyEpaPe,omitempty"`
	DutyEPAAU     string `json:"dutyEpaAu,omitempty"`
	DutyEPAMN     string `json:"dutyEpaMn,omitempty"`
	DutyEPACPTPP  string `json:"dutyEpaCptpp,omitempty"`
	DutyEPAEU     string `json:"dutyEpaEu,omitempty"`
	DutyEPAUK     string `json:"dutyEpaUk,omitempty"`
	DutyEPARCEP1  string `json:"dutyEpaRcep1,omitempty"`
	DutyEPARCEP2  string `json:"dutyEpaRcep2,omitempty"`
	DutyEPARCEP3  string `json:"dutyEpaRcep3,omitempty"`
	DutyUS        string `json:"dutyUs,omitempty"`
}

// ImportRecordResponse is the wire representation of an import record,
// flattening the duty rates next to the common columns like the source
// tables do.
type ImportRecordResponse struct {
	RecordResponse
	DutyRatesResponse
}

// recordResponseFrom maps a domain record to its wire representation
func recordResponseFrom(record *tariff.Record) RecordResponse {
	return RecordResponse{
		SectionCode:     record.SectionCode,
		ChapterCode:     record.ChapterCode,
		HeadingCode:     record.HeadingCode,
		SubheadingCode:  record.SubheadingCode,
		Code:            record.Code,
		SectionTitle:    record.SectionTitle,
		ChapterTitle:    record.ChapterTitle,
		HeadingTitle:    record.HeadingTitle,
		SubheadingTitle: record.SubheadingTitle,
		SectionNotes:    record.SectionNotes,
		ChapterNotes:    record.ChapterNotes,
		ItemName:        record.ItemName,
		Unit1:           record.Unit1,
		Unit2:           record.Unit2,
		OtherLaws:       record.OtherLaws,
	}
}

// importRecordResponseFrom maps a domain import record to its wire representation
func importRecordResponseFrom(record *tariff.ImportRecord) ImportRecordResponse {
	return ImportRecordResponse{
		RecordResponse: recordResponseFrom(&record.Record),
		DutyRatesResponse: DutyRatesResponse{
			DutyBasic:     record.Rates.Basic,
			DutyTemporary: record.Rates.Temporary,
			DutyWTO:       record.Rates.WTO,
			DutyGSP:       record.Rates.GSP,
			DutyLDC:       record.Rates.LDC,
			DutyEPASG:     record.Rates.EPASG,
			DutyEPAMX:     record.Rates.EPAMX,
			DutyEPAMY:     record.Rates.EPAMY,
			DutyEPACL:     record.Rates.EPACL,
			DutyEPATH:     record.Rates.EPATH,
			DutyEPAID:     record.Rates.EPAID,
			DutyEPABN:     record.Rates.EPABN,
			DutyEPAASEAN:  record.Rates.EPAASEAN,
			DutyEPAPH:     record.Rates.EPAPH,
			DutyEPACH:     record.Rates.EPACH,
			DutyEPAVN:     record.Rates.EPAVN,
			DutyEPAIN:     record.Rates.EPAIN,
			DutyEPAPE:     record.Rates.EPAPE,
			DutyEPAAU:     record.Rates.EPAAU,
			DutyEPAMN:     record.Rates.EPAMN,
			DutyEPACPTPP:  record.Rates.EPACPTPP,
			DutyEPAEU:     record.Rates.EPAEU,
			DutyEPAUK:     record.Rates.EPAUK,
			DutyEPARCEP1:  record.Rates.EPARCEP1,
			DutyEPARCEP2:  record.Rates.EPARCEP2,
			DutyEPARCEP3:  record.Rates.EPARCEP3,
			DutyUS:        record.Rates.US,
		},
	}
}
