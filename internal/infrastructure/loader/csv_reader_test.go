//go:build unit
// +build unit

package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSections(t *testing.T) {
	input := "code,title,notes\n" +
		"16,機械類及び電気機器,部注1\n" +
		"17,車両及び輸送機器,\n"

	sections, err := DecodeSections(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, sections, 2)
	assert.Equal(t, "16", sections[0].Code)
	assert.Equal(t, "機械類及び電気機器", sections[0].Title)
	assert.Equal(t, "部注1", sections[0].Notes)
	assert.Equal(t, "", sections[1].Notes)
}

func TestDecodeSections_MissingHeader(t *testing.T) {
	_, err := DecodeSections(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing header row")
}

func TestDecodeChapters(t *testing.T) {
	input := "code,section_code,title,notes\n" +
		"84,16,原子炉、ボイラー及び機械類,類注1\n"

	chapters, err := DecodeChapters(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, chapters, 1)
	assert.Equal(t, "84", chapters[0].Code)
	assert.Equal(t, "16", chapters[0].SectionCode)
}

func TestDecodeExportLines(t *testing.T) {
	input := "code,item_name,unit_1,unit_2,other_laws\n" +
		"8407.2100,船外機（火花点火式）,NO,KG,輸出貿易管理令\n"

	lines, err := DecodeExportLines(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "8407.2100", lines[0].Code)
	assert.Equal(t, "船外機（火花点火式）", lines[0].ItemName)
	assert.Equal(t, "NO", lines[0].Unit1)
	assert.Equal(t, "輸出貿易管理令", lines[0].OtherLaws)
}

func TestDecodeExportLines_WrongColumnCount(t *testing.T) {
	input := "code,item_name,unit_1,unit_2,other_laws\n" +
		"8407.2100,船外機\n"

	_, err := DecodeExportLines(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestDecodeImportLines(t *testing.T) {
	header := "code,item_name,unit_1,unit_2,other_laws," +
		"duty_basic,duty_temporary,duty_wto,duty_gsp,duty_ldc," +
		"duty_epa_sg,duty_epa_mx,duty_epa_my,duty_epa_cl,duty_epa_th," +
		"duty_epa_id,duty_epa_bn,duty_epa_asean,duty_epa_ph,duty_epa_ch," +
		"duty_epa_vn,duty_epa_in,duty_epa_pe,duty_epa_au,duty_epa_mn," +
		"duty_epa_cptpp,duty_epa_eu,duty_epa_uk,duty_epa_rcep1,duty_epa_rcep2," +
		"duty_epa_rcep3,duty_us"
	row := "8407.2100,船外機（火花点火式）,NO,KG,," +
		"3.4%,,2.8%,無税,無税," +
		"無税,無税,無税,無税,無税," +
		"無税,無税,無税,無税,無税," +
		"無税,無税,無税,無税,無税," +
		"無税,無税,無税,無税,無税," +
		"無税,2.8%"

	lines, err := DecodeImportLines(strings.NewReader(header + "\n" + row + "\n"))
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "8407.2100", lines[0].Code)
	assert.Equal(t, "3.4%", lines[0].Rates.Basic)
	assert.Equal(t, "", lines[0].Rates.Temporary)
	assert.Equal(t, "2.8%", lines[0].Rates.WTO)
	assert.Equal(t, "2.8%", lines[0].Rates.US)
	assert.Equal(t, "無税", lines[0].Rates.EPARCEP3)
}
