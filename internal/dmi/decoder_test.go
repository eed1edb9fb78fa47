package dmi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecoderReport(t *testing.T) {
	table, err := ParseDecoderReport(strings.NewReader(decoderReport))
	require.NoError(t, err)

	bios := table.First(TypeBIOS)
	require.NotNil(t, bios)
	assert.Equal(t, "Dell Inc.", bios.Get(FieldVendor))
	assert.Equal(t, "1.13.1", bios.Get(FieldVersion))
	assert.Equal(t, "03/25/2019", bios.Get(FieldReleaseDate))
	assert.Equal(t, "", bios.Get("Characteristics"))
	assert.NotContains(t, bios, "PCI is supported")
	assert.Equal(t, "1.13", bios.Get("BIOS Revision"))

	system := table.First(TypeSystem)
	assert.Equal(t, "OptiPlex 7050", system.Get(FieldProductName))
	assert.Equal(t, "Not Specified", system.Get(FieldVersion))
	assert.Equal(t, "4c4c4544-0043-5a10-8033-b5c04f504b32", system.Get(FieldUUID))

	assert.Equal(t, "Mini Tower", table.First(TypeChassis).Get(FieldType))
	assert.Equal(t, "IT-0042", table.First(TypeChassis).Get(FieldAssetTag))
	assert.Equal(t, "System Memory", table.First(TypePhysicalMemory).Get(FieldUse))

	mem := table.Records(TypeMemoryDevice)
	require.Len(t, mem, 2)
	assert.Equal(t, "8 GB", mem[0].Get(FieldSize))
	assert.Equal(t, "DIMM1", mem[0].Get(FieldLocator))
	assert.Equal(t, "No Module Installed", mem[1].Get(FieldSize))

	assert.Len(t, table.Records(RecordType(127)), 0, "records without fields are dropped")
	assert.Equal(t, 7, table.Len())
}

func TestParseDecoderReportIndentedWithSpaces(t *testing.T) {
	report := "Handle 0x0000, DMI type 0, 24 bytes\n" +
		"BIOS Information\n" +
		"    Vendor: Acme\n" +
		"    Characteristics:\n" +
		"        Vendor: nested item\n" +
		"    Version: 2.0\n"

	table, err := ParseDecoderReport(strings.NewReader(report))
	require.NoError(t, err)

	bios := table.First(TypeBIOS)
	assert.Equal(t, "Acme", bios.Get(FieldVendor))
	assert.Equal(t, "2.0", bios.Get(FieldVersion))
}

func TestParseDecoderReportTruncated(t *testing.T) {
	cut := decoderReport[:strings.Index(decoderReport, "Wake-up Type")]

	table, err := ParseDecoderReport(strings.NewReader(cut))
	require.NoError(t, err)

	assert.Equal(t, "Dell Inc.", table.First(TypeBIOS).Get(FieldVendor))
	assert.Equal(t, "5CZ3PK2", table.First(TypeSystem).Get(FieldSerialNumber))
	assert.Nil(t, table.First(TypeBaseboard))
}

func TestParseDecoderReportGarbage(t *testing.T) {
	table, err := ParseDecoderReport(strings.NewReader("no handles here\nHandle nonsense\n\tKey: value\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
}

func TestParseHandleLine(t *testing.T) {
	tests := []struct {
		line string
		want RecordType
		ok   bool
	}{
		{"Handle 0x0000, DMI type 0, 24 bytes", TypeBIOS, true},
		{"Handle 0x0040, DMI type 17, 40 bytes", TypeMemoryDevice, true},
		{"Handle 0x0040, DMI type x, 40 bytes", 0, false},
		{"Handle 0x0040", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseHandleLine(tt.line)
		assert.Equal(t, tt.ok, ok, tt.line)
		assert.Equal(t, tt.want, got, tt.line)
	}
}
