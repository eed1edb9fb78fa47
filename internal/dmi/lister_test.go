package dmi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListerReport(t *testing.T) {
	table, err := ParseListerReport(strings.NewReader(listerReport))
	require.NoError(t, err)

	system := table.First(TypeSystem)
	require.NotNil(t, system)
	assert.Equal(t, "Dell Inc.", system.Get(FieldManufacturer))
	assert.Equal(t, "OptiPlex 7050 (07A1)", system.Get(FieldProductName))
	assert.Equal(t, "5CZ3PK2", system.Get(FieldSerialNumber))
	assert.Equal(t, "4C4C4544-0043-5A10-8033-B5C04F504B32", system.Get(FieldUUID))
	assert.NotContains(t, system, FieldVersion)

	assert.Equal(t, "Desktop", table.First(TypeChassis).Get(FieldType))

	board := table.First(TypeBaseboard)
	assert.Equal(t, "0Y7WYT", board.Get(FieldProductName))
	assert.Equal(t, "A00", board.Get(FieldVersion))

	bios := table.First(TypeBIOS)
	assert.Equal(t, "Dell Inc.", bios.Get(FieldVendor))
	assert.Equal(t, "1.13.1", bios.Get(FieldVersion))
	assert.Equal(t, "03/25/2019", bios.Get(FieldReleaseDate))

	mem := table.Records(TypeMemoryDevice)
	require.Len(t, mem, 1, "empty banks are dropped")
	assert.Equal(t, "8GiB", mem[0].Get(FieldSize))
	assert.Equal(t, "2400MHz (0.4ns)", mem[0].Get(FieldSpeed))
	assert.Equal(t, "DIMM1", mem[0].Get(FieldLocator))
	assert.Equal(t, "DIMM", mem[0].Get(FieldFormFactor))
	assert.Equal(t, "DDR4", mem[0].Get(FieldType))
	assert.Equal(t, "HMA81GU6AFR8N-UH", mem[0].Get(FieldPartNumber))

	displays := table.Records(TypeDisplay)
	require.Len(t, displays, 2)
	assert.Equal(t, "HD Graphics 630", displays[0].Get(FieldProductName))
	assert.Equal(t, "Intel Corporation", displays[0].Get(FieldManufacturer))
	assert.Equal(t, "VGA compatible controller", displays[0].Get(FieldChipset))
	assert.Equal(t, "1920x1080", displays[0].Get(FieldResolution))
	assert.Equal(t, "256", displays[0].Get(FieldMemory))
	assert.Equal(t, "GK208B [GeForce GT 710]", displays[1].Get(FieldProductName))
	assert.Equal(t, "", displays[1].Get(FieldResolution))
}

func TestParseListerReportEmpty(t *testing.T) {
	table, err := ParseListerReport(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
}

func TestSplitBankDescription(t *testing.T) {
	tests := []struct {
		desc, formFactor, memType string
	}{
		{"DIMM DDR4 Synchronous 2400 MHz (0.4 ns)", "DIMM", "DDR4"},
		{"SODIMM LPDDR3 Synchronous 1867 MHz", "SODIMM", "LPDDR3"},
		{"DIMM RAM", "DIMM", "RAM"},
		{"DDR5 Synchronous", "", "DDR5"},
		{"System memory", "", ""},
	}
	for _, tt := range tests {
		ff, typ := splitBankDescription(tt.desc)
		assert.Equal(t, tt.formFactor, ff, tt.desc)
		assert.Equal(t, tt.memType, typ, tt.desc)
	}
}

func TestLargestMemoryRangeMB(t *testing.T) {
	assert.Equal(t, "256", largestMemoryRangeMB("irq:16 memory:f6000000-f6ffffff memory:e0000000-efffffff"))
	assert.Equal(t, "", largestMemoryRangeMB("memory:c0000-dffff"))
	assert.Equal(t, "", largestMemoryRangeMB("ioport:f000(size=64) memory:zz-yy"))
}
