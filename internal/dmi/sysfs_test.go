package dmi

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSysfs(t *testing.T) {
	fsys := fstest.MapFS{
		"bios_vendor":       {Data: []byte("Dell Inc.\n")},
		"bios_version":      {Data: []byte("1.13.1\n")},
		"bios_date":         {Data: []byte("06/10/2020\n")},
		"sys_vendor":        {Data: []byte("Dell Inc.\n")},
		"product_name":      {Data: []byte("OptiPlex 7050\n")},
		"board_name":        {Data: []byte("0Y7WYT\n")},
		"board_asset_tag":   {Data: []byte("\n")},
		"chassis_type":      {Data: []byte("10\n")},
		"chassis_asset_tag": {Data: []byte("IT-0042\n")},
	}

	table := ReadSysfs(fsys)

	bios := table.First(TypeBIOS)
	assert.Equal(t, "Dell Inc.", bios.Get(FieldVendor))
	assert.Equal(t, "06/10/2020", bios.Get(FieldReleaseDate))
	assert.Equal(t, "OptiPlex 7050", table.First(TypeSystem).Get(FieldProductName))
	assert.Empty(t, table.First(TypeSystem).Get(FieldSerialNumber))

	board := table.First(TypeBaseboard)
	assert.Equal(t, "0Y7WYT", board.Get(FieldProductName))
	_, hasTag := board[FieldAssetTag]
	assert.False(t, hasTag)

	chassis := table.First(TypeChassis)
	assert.Equal(t, "Notebook", chassis.Get(FieldType))
	assert.Equal(t, "IT-0042", chassis.Get(FieldAssetTag))
	require.Len(t, table.Records(TypeChassis), 1)
}

func TestReadSysfsEmpty(t *testing.T) {
	assert.Equal(t, 0, ReadSysfs(fstest.MapFS{}).Len())
}

func TestReadSysfsBadChassisType(t *testing.T) {
	table := ReadSysfs(fstest.MapFS{"chassis_type": {Data: []byte("desktop\n")}})
	assert.Equal(t, 0, table.Len())
}

const pciReport = `00:00.0 "Host bridge" "Intel Corporation" "Xeon E3-1200 v6/7th Gen Core Processor Host Bridge/DRAM Registers" -r05 "Dell" "Device 07a1"
00:02.0 "VGA compatible controller" "Intel Corporation" "HD Graphics 630" -r04 "Dell" "Device 07a1"
01:00.0 "3D controller" "NVIDIA Corporation" "GP107M [GeForce GTX 1050 Mobile]" -ra1 "Dell" "Device 07be"
02:00.0 "Ethernet controller" "Realtek Semiconductor Co., Ltd." "RTL8111/8168/8411 PCI Express Gigabit Ethernet Controller" -r15 "Dell" "Device 07a1"
`

func TestParsePCIReport(t *testing.T) {
	table, err := ParsePCIReport(strings.NewReader(pciReport))
	require.NoError(t, err)

	displays := table.Records(TypeDisplay)
	require.Len(t, displays, 2)
	assert.Equal(t, Record{
		FieldChipset:      "VGA compatible controller",
		FieldManufacturer: "Intel Corporation",
		FieldProductName:  "HD Graphics 630",
	}, displays[0])
	assert.Equal(t, "NVIDIA Corporation", displays[1].Get(FieldManufacturer))
	assert.Equal(t, 2, table.Len())
}

func TestQuotedFields(t *testing.T) {
	assert.Equal(t, []string{"a", "b c"}, quotedFields(`00:01.0 "a" -r01 "b c"`))
	assert.Empty(t, quotedFields(`no quotes`))
	assert.Equal(t, []string{"a"}, quotedFields(`"a" "unterminated`))
}
