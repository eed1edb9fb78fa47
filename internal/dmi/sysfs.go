package dmi

import (
	"io/fs"
	"strconv"
	"strings"
)

// SysfsDir is where Linux exports the identity strings of the firmware table.
// Most files are world-readable; serials and the UUID need root.
const SysfsDir = "/sys/class/dmi/id"

type sysfsField struct {
	file  string
	typ   RecordType
	field string
}

var sysfsFields = []sysfsField{
	{"bios_vendor", TypeBIOS, FieldVendor},
	{"bios_version", TypeBIOS, FieldVersion},
	{"bios_date", TypeBIOS, FieldReleaseDate},
	{"sys_vendor", TypeSystem, FieldManufacturer},
	{"product_name", TypeSystem, FieldProductName},
	{"product_version", TypeSystem, FieldVersion},
	{"product_serial", TypeSystem, FieldSerialNumber},
	{"product_uuid", TypeSystem, FieldUUID},
	{"board_vendor", TypeBaseboard, FieldManufacturer},
	{"board_name", TypeBaseboard, FieldProductName},
	{"board_version", TypeBaseboard, FieldVersion},
	{"board_serial", TypeBaseboard, FieldSerialNumber},
	{"board_asset_tag", TypeBaseboard, FieldAssetTag},
	{"chassis_vendor", TypeChassis, FieldManufacturer},
	{"chassis_version", TypeChassis, FieldVersion},
	{"chassis_serial", TypeChassis, FieldSerialNumber},
	{"chassis_asset_tag", TypeChassis, FieldAssetTag},
	{"chassis_type", TypeChassis, FieldType},
}

// ReadSysfs builds a table from the per-field files of the dmi/id directory.
// Missing or unreadable files leave their field out.
func ReadSysfs(fsys fs.FS) Table {
	recs := make(map[RecordType]Record)
	for _, f := range sysfsFields {
		data, err := fs.ReadFile(fsys, f.file)
		if err != nil {
			continue
		}
		v := strings.TrimSpace(string(data))
		if v == "" {
			continue
		}
		if f.file == "chassis_type" {
			n, err := strconv.ParseUint(v, 10, 8)
			if err != nil {
				continue
			}
			v = lookup(chassisTypes, byte(n)&0x7f)
		}
		if recs[f.typ] == nil {
			recs[f.typ] = make(Record)
		}
		recs[f.typ][f.field] = v
	}

	table := make(Table)
	for typ, rec := range recs {
		table.Add(typ, rec)
	}
	return table
}
