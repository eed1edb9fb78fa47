package dmi

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/digitalocean/go-smbios/smbios"
	"github.com/google/uuid"
)

// FromStructures decodes the formatted areas of raw SMBIOS structures into a
// table using the same field names dmidecode prints. major and minor are the
// SMBIOS version from the entry point; they select the UUID byte order.
func FromStructures(ss []*smbios.Structure, major, minor int) Table {
	table := make(Table)
	for _, s := range ss {
		if s == nil {
			continue
		}
		switch typ := RecordType(s.Header.Type); typ {
		case TypeBIOS:
			table.Add(typ, compact(Record{
				FieldVendor:      structString(s, 0x04),
				FieldVersion:     structString(s, 0x05),
				FieldReleaseDate: structString(s, 0x08),
			}))
		case TypeSystem:
			table.Add(typ, compact(Record{
				FieldManufacturer: structString(s, 0x04),
				FieldProductName:  structString(s, 0x05),
				FieldVersion:      structString(s, 0x06),
				FieldSerialNumber: structString(s, 0x07),
				FieldUUID:         structUUID(s, 0x08, major > 2 || (major == 2 && minor >= 6)),
			}))
		case TypeBaseboard:
			table.Add(typ, compact(Record{
				FieldManufacturer: structString(s, 0x04),
				FieldProductName:  structString(s, 0x05),
				FieldVersion:      structString(s, 0x06),
				FieldSerialNumber: structString(s, 0x07),
				FieldAssetTag:     structString(s, 0x08),
			}))
		case TypeChassis:
			rec := Record{
				FieldManufacturer: structString(s, 0x04),
				FieldVersion:      structString(s, 0x06),
				FieldSerialNumber: structString(s, 0x07),
				FieldAssetTag:     structString(s, 0x08),
			}
			if b, ok := structByte(s, 0x05); ok {
				rec[FieldType] = lookup(chassisTypes, b&0x7f)
			}
			table.Add(typ, compact(rec))
		case TypePhysicalMemory:
			rec := Record{}
			if b, ok := structByte(s, 0x05); ok {
				rec[FieldUse] = lookup(memoryArrayUses, b)
			}
			table.Add(typ, compact(rec))
		case TypeMemoryDevice:
			table.Add(typ, compact(decodeMemoryDevice(s)))
		}
	}
	return table
}

func decodeMemoryDevice(s *smbios.Structure) Record {
	rec := Record{
		FieldLocator:      structString(s, 0x10),
		FieldBankLocator:  structString(s, 0x11),
		FieldManufacturer: structString(s, 0x17),
		FieldSerialNumber: structString(s, 0x18),
		FieldAssetTag:     structString(s, 0x19),
		FieldPartNumber:   structString(s, 0x1a),
	}

	if size, ok := structWord(s, 0x0c); ok {
		switch {
		case size == 0:
			rec[FieldSize] = "No Module Installed"
		case size == 0xffff:
			rec[FieldSize] = "Unknown"
		case size == 0x7fff:
			if ext, ok := structDword(s, 0x1c); ok {
				rec[FieldSize] = fmt.Sprintf("%d MB", ext&0x7fffffff)
			}
		case size&0x8000 != 0:
			rec[FieldSize] = fmt.Sprintf("%d kB", size&0x7fff)
		default:
			rec[FieldSize] = fmt.Sprintf("%d MB", size)
		}
	}
	if b, ok := structByte(s, 0x0e); ok {
		rec[FieldFormFactor] = lookup(formFactorNames, b)
	}
	if b, ok := structByte(s, 0x12); ok {
		rec[FieldType] = lookup(memoryTypes, b)
	}
	if speed, ok := structWord(s, 0x15); ok {
		if speed == 0 {
			rec[FieldSpeed] = "Unknown"
		} else {
			rec[FieldSpeed] = fmt.Sprintf("%d MT/s", speed)
		}
	}
	return rec
}

// Offsets below are relative to the start of the structure, header included,
// as in the SMBIOS documentation.

func structByte(s *smbios.Structure, off int) (byte, bool) {
	i := off - 4
	if i < 0 || i >= len(s.Formatted) {
		return 0, false
	}
	return s.Formatted[i], true
}

func structWord(s *smbios.Structure, off int) (uint16, bool) {
	i := off - 4
	if i < 0 || i+2 > len(s.Formatted) {
		return 0, false
	}
	return binary.LittleEndian.Uint16(s.Formatted[i:]), true
}

func structDword(s *smbios.Structure, off int) (uint32, bool) {
	i := off - 4
	if i < 0 || i+4 > len(s.Formatted) {
		return 0, false
	}
	return binary.LittleEndian.Uint32(s.Formatted[i:]), true
}

// structString resolves the 1-based string index stored at off.
func structString(s *smbios.Structure, off int) string {
	idx, ok := structByte(s, off)
	if !ok || idx == 0 || int(idx) > len(s.Strings) {
		return ""
	}
	return strings.TrimSpace(s.Strings[idx-1])
}

// structUUID decodes the 16-byte system UUID. All-zero means not present and
// all-ones means not set; both yield "". Since SMBIOS 2.6 the first three
// fields are little-endian.
func structUUID(s *smbios.Structure, off int, littleEndian bool) string {
	i := off - 4
	if i < 0 || i+16 > len(s.Formatted) {
		return ""
	}
	raw := s.Formatted[i : i+16]

	zeros, ones := true, true
	for _, b := range raw {
		zeros = zeros && b == 0x00
		ones = ones && b == 0xff
	}
	if zeros || ones {
		return ""
	}

	var u uuid.UUID
	copy(u[:], raw)
	if littleEndian {
		u[0], u[1], u[2], u[3] = u[3], u[2], u[1], u[0]
		u[4], u[5] = u[5], u[4]
		u[6], u[7] = u[7], u[6]
	}
	return strings.ToUpper(u.String())
}

func lookup(names map[byte]string, b byte) string {
	if name, ok := names[b]; ok {
		return name
	}
	return fmt.Sprintf("<OUT OF SPEC> (0x%02X)", b)
}

var chassisTypes = map[byte]string{
	0x01: "Other", 0x02: "Unknown", 0x03: "Desktop", 0x04: "Low Profile Desktop",
	0x05: "Pizza Box", 0x06: "Mini Tower", 0x07: "Tower", 0x08: "Portable",
	0x09: "Laptop", 0x0a: "Notebook", 0x0b: "Hand Held", 0x0c: "Docking Station",
	0x0d: "All In One", 0x0e: "Sub Notebook", 0x0f: "Space-saving", 0x10: "Lunch Box",
	0x11: "Main Server Chassis", 0x12: "Expansion Chassis", 0x13: "Sub Chassis",
	0x14: "Bus Expansion Chassis", 0x15: "Peripheral Chassis", 0x16: "RAID Chassis",
	0x17: "Rack Mount Chassis", 0x18: "Sealed-case PC", 0x19: "Multi-system",
	0x1a: "CompactPCI", 0x1b: "AdvancedTCA", 0x1c: "Blade", 0x1d: "Blade Enclosing",
	0x1e: "Tablet", 0x1f: "Convertible", 0x20: "Detachable", 0x21: "IoT Gateway",
	0x22: "Embedded PC", 0x23: "Mini PC", 0x24: "Stick PC",
}

var memoryArrayUses = map[byte]string{
	0x01: "Other", 0x02: "Unknown", 0x03: "System Memory", 0x04: "Video Memory",
	0x05: "Flash Memory", 0x06: "Non-volatile RAM", 0x07: "Cache Memory",
}

var formFactorNames = map[byte]string{
	0x01: "Other", 0x02: "Unknown", 0x03: "SIMM", 0x04: "SIP", 0x05: "Chip",
	0x06: "DIP", 0x07: "ZIP", 0x08: "Proprietary Card", 0x09: "DIMM", 0x0a: "TSOP",
	0x0b: "Row Of Chips", 0x0c: "RIMM", 0x0d: "SODIMM", 0x0e: "SRIMM",
	0x0f: "FB-DIMM", 0x10: "Die",
}

var memoryTypes = map[byte]string{
	0x01: "Other", 0x02: "Unknown", 0x03: "DRAM", 0x04: "EDRAM", 0x05: "VRAM",
	0x06: "SRAM", 0x07: "RAM", 0x08: "ROM", 0x09: "Flash", 0x0a: "EEPROM",
	0x0b: "FEPROM", 0x0c: "EPROM", 0x0d: "CDRAM", 0x0e: "3DRAM", 0x0f: "SDRAM",
	0x10: "SGRAM", 0x11: "RDRAM", 0x12: "DDR", 0x13: "DDR2", 0x14: "DDR2 FB-DIMM",
	0x18: "DDR3", 0x19: "FBD2", 0x1a: "DDR4", 0x1b: "LPDDR", 0x1c: "LPDDR2",
	0x1d: "LPDDR3", 0x1e: "LPDDR4", 0x1f: "Logical non-volatile device",
	0x20: "HBM", 0x21: "HBM2", 0x22: "DDR5", 0x23: "LPDDR5",
}
