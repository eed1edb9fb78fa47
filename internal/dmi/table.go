// Package dmi holds the keyed table shared by all hardware probes and the
// parsers that build it from raw SMBIOS structures, dmidecode reports and
// lshw reports.
package dmi

import "fmt"

// RecordType identifies a group of records. Values below 0x100 follow SMBIOS
// structure type numbering; higher values are categories with no SMBIOS
// counterpart.
type RecordType int

const (
	TypeBIOS           RecordType = 0
	TypeSystem         RecordType = 1
	TypeBaseboard      RecordType = 2
	TypeChassis        RecordType = 3
	TypePhysicalMemory RecordType = 16
	TypeMemoryDevice   RecordType = 17
	TypeDisplay        RecordType = 0x100
)

func (t RecordType) String() string {
	switch t {
	case TypeBIOS:
		return "bios"
	case TypeSystem:
		return "system"
	case TypeBaseboard:
		return "baseboard"
	case TypeChassis:
		return "chassis"
	case TypePhysicalMemory:
		return "physical-memory-array"
	case TypeMemoryDevice:
		return "memory-device"
	case TypeDisplay:
		return "display"
	}
	return fmt.Sprintf("type-%d", int(t))
}

// Field names used across probes. They are the labels dmidecode prints so the
// decoder report needs no renaming.
const (
	FieldVendor       = "Vendor"
	FieldVersion      = "Version"
	FieldReleaseDate  = "Release Date"
	FieldManufacturer = "Manufacturer"
	FieldProductName  = "Product Name"
	FieldSerialNumber = "Serial Number"
	FieldUUID         = "UUID"
	FieldAssetTag     = "Asset Tag"
	FieldType         = "Type"
	FieldSize         = "Size"
	FieldSpeed        = "Speed"
	FieldLocator      = "Locator"
	FieldBankLocator  = "Bank Locator"
	FieldFormFactor   = "Form Factor"
	FieldPartNumber   = "Part Number"
	FieldUse          = "Use"
	FieldChipset      = "Chipset"
	FieldMemory       = "Memory"
	FieldResolution   = "Resolution"
)

// Record maps field names to their textual values.
type Record map[string]string

// Get returns the value of field, or "" when the record or field is absent.
func (r Record) Get(field string) string {
	if r == nil {
		return ""
	}
	return r[field]
}

// Table groups records by type. The order of types is irrelevant; the order of
// records within a type is the order the probe reported them.
type Table map[RecordType][]Record

// Add appends rec to the group for t. Empty records are dropped.
func (t Table) Add(typ RecordType, rec Record) {
	if len(rec) == 0 {
		return
	}
	t[typ] = append(t[typ], rec)
}

// Records returns the records of type typ.
func (t Table) Records(typ RecordType) []Record {
	return t[typ]
}

// First returns the first record of type typ, or nil.
func (t Table) First(typ RecordType) Record {
	recs := t[typ]
	if len(recs) == 0 {
		return nil
	}
	return recs[0]
}

// Len returns the total number of records.
func (t Table) Len() int {
	n := 0
	for _, recs := range t {
		n += len(recs)
	}
	return n
}
