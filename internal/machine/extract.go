package machine

import (
	"strings"

	"github.com/breeze-rmm/inventory-agent/internal/dmi"
	"github.com/google/uuid"
)

// Values firmware vendors leave in unused fields. They carry no information
// and must neither fill a field nor count towards a score.
var placeholders = map[string]bool{
	"not specified":            true,
	"not present":              true,
	"not available":            true,
	"not applicable":           true,
	"not settable":             true,
	"to be filled by o.e.m.":   true,
	"to be filled by oem":      true,
	"default string":           true,
	"system serial number":     true,
	"system product name":      true,
	"system manufacturer":      true,
	"system version":           true,
	"base board serial number": true,
	"chassis serial number":    true,
	"0123456789":               true,
	"none":                     true,
	"unknown":                  true,
	"n/a":                      true,
	"na":                       true,
	"oem":                      true,
}

// clean trims v and maps placeholders to "".
func clean(v string) string {
	v = strings.TrimSpace(v)
	if placeholders[strings.ToLower(v)] {
		return ""
	}
	return v
}

// cleanUUID returns the canonical upper-case form of v, or "" when v is not a
// UUID or is the nil/all-ones UUID.
func cleanUUID(v string) string {
	u, err := uuid.Parse(clean(v))
	if err != nil || u == uuid.Nil || allOnes(u) {
		return ""
	}
	return strings.ToUpper(u.String())
}

func allOnes(u uuid.UUID) bool {
	for _, b := range u {
		if b != 0xff {
			return false
		}
	}
	return true
}

// field returns the first meaningful value of name across the records.
func field(recs []dmi.Record, name string) string {
	for _, rec := range recs {
		if v := clean(rec.Get(name)); v != "" {
			return v
		}
	}
	return ""
}

// Extract maps a keyed table to typed facts. Unknown fields are ignored and
// missing groups leave their structure empty.
func Extract(table dmi.Table) Facts {
	var f Facts

	if recs := table.Records(dmi.TypeBIOS); len(recs) > 0 {
		f.BIOS = BIOSInfo{
			Vendor:      field(recs, dmi.FieldVendor),
			ReleaseDate: field(recs, dmi.FieldReleaseDate),
			Version:     field(recs, dmi.FieldVersion),
		}
	}

	if recs := table.Records(dmi.TypeSystem); len(recs) > 0 {
		f.System = SystemInfo{
			Name:    field(recs, dmi.FieldProductName),
			Vendor:  field(recs, dmi.FieldManufacturer),
			Serial:  field(recs, dmi.FieldSerialNumber),
			Version: field(recs, dmi.FieldVersion),
			UUID:    cleanUUID(field(recs, dmi.FieldUUID)),
		}
	}

	if recs := table.Records(dmi.TypeBaseboard); len(recs) > 0 {
		f.Board = BoardInfo{
			AssetTag: field(recs, dmi.FieldAssetTag),
			Name:     field(recs, dmi.FieldProductName),
			Serial:   field(recs, dmi.FieldSerialNumber),
			Vendor:   field(recs, dmi.FieldManufacturer),
			Version:  field(recs, dmi.FieldVersion),
		}
	}

	if recs := table.Records(dmi.TypeChassis); len(recs) > 0 {
		f.Chassis = ChassisInfo{
			AssetTag: field(recs, dmi.FieldAssetTag),
			Serial:   field(recs, dmi.FieldSerialNumber),
			Type:     field(recs, dmi.FieldType),
			Vendor:   field(recs, dmi.FieldManufacturer),
			Version:  field(recs, dmi.FieldVersion),
		}
	}

	f.Memories = extractMemories(table)
	f.Videos = extractVideos(table)
	return f
}

func extractMemories(table dmi.Table) []MemoryDeviceInfo {
	purpose := field(table.Records(dmi.TypePhysicalMemory), dmi.FieldUse)

	var out []MemoryDeviceInfo
	for _, rec := range table.Records(dmi.TypeMemoryDevice) {
		dev := MemoryDeviceInfo{
			Description: joinNonEmpty(clean(rec.Get(dmi.FieldFormFactor)), clean(rec.Get(dmi.FieldBankLocator))),
			Caption:     clean(rec.Get(dmi.FieldLocator)),
			Purpose:     purpose,
			Type:        clean(rec.Get(dmi.FieldType)),
			Vendor:      clean(rec.Get(dmi.FieldManufacturer)),
			Serial:      clean(rec.Get(dmi.FieldSerialNumber)),
			AssetTag:    clean(rec.Get(dmi.FieldAssetTag)),
			Speed:       dmi.ParseSpeedMHz(rec.Get(dmi.FieldSpeed)),
			Size:        dmi.ParseSizeMB(rec.Get(dmi.FieldSize)),
		}
		// empty slot
		if dev.Size == 0 && dev.Serial == "" {
			continue
		}
		out = append(out, dev)
	}
	return out
}

func extractVideos(table dmi.Table) []VideoInfo {
	var out []VideoInfo
	for _, rec := range table.Records(dmi.TypeDisplay) {
		v := VideoInfo{
			Vendor:     clean(rec.Get(dmi.FieldManufacturer)),
			Chipset:    clean(rec.Get(dmi.FieldChipset)),
			Memory:     clean(rec.Get(dmi.FieldMemory)),
			Name:       clean(rec.Get(dmi.FieldProductName)),
			Resolution: clean(rec.Get(dmi.FieldResolution)),
		}
		if v.Score() > 0 {
			out = append(out, v)
		}
	}
	return out
}

func joinNonEmpty(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
