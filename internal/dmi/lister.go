package dmi

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// listerNode is one "*-class" block of an lshw report.
type listerNode struct {
	class string
	attrs map[string]string
}

// ParseListerReport builds a table from lshw's default tree report.
//
// The first unprefixed line names the root (system) node; "*-class[:n]" lines
// open child nodes; "key: value" lines set attributes of the current node.
// Only the system, core, firmware, memory bank and display nodes are mapped.
func ParseListerReport(r io.Reader) (Table, error) {
	table := make(Table)
	scanner := bufio.NewScanner(r)

	var node *listerNode
	flush := func() {
		if node != nil {
			mapListerNode(table, node)
		}
		node = nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "*-") {
			flush()
			name := strings.Fields(line[2:])
			if len(name) == 0 {
				continue
			}
			class, _, _ := strings.Cut(name[0], ":")
			node = &listerNode{class: class, attrs: make(map[string]string)}
			continue
		}

		key, value, ok := strings.Cut(line, ": ")
		if !ok {
			if node == nil && !strings.Contains(line, ":") {
				node = &listerNode{class: "system", attrs: make(map[string]string)}
			}
			continue
		}
		if node == nil {
			continue
		}
		node.attrs[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	flush()

	return table, scanner.Err()
}

func mapListerNode(table Table, n *listerNode) {
	a := n.attrs
	switch n.class {
	case "system":
		config := parseConfiguration(a["configuration"])
		table.Add(TypeSystem, compact(Record{
			FieldManufacturer: a["vendor"],
			FieldProductName:  a["product"],
			FieldVersion:      a["version"],
			FieldSerialNumber: a["serial"],
			FieldUUID:         config["uuid"],
		}))
		table.Add(TypeChassis, compact(Record{
			FieldType: chassisLabel(config["chassis"]),
		}))
	case "core":
		table.Add(TypeBaseboard, compact(Record{
			FieldManufacturer: a["vendor"],
			FieldProductName:  a["product"],
			FieldVersion:      a["version"],
			FieldSerialNumber: a["serial"],
		}))
	case "firmware":
		table.Add(TypeBIOS, compact(Record{
			FieldVendor:      a["vendor"],
			FieldVersion:     a["version"],
			FieldReleaseDate: a["date"],
		}))
	case "bank":
		desc := a["description"]
		if strings.Contains(desc, "[empty]") {
			return
		}
		formFactor, memType := splitBankDescription(desc)
		table.Add(TypeMemoryDevice, compact(Record{
			FieldSize:         a["size"],
			FieldSpeed:        a["clock"],
			FieldLocator:      a["slot"],
			FieldManufacturer: a["vendor"],
			FieldSerialNumber: a["serial"],
			FieldPartNumber:   a["product"],
			FieldFormFactor:   formFactor,
			FieldType:         memType,
		}))
	case "display":
		config := parseConfiguration(a["configuration"])
		table.Add(TypeDisplay, compact(Record{
			FieldProductName:  a["product"],
			FieldManufacturer: a["vendor"],
			FieldChipset:      a["description"],
			FieldResolution:   strings.ReplaceAll(config["resolution"], ",", "x"),
			FieldMemory:       largestMemoryRangeMB(a["resources"]),
		}))
	}
}

// parseConfiguration splits "driver=i915 latency=0 resolution=1920,1080".
func parseConfiguration(s string) map[string]string {
	out := make(map[string]string)
	for _, tok := range strings.Fields(s) {
		k, v, ok := strings.Cut(tok, "=")
		if ok {
			out[k] = v
		}
	}
	return out
}

var formFactors = map[string]bool{
	"DIMM": true, "SODIMM": true, "SO-DIMM": true, "RIMM": true, "SRIMM": true,
	"SIMM": true, "FB-DIMM": true, "Chip": true, "Die": true,
}

var memoryTypePrefixes = []string{"DDR", "LPDDR", "SDRAM", "DRAM", "RAM", "RDRAM", "HBM", "SGRAM"}

// splitBankDescription reads "DIMM DDR4 Synchronous 2400 MHz (0.4 ns)".
func splitBankDescription(desc string) (formFactor, memType string) {
	for i, tok := range strings.Fields(desc) {
		if i == 0 && formFactors[tok] {
			formFactor = tok
			continue
		}
		for _, p := range memoryTypePrefixes {
			if strings.HasPrefix(tok, p) {
				return formFactor, tok
			}
		}
	}
	return formFactor, ""
}

// largestMemoryRangeMB picks the biggest "memory:start-end" window, which for a
// display adapter is its aperture. Windows under 1 MiB are ignored.
func largestMemoryRangeMB(resources string) string {
	var largest uint64
	for _, tok := range strings.Fields(resources) {
		rng, ok := strings.CutPrefix(tok, "memory:")
		if !ok {
			continue
		}
		lo, hi, ok := strings.Cut(rng, "-")
		if !ok {
			continue
		}
		start, err1 := strconv.ParseUint(lo, 16, 64)
		end, err2 := strconv.ParseUint(hi, 16, 64)
		if err1 != nil || err2 != nil || end < start {
			continue
		}
		if size := end - start + 1; size > largest {
			largest = size
		}
	}
	if largest < 1<<20 {
		return ""
	}
	return strconv.FormatUint(largest>>20, 10)
}

func chassisLabel(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// compact drops empty values so that a node carrying nothing adds no record.
func compact(rec Record) Record {
	for k, v := range rec {
		if v == "" {
			delete(rec, k)
		}
	}
	return rec
}
