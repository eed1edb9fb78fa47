package dmi

import (
	"bufio"
	"io"
	"strings"
)

// Device classes of display adapters.
var displayClasses = []string{"vga", "3d controller", "display controller"}

// ParsePCIReport builds Display records from the machine-readable lspci
// listing ("lspci -mm"):
//
//	00:02.0 "VGA compatible controller" "Intel Corporation" "HD Graphics 630" -r04 "Dell" "Device 07a1"
//
// Lines of other device classes are ignored.
func ParsePCIReport(r io.Reader) (Table, error) {
	table := make(Table)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := quotedFields(scanner.Text())
		if len(fields) < 3 || !isDisplayClass(fields[0]) {
			continue
		}
		table.Add(TypeDisplay, compact(Record{
			FieldChipset:      fields[0],
			FieldManufacturer: fields[1],
			FieldProductName:  fields[2],
		}))
	}
	return table, scanner.Err()
}

func isDisplayClass(class string) bool {
	lower := strings.ToLower(class)
	for _, c := range displayClasses {
		if strings.Contains(lower, c) {
			return true
		}
	}
	return false
}

// quotedFields returns the double-quoted strings of line in order. Unquoted
// tokens (slot, revision flags) are skipped.
func quotedFields(line string) []string {
	var out []string
	for {
		start := strings.IndexByte(line, '"')
		if start < 0 {
			return out
		}
		end := strings.IndexByte(line[start+1:], '"')
		if end < 0 {
			return out
		}
		out = append(out, line[start+1:start+1+end])
		line = line[start+end+2:]
	}
}
