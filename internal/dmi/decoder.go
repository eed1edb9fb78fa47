package dmi

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// ParseDecoderReport builds a table from dmidecode's text report.
//
// A record starts at a "Handle 0x..., DMI type N, M bytes" line; the line
// after it is the record title. Indented "Key: Value" lines are fields, lines
// indented deeper than the first field are list items and are skipped, and a
// blank line ends the record. Anything outside a record is ignored.
func ParseDecoderReport(r io.Reader) (Table, error) {
	table := make(Table)
	scanner := bufio.NewScanner(r)

	var (
		rec         Record
		typ         RecordType
		open        bool
		expectTitle bool
		fieldIndent int
	)

	flush := func() {
		if open {
			table.Add(typ, rec)
		}
		rec, open = nil, false
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")

		if strings.HasPrefix(line, "Handle ") {
			flush()
			t, ok := parseHandleLine(line)
			if !ok {
				continue
			}
			typ, rec, open = t, make(Record), true
			expectTitle, fieldIndent = true, 0
			continue
		}
		if !open {
			continue
		}
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if expectTitle {
			expectTitle = false
			continue
		}

		indent := indentWidth(line)
		if indent == 0 {
			continue
		}
		if fieldIndent == 0 {
			fieldIndent = indent
		}
		if indent > fieldIndent {
			continue
		}

		key, value, ok := strings.Cut(strings.TrimSpace(line), ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if _, dup := rec[key]; !dup {
			rec[key] = strings.TrimSpace(value)
		}
	}
	flush()

	return table, scanner.Err()
}

// parseHandleLine extracts the type from "Handle 0x0000, DMI type 0, 24 bytes".
func parseHandleLine(line string) (RecordType, bool) {
	const marker = "DMI type "
	i := strings.Index(line, marker)
	if i < 0 {
		return 0, false
	}
	rest := line[i+len(marker):]
	if j := strings.IndexByte(rest, ','); j >= 0 {
		rest = rest[:j]
	}
	n, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil || n < 0 || n > 0xff {
		return 0, false
	}
	return RecordType(n), true
}

// indentWidth counts leading whitespace, a tab counting as eight columns.
func indentWidth(line string) int {
	w := 0
	for _, c := range line {
		switch c {
		case ' ':
			w++
		case '\t':
			w += 8
		default:
			return w
		}
	}
	return w
}
