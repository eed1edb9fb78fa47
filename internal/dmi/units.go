package dmi

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Module sizes are binary even when a tool labels them "MB" or "GB".
var binaryUnits = map[string]string{
	"":      "MiB",
	"b":     "B",
	"bytes": "B",
	"k":     "KiB",
	"kb":    "KiB",
	"kib":   "KiB",
	"m":     "MiB",
	"mb":    "MiB",
	"mib":   "MiB",
	"g":     "GiB",
	"gb":    "GiB",
	"gib":   "GiB",
	"t":     "TiB",
	"tb":    "TiB",
	"tib":   "TiB",
}

// ParseSizeMB converts a textual memory size such as "8192 MB", "16 GB" or
// "8GiB" to MiB. Text that is not a size ("No Module Installed", "Unknown")
// yields 0. A bare number is taken as MiB.
func ParseSizeMB(s string) uint {
	num, unit := splitNumber(s)
	if num == "" {
		return 0
	}
	iec, ok := binaryUnits[strings.ToLower(unit)]
	if !ok {
		return 0
	}

	b, err := humanize.ParseBytes(num + " " + iec)
	if err != nil {
		return 0
	}
	return uint(b / humanize.MiByte)
}

// ParseSpeedMHz converts "2667 MT/s", "2400MHz (0.4ns)" or "1.2 GHz" to MHz.
// Unparseable text yields 0.
func ParseSpeedMHz(s string) uint {
	num, unit := splitNumber(s)
	if num == "" {
		return 0
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || v < 0 {
		return 0
	}

	switch strings.ToLower(unit) {
	case "", "mhz", "mt/s":
	case "ghz", "gt/s":
		v *= 1000
	case "khz":
		v /= 1000
	default:
		return 0
	}
	return uint(math.Round(v))
}

// splitNumber returns the leading decimal number of s and the first word
// following it.
func splitNumber(s string) (string, string) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || s[end] == '.') {
		end++
	}
	if end == 0 {
		return "", ""
	}
	unit := strings.TrimSpace(s[end:])
	if i := strings.IndexAny(unit, " \t("); i >= 0 {
		unit = unit[:i]
	}
	return s[:end], unit
}
