package inventory

import (
	"strings"
	"time"
)

const deviceIDLayout = "2006-01-02-15-04-05"

// Release date layouts seen in firmware tables, most common first.
var biosDateLayouts = []string{
	"01/02/2006",
	"01/02/06",
	"2006-01-02",
	"2006/01/02",
	"20060102",
}

// DeviceID returns "<hostname>-YYYY-MM-DD-HH-MM-SS". The timestamp is the
// BIOS release date at midnight, or now when useCurrentTime is set or the
// date cannot be parsed. The result is stable across runs on the same
// hardware unless the current time is used.
func DeviceID(hostname, biosDate string, now time.Time, useCurrentTime bool) string {
	if hostname == "" {
		hostname = "unknown"
	}
	// Keep only the short name; a FQDN may change with the network.
	hostname, _, _ = strings.Cut(hostname, ".")

	ts := now
	if !useCurrentTime {
		if d, ok := parseBIOSDate(biosDate); ok {
			ts = d
		}
	}
	return hostname + "-" + ts.Format(deviceIDLayout)
}

func parseBIOSDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range biosDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
