// Package probe implements the independent hardware fact sources. Each probe
// produces a dmi.Table; the machine package decides how results combine.
package probe

import (
	"errors"

	"github.com/breeze-rmm/inventory-agent/internal/dmi"
)

// ErrUnavailable is returned by Probe when a prerequisite disappeared between
// Available and Probe, e.g. the firmware table could not be opened.
var ErrUnavailable = errors.New("probe unavailable")

// Probe is one method of obtaining hardware facts.
type Probe interface {
	// Name identifies the probe in logs.
	Name() string

	// Available reports whether the prerequisites (privilege, external tool)
	// are present. An unavailable probe is skipped without error.
	Available() bool

	// Probe collects a keyed table. A partially parsed report is returned
	// together with the error that stopped parsing.
	Probe() (dmi.Table, error)
}

// Default returns the built-in probes in precedence order: the raw firmware
// table first, then the sysfs export of it, then the decoder tool, then the
// PCI listing and the hardware lister. Later probes are more likely to be
// missing and more expensive to run.
func Default() []Probe {
	return []Probe{
		NewDirectTable(),
		NewSysfsTable(),
		NewDecoderTool(),
		NewDisplayTool(),
		NewListerTool(),
	}
}
