package probe

import (
	"fmt"
	"io"

	"github.com/breeze-rmm/inventory-agent/internal/dmi"
	"github.com/digitalocean/go-smbios/smbios"
)

// DirectTable reads the SMBIOS table exposed by the firmware without any
// external tool.
type DirectTable struct {
	open       func() (io.ReadCloser, smbios.EntryPoint, error)
	privileged func() bool
}

// NewDirectTable returns a probe reading the table from the operating system's
// usual location.
func NewDirectTable() *DirectTable {
	return &DirectTable{
		open:       smbios.Stream,
		privileged: Privileged,
	}
}

func (p *DirectTable) Name() string {
	return "smbios"
}

// Available reports whether the process may read the firmware table. The
// table's presence is only known once Probe opens it.
func (p *DirectTable) Available() bool {
	return p.privileged()
}

func (p *DirectTable) Probe() (dmi.Table, error) {
	rc, ep, err := p.open()
	if err != nil {
		return nil, fmt.Errorf("%w: open smbios stream: %v", ErrUnavailable, err)
	}
	defer rc.Close()

	ss, err := smbios.NewDecoder(rc).Decode()
	if err != nil {
		return nil, fmt.Errorf("decode smbios structures: %w", err)
	}

	major, minor, _ := ep.Version()
	return dmi.FromStructures(ss, major, minor), nil
}
