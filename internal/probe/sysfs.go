package probe

import (
	"os"

	"github.com/breeze-rmm/inventory-agent/internal/dmi"
)

// SysfsTable reads the identity strings the Linux kernel exports from the
// firmware table. It needs no external tool and, apart from serials, no root.
type SysfsTable struct {
	root string
}

// NewSysfsTable returns a probe reading dmi.SysfsDir.
func NewSysfsTable() *SysfsTable {
	return &SysfsTable{root: dmi.SysfsDir}
}

func (p *SysfsTable) Name() string {
	return "sysfs"
}

func (p *SysfsTable) Available() bool {
	info, err := os.Stat(p.root)
	return err == nil && info.IsDir()
}

func (p *SysfsTable) Probe() (dmi.Table, error) {
	if !p.Available() {
		return nil, ErrUnavailable
	}
	return dmi.ReadSysfs(os.DirFS(p.root)), nil
}
