package machine

import (
	"runtime"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// OSInfo describes the running operating system. It has a single source and
// is not reconciled.
type OSInfo struct {
	Description  string `json:"description"`
	Release      string `json:"release"`
	Hostname     string `json:"hostname"`
	DomainName   string `json:"domainName"`
	Architecture string `json:"architecture"`
	Memory       string `json:"memory"` // MiB
	Swap         string `json:"swap"`   // MiB
	Comments     string `json:"comments"`
}

// NewOSInfo interrogates the running system. Facts that cannot be read are
// left empty.
func NewOSInfo() OSInfo {
	info := OSInfo{Architecture: runtime.GOARCH}

	if h, err := host.Info(); err == nil {
		info.Hostname = h.Hostname
		info.Release = h.KernelVersion
		info.Description = describeOS(h)
		if h.KernelArch != "" {
			info.Architecture = h.KernelArch
		}
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		info.Memory = strconv.FormatUint(vm.Total>>20, 10)
	}
	if sw, err := mem.SwapMemory(); err == nil {
		info.Swap = strconv.FormatUint(sw.Total>>20, 10)
	}

	fillPlatformOSInfo(&info)
	return info
}

// describeOS builds e.g. "Linux ubuntu 22.04".
func describeOS(h *host.InfoStat) string {
	var parts []string
	if h.OS != "" {
		parts = append(parts, strings.ToUpper(h.OS[:1])+h.OS[1:])
	}
	if h.Platform != "" {
		parts = append(parts, h.Platform)
	}
	if h.PlatformVersion != "" {
		parts = append(parts, h.PlatformVersion)
	}
	return strings.Join(parts, " ")
}
