package collector

import (
	"fmt"
	"slices"

	"github.com/breeze-rmm/inventory-agent/internal/machine"
	"github.com/breeze-rmm/inventory-agent/pkg/models"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	psnet "github.com/shirou/gopsutil/v3/net"
	"go.uber.org/zap"
)

// SystemCollector collects the host description, CPUs, mounted storage and
// network interfaces.
type SystemCollector struct {
	BaseCollector
	osInfo func() machine.OSInfo
}

// NewSystemCollector creates a new SystemCollector with the given logger
func NewSystemCollector(logger *zap.Logger) *SystemCollector {
	return &SystemCollector{
		BaseCollector: NewBaseCollector(logger, "system"),
		osInfo:        machine.NewOSInfo,
	}
}

// Name returns the collector's name
func (s *SystemCollector) Name() string {
	return "system"
}

// Collect fills the hardware, CPU, storage and network sections. It fails
// only when every source failed.
func (s *SystemCollector) Collect(inv *models.Inventory) error {
	s.LogDebug("Starting system collection")

	osInfo := s.osInfo()
	inv.Hardware.Name = osInfo.Hostname
	inv.Hardware.OSName = osInfo.Description
	inv.Hardware.OSVersion = osInfo.Release
	inv.Hardware.OSComments = osInfo.Comments
	inv.Hardware.Domain = osInfo.DomainName
	inv.Hardware.Architecture = osInfo.Architecture
	inv.Hardware.Memory = osInfo.Memory
	inv.Hardware.Swap = osInfo.Swap

	var collectionErrors []string

	cpus, err := s.collectCPUs()
	if err != nil {
		s.LogWarning("Failed to collect CPU info", zap.Error(err))
		collectionErrors = append(collectionErrors, fmt.Sprintf("CPU: %v", err))
	}
	inv.CPUs = cpus

	disks, err := s.collectDisks()
	if err != nil {
		s.LogWarning("Failed to collect disk info", zap.Error(err))
		collectionErrors = append(collectionErrors, fmt.Sprintf("Disk: %v", err))
	}
	inv.Storages = disks

	nets, err := s.collectNetwork()
	if err != nil {
		s.LogWarning("Failed to collect network info", zap.Error(err))
		collectionErrors = append(collectionErrors, fmt.Sprintf("Network: %v", err))
	}
	inv.Networks = nets

	s.LogDebug("System collection completed",
		zap.Int("cpus", len(inv.CPUs)),
		zap.Int("disks", len(inv.Storages)),
		zap.Int("networkInterfaces", len(inv.Networks)),
		zap.Int("errors", len(collectionErrors)))

	if len(collectionErrors) == 3 && inv.Hardware.Name == "" {
		return fmt.Errorf("all system collectors failed: %v", collectionErrors)
	}
	return nil
}

// collectCPUs returns one entry per physical package
func (s *SystemCollector) collectCPUs() ([]models.CPUInfo, error) {
	infos, err := cpu.Info()
	if err != nil {
		return nil, fmt.Errorf("failed to get CPU info: %w", err)
	}

	cpus := groupCPUs(infos)

	// Some platforms report a single aggregated entry.
	if len(cpus) == 1 {
		if n, err := cpu.Counts(false); err == nil && n > 0 {
			cpus[0].Cores = n
		}
		if n, err := cpu.Counts(true); err == nil && n > 0 {
			cpus[0].Threads = n
		}
	}
	return cpus, nil
}

// groupCPUs folds per-thread entries into packages. Cores are the distinct
// core IDs of a package; entries without a core ID carry their own count.
func groupCPUs(infos []cpu.InfoStat) []models.CPUInfo {
	type cpuPackage struct {
		info  models.CPUInfo
		cores map[string]struct{}
	}

	byPackage := make(map[string]*cpuPackage)
	var order []string
	for _, info := range infos {
		p, ok := byPackage[info.PhysicalID]
		if !ok {
			p = &cpuPackage{
				info: models.CPUInfo{
					Model:     info.ModelName,
					Vendor:    info.VendorID,
					Family:    info.Family,
					BaseSpeed: uint64(info.Mhz),
				},
				cores: make(map[string]struct{}),
			}
			byPackage[info.PhysicalID] = p
			order = append(order, info.PhysicalID)
		}
		if info.CoreID == "" {
			p.info.Cores += int(info.Cores)
		} else if _, seen := p.cores[info.CoreID]; !seen {
			p.cores[info.CoreID] = struct{}{}
			p.info.Cores++
		}
		p.info.Threads++
	}

	cpus := make([]models.CPUInfo, 0, len(order))
	for _, id := range order {
		cpus = append(cpus, byPackage[id].info)
	}
	return cpus
}

// collectDisks gathers information about all mounted disks
func (s *SystemCollector) collectDisks() ([]models.DiskInfo, error) {
	partitions, err := disk.Partitions(false) // false = only physical devices
	if err != nil {
		return nil, fmt.Errorf("failed to get disk partitions: %w", err)
	}

	var disks []models.DiskInfo
	for _, partition := range partitions {
		if skipFSTypes[partition.Fstype] {
			continue
		}

		diskInfo := models.DiskInfo{
			Device:     partition.Device,
			MountPoint: partition.Mountpoint,
			FSType:     partition.Fstype,
		}

		usage, err := disk.Usage(partition.Mountpoint)
		if err != nil {
			s.LogWarning("Failed to get disk usage",
				zap.String("device", partition.Device),
				zap.String("mountpoint", partition.Mountpoint),
				zap.Error(err))
		} else {
			diskInfo.Total = usage.Total
			diskInfo.Used = usage.Used
			diskInfo.Free = usage.Free
			diskInfo.UsedPct = usage.UsedPercent
		}

		disks = append(disks, diskInfo)
	}
	return disks, nil
}

// Pseudo filesystems and special mounts
var skipFSTypes = map[string]bool{
	"devfs":       true,
	"devtmpfs":    true,
	"tmpfs":       true,
	"squashfs":    true,
	"overlay":     true,
	"aufs":        true,
	"proc":        true,
	"sysfs":       true,
	"cgroup":      true,
	"cgroup2":     true,
	"debugfs":     true,
	"securityfs":  true,
	"pstore":      true,
	"configfs":    true,
	"fusectl":     true,
	"mqueue":      true,
	"hugetlbfs":   true,
	"binfmt_misc": true,
}

// collectNetwork gathers network interface information
func (s *SystemCollector) collectNetwork() ([]models.NetworkInfo, error) {
	ifaces, err := psnet.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("failed to get network interfaces: %w", err)
	}

	nets := make([]models.NetworkInfo, 0, len(ifaces))
	for _, iface := range ifaces {
		nets = append(nets, networkInfo(iface))
	}
	return nets, nil
}

func networkInfo(iface psnet.InterfaceStat) models.NetworkInfo {
	ips := make([]string, 0, len(iface.Addrs))
	for _, addr := range iface.Addrs {
		ips = append(ips, addr.Addr)
	}
	return models.NetworkInfo{
		Name:       iface.Name,
		MAC:        iface.HardwareAddr,
		IPs:        ips,
		MTU:        iface.MTU,
		IsUp:       slices.Contains(iface.Flags, "up"),
		IsLoopback: slices.Contains(iface.Flags, "loopback"),
	}
}
