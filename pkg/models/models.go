package models

import "time"

// Inventory is the record the agent emits for one run.
type Inventory struct {
	DeviceID     string    `json:"deviceId" yaml:"deviceId"`
	Tag          string    `json:"tag,omitempty" yaml:"tag,omitempty"`
	AgentVersion string    `json:"agentVersion" yaml:"agentVersion"`
	GeneratedAt  time.Time `json:"generatedAt" yaml:"generatedAt"`

	Bios      BiosSection    `json:"bios" yaml:"bios"`
	Hardware  HardwareInfo   `json:"hardware" yaml:"hardware"`
	Memories  []MemorySlot   `json:"memories" yaml:"memories"`
	Videos    []VideoInfo    `json:"videos" yaml:"videos"`
	CPUs      []CPUInfo      `json:"cpus" yaml:"cpus"`
	Storages  []DiskInfo     `json:"storages" yaml:"storages"`
	Networks  []NetworkInfo  `json:"networks" yaml:"networks"`
	Softwares []SoftwareInfo `json:"softwares,omitempty" yaml:"softwares,omitempty"`
}

// BiosSection carries the reconciled firmware, product, board and chassis
// identity.
type BiosSection struct {
	AssetTag            string `json:"assetTag,omitempty" yaml:"assetTag,omitempty"`
	BiosManufacturer    string `json:"biosManufacturer,omitempty" yaml:"biosManufacturer,omitempty"`
	BiosDate            string `json:"biosDate,omitempty" yaml:"biosDate,omitempty"`
	BiosVersion         string `json:"biosVersion,omitempty" yaml:"biosVersion,omitempty"`
	MachineManufacturer string `json:"machineManufacturer,omitempty" yaml:"machineManufacturer,omitempty"`
	MachineSerial       string `json:"machineSerial,omitempty" yaml:"machineSerial,omitempty"`
	SystemManufacturer  string `json:"systemManufacturer,omitempty" yaml:"systemManufacturer,omitempty"`
	SystemModel         string `json:"systemModel,omitempty" yaml:"systemModel,omitempty"`
	SystemSerial        string `json:"systemSerial,omitempty" yaml:"systemSerial,omitempty"`
	SystemVersion       string `json:"systemVersion,omitempty" yaml:"systemVersion,omitempty"`
	SystemType          string `json:"systemType,omitempty" yaml:"systemType,omitempty"`
	SystemUUID          string `json:"systemUuid,omitempty" yaml:"systemUuid,omitempty"`
	BoardManufacturer   string `json:"boardManufacturer,omitempty" yaml:"boardManufacturer,omitempty"`
	BoardName           string `json:"boardName,omitempty" yaml:"boardName,omitempty"`
	BoardSerial         string `json:"boardSerial,omitempty" yaml:"boardSerial,omitempty"`
	BoardVersion        string `json:"boardVersion,omitempty" yaml:"boardVersion,omitempty"`
}

// HardwareInfo describes the host and its operating system
type HardwareInfo struct {
	Name         string `json:"name" yaml:"name"`
	OSName       string `json:"osName" yaml:"osName"`
	OSVersion    string `json:"osVersion" yaml:"osVersion"`
	OSComments   string `json:"osComments,omitempty" yaml:"osComments,omitempty"`
	Domain       string `json:"domain,omitempty" yaml:"domain,omitempty"`
	Architecture string `json:"architecture" yaml:"architecture"`
	Memory       string `json:"memory" yaml:"memory"` // MiB
	Swap         string `json:"swap" yaml:"swap"`     // MiB
	UUID         string `json:"uuid,omitempty" yaml:"uuid,omitempty"`
	ChassisType  string `json:"chassisType,omitempty" yaml:"chassisType,omitempty"`
}

// MemorySlot describes one populated memory slot
type MemorySlot struct {
	NumSlot      string `json:"numSlot" yaml:"numSlot"`
	Caption      string `json:"caption,omitempty" yaml:"caption,omitempty"`
	Description  string `json:"description,omitempty" yaml:"description,omitempty"`
	Capacity     string `json:"capacity,omitempty" yaml:"capacity,omitempty"` // MiB
	Purpose      string `json:"purpose,omitempty" yaml:"purpose,omitempty"`
	Type         string `json:"type,omitempty" yaml:"type,omitempty"`
	Speed        string `json:"speed,omitempty" yaml:"speed,omitempty"` // MHz
	SerialNumber string `json:"serialNumber,omitempty" yaml:"serialNumber,omitempty"`
}

// VideoInfo describes a display adapter
type VideoInfo struct {
	Name       string `json:"name,omitempty" yaml:"name,omitempty"`
	Vendor     string `json:"vendor,omitempty" yaml:"vendor,omitempty"`
	Chipset    string `json:"chipset,omitempty" yaml:"chipset,omitempty"`
	Memory     string `json:"memory,omitempty" yaml:"memory,omitempty"`
	Resolution string `json:"resolution,omitempty" yaml:"resolution,omitempty"`
}

// CPUInfo represents CPU details
type CPUInfo struct {
	Model     string `json:"model" yaml:"model"`
	Cores     int    `json:"cores" yaml:"cores"`
	Threads   int    `json:"threads" yaml:"threads"`
	BaseSpeed uint64 `json:"baseSpeed" yaml:"baseSpeed"` // MHz
	Vendor    string `json:"vendor" yaml:"vendor"`
	Family    string `json:"family,omitempty" yaml:"family,omitempty"`
}

// DiskInfo represents disk details
type DiskInfo struct {
	Device     string  `json:"device" yaml:"device"`
	MountPoint string  `json:"mountPoint" yaml:"mountPoint"`
	FSType     string  `json:"fsType" yaml:"fsType"`
	Total      uint64  `json:"total" yaml:"total"`
	Used       uint64  `json:"used" yaml:"used"`
	Free       uint64  `json:"free" yaml:"free"`
	UsedPct    float64 `json:"usedPct" yaml:"usedPct"`
}

// NetworkInfo represents network interface details
type NetworkInfo struct {
	Name       string   `json:"name" yaml:"name"`
	MAC        string   `json:"mac" yaml:"mac"`
	IPs        []string `json:"ips" yaml:"ips"`
	MTU        int      `json:"mtu,omitempty" yaml:"mtu,omitempty"`
	IsUp       bool     `json:"isUp" yaml:"isUp"`
	IsLoopback bool     `json:"isLoopback" yaml:"isLoopback"`
}

// SoftwareInfo represents installed software
type SoftwareInfo struct {
	Name        string `json:"name" yaml:"name"`
	Version     string `json:"version" yaml:"version"`
	Publisher   string `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	InstallDate string `json:"installDate,omitempty" yaml:"installDate,omitempty"`
	Size        uint64 `json:"size,omitempty" yaml:"size,omitempty"` // bytes
	Source      string `json:"source,omitempty" yaml:"source,omitempty"`
}
