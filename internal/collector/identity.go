package collector

import (
	"errors"

	"github.com/breeze-rmm/inventory-agent/internal/machine"
	"github.com/breeze-rmm/inventory-agent/pkg/models"
	"go.uber.org/zap"
)

// ErrUnknownMachine is returned when no probe produced an identity field.
var ErrUnknownMachine = errors.New("no hardware identity available")

// IdentityCollector copies the reconciled machine facts into the BIOS,
// memory and video sections.
type IdentityCollector struct {
	BaseCollector
	machine *machine.Machine
}

// NewIdentityCollector creates a collector reading from m.
func NewIdentityCollector(logger *zap.Logger, m *machine.Machine) *IdentityCollector {
	return &IdentityCollector{
		BaseCollector: NewBaseCollector(logger, "identity"),
		machine:       m,
	}
}

// Name returns the collector's name
func (c *IdentityCollector) Name() string {
	return "identity"
}

// Collect runs the probes on first use and fills the identity sections.
// Memory and video sections are still emitted for an unknown machine.
func (c *IdentityCollector) Collect(inv *models.Inventory) error {
	m := c.machine
	m.RetrieveData()

	inv.Bios = models.BiosSection{
		AssetTag:            m.AssetTag(),
		BiosManufacturer:    m.BIOSManufacturer(),
		BiosDate:            m.BIOSDate(),
		BiosVersion:         m.BIOSVersion(),
		MachineManufacturer: m.MachineManufacturer(),
		MachineSerial:       m.MachineSerialNumber(),
		SystemManufacturer:  m.SystemManufacturer(),
		SystemModel:         m.SystemModel(),
		SystemSerial:        m.SystemSerialNumber(),
		SystemVersion:       m.SystemVersion(),
		SystemType:          m.SystemType(),
		SystemUUID:          m.SystemUUID(),
		BoardManufacturer:   m.BoardManufacturer(),
		BoardName:           m.BoardName(),
		BoardSerial:         m.BoardSerialNumber(),
		BoardVersion:        m.BoardVersion(),
	}
	inv.Hardware.UUID = m.SystemUUID()
	inv.Hardware.ChassisType = m.SystemType()

	inv.Memories = make([]models.MemorySlot, 0, m.CountMemories())
	for i := 0; i < m.CountMemories(); i++ {
		inv.Memories = append(inv.Memories, models.MemorySlot{
			NumSlot:      m.MemoryNumSlot(i),
			Caption:      m.MemoryCaption(i),
			Description:  m.MemoryDescription(i),
			Capacity:     m.MemoryCapacity(i),
			Purpose:      m.MemoryPurpose(i),
			Type:         m.MemoryType(i),
			Speed:        m.MemorySpeed(i),
			SerialNumber: m.MemorySerialNumber(i),
		})
	}

	inv.Videos = make([]models.VideoInfo, 0, m.CountVideos())
	for i := 0; i < m.CountVideos(); i++ {
		v := m.VideoInfoFor(i)
		inv.Videos = append(inv.Videos, models.VideoInfo{
			Name:       v.Name,
			Vendor:     v.Vendor,
			Chipset:    v.Chipset,
			Memory:     v.Memory,
			Resolution: v.Resolution,
		})
	}

	c.LogDebug("Identity collection completed",
		zap.Int("memories", len(inv.Memories)),
		zap.Int("videos", len(inv.Videos)))

	if !m.Known() {
		return ErrUnknownMachine
	}
	return nil
}
