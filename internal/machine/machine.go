// Package machine reconciles hardware facts from several probes into one
// canonical description of the machine.
//
// Probes run once, in precedence order. Single-instance structures (BIOS,
// system, board, chassis) are merged field by field and the first probe to
// report a field wins. Memory devices and display adapters have no identity
// shared between probes, so a probe that reports any of them replaces the
// whole list. Facts can be seeded with Merge or Ingest before RetrieveData;
// once it returns both are no-ops, the Machine is read-only and safe for
// concurrent readers.
package machine

import (
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/breeze-rmm/inventory-agent/internal/dmi"
	"github.com/breeze-rmm/inventory-agent/internal/logging"
	"github.com/breeze-rmm/inventory-agent/internal/probe"
	"go.uber.org/zap"
)

// Machine owns the canonical hardware facts.
type Machine struct {
	logger *zap.Logger
	probes []probe.Probe
	once   sync.Once

	retrieved atomic.Bool

	bios     BIOSInfo
	system   SystemInfo
	board    BoardInfo
	chassis  ChassisInfo
	memories []MemoryDeviceInfo
	videos   []VideoInfo
}

// New creates a Machine that will consult probes in the given order. Nothing
// is probed until RetrieveData is called.
func New(logger *zap.Logger, probes ...probe.Probe) *Machine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Machine{
		logger: logging.Component(logger, "machine"),
		probes: probes,
	}
}

// RetrieveData runs every available probe and merges its results. Only the
// first call does any work. Probe failures are logged and skipped; if nothing
// usable is found the machine stays unknown.
func (m *Machine) RetrieveData() {
	m.once.Do(m.retrieve)
}

func (m *Machine) retrieve() {
	defer m.retrieved.Store(true)

	for _, p := range m.probes {
		log := m.logger.With(zap.String(logging.KeyProbe, p.Name()))

		if !p.Available() {
			log.Debug("Probe unavailable, skipping")
			continue
		}

		table, err := p.Probe()
		if err != nil {
			log.Warn("Probe failed", zap.Error(err))
		}
		if table.Len() == 0 {
			log.Debug("Probe returned no records")
			continue
		}

		facts := Extract(table)
		m.merge(facts)
		log.Debug("Probe merged",
			zap.Int("records", table.Len()),
			zap.Int("score", facts.Score()),
			zap.Int("memories", len(facts.Memories)),
			zap.Int("videos", len(facts.Videos)))
	}

	scores := m.Scores()
	if !m.Known() {
		m.logger.Warn("No usable hardware identity from any probe")
		return
	}
	m.logger.Info("Hardware facts retrieved",
		zap.Int("biosScore", scores.BIOS),
		zap.Int("systemScore", scores.System),
		zap.Int("boardScore", scores.Board),
		zap.Int("chassisScore", scores.Chassis),
		zap.Int("memories", len(m.memories)),
		zap.Int("videos", len(m.videos)))
}

// Ingest extracts facts from a keyed table and merges them. It does nothing
// after RetrieveData.
func (m *Machine) Ingest(table dmi.Table) {
	m.Merge(Extract(table))
}

// Merge folds f into the canonical facts. Structures that score zero are
// discarded; non-empty collections replace the current ones. It does nothing
// after RetrieveData.
func (m *Machine) Merge(f Facts) {
	if m.retrieved.Load() {
		m.logger.Debug("Facts already retrieved, ignoring merge")
		return
	}
	m.merge(f)
}

func (m *Machine) merge(f Facts) {
	m.bios.MergeWith(f.BIOS)
	m.system.MergeWith(f.System)
	m.board.MergeWith(f.Board)
	m.chassis.MergeWith(f.Chassis)

	if len(f.Memories) > 0 {
		m.memories = append([]MemoryDeviceInfo(nil), f.Memories...)
	}
	if len(f.Videos) > 0 {
		m.videos = append([]VideoInfo(nil), f.Videos...)
	}
}

// Scores reports the completeness of each canonical structure.
type Scores struct {
	BIOS    int
	System  int
	Board   int
	Chassis int
}

func (m *Machine) Scores() Scores {
	return Scores{
		BIOS:    m.bios.Score(),
		System:  m.system.Score(),
		Board:   m.board.Score(),
		Chassis: m.chassis.Score(),
	}
}

// Known reports whether any probe contributed an identity field.
func (m *Machine) Known() bool {
	s := m.Scores()
	return s.BIOS+s.System+s.Board+s.Chassis > 0
}

// BIOS returns a copy of the canonical BIOS facts.
func (m *Machine) BIOS() BIOSInfo       { return m.bios }
func (m *Machine) System() SystemInfo   { return m.system }
func (m *Machine) Board() BoardInfo     { return m.board }
func (m *Machine) Chassis() ChassisInfo { return m.chassis }

// AssetTag returns the chassis asset tag, falling back to the board's.
func (m *Machine) AssetTag() string {
	if m.chassis.AssetTag != "" {
		return m.chassis.AssetTag
	}
	return m.board.AssetTag
}

func (m *Machine) BIOSManufacturer() string { return m.bios.Vendor }
func (m *Machine) BIOSDate() string         { return m.bios.ReleaseDate }
func (m *Machine) BIOSVersion() string      { return m.bios.Version }

func (m *Machine) MachineManufacturer() string { return m.chassis.Vendor }
func (m *Machine) MachineSerialNumber() string { return m.chassis.Serial }

func (m *Machine) SystemModel() string        { return m.system.Name }
func (m *Machine) SystemSerialNumber() string { return m.system.Serial }
func (m *Machine) SystemUUID() string         { return m.system.UUID }
func (m *Machine) SystemManufacturer() string { return m.system.Vendor }
func (m *Machine) SystemVersion() string      { return m.system.Version }

// SystemType is the chassis type, e.g. "Notebook" or "Rack Mount Chassis".
func (m *Machine) SystemType() string { return m.chassis.Type }

func (m *Machine) BoardManufacturer() string { return m.board.Vendor }
func (m *Machine) BoardName() string         { return m.board.Name }
func (m *Machine) BoardSerialNumber() string { return m.board.Serial }
func (m *Machine) BoardVersion() string      { return m.board.Version }

// CountMemories returns the number of populated memory slots.
func (m *Machine) CountMemories() int {
	return len(m.memories)
}

// Memory returns the device in slot i. Out-of-range indexes yield a zero
// value and false.
func (m *Machine) Memory(i int) (MemoryDeviceInfo, bool) {
	if i < 0 || i >= len(m.memories) {
		return MemoryDeviceInfo{}, false
	}
	return m.memories[i], true
}

// Memories returns a copy of the memory device list.
func (m *Machine) Memories() []MemoryDeviceInfo {
	return append([]MemoryDeviceInfo(nil), m.memories...)
}

// The per-slot accessors below return "" for an index out of range.

func (m *Machine) MemoryCaption(i int) string {
	dev, _ := m.Memory(i)
	return dev.Caption
}

func (m *Machine) MemoryDescription(i int) string {
	dev, _ := m.Memory(i)
	return dev.Description
}

// MemoryCapacity returns the size in MiB.
func (m *Machine) MemoryCapacity(i int) string {
	dev, _ := m.Memory(i)
	return formatUnit(dev.Size)
}

func (m *Machine) MemoryPurpose(i int) string {
	dev, _ := m.Memory(i)
	return dev.Purpose
}

func (m *Machine) MemoryType(i int) string {
	dev, _ := m.Memory(i)
	return dev.Type
}

// MemorySpeed returns the speed in MHz.
func (m *Machine) MemorySpeed(i int) string {
	dev, _ := m.Memory(i)
	return formatUnit(dev.Speed)
}

// MemoryNumSlot returns the 1-based slot number.
func (m *Machine) MemoryNumSlot(i int) string {
	if _, ok := m.Memory(i); !ok {
		return ""
	}
	return strconv.Itoa(i + 1)
}

func (m *Machine) MemorySerialNumber(i int) string {
	dev, _ := m.Memory(i)
	return dev.Serial
}

// CountVideos returns the number of display adapters.
func (m *Machine) CountVideos() int {
	return len(m.videos)
}

// VideoInfoFor returns adapter i, or a zero value when i is out of range.
func (m *Machine) VideoInfoFor(i int) VideoInfo {
	if i < 0 || i >= len(m.videos) {
		return VideoInfo{}
	}
	return m.videos[i]
}

// Videos returns a copy of the display adapter list.
func (m *Machine) Videos() []VideoInfo {
	return append([]VideoInfo(nil), m.videos...)
}

func formatUnit(v uint) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatUint(uint64(v), 10)
}
