package machine

// Fact structures use "" for unknown. Score counts populated fields and
// MergeWith fills only fields that are still empty, so a known value is never
// replaced or cleared.

// BIOSInfo describes the system firmware.
type BIOSInfo struct {
	Vendor      string `json:"vendor"`
	ReleaseDate string `json:"releaseDate"`
	Version     string `json:"version"`
}

func (b BIOSInfo) Score() int {
	return countSet(b.Vendor, b.ReleaseDate, b.Version)
}

func (b *BIOSInfo) MergeWith(o BIOSInfo) {
	if o.Score() == 0 {
		return
	}
	fill(&b.Vendor, o.Vendor)
	fill(&b.ReleaseDate, o.ReleaseDate)
	fill(&b.Version, o.Version)
}

// SystemInfo describes the product as sold.
type SystemInfo struct {
	Name    string `json:"name"`
	Vendor  string `json:"vendor"`
	Serial  string `json:"serial"`
	Version string `json:"version"`
	UUID    string `json:"uuid"`
}

func (s SystemInfo) Score() int {
	return countSet(s.Name, s.Vendor, s.Serial, s.Version, s.UUID)
}

func (s *SystemInfo) MergeWith(o SystemInfo) {
	if o.Score() == 0 {
		return
	}
	fill(&s.Name, o.Name)
	fill(&s.Vendor, o.Vendor)
	fill(&s.Serial, o.Serial)
	fill(&s.Version, o.Version)
	fill(&s.UUID, o.UUID)
}

// BoardInfo describes the main board.
type BoardInfo struct {
	AssetTag string `json:"assetTag"`
	Name     string `json:"name"`
	Serial   string `json:"serial"`
	Vendor   string `json:"vendor"`
	Version  string `json:"version"`
}

func (b BoardInfo) Score() int {
	return countSet(b.AssetTag, b.Name, b.Serial, b.Vendor, b.Version)
}

func (b *BoardInfo) MergeWith(o BoardInfo) {
	if o.Score() == 0 {
		return
	}
	fill(&b.AssetTag, o.AssetTag)
	fill(&b.Name, o.Name)
	fill(&b.Serial, o.Serial)
	fill(&b.Vendor, o.Vendor)
	fill(&b.Version, o.Version)
}

// ChassisInfo describes the enclosure.
type ChassisInfo struct {
	AssetTag string `json:"assetTag"`
	Serial   string `json:"serial"`
	Type     string `json:"type"`
	Vendor   string `json:"vendor"`
	Version  string `json:"version"`
}

func (c ChassisInfo) Score() int {
	return countSet(c.AssetTag, c.Serial, c.Type, c.Vendor, c.Version)
}

func (c *ChassisInfo) MergeWith(o ChassisInfo) {
	if o.Score() == 0 {
		return
	}
	fill(&c.AssetTag, o.AssetTag)
	fill(&c.Serial, o.Serial)
	fill(&c.Type, o.Type)
	fill(&c.Vendor, o.Vendor)
	fill(&c.Version, o.Version)
}

// VideoInfo describes one display adapter.
type VideoInfo struct {
	Vendor     string `json:"vendor"`
	Chipset    string `json:"chipset"`
	Memory     string `json:"memory"`
	Name       string `json:"name"`
	Resolution string `json:"resolution"`
}

func (v VideoInfo) Score() int {
	return countSet(v.Vendor, v.Chipset, v.Memory, v.Name, v.Resolution)
}

// MemoryDeviceInfo describes one populated memory slot. Speed is in MHz and
// Size in MiB; 0 means unknown.
type MemoryDeviceInfo struct {
	Description string `json:"description"`
	Caption     string `json:"caption"`
	Purpose     string `json:"purpose"`
	Type        string `json:"type"`
	Vendor      string `json:"vendor"`
	Serial      string `json:"serial"`
	AssetTag    string `json:"assetTag"`
	Speed       uint   `json:"speed"`
	Size        uint   `json:"size"`
}

// Facts is what one probe contributed after extraction.
type Facts struct {
	BIOS     BIOSInfo
	System   SystemInfo
	Board    BoardInfo
	Chassis  ChassisInfo
	Memories []MemoryDeviceInfo
	Videos   []VideoInfo
}

// Score is the sum of the single-instance structure scores.
func (f Facts) Score() int {
	return f.BIOS.Score() + f.System.Score() + f.Board.Score() + f.Chassis.Score()
}

func countSet(fields ...string) int {
	n := 0
	for _, f := range fields {
		if f != "" {
			n++
		}
	}
	return n
}

func fill(dst *string, src string) {
	if *dst == "" && src != "" {
		*dst = src
	}
}
