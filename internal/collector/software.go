package collector

import (
	"bufio"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"

	"github.com/breeze-rmm/inventory-agent/internal/cmdstream"
	"github.com/breeze-rmm/inventory-agent/pkg/models"
	"go.uber.org/zap"
)

// packageSource is one package manager listing, read through a command
// stream and parsed line by line.
type packageSource struct {
	name    string
	tool    string
	command string
	parse   func(line string) (models.SoftwareInfo, bool)

	// skip the first line (column headers)
	header bool

	// exclusive sources are consulted only until one of them succeeds
	exclusive bool
}

// Primary package databases first, then the sandboxed formats that coexist
// with them.
var linuxSources = []packageSource{
	{name: "dpkg", tool: "dpkg-query", command: `dpkg-query -W -f='${Package}|${Version}|${Installed-Size}\n'`, parse: parseDpkgLine, exclusive: true},
	{name: "rpm", tool: "rpm", command: `rpm -qa --queryformat '%{NAME}|%{VERSION}|%{VENDOR}|%{SIZE}\n'`, parse: parseRpmLine, exclusive: true},
	{name: "pacman", tool: "pacman", command: "pacman -Q", parse: fieldsParser("pacman"), exclusive: true},
	{name: "snap", tool: "snap", command: "snap list", parse: parseSnapLine, header: true},
	{name: "flatpak", tool: "flatpak", command: "flatpak list --columns=name,version", parse: parseFlatpakLine},
}

var darwinSources = []packageSource{
	{name: "brew", tool: "brew", command: "brew list --versions", parse: fieldsParser("Homebrew")},
	{name: "brew-cask", tool: "brew", command: "brew list --cask --versions", parse: fieldsParser("Homebrew Cask")},
}

// SoftwareCollector lists installed packages from the package managers found
// on the system.
type SoftwareCollector struct {
	BaseCollector
	sources []packageSource
}

// NewSoftwareCollector creates a new SoftwareCollector with the given logger
func NewSoftwareCollector(logger *zap.Logger) *SoftwareCollector {
	var sources []packageSource
	switch runtime.GOOS {
	case "linux":
		sources = linuxSources
	case "darwin":
		sources = darwinSources
	}
	return &SoftwareCollector{
		BaseCollector: NewBaseCollector(logger, "software"),
		sources:       sources,
	}
}

// Name returns the collector's name
func (s *SoftwareCollector) Name() string {
	return "software"
}

// Collect fills the software section. Sources that are missing or fail are
// skipped.
func (s *SoftwareCollector) Collect(inv *models.Inventory) error {
	s.LogDebug("Starting software collection", zap.String("platform", runtime.GOOS))

	if len(s.sources) == 0 {
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	var software []models.SoftwareInfo
	var collectionErrors []string
	haveExclusive := false

	for _, src := range s.sources {
		if src.exclusive && haveExclusive {
			continue
		}
		if !cmdstream.CommandExists(src.tool) {
			continue
		}

		apps, err := s.collectSource(src)
		if err != nil {
			s.LogWarning("Failed to collect packages",
				zap.String("source", src.name),
				zap.Error(err))
			collectionErrors = append(collectionErrors, err.Error())
		}
		if len(apps) > 0 && src.exclusive {
			haveExclusive = true
		}
		software = append(software, apps...)
	}

	inv.Softwares = deduplicateSoftware(software)
	s.LogDebug("Software collection completed", zap.Int("count", len(inv.Softwares)))

	if len(software) == 0 {
		return fmt.Errorf("no package manager found or all failed: %v", collectionErrors)
	}
	return nil
}

func (s *SoftwareCollector) collectSource(src packageSource) ([]models.SoftwareInfo, error) {
	var apps []models.SoftwareInfo
	err := cmdstream.Run(src.command, func(r *cmdstream.Reader) error {
		var err error
		apps, err = parsePackageList(r, src.parse, src.header)
		return err
	})
	if err != nil {
		return apps, fmt.Errorf("%s: %w", src.name, err)
	}
	return apps, nil
}

func parsePackageList(r io.Reader, parse func(string) (models.SoftwareInfo, bool), header bool) ([]models.SoftwareInfo, error) {
	var apps []models.SoftwareInfo
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if header {
			header = false
			continue
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if app, ok := parse(line); ok {
			apps = append(apps, app)
		}
	}
	return apps, scanner.Err()
}

// parseDpkgLine parses "name|version|installed-size-in-KiB".
func parseDpkgLine(line string) (models.SoftwareInfo, bool) {
	parts := strings.Split(line, "|")
	if len(parts) < 2 || parts[0] == "" {
		return models.SoftwareInfo{}, false
	}
	app := models.SoftwareInfo{Name: parts[0], Version: parts[1], Source: "dpkg"}
	if len(parts) >= 3 {
		if kb, err := strconv.ParseUint(parts[2], 10, 64); err == nil {
			app.Size = kb * 1024
		}
	}
	return app, true
}

// parseRpmLine parses "name|version|vendor|size-in-bytes".
func parseRpmLine(line string) (models.SoftwareInfo, bool) {
	parts := strings.Split(line, "|")
	if len(parts) < 2 || parts[0] == "" {
		return models.SoftwareInfo{}, false
	}
	app := models.SoftwareInfo{Name: parts[0], Version: parts[1], Source: "rpm"}
	if len(parts) >= 3 && parts[2] != "(none)" {
		app.Publisher = parts[2]
	}
	if len(parts) >= 4 {
		if size, err := strconv.ParseUint(parts[3], 10, 64); err == nil {
			app.Size = size
		}
	}
	return app, true
}

// parseFlatpakLine parses tab-separated "name\tversion".
func parseFlatpakLine(line string) (models.SoftwareInfo, bool) {
	name, version, _ := strings.Cut(line, "\t")
	if name == "" {
		return models.SoftwareInfo{}, false
	}
	return models.SoftwareInfo{Name: name, Version: strings.TrimSpace(version), Source: "Flatpak"}, true
}

// parseSnapLine parses a "Name Version Rev Tracking Publisher Notes" row.
func parseSnapLine(line string) (models.SoftwareInfo, bool) {
	parts := strings.Fields(line)
	if len(parts) < 2 {
		return models.SoftwareInfo{}, false
	}
	app := models.SoftwareInfo{Name: parts[0], Version: parts[1], Source: "Snap"}
	if len(parts) >= 5 {
		app.Publisher = strings.TrimSuffix(parts[4], "✓")
	}
	return app, true
}

// fieldsParser parses whitespace-separated "name version..." lines; when
// several versions are installed the last one wins.
func fieldsParser(source string) func(string) (models.SoftwareInfo, bool) {
	return func(line string) (models.SoftwareInfo, bool) {
		parts := strings.Fields(line)
		if len(parts) < 2 {
			return models.SoftwareInfo{}, false
		}
		return models.SoftwareInfo{Name: parts[0], Version: parts[len(parts)-1], Source: source}, true
	}
}

// deduplicateSoftware removes duplicate software entries based on name and version
func deduplicateSoftware(software []models.SoftwareInfo) []models.SoftwareInfo {
	seen := make(map[string]bool)
	var result []models.SoftwareInfo

	for _, app := range software {
		key := app.Name + "|" + app.Version
		if !seen[key] {
			seen[key] = true
			result = append(result, app)
		}
	}

	return result
}
