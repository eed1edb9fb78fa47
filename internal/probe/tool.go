package probe

import (
	"fmt"
	"io"

	"github.com/breeze-rmm/inventory-agent/internal/cmdstream"
	"github.com/breeze-rmm/inventory-agent/internal/dmi"
)

// toolProbe runs an external tool and parses its report from the stream.
type toolProbe struct {
	name    string
	tool    string
	command string
	parse   func(io.Reader) (dmi.Table, error)
}

func (p *toolProbe) Name() string {
	return p.name
}

func (p *toolProbe) Available() bool {
	return cmdstream.CommandExists(p.tool)
}

func (p *toolProbe) Probe() (dmi.Table, error) {
	var table dmi.Table
	err := cmdstream.Run(p.command, func(r *cmdstream.Reader) error {
		var err error
		table, err = p.parse(r)
		return err
	})
	if err != nil {
		return table, fmt.Errorf("%s: %w", p.name, err)
	}
	return table, nil
}

// DecoderTool parses the report of dmidecode.
type DecoderTool struct {
	toolProbe
}

// NewDecoderTool returns a probe running dmidecode.
func NewDecoderTool() *DecoderTool {
	return &DecoderTool{toolProbe{
		name:    "dmidecode",
		tool:    "dmidecode",
		command: "dmidecode",
		parse:   dmi.ParseDecoderReport,
	}}
}

// DisplayTool lists display adapters from the PCI bus with lspci.
type DisplayTool struct {
	toolProbe
}

// NewDisplayTool returns a probe running "lspci -mm".
func NewDisplayTool() *DisplayTool {
	return &DisplayTool{toolProbe{
		name:    "lspci",
		tool:    "lspci",
		command: "lspci -mm",
		parse:   dmi.ParsePCIReport,
	}}
}

// ListerTool parses the tree report of lshw. Its display list carries memory
// and resolution, so it supersedes the one from lspci.
type ListerTool struct {
	toolProbe
}

// NewListerTool returns a probe running lshw.
func NewListerTool() *ListerTool {
	return &ListerTool{toolProbe{
		name:    "lshw",
		tool:    "lshw",
		command: "lshw",
		parse:   dmi.ParseListerReport,
	}}
}
