package inventory

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/breeze-rmm/inventory-agent/pkg/models"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Encode writes inv to w in the given format.
func Encode(w io.Writer, inv *models.Inventory, format string) error {
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(inv)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(inv); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// extension returns the file extension for format.
func extension(format string) string {
	if format == FormatYAML {
		return ".yaml"
	}
	return ".json"
}
