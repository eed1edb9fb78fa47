package inventory

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/breeze-rmm/inventory-agent/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleInventory() *models.Inventory {
	return &models.Inventory{
		DeviceID: "web01-2019-03-14-00-00-00",
		Tag:      "lab",
		Bios:     models.BiosSection{BiosManufacturer: "Acme", BiosVersion: "1.2"},
		Videos:   []models.VideoInfo{{Name: "GPU A"}, {Name: "GPU B"}},
	}
}

func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleInventory(), FormatJSON))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "web01-2019-03-14-00-00-00", doc["deviceId"])
	assert.Equal(t, "Acme", doc["bios"].(map[string]any)["biosManufacturer"])
	assert.NotContains(t, doc["bios"], "biosDate")
}

func TestEncodeYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleInventory(), FormatYAML))

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "lab", doc["tag"])
	assert.Len(t, doc["videos"], 2)
}

func TestEncodeUnknownFormat(t *testing.T) {
	assert.Error(t, Encode(&bytes.Buffer{}, sampleInventory(), "xml"))
}
