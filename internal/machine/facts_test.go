package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreCountsPopulatedFields(t *testing.T) {
	assert.Equal(t, 0, BIOSInfo{}.Score())
	assert.Equal(t, 1, BIOSInfo{Version: "1.0"}.Score())
	assert.Equal(t, 1, BIOSInfo{Vendor: "Acme"}.Score())
	assert.Equal(t, 3, BIOSInfo{Vendor: "Acme", ReleaseDate: "01/01/2020", Version: "1.0"}.Score())

	assert.Equal(t, 2, SystemInfo{Serial: "S", UUID: "U"}.Score())
	assert.Equal(t, 2, SystemInfo{Name: "N", Vendor: "V"}.Score())
	assert.Equal(t, 5, BoardInfo{"a", "b", "c", "d", "e"}.Score())
	assert.Equal(t, 1, ChassisInfo{Type: "Tower"}.Score())
	assert.Equal(t, 0, VideoInfo{}.Score())
}

func TestMergeFirstWriterWins(t *testing.T) {
	a := BIOSInfo{Vendor: "A"}
	a.MergeWith(BIOSInfo{Vendor: "B", Version: "2.0"})

	assert.Equal(t, BIOSInfo{Vendor: "A", Version: "2.0"}, a)
}

func TestMergeIsMonotonic(t *testing.T) {
	sources := []SystemInfo{
		{Name: "Widget"},
		{Name: "", Vendor: "Acme"},
		{Serial: "S1", Vendor: ""},
		{},
		{Name: "Other", Vendor: "Other", Serial: "S2", Version: "v", UUID: "U"},
	}

	var canonical SystemInfo
	prevScore := 0
	for _, s := range sources {
		before := canonical
		canonical.MergeWith(s)

		assert.GreaterOrEqual(t, canonical.Score(), prevScore)
		prevScore = canonical.Score()
		for _, pair := range [][2]string{
			{before.Name, canonical.Name},
			{before.Vendor, canonical.Vendor},
			{before.Serial, canonical.Serial},
			{before.Version, canonical.Version},
			{before.UUID, canonical.UUID},
		} {
			if pair[0] != "" {
				assert.Equal(t, pair[0], pair[1], "known field changed")
			}
		}
	}

	assert.Equal(t, SystemInfo{Name: "Widget", Vendor: "Acme", Serial: "S1", Version: "v", UUID: "U"}, canonical)
}

func TestMergeZeroScoreIsDiscarded(t *testing.T) {
	board := BoardInfo{Name: "X1"}
	want := board
	board.MergeWith(BoardInfo{})
	assert.Equal(t, want, board)

	chassis := ChassisInfo{}
	chassis.MergeWith(ChassisInfo{})
	assert.Equal(t, ChassisInfo{}, chassis)
}

func TestFactsScore(t *testing.T) {
	f := Facts{
		BIOS:    BIOSInfo{Vendor: "Acme"},
		Chassis: ChassisInfo{Type: "Tower", Serial: "C1"},
		Videos:  []VideoInfo{{Name: "GPU"}},
	}
	assert.Equal(t, 3, f.Score())
}
