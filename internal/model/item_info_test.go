package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatFlag_Has(t *testing.T) {
	t.Parallel()

	f := StatHP | StatPAD | StatSpeed

	assert.True(t, f.Has(StatHP))
	assert.True(t, f.Has(StatPAD|StatSpeed))
	assert.False(t, f.Has(StatMP))
	assert.False(t, f.Has(StatPAD|StatMP))
	assert.True(t, f.Has(0))

	assert.False(t, TemporaryStats.Has(StatHP))
	assert.False(t, TemporaryStats.Has(StatMP))
	assert.True(t, TemporaryStats.Has(StatPAD|StatPDD|StatMAD|StatMDD|StatACC|StatEVA|StatSpeed))
}

func TestIncStats_Each(t *testing.T) {
	t.Parallel()

	inc := IncStats{STR: 1, MaxMP: 6, PAD: 7, Jump: 15}

	var names []string
	got := map[string]int16{}
	inc.Each(func(name string, v int16) {
		names = append(names, name)
		got[name] = v
	})

	assert.Equal(t, []string{
		"STR", "DEX", "INT", "LUK", "MaxHP", "MaxMP", "PAD", "MAD",
		"PDD", "MDD", "ACC", "EVA", "Craft", "Speed", "Jump",
	}, names)
	assert.Equal(t, int16(1), got["STR"])
	assert.Equal(t, int16(6), got["MaxMP"])
	assert.Equal(t, int16(7), got["PAD"])
	assert.Equal(t, int16(15), got["Jump"])
	assert.Equal(t, int16(0), got["DEX"])
}

func TestSlot_ItemID(t *testing.T) {
	t.Parallel()

	slots := []Slot{
		&EquipSlot{ID: 1302000, RUC: 7},
		&BundleSlot{ID: 2000000, Number: 5},
	}

	assert.Equal(t, int32(1302000), slots[0].ItemID())
	assert.Equal(t, int32(2000000), slots[1].ItemID())
}
