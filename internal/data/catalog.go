package data

import (
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/udisondev/itemdb/internal/model"
)

// Catalog is the read-only item and map database built once at boot.
//
// Entries are never mutated after Finalize, so a *Catalog can be shared by
// any number of goroutines without locking. Accessors return copies.
type Catalog struct {
	equip        map[int32]model.EquipItem
	bundle       map[int32]model.BundleItem
	stateChange  map[int32]model.StateChangeItem
	portalScroll map[int32]model.PortalScrollItem
	upgrade      map[int32]model.UpgradeItem

	itemNames map[int32]string
	mapNames  map[int32]string
}

// EquipItem returns the equip template for itemID.
func (c *Catalog) EquipItem(itemID int32) (model.EquipItem, bool) {
	item, ok := c.equip[itemID]
	return item, ok
}

// BundleItem returns the bundle template for itemID.
func (c *Catalog) BundleItem(itemID int32) (model.BundleItem, bool) {
	item, ok := c.bundle[itemID]
	return item, ok
}

// StateChangeItem returns the consumable effect for itemID.
func (c *Catalog) StateChangeItem(itemID int32) (model.StateChangeItem, bool) {
	item, ok := c.stateChange[itemID]
	return item, ok
}

// PortalScrollItem returns the return scroll for itemID.
func (c *Catalog) PortalScrollItem(itemID int32) (model.PortalScrollItem, bool) {
	item, ok := c.portalScroll[itemID]
	return item, ok
}

// UpgradeItem returns the enhancement scroll for itemID.
func (c *Catalog) UpgradeItem(itemID int32) (model.UpgradeItem, bool) {
	item, ok := c.upgrade[itemID]
	return item, ok
}

// ItemName returns the display name of an item.
func (c *Catalog) ItemName(itemID int32) (string, bool) {
	name, ok := c.itemNames[itemID]
	return name, ok
}

// MapName returns the display name of a map.
func (c *Catalog) MapName(mapID int32) (string, bool) {
	name, ok := c.mapNames[mapID]
	return name, ok
}

// Counts holds the number of entries per catalog table.
type Counts struct {
	Equip        int
	Bundle       int
	StateChange  int
	PortalScroll int
	Upgrade      int
	ItemNames    int
	MapNames     int
}

// Counts returns table sizes.
func (c *Catalog) Counts() Counts {
	return Counts{
		Equip:        len(c.equip),
		Bundle:       len(c.bundle),
		StateChange:  len(c.stateChange),
		PortalScroll: len(c.portalScroll),
		Upgrade:      len(c.upgrade),
		ItemNames:    len(c.itemNames),
		MapNames:     len(c.mapNames),
	}
}

// EquipIDs returns all equip IDs in ascending order.
func (c *Catalog) EquipIDs() []int32 {
	return sortedKeys(c.equip)
}

// BundleIDs returns all bundle IDs in ascending order.
func (c *Catalog) BundleIDs() []int32 {
	return sortedKeys(c.bundle)
}

// SearchItemNames returns IDs of items whose name contains query, compared
// case-insensitively, in ascending order. limit <= 0 means no limit.
func (c *Catalog) SearchItemNames(query string, limit int) []int32 {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	// Caser хранит состояние, поэтому создаём на каждый вызов.
	fold := cases.Fold()
	q := fold.String(query)

	var out []int32
	for _, id := range sortedKeys(c.itemNames) {
		if strings.Contains(fold.String(c.itemNames[id]), q) {
			out = append(out, id)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	return out
}

func sortedKeys[V any](m map[int32]V) []int32 {
	return slices.Sorted(maps.Keys(m))
}
