package model

// Slot is a concrete item instance materialized from a template.
// Either *EquipSlot or *BundleSlot.
type Slot interface {
	ItemID() int32
	isSlot()
}

// EquipSlot is an equip instance with varied stats.
type EquipSlot struct {
	ID int32
	// RUC is the number of upgrades the instance can still receive.
	RUC uint8
	// CUC is the number of upgrades already applied.
	CUC uint8
	Inc IncStats
}

// ItemID returns the template ID.
func (s *EquipSlot) ItemID() int32 { return s.ID }

func (*EquipSlot) isSlot() {}

// BundleSlot is a stack of bundle items.
type BundleSlot struct {
	ID     int32
	Number int16
}

// ItemID returns the template ID.
func (s *BundleSlot) ItemID() int32 { return s.ID }

func (*BundleSlot) isSlot() {}
