package model

import "github.com/udisondev/itemdb/internal/itemid"

// InvalidField is the map ID used when a destination is not specified.
const InvalidField int32 = 999999999

// IncStats holds stat increments an equip grants or an upgrade scroll adds.
type IncStats struct {
	STR   int16
	DEX   int16
	INT   int16
	LUK   int16
	MaxHP int16
	MaxMP int16
	PAD   int16 // physical attack
	MAD   int16 // magic attack
	PDD   int16 // physical defense
	MDD   int16 // magic defense
	ACC   int16
	EVA   int16
	Craft int16
	Speed int16
	Jump  int16
}

// Each calls fn for every stat in declaration order.
func (s IncStats) Each(fn func(name string, v int16)) {
	fn("STR", s.STR)
	fn("DEX", s.DEX)
	fn("INT", s.INT)
	fn("LUK", s.LUK)
	fn("MaxHP", s.MaxHP)
	fn("MaxMP", s.MaxMP)
	fn("PAD", s.PAD)
	fn("MAD", s.MAD)
	fn("PDD", s.PDD)
	fn("MDD", s.MDD)
	fn("ACC", s.ACC)
	fn("EVA", s.EVA)
	fn("Craft", s.Craft)
	fn("Speed", s.Speed)
	fn("Jump", s.Jump)
}

// EquipReq lists requirements a character must meet to wear an equip.
type EquipReq struct {
	Level int32
	STR   int32
	DEX   int32
	INT   int32
	LUK   int32
	POP   int32 // population (fame)
	// Job is a bitmask of allowed job categories; 0 = anyone, -1 = beginners only.
	Job int32
}

// EquipItem - шаблон экипировки из Character/*.
type EquipItem struct {
	ItemID int32
	Name   string

	Req EquipReq
	Inc IncStats
	// Swim is not varied per instance.
	Swim int16

	TUC         int32 // total upgrade count
	SellPrice   int32
	Knockback   int32
	AttackSpeed int32
	Cash        bool
}

// BundleItem - шаблон стакающегося предмета из Item/Consume и Item/Etc.
type BundleItem struct {
	ItemID    int32
	Name      string
	SellPrice int32
	UnitPrice float64
	SlotMax   int32
	// IncPAD is the attack bonus of throwing stars and arrows.
	IncPAD int16
	Cash   bool
	// Kind tells which specialized record, if any, exists for this item.
	Kind itemid.BundleKind
}

// StatFlag is a bit set of stats a state-change item affects.
type StatFlag uint32

const (
	StatHP StatFlag = 1 << iota
	StatMP
	StatPAD
	StatPDD
	StatMAD
	StatMDD
	StatACC
	StatEVA
	StatSpeed
)

// TemporaryStats are applied as timed buffs; the rest (HP, MP) are instant.
const TemporaryStats = StatPAD | StatPDD | StatMAD | StatMDD | StatACC | StatEVA | StatSpeed

// Has reports whether every bit of s is set in f.
func (f StatFlag) Has(s StatFlag) bool {
	return f&s == s
}

// StateChangeInfo describes the effect of a consumable.
type StateChangeInfo struct {
	HP    int32
	MP    int32
	PAD   int32
	PDD   int32
	MAD   int32
	MDD   int32
	ACC   int32
	EVA   int32
	Speed int32
	// Time is the buff duration in milliseconds.
	Time int32

	// Flag marks stats with a non-zero value.
	Flag StatFlag
	// FlagRate marks stats whose value is a percentage rather than an amount.
	FlagRate StatFlag
}

// StateChangeItem is a potion, food or cure item.
type StateChangeItem struct {
	ItemID int32
	Info   StateChangeInfo
	// SpecEx is set for items described by a specEx block; their Info stays empty.
	SpecEx bool
}

// PortalScrollItem is a return scroll.
type PortalScrollItem struct {
	ItemID int32
	MoveTo int32
}

// UpgradeItem is an equip enhancement scroll.
type UpgradeItem struct {
	ItemID  int32
	Inc     IncStats
	Success uint8 // percent
}
