package equip

import (
	"github.com/udisondev/itemdb/internal/itemid"
	"github.com/udisondev/itemdb/internal/job"
)

// Character holds runtime attributes of the character asking to equip.
type Character struct {
	Gender int32
	Level  int32
	Job    int32
	STR    int32
	DEX    int32
	INT    int32
	LUK    int32
	POP    int32
}

// casterJobBit is the job bit of the wizard category in reqJob masks.
const casterJobBit int32 = 2

// casterWeapon reports whether a wizard may hold the weapon type.
// Магам запрещено всё двуручное, включая луки и копья.
func casterWeapon(wt int32) bool {
	switch wt {
	case itemid.WeaponNone,
		itemid.WeaponOneHandedSword,
		itemid.WeaponOneHandedAxe,
		itemid.WeaponOneHandedMace,
		itemid.WeaponDagger,
		itemid.WeaponWand,
		itemid.WeaponStaff:
		return true
	}
	return false
}

// CanEquip reports whether c meets every requirement of the equip.
// Unknown items and pet equips are never equippable.
func (e *Engine) CanEquip(c Character, itemID int32) bool {
	ok := e.canEquip(c, itemID)
	e.metrics.IncEquipCheck(ok)
	return ok
}

func (e *Engine) canEquip(c Character, itemID int32) bool {
	info, ok := e.catalog.EquipItem(itemID)
	if !ok {
		return false
	}
	// TODO: allow pet equips once pets can carry items.
	if itemid.IsCorrectBodyPart(itemID, itemid.BodyPartPetWear) {
		return false
	}

	category := e.jobs.Category(c.Job)
	jobBit := int32(0)
	switch {
	case category == job.CategoryWizard:
		if !casterWeapon(itemid.WeaponType(itemID)) {
			return false
		}
		jobBit = casterJobBit
	case category > 0 && category <= 31:
		jobBit = 1 << (category - 1)
	}

	req := info.Req
	return itemid.IsMatchedGender(itemID, c.Gender) &&
		c.Level >= req.Level &&
		c.STR >= req.STR &&
		c.DEX >= req.DEX &&
		c.INT >= req.INT &&
		c.LUK >= req.LUK &&
		(req.POP == 0 || c.POP >= req.POP) &&
		MatchJob(req.Job, jobBit)
}

// MatchJob applies a reqJob mask: 0 allows everyone, a negative mask allows
// only beginners (jobBit 0), a positive mask requires a shared bit.
func MatchJob(reqJob, jobBit int32) bool {
	switch {
	case reqJob == 0:
		return true
	case reqJob < 0:
		return jobBit == 0
	default:
		return reqJob&jobBit != 0
	}
}
