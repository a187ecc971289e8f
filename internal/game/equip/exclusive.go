package equip

import "github.com/udisondev/itemdb/internal/itemid"

// Equipped maps a body part to the item worn there. A missing key or a zero
// item ID means the part is empty.
type Equipped map[itemid.BodyPart]int32

// ExclusiveBodyPart returns the body part that has to be emptied before
// itemID can be worn, or BodyPartNone.
//
// itemID 0 asks the opposite question: which worn item is no longer valid
// with the current combination.
func ExclusiveBodyPart(equipped Equipped, itemID int32) itemid.BodyPart {
	if part := exclusiveWeaponShield(equipped, itemID); part != itemid.BodyPartNone {
		return part
	}
	return exclusiveClothesPants(equipped, itemID)
}

// ExclusiveBodyPart is the engine form of the package-level function.
func (e *Engine) ExclusiveBodyPart(equipped Equipped, itemID int32) itemid.BodyPart {
	return ExclusiveBodyPart(equipped, itemID)
}

func exclusiveWeaponShield(equipped Equipped, itemID int32) itemid.BodyPart {
	weapon := equipped[itemid.BodyPartWeapon]
	shield := equipped[itemid.BodyPartShield]

	if itemID != 0 {
		if itemid.IsTwoHanded(itemID) && shield != 0 {
			return itemid.BodyPartShield
		}
		if itemid.IsWeaponConflictBottom(itemID) && weapon != 0 && itemid.IsShieldClass(weapon) {
			return itemid.BodyPartWeapon
		}
		return itemid.BodyPartNone
	}
	if weapon != 0 && shield != 0 && itemid.IsShieldClass(weapon) {
		return itemid.BodyPartWeapon
	}
	return itemid.BodyPartNone
}

func exclusiveClothesPants(equipped Equipped, itemID int32) itemid.BodyPart {
	clothes := equipped[itemid.BodyPartClothes]
	pants := equipped[itemid.BodyPartPants]

	if itemID != 0 {
		if itemid.IsLongCoat(itemID) && pants != 0 {
			return itemid.BodyPartPants
		}
		if itemid.IsPantsConflictTop(itemID) && clothes != 0 && itemid.IsLongCoat(clothes) {
			return itemid.BodyPartClothes
		}
		return itemid.BodyPartNone
	}
	if clothes != 0 && pants != 0 && itemid.IsLongCoat(clothes) {
		return itemid.BodyPartClothes
	}
	return itemid.BodyPartNone
}
