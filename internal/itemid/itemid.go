// Package itemid classifies items purely by their numeric identifier.
//
// Item IDs encode their category in fixed digit ranges:
//
//	1xxxxxx  equip      (1302000 = one-handed sword)
//	2xxxxxx  consume    (2000000 = red potion)
//	3xxxxxx  install
//	4xxxxxx  etc
//	5xxxxxx  cash
//
// Every predicate here is total over int32 and side-effect free:
// unknown ranges classify as "none".
package itemid

// ItemType is the coarse category (inventory tab) of an item.
type ItemType int8

const (
	TypeNone ItemType = iota
	TypeEquip
	TypeConsume
	TypeInstall
	TypeEtc
	TypeCash
)

// String returns human-readable item type name.
func (t ItemType) String() string {
	switch t {
	case TypeEquip:
		return "Equip"
	case TypeConsume:
		return "Consume"
	case TypeInstall:
		return "Install"
	case TypeEtc:
		return "Etc"
	case TypeCash:
		return "Cash"
	default:
		return "None"
	}
}

// IsBundle reports whether items of this type stack (consume, install, etc).
func (t ItemType) IsBundle() bool {
	return t >= TypeConsume && t <= TypeEtc
}

// TypeOf returns the item type encoded in the millions digit.
func TypeOf(itemID int32) ItemType {
	t := itemID / 1000000
	if t >= int32(TypeEquip) && t <= int32(TypeCash) {
		return ItemType(t)
	}
	return TypeNone
}

// class returns the 3-digit item class (id/10000), e.g. 130 for one-handed swords.
func class(itemID int32) int32 {
	return itemID / 10000
}

// Equip sub-classes.
const (
	classCoat      = 104
	classLongCoat  = 105
	classPants     = 106
	classShoes     = 107
	classGloves    = 108
	classShield    = 109
	classCape      = 110
	classRing      = 111
	classPetEquip  = 180
	shieldBlockers = 14 // id/100000: 140xxxx..149xxxx
)

// IsTwoHanded reports whether the weapon-type digits (id/10000 % 100) are in [40,47]:
// two-handed sword/axe/mace, spear, polearm, bow, crossbow, throwing gloves.
func IsTwoHanded(itemID int32) bool {
	wt := itemID / 10000 % 100
	return wt >= 40 && wt <= 47
}

// IsLongCoat reports whether the item is an overall that also covers the pants slot.
func IsLongCoat(itemID int32) bool {
	return class(itemID) == classLongCoat
}

// IsShieldClass reports whether the item lies in the 140xxxx..149xxxx weapon block
// which cannot be worn together with a shield.
func IsShieldClass(itemID int32) bool {
	return itemID/100000 == shieldBlockers
}

// IsPantsConflictTop reports whether the item belongs to class 106, the slot an
// equipped long coat already covers.
func IsPantsConflictTop(itemID int32) bool {
	return class(itemID) == classPants
}

// IsWeaponConflictBottom reports whether the item belongs to class 109 (shields).
func IsWeaponConflictBottom(itemID int32) bool {
	return class(itemID) == classShield
}

// IsStateChangeItem matches potions, food and cure items (200, 201, 202, 205).
func IsStateChangeItem(itemID int32) bool {
	switch class(itemID) {
	case 200, 201, 202, 205:
		return true
	}
	return false
}

// IsPortalScrollItem matches return/teleport scrolls (203).
func IsPortalScrollItem(itemID int32) bool {
	return class(itemID) == 203
}

// IsUpgradeItem matches equip enhancement scrolls (204).
func IsUpgradeItem(itemID int32) bool {
	return class(itemID) == 204
}

// IsWeatherItem matches weather effect items (209).
func IsWeatherItem(itemID int32) bool {
	return class(itemID) == 209
}

// IsPetEquip reports whether the item is a pet accessory (180).
func IsPetEquip(itemID int32) bool {
	return class(itemID) == classPetEquip
}

// UpgradeTargetCode returns the weapon/armor code an upgrade scroll applies to:
// 2043000 → 30 (one-handed swords).
func UpgradeTargetCode(scrollID int32) int32 {
	return scrollID % 10000 / 100
}

// EquipClassCode returns the two-digit class segment (id/10000 % 100) of an equip:
// 1302000 → 30.
func EquipClassCode(itemID int32) int32 {
	return itemID / 10000 % 100
}
