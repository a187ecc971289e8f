package itemid

// Weapon type codes (id/10000 % 100 of a weapon).
const (
	WeaponNone           int32 = 0
	WeaponOneHandedSword int32 = 30
	WeaponOneHandedAxe   int32 = 31
	WeaponOneHandedMace  int32 = 32
	WeaponDagger         int32 = 33
	WeaponWand           int32 = 37
	WeaponStaff          int32 = 38
	WeaponTwoHandedSword int32 = 40
	WeaponTwoHandedAxe   int32 = 41
	WeaponTwoHandedMace  int32 = 42
	WeaponSpear          int32 = 43
	WeaponPolearm        int32 = 44
	WeaponBow            int32 = 45
	WeaponCrossbow       int32 = 46
	WeaponThrowingGloves int32 = 47
)

// WeaponType returns the weapon type code of an equip, or WeaponNone when the
// item is not a recognized weapon.
func WeaponType(itemID int32) int32 {
	if TypeOf(itemID) != TypeEquip {
		return WeaponNone
	}
	wt := itemID / 10000 % 100
	switch {
	case wt >= WeaponOneHandedSword && wt <= WeaponDagger,
		wt == WeaponWand, wt == WeaponStaff,
		wt >= WeaponTwoHandedSword && wt <= WeaponThrowingGloves:
		return wt
	}
	return WeaponNone
}
