package itemid

// BodyPart is an equip slot index on the character.
type BodyPart int8

const (
	BodyPartNone    BodyPart = 0
	BodyPartCap     BodyPart = 1
	BodyPartFaceAcc BodyPart = 2
	BodyPartEyeAcc  BodyPart = 3
	BodyPartEarAcc  BodyPart = 4
	BodyPartClothes BodyPart = 5
	BodyPartPants   BodyPart = 6
	BodyPartShoes   BodyPart = 7
	BodyPartGloves  BodyPart = 8
	BodyPartCape    BodyPart = 9
	BodyPartShield  BodyPart = 10
	BodyPartWeapon  BodyPart = 11
	BodyPartRing1   BodyPart = 12
	BodyPartRing2   BodyPart = 13
	BodyPartPetWear BodyPart = 14
	BodyPartRing3   BodyPart = 15
	BodyPartRing4   BodyPart = 16
)

var bodyPartNames = map[BodyPart]string{
	BodyPartNone:    "None",
	BodyPartCap:     "Cap",
	BodyPartFaceAcc: "FaceAcc",
	BodyPartEyeAcc:  "EyeAcc",
	BodyPartEarAcc:  "EarAcc",
	BodyPartClothes: "Clothes",
	BodyPartPants:   "Pants",
	BodyPartShoes:   "Shoes",
	BodyPartGloves:  "Gloves",
	BodyPartCape:    "Cape",
	BodyPartShield:  "Shield",
	BodyPartWeapon:  "Weapon",
	BodyPartRing1:   "Ring1",
	BodyPartRing2:   "Ring2",
	BodyPartPetWear: "PetWear",
	BodyPartRing3:   "Ring3",
	BodyPartRing4:   "Ring4",
}

// String returns human-readable body part name.
func (p BodyPart) String() string {
	if name, ok := bodyPartNames[p]; ok {
		return name
	}
	return "Unknown"
}

// IsCorrectBodyPart reports whether an equip with this ID may be placed into part.
func IsCorrectBodyPart(itemID int32, part BodyPart) bool {
	if TypeOf(itemID) != TypeEquip {
		return false
	}
	c := class(itemID)
	switch part {
	case BodyPartCap:
		return c == 100
	case BodyPartFaceAcc:
		return c == 101
	case BodyPartEyeAcc:
		return c == 102
	case BodyPartEarAcc:
		return c == 103
	case BodyPartClothes:
		return c == classCoat || c == classLongCoat
	case BodyPartPants:
		return c == classPants
	case BodyPartShoes:
		return c == classShoes
	case BodyPartGloves:
		return c == classGloves
	case BodyPartCape:
		return c == classCape
	case BodyPartShield:
		return c == classShield
	case BodyPartWeapon:
		return WeaponType(itemID) != 0
	case BodyPartRing1, BodyPartRing2, BodyPartRing3, BodyPartRing4:
		return c == classRing
	case BodyPartPetWear:
		return c == classPetEquip
	}
	return false
}

// Gender codes used by characters and equips.
const (
	GenderMale   int32 = 0
	GenderFemale int32 = 1
	// GenderBoth marks unisex equips and every non-equip item.
	GenderBoth int32 = 2
)

// GenderOf returns the gender an item is restricted to (thousands digit of equips).
func GenderOf(itemID int32) int32 {
	if TypeOf(itemID) != TypeEquip {
		return GenderBoth
	}
	switch itemID / 1000 % 10 {
	case 0:
		return GenderMale
	case 1:
		return GenderFemale
	default:
		return GenderBoth
	}
}

// IsMatchedGender reports whether a character of the given gender can wear the item.
func IsMatchedGender(itemID, gender int32) bool {
	g := GenderOf(itemID)
	return g == GenderBoth || g == gender
}
