// Package job maps detailed job IDs to their coarse job category.
package job

// Category is a coarse character class grouping.
type Category int32

const (
	CategoryNovice  Category = 0
	CategoryWarrior Category = 1
	CategoryWizard  Category = 2
	CategoryArcher  Category = 3
	CategoryThief   Category = 4
)

// String returns human-readable category name.
func (c Category) String() string {
	switch c {
	case CategoryNovice:
		return "Novice"
	case CategoryWarrior:
		return "Warrior"
	case CategoryWizard:
		return "Wizard"
	case CategoryArcher:
		return "Archer"
	case CategoryThief:
		return "Thief"
	default:
		return "Unknown"
	}
}

// CategoryOf returns the category encoded in the hundreds of a job ID:
// 100 Warrior, 110 Fighter, 230 Cleric → Wizard.
// Unknown branches (GM 500, 900) map to CategoryNovice.
func CategoryOf(jobID int32) Category {
	c := Category(jobID / 100)
	if c < CategoryNovice || c > CategoryThief {
		return CategoryNovice
	}
	return c
}

// Classifier adapts CategoryOf to an interface.
type Classifier struct{}

// Category implements the job classification used by the equip engine.
func (Classifier) Category(jobID int32) Category {
	return CategoryOf(jobID)
}
