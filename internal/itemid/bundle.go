package itemid

// BundleKind is the specialized behaviour a stackable item carries in addition to
// its plain bundle record. At most one kind applies per identifier.
type BundleKind int8

const (
	BundleOrdinary BundleKind = iota
	BundleStateChange
	BundleUpgrade
	BundlePortalScroll
	// BundleWeather is recognized but produces no specialized record.
	BundleWeather
)

// String returns human-readable bundle kind name.
func (k BundleKind) String() string {
	switch k {
	case BundleStateChange:
		return "StateChange"
	case BundleUpgrade:
		return "Upgrade"
	case BundlePortalScroll:
		return "PortalScroll"
	case BundleWeather:
		return "Weather"
	default:
		return "Ordinary"
	}
}

// bundleOrder has fixed precedence: first matching predicate wins.
var bundleOrder = []struct {
	kind  BundleKind
	match func(int32) bool
}{
	{BundleStateChange, IsStateChangeItem},
	{BundleUpgrade, IsUpgradeItem},
	{BundlePortalScroll, IsPortalScrollItem},
	{BundleWeather, IsWeatherItem},
}

// ClassifyBundle routes a bundle item ID to its specialized kind.
// Order: state-change, upgrade, portal-scroll, weather; otherwise ordinary.
func ClassifyBundle(itemID int32) BundleKind {
	for _, c := range bundleOrder {
		if c.match(itemID) {
			return c.kind
		}
	}
	return BundleOrdinary
}
