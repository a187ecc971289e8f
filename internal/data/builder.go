package data

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/udisondev/itemdb/internal/metrics"
	"github.com/udisondev/itemdb/internal/model"
	"github.com/udisondev/itemdb/internal/restree"
)

// ErrInvalidID is returned when an item or map node name is not a
// non-negative integer. The source data is corrupted and the build stops.
var ErrInvalidID = errors.New("invalid resource id")

// Builder accumulates catalog entries. It is not safe for concurrent use;
// Finalize hands the collected tables over to an immutable Catalog.
type Builder struct {
	equip        map[int32]model.EquipItem
	bundle       map[int32]model.BundleItem
	stateChange  map[int32]model.StateChangeItem
	portalScroll map[int32]model.PortalScrollItem
	upgrade      map[int32]model.UpgradeItem
	itemNames    map[int32]string
	mapNames     map[int32]string

	logger *slog.Logger
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	b := &Builder{logger: slog.Default()}
	b.reset()
	return b
}

func (b *Builder) reset() {
	b.equip = make(map[int32]model.EquipItem)
	b.bundle = make(map[int32]model.BundleItem)
	b.stateChange = make(map[int32]model.StateChangeItem)
	b.portalScroll = make(map[int32]model.PortalScrollItem)
	b.upgrade = make(map[int32]model.UpgradeItem)
	b.itemNames = make(map[int32]string)
	b.mapNames = make(map[int32]string)
}

// AddEquip registers an equip template.
func (b *Builder) AddEquip(item model.EquipItem) { b.equip[item.ItemID] = item }

// AddBundle registers a bundle template.
func (b *Builder) AddBundle(item model.BundleItem) { b.bundle[item.ItemID] = item }

// AddStateChange registers a consumable effect.
func (b *Builder) AddStateChange(item model.StateChangeItem) { b.stateChange[item.ItemID] = item }

// AddPortalScroll registers a return scroll.
func (b *Builder) AddPortalScroll(item model.PortalScrollItem) { b.portalScroll[item.ItemID] = item }

// AddUpgrade registers an enhancement scroll.
func (b *Builder) AddUpgrade(item model.UpgradeItem) { b.upgrade[item.ItemID] = item }

// SetItemName sets the display name of an item.
func (b *Builder) SetItemName(itemID int32, name string) { b.itemNames[itemID] = name }

// SetMapName sets the display name of a map.
func (b *Builder) SetMapName(mapID int32, name string) { b.mapNames[mapID] = name }

// Finalize returns the collected tables as a Catalog. The builder starts over
// empty, so nothing it does afterwards can reach the returned catalog.
func (b *Builder) Finalize() *Catalog {
	c := &Catalog{
		equip:        b.equip,
		bundle:       b.bundle,
		stateChange:  b.stateChange,
		portalScroll: b.portalScroll,
		upgrade:      b.upgrade,
		itemNames:    b.itemNames,
		mapNames:     b.mapNames,
	}
	b.reset()
	return c
}

// Option configures Build.
type Option func(*buildOptions)

type buildOptions struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// WithLogger sets the logger used for load progress.
func WithLogger(l *slog.Logger) Option {
	return func(o *buildOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics records entry counts and build duration.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *buildOptions) { o.metrics = m }
}

// Resource tree layout.
const (
	dirCharacter  = "Character"
	dirItem       = "Item"
	dirMap        = "Map/Map"
	dirAfterimage = "Afterimage" // weapon swing effects, not items
)

// bundleCategories are the Item sub-directories holding bundle items.
var bundleCategories = []string{"Consume", "Etc"}

// Build reads equips, bundles and map names from src and returns the catalog.
// Each directory handle is released as soon as its subtree is consumed.
func Build(src restree.Source, opts ...Option) (*Catalog, error) {
	o := buildOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	b := NewBuilder()
	b.logger = o.logger

	b.logger.Info("loading equip info")
	if err := b.loadEquips(src); err != nil {
		return nil, fmt.Errorf("loading equips: %w", err)
	}

	b.logger.Info("loading bundle info")
	if err := b.loadBundles(src); err != nil {
		return nil, fmt.Errorf("loading bundles: %w", err)
	}

	if err := b.loadMapNames(src); err != nil {
		return nil, fmt.Errorf("loading map names: %w", err)
	}

	c := b.Finalize()
	elapsed := time.Since(start)

	n := c.Counts()
	o.metrics.SetCatalogEntries("equip", n.Equip)
	o.metrics.SetCatalogEntries("bundle", n.Bundle)
	o.metrics.SetCatalogEntries("state_change", n.StateChange)
	o.metrics.SetCatalogEntries("portal_scroll", n.PortalScroll)
	o.metrics.SetCatalogEntries("upgrade", n.Upgrade)
	o.metrics.SetCatalogEntries("map_name", n.MapNames)
	o.metrics.ObserveBuild(elapsed)

	o.logger.Info("loaded item catalog",
		"equip", n.Equip,
		"bundle", n.Bundle,
		"state_change", n.StateChange,
		"portal_scroll", n.PortalScroll,
		"upgrade", n.Upgrade,
		"maps", n.MapNames,
		"duration", elapsed.Round(time.Millisecond))
	return c, nil
}

// openDir opens path; a missing directory is logged and reported as nil.
func (b *Builder) openDir(src restree.Source, path string) (restree.Dir, error) {
	d, err := src.Dir(path)
	if errors.Is(err, restree.ErrNotExist) {
		b.logger.Warn("resource directory missing, skipping", "path", path)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// parseID extracts an identifier from a node name like "01302000.img".
func parseID(name string) (int32, error) {
	s := strings.TrimSuffix(name, restree.EntryExt)
	id, err := strconv.ParseInt(s, 10, 32)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, name)
	}
	return int32(id), nil
}
