// Package equip answers equip questions against the item catalog:
// whether a character may wear an item, which worn item has to come off
// first, and how a concrete item instance is materialized.
//
// Engine holds no mutable state; one instance serves any number of
// goroutines.
package equip

import (
	"log/slog"

	"github.com/udisondev/itemdb/internal/itemid"
	"github.com/udisondev/itemdb/internal/job"
	"github.com/udisondev/itemdb/internal/metrics"
	"github.com/udisondev/itemdb/internal/model"
	"github.com/udisondev/itemdb/internal/variation"
)

// Catalog is the part of the item catalog the engine reads.
type Catalog interface {
	EquipItem(itemID int32) (model.EquipItem, bool)
	BundleItem(itemID int32) (model.BundleItem, bool)
	UpgradeItem(itemID int32) (model.UpgradeItem, bool)
}

// JobClassifier maps a detailed job ID to its coarse category.
type JobClassifier interface {
	Category(jobID int32) job.Category
}

// Engine applies equip rules over a catalog.
type Engine struct {
	catalog   Catalog
	jobs      JobClassifier
	variation variation.Func
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

// Option configures an Engine.
type Option func(*Engine)

// WithJobClassifier replaces the default job/100 classifier.
func WithJobClassifier(c JobClassifier) Option {
	return func(e *Engine) { e.jobs = c }
}

// WithVariation sets the stat variation policy used by MaterializeSlot.
func WithVariation(f variation.Func) Option {
	return func(e *Engine) { e.variation = f }
}

// WithLogger sets the logger for caller errors.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithMetrics counts checks and materializations.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// New creates an engine over c.
func New(c Catalog, opts ...Option) *Engine {
	e := &Engine{
		catalog:   c,
		jobs:      job.Classifier{},
		variation: variation.Identity,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// IsCashItem reports whether the item is sold for premium currency.
// Unknown items are not cash items.
func (e *Engine) IsCashItem(itemID int32) bool {
	if itemid.TypeOf(itemID) == itemid.TypeEquip {
		info, ok := e.catalog.EquipItem(itemID)
		return ok && info.Cash
	}
	info, ok := e.catalog.BundleItem(itemID)
	return ok && info.Cash
}

// IsTwoHanded reports whether the item occupies both hands.
func (e *Engine) IsTwoHanded(itemID int32) bool {
	return itemid.IsTwoHanded(itemID)
}

// BulletAttackBonus returns the attack bonus of a throwing star or arrow, 0 if unknown.
func (e *Engine) BulletAttackBonus(itemID int32) int32 {
	info, ok := e.catalog.BundleItem(itemID)
	if !ok {
		return 0
	}
	return int32(info.IncPAD)
}

// UnitSellPrice returns the per-unit price of a rechargeable bundle, 1.0 if unknown.
func (e *Engine) UnitSellPrice(itemID int32) float64 {
	info, ok := e.catalog.BundleItem(itemID)
	if !ok {
		return 1.0
	}
	return info.UnitPrice
}

// IsUpgradeCompatible reports whether the scroll can be applied to the equip:
// the scroll must be of class 204, its target code (scroll%10000/100) must
// match the equip class code (equip/10000%100), and the scroll must be in the
// catalog.
func (e *Engine) IsUpgradeCompatible(scrollID, equipID int32) bool {
	if !itemid.IsUpgradeItem(scrollID) || itemid.TypeOf(equipID) != itemid.TypeEquip {
		return false
	}
	if itemid.UpgradeTargetCode(scrollID) != itemid.EquipClassCode(equipID) {
		return false
	}
	_, ok := e.catalog.UpgradeItem(scrollID)
	return ok
}
