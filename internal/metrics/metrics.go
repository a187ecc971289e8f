// Package metrics exposes Prometheus collectors for the item catalog.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "itemdb"

	MetricNameCatalogEntries       = "catalog_entries"
	MetricNameCatalogBuildDuration = "catalog_build_duration_seconds"
	MetricNameSlotMaterialize      = "slot_materialize_total"
	MetricNameEquipChecks          = "equip_checks_total"

	HelpTextCatalogEntries       = "Number of catalog entries by category"
	HelpTextCatalogBuildDuration = "Duration of the last catalog build"
	HelpTextSlotMaterialize      = "Item slot materialization requests by outcome"
	HelpTextEquipChecks          = "Equip eligibility checks by outcome"

	LabelCategory = "category"
	LabelResult   = "result"
)

// Materialize outcomes.
const (
	ResultEquip   = "equip"
	ResultBundle  = "bundle"
	ResultCash    = "cash"
	ResultMissing = "missing"
)

// Metrics holds collectors shared by the catalog builder and the equip engine.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	catalogEntries  *prometheus.GaugeVec
	buildDuration   prometheus.Gauge
	slotMaterialize *prometheus.CounterVec
	equipChecks     *prometheus.CounterVec
}

// New registers collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		catalogEntries: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      MetricNameCatalogEntries,
			Help:      HelpTextCatalogEntries,
		}, []string{LabelCategory}),
		buildDuration: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      MetricNameCatalogBuildDuration,
			Help:      HelpTextCatalogBuildDuration,
		}),
		slotMaterialize: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      MetricNameSlotMaterialize,
			Help:      HelpTextSlotMaterialize,
		}, []string{LabelResult}),
		equipChecks: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      MetricNameEquipChecks,
			Help:      HelpTextEquipChecks,
		}, []string{LabelResult}),
	}
}

// SetCatalogEntries records the entry count of a catalog category.
func (m *Metrics) SetCatalogEntries(category string, n int) {
	if m == nil {
		return
	}
	m.catalogEntries.WithLabelValues(category).Set(float64(n))
}

// ObserveBuild records how long the catalog build took.
func (m *Metrics) ObserveBuild(d time.Duration) {
	if m == nil {
		return
	}
	m.buildDuration.Set(d.Seconds())
}

// IncMaterialize counts a slot materialization outcome.
func (m *Metrics) IncMaterialize(result string) {
	if m == nil {
		return
	}
	m.slotMaterialize.WithLabelValues(result).Inc()
}

// IncEquipCheck counts an eligibility check.
func (m *Metrics) IncEquipCheck(allowed bool) {
	if m == nil {
		return
	}
	result := "denied"
	if allowed {
		result = "allowed"
	}
	m.equipChecks.WithLabelValues(result).Inc()
}
