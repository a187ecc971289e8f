// Package variation turns an equip template stat and an instance option tier
// into the stat value of a concrete item instance.
//
// The scaling curve for option > 0 is a policy (Func) supplied by the caller.
// Identity is used until reference data for a concrete curve is configured.
package variation

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrMismatch is returned by Validate when a policy disagrees with reference data.
var ErrMismatch = errors.New("variation policy mismatch")

// Func computes the varied value of base for the given option tier.
// Implementations must be pure.
type Func func(base, option int32) int32

// Identity leaves every stat unchanged.
func Identity(base, _ int32) int32 {
	return base
}

// Compute applies f with the invariants every policy must honor:
// option 0 returns base, base 0 returns 0, nil f behaves as Identity.
func Compute(f Func, base, option int32) int32 {
	if option == 0 || base == 0 || f == nil {
		return base
	}
	return f(base, option)
}

// Table scales base by a per-option percentage: base + base*pct/100,
// rounded half away from zero. Options without an entry leave base unchanged.
type Table map[int32]int32

// Func returns the table as a policy.
func (t Table) Func() Func {
	return func(base, option int32) int32 {
		pct, ok := t[option]
		if !ok {
			return base
		}
		v := float64(base) + math.Round(float64(base)*float64(pct)/100)
		switch {
		case v > math.MaxInt32:
			return math.MaxInt32
		case v < math.MinInt32:
			return math.MinInt32
		}
		return int32(v)
	}
}

// Sample is one reference observation: template stat, option tier and observed value.
type Sample struct {
	Base   int32 `yaml:"base"`
	Option int32 `yaml:"option"`
	Want   int32 `yaml:"want"`
}

// Validate checks f against reference samples and reports every mismatch.
func Validate(f Func, samples []Sample) error {
	var errs []error
	for _, s := range samples {
		if got := Compute(f, s.Base, s.Option); got != s.Want {
			errs = append(errs, fmt.Errorf("%w: base=%d option=%d got %d, want %d",
				ErrMismatch, s.Base, s.Option, got, s.Want))
		}
	}
	return errors.Join(errs...)
}

// Options returns the option tiers present in t in ascending order.
func (t Table) Options() []int32 {
	opts := make([]int32, 0, len(t))
	for o := range t {
		opts = append(opts, o)
	}
	sort.Slice(opts, func(i, j int) bool { return opts[i] < opts[j] })
	return opts
}

// ClampInt16 saturates v into the int16 range used by stat increment fields.
func ClampInt16(v int32) int16 {
	switch {
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	}
	return int16(v)
}

// ClampUint8 saturates v into the byte range used by upgrade count fields.
func ClampUint8(v int32) uint8 {
	switch {
	case v > math.MaxUint8:
		return math.MaxUint8
	case v < 0:
		return 0
	}
	return uint8(v)
}
