// Package restree describes the hierarchical resource tree item data is read
// from, plus typed leaf reads with defaults.
//
// A tree is made of directories (Dir) holding image entries (Node). Nodes are
// named, ordered and either have children or carry a scalar value.
package restree

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrNotExist is returned when a requested directory is absent from the tree.
var ErrNotExist = errors.New("resource does not exist")

// Node is a named node of an image entry.
type Node interface {
	Name() string
	// Child returns the named child or nil.
	Child(name string) Node
	// Children returns children in source order.
	Children() []Node
	// Value returns the scalar value of a leaf.
	Value() (string, bool)
}

// Dir is a directory of the tree. Holding a Dir may keep its parsed entries in
// memory until Release is called.
type Dir interface {
	Name() string
	// Dirs returns sub-directories ordered by name.
	Dirs() ([]Dir, error)
	// Entries returns image entries ordered by name.
	Entries() ([]Node, error)
	// Release drops everything loaded for this directory and its sub-directories.
	Release()
}

// Source opens directories by slash-separated path, e.g. "Map/Map".
type Source interface {
	Dir(path string) (Dir, error)
}

// Get walks path from n and returns the node found there, or nil when n is
// nil or any step is missing.
func Get(n Node, path ...string) Node {
	for _, name := range path {
		if n == nil {
			return nil
		}
		n = n.Child(name)
	}
	return n
}

func scalar(n Node) (string, bool) {
	if n == nil {
		return "", false
	}
	v, ok := n.Value()
	if !ok {
		return "", false
	}
	return strings.TrimSpace(v), true
}

func integer(n Node) (int64, bool) {
	v, ok := scalar(n)
	if !ok {
		return 0, false
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

// String reads a string leaf, def when n is nil or not a leaf.
func String(n Node, def string) string {
	if v, ok := scalar(n); ok {
		return v
	}
	return def
}

// Int32 reads a 32-bit integer leaf. Out-of-range values saturate.
func Int32(n Node, def int32) int32 {
	i, ok := integer(n)
	if !ok {
		return def
	}
	return int32(min(max(i, math.MinInt32), math.MaxInt32))
}

// Int16 reads a 16-bit integer leaf. Out-of-range values saturate.
func Int16(n Node, def int16) int16 {
	i, ok := integer(n)
	if !ok {
		return def
	}
	return int16(min(max(i, math.MinInt16), math.MaxInt16))
}

// Byte reads an unsigned byte leaf. Out-of-range values saturate.
func Byte(n Node, def uint8) uint8 {
	i, ok := integer(n)
	if !ok {
		return def
	}
	return uint8(min(max(i, 0), math.MaxUint8))
}

// Bool reads a boolean leaf; accepts 0/1 as well as true/false.
func Bool(n Node, def bool) bool {
	v, ok := scalar(n)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// Float64 reads a floating point leaf.
func Float64(n Node, def float64) float64 {
	v, ok := scalar(n)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
