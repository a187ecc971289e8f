package restree

import (
	"fmt"
	"sync/atomic"
)

// MemDir is an in-memory Dir. It counts Release calls so callers can verify
// handles are not leaked.
type MemDir struct {
	name     string
	dirs     []Dir
	entries  []Node
	released atomic.Int32
	fail     error
}

// NewMemDir builds a directory from already parsed children.
func NewMemDir(name string, dirs []Dir, entries []Node) *MemDir {
	return &MemDir{name: name, dirs: dirs, entries: entries}
}

// FailWith makes Dirs and Entries return err.
func (d *MemDir) FailWith(err error) *MemDir {
	d.fail = err
	return d
}

func (d *MemDir) Name() string { return d.name }

func (d *MemDir) Dirs() ([]Dir, error) {
	if d.fail != nil {
		return nil, d.fail
	}
	return d.dirs, nil
}

func (d *MemDir) Entries() ([]Node, error) {
	if d.fail != nil {
		return nil, d.fail
	}
	return d.entries, nil
}

// Release only records the call: the data is owned by whoever built the tree.
func (d *MemDir) Release() {
	d.released.Add(1)
}

// Released returns how many times Release was called.
func (d *MemDir) Released() int {
	return int(d.released.Load())
}

// MemSource maps slash paths to directories.
type MemSource map[string]Dir

// Dir implements Source.
func (s MemSource) Dir(path string) (Dir, error) {
	d, ok := s[path]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrNotExist)
	}
	return d, nil
}
