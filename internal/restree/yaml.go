package restree

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// EntryExt is the file extension of image entries on disk.
const EntryExt = ".img"

type yamlNode struct {
	name string
	n    *yaml.Node
}

// ParseNode decodes a YAML document into a Node named name.
func ParseNode(name string, src []byte) (Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return &yamlNode{name: name, n: resolve(&doc)}, nil
}

// resolve unwraps document and alias nodes.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch {
		case n.Kind == yaml.DocumentNode && len(n.Content) > 0:
			n = n.Content[0]
		case n.Kind == yaml.AliasNode && n.Alias != nil:
			n = n.Alias
		default:
			return n
		}
	}
	return nil
}

func (y *yamlNode) Name() string { return y.name }

func (y *yamlNode) Child(name string) Node {
	if y.n == nil {
		return nil
	}
	switch y.n.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(y.n.Content); i += 2 {
			if y.n.Content[i].Value == name {
				return &yamlNode{name: name, n: resolve(y.n.Content[i+1])}
			}
		}
	case yaml.SequenceNode:
		idx, err := strconv.Atoi(name)
		if err == nil && idx >= 0 && idx < len(y.n.Content) {
			return &yamlNode{name: name, n: resolve(y.n.Content[idx])}
		}
	}
	return nil
}

func (y *yamlNode) Children() []Node {
	if y.n == nil {
		return nil
	}
	switch y.n.Kind {
	case yaml.MappingNode:
		out := make([]Node, 0, len(y.n.Content)/2)
		for i := 0; i+1 < len(y.n.Content); i += 2 {
			out = append(out, &yamlNode{name: y.n.Content[i].Value, n: resolve(y.n.Content[i+1])})
		}
		return out
	case yaml.SequenceNode:
		out := make([]Node, 0, len(y.n.Content))
		for i, c := range y.n.Content {
			out = append(out, &yamlNode{name: strconv.Itoa(i), n: resolve(c)})
		}
		return out
	}
	return nil
}

func (y *yamlNode) Value() (string, bool) {
	if y.n == nil || y.n.Kind != yaml.ScalarNode {
		return "", false
	}
	return y.n.Value, true
}

// FS is a Source backed by a directory of YAML image files:
//
//	Character/Weapon/01302000.img
//	Item/Consume/0200.img
//	Map/Map/100000000.img
type FS struct {
	root string
}

// OpenFS returns a Source rooted at dir.
func OpenFS(dir string) (*FS, error) {
	st, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("opening resource root %s: %w", dir, err)
	}
	if !st.IsDir() {
		return nil, fmt.Errorf("resource root %s is not a directory", dir)
	}
	return &FS{root: dir}, nil
}

// Dir opens the directory at the slash-separated path p.
func (f *FS) Dir(p string) (Dir, error) {
	full := filepath.Join(f.root, filepath.FromSlash(p))
	st, err := os.Stat(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", p, ErrNotExist)
		}
		return nil, fmt.Errorf("opening %s: %w", p, err)
	}
	if !st.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", p)
	}
	return &fsDir{path: full, name: path.Base(p)}, nil
}

type fsDir struct {
	path string
	name string

	dirs    []Dir
	entries []Node
	loaded  bool
}

func (d *fsDir) Name() string { return d.name }

func (d *fsDir) Dirs() ([]Dir, error) {
	if err := d.load(); err != nil {
		return nil, err
	}
	return d.dirs, nil
}

func (d *fsDir) Entries() ([]Node, error) {
	if err := d.load(); err != nil {
		return nil, err
	}
	return d.entries, nil
}

func (d *fsDir) load() error {
	if d.loaded {
		return nil
	}
	list, err := os.ReadDir(d.path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", d.path, err)
	}
	d.dirs, d.entries = nil, nil
	for _, e := range list {
		if e.IsDir() {
			d.dirs = append(d.dirs, &fsDir{path: filepath.Join(d.path, e.Name()), name: e.Name()})
			continue
		}
		if !strings.HasSuffix(e.Name(), EntryExt) {
			continue
		}
		src, err := os.ReadFile(filepath.Join(d.path, e.Name()))
		if err != nil {
			return fmt.Errorf("reading %s: %w", e.Name(), err)
		}
		n, err := ParseNode(e.Name(), src)
		if err != nil {
			return err
		}
		d.entries = append(d.entries, n)
	}
	d.loaded = true
	return nil
}

func (d *fsDir) Release() {
	for _, sub := range d.dirs {
		sub.Release()
	}
	d.dirs = nil
	d.entries = nil
	d.loaded = false
}
