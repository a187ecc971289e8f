package data

import "github.com/udisondev/itemdb/internal/restree"

func (b *Builder) loadMapNames(src restree.Source) error {
	dir, err := b.openDir(src, dirMap)
	if err != nil || dir == nil {
		return err
	}
	defer dir.Release()

	entries, err := dir.Entries()
	if err != nil {
		return err
	}
	for _, e := range entries {
		id, err := parseID(e.Name())
		if err != nil {
			return err
		}
		if info := e.Child("info"); info != nil {
			b.SetMapName(id, restree.String(info.Child("mapName"), ""))
		}
	}
	return nil
}
