package data

import (
	"fmt"

	"github.com/udisondev/itemdb/internal/itemid"
	"github.com/udisondev/itemdb/internal/model"
	"github.com/udisondev/itemdb/internal/restree"
)

// defaultSlotMax is the stack size of a bundle whose info omits slotMax.
const defaultSlotMax int32 = 200

func (b *Builder) loadBundles(src restree.Source) error {
	root, err := b.openDir(src, dirItem)
	if err != nil || root == nil {
		return err
	}
	defer root.Release()

	dirs, err := root.Dirs()
	if err != nil {
		return err
	}
	byName := make(map[string]restree.Dir, len(dirs))
	for _, d := range dirs {
		byName[d.Name()] = d
	}

	for _, name := range bundleCategories {
		cat, ok := byName[name]
		if !ok {
			b.logger.Warn("bundle category missing, skipping", "category", name)
			continue
		}
		if err := b.loadBundleCategory(cat); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) loadBundleCategory(cat restree.Dir) error {
	defer cat.Release()

	sections, err := cat.Entries()
	if err != nil {
		return fmt.Errorf("%s: %w", cat.Name(), err)
	}
	count := 0
	for _, section := range sections {
		for _, node := range section.Children() {
			if err := b.loadBundle(node); err != nil {
				return fmt.Errorf("%s/%s: %w", cat.Name(), section.Name(), err)
			}
			count++
		}
	}
	b.logger.Debug("loaded bundle category", "category", cat.Name(), "count", count)
	return nil
}

// loadBundle registers the bundle record and, depending on the ID class,
// one specialized record.
func (b *Builder) loadBundle(node restree.Node) error {
	id, err := parseID(node.Name())
	if err != nil {
		return err
	}

	item := model.BundleItem{ItemID: id, Kind: itemid.ClassifyBundle(id)}
	if info := node.Child("info"); info != nil {
		item.Name = restree.String(info.Child("name"), "")
		item.IncPAD = restree.Int16(info.Child("incPAD"), 0)
		item.SellPrice = restree.Int32(info.Child("price"), 0)
		item.UnitPrice = restree.Float64(info.Child("unitPrice"), 0)
		item.Cash = restree.Bool(info.Child("cash"), false)
		item.SlotMax = restree.Int32(info.Child("slotMax"), defaultSlotMax)
		b.SetItemName(id, item.Name)
	}

	switch item.Kind {
	case itemid.BundleStateChange:
		b.AddStateChange(parseStateChange(id, node))
	case itemid.BundleUpgrade:
		b.AddUpgrade(parseUpgrade(id, node))
	case itemid.BundlePortalScroll:
		b.AddPortalScroll(parsePortalScroll(id, node))
	case itemid.BundleWeather:
		// распознаётся, но отдельной записи нет
	}

	b.AddBundle(item)
	return nil
}

func parsePortalScroll(id int32, node restree.Node) model.PortalScrollItem {
	return model.PortalScrollItem{
		ItemID: id,
		MoveTo: restree.Int32(restree.Get(node, "spec", "moveTo"), model.InvalidField),
	}
}

func parseUpgrade(id int32, node restree.Node) model.UpgradeItem {
	info := node.Child("info")
	return model.UpgradeItem{
		ItemID:  id,
		Inc:     parseIncStats(info),
		Success: restree.Byte(restree.Get(info, "success"), 0),
	}
}
