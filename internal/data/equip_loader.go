package data

import (
	"fmt"

	"github.com/udisondev/itemdb/internal/model"
	"github.com/udisondev/itemdb/internal/restree"
)

func (b *Builder) loadEquips(src restree.Source) error {
	root, err := b.openDir(src, dirCharacter)
	if err != nil || root == nil {
		return err
	}
	defer root.Release()

	categories, err := root.Dirs()
	if err != nil {
		return err
	}
	for _, cat := range categories {
		if err := b.loadEquipCategory(cat); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) loadEquipCategory(cat restree.Dir) error {
	defer cat.Release()

	if cat.Name() == dirAfterimage {
		return nil
	}
	entries, err := cat.Entries()
	if err != nil {
		return fmt.Errorf("%s: %w", cat.Name(), err)
	}
	for _, e := range entries {
		id, err := parseID(e.Name())
		if err != nil {
			return fmt.Errorf("%s: %w", cat.Name(), err)
		}
		item := parseEquip(id, e)
		b.AddEquip(item)
		if e.Child("info") != nil {
			b.SetItemName(id, item.Name)
		}
	}
	b.logger.Debug("loaded equip category", "category", cat.Name(), "count", len(entries))
	return nil
}

// parseEquip fills an EquipItem from the optional info block; every absent
// field stays zero.
func parseEquip(id int32, node restree.Node) model.EquipItem {
	item := model.EquipItem{ItemID: id}
	info := node.Child("info")
	if info == nil {
		return item
	}

	item.Name = restree.String(info.Child("name"), "")
	item.Req = model.EquipReq{
		Level: restree.Int32(info.Child("reqLevel"), 0),
		STR:   restree.Int32(info.Child("reqSTR"), 0),
		DEX:   restree.Int32(info.Child("reqDEX"), 0),
		INT:   restree.Int32(info.Child("reqINT"), 0),
		LUK:   restree.Int32(info.Child("reqLUK"), 0),
		POP:   restree.Int32(info.Child("reqPOP"), 0),
		Job:   restree.Int32(info.Child("reqJob"), 0),
	}
	item.Inc = parseIncStats(info)
	item.Swim = restree.Int16(info.Child("incSwim"), 0)

	item.TUC = restree.Int32(info.Child("tuc"), 0)
	item.SellPrice = restree.Int32(info.Child("price"), 0)
	item.Knockback = restree.Int32(info.Child("knockback"), 0)
	item.AttackSpeed = restree.Int32(info.Child("attackSpeed"), 0)
	item.Cash = restree.Bool(info.Child("cash"), false)
	return item
}

// parseIncStats reads inc* leaves shared by equips and upgrade scrolls.
// Older data spells max MP as incMMD, it is used when incMMP is absent.
func parseIncStats(info restree.Node) model.IncStats {
	get := func(name string) int16 {
		return restree.Int16(restree.Get(info, name), 0)
	}
	mmp := restree.Int16(restree.Get(info, "incMMP"), get("incMMD"))
	return model.IncStats{
		STR:   get("incSTR"),
		DEX:   get("incDEX"),
		INT:   get("incINT"),
		LUK:   get("incLUK"),
		MaxHP: get("incMHP"),
		MaxMP: mmp,
		PAD:   get("incPAD"),
		MAD:   get("incMAD"),
		PDD:   get("incPDD"),
		MDD:   get("incMDD"),
		ACC:   get("incACC"),
		EVA:   get("incEVA"),
		Craft: get("incCraft"),
		Speed: get("incSpeed"),
		Jump:  get("incJump"),
	}
}
