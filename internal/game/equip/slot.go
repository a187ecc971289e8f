package equip

import (
	"github.com/udisondev/itemdb/internal/itemid"
	"github.com/udisondev/itemdb/internal/metrics"
	"github.com/udisondev/itemdb/internal/model"
	"github.com/udisondev/itemdb/internal/variation"
)

// MaterializeSlot creates a new instance of itemID. Equip stats and the
// upgrade count go through the variation policy for the given option tier;
// bundles come back as an empty stack.
//
// Cash items are not supported and return false silently. Any other unknown
// item is a caller error: it returns false and is logged.
func (e *Engine) MaterializeSlot(itemID, option int32) (model.Slot, bool) {
	switch t := itemid.TypeOf(itemID); {
	case t == itemid.TypeEquip:
		info, ok := e.catalog.EquipItem(itemID)
		if !ok {
			break
		}
		e.metrics.IncMaterialize(metrics.ResultEquip)
		return &model.EquipSlot{
			ID:  itemID,
			RUC: variation.ClampUint8(variation.Compute(e.variation, info.TUC, option)),
			Inc: e.varyStats(info.Inc, option),
		}, true

	case t.IsBundle():
		if _, ok := e.catalog.BundleItem(itemID); !ok {
			break
		}
		e.metrics.IncMaterialize(metrics.ResultBundle)
		return &model.BundleSlot{ID: itemID}, true

	case t == itemid.TypeCash:
		e.metrics.IncMaterialize(metrics.ResultCash)
		return nil, false
	}

	e.metrics.IncMaterialize(metrics.ResultMissing)
	e.logger.Error("inexistent item", "item_id", itemID, "option", option)
	return nil, false
}

func (e *Engine) varyStats(inc model.IncStats, option int32) model.IncStats {
	vary := func(v int16) int16 {
		return variation.ClampInt16(variation.Compute(e.variation, int32(v), option))
	}
	return model.IncStats{
		STR:   vary(inc.STR),
		DEX:   vary(inc.DEX),
		INT:   vary(inc.INT),
		LUK:   vary(inc.LUK),
		MaxHP: vary(inc.MaxHP),
		MaxMP: vary(inc.MaxMP),
		PAD:   vary(inc.PAD),
		MAD:   vary(inc.MAD),
		PDD:   vary(inc.PDD),
		MDD:   vary(inc.MDD),
		ACC:   vary(inc.ACC),
		EVA:   vary(inc.EVA),
		Craft: vary(inc.Craft),
		Speed: vary(inc.Speed),
		Jump:  vary(inc.Jump),
	}
}
