package data

import (
	"github.com/udisondev/itemdb/internal/model"
	"github.com/udisondev/itemdb/internal/restree"
)

// stateChangeStats lists spec leaves in the order they are read. Each stat may
// also appear with an "R" suffix (hpR, mpR, ...) meaning a percentage; a
// non-zero rate replaces the absolute value.
var stateChangeStats = []struct {
	key   string
	flag  model.StatFlag
	field func(*model.StateChangeInfo) *int32
}{
	{"hp", model.StatHP, func(i *model.StateChangeInfo) *int32 { return &i.HP }},
	{"mp", model.StatMP, func(i *model.StateChangeInfo) *int32 { return &i.MP }},
	{"acc", model.StatACC, func(i *model.StateChangeInfo) *int32 { return &i.ACC }},
	{"eva", model.StatEVA, func(i *model.StateChangeInfo) *int32 { return &i.EVA }},
	{"mad", model.StatMAD, func(i *model.StateChangeInfo) *int32 { return &i.MAD }},
	{"pdd", model.StatPDD, func(i *model.StateChangeInfo) *int32 { return &i.PDD }},
	{"mdd", model.StatMDD, func(i *model.StateChangeInfo) *int32 { return &i.MDD }},
	{"pad", model.StatPAD, func(i *model.StateChangeInfo) *int32 { return &i.PAD }},
	{"speed", model.StatSpeed, func(i *model.StateChangeInfo) *int32 { return &i.Speed }},
}

// parseStateChange reads the effect of a consumable. Items described by a
// specEx block are registered with an empty effect: specEx is detected but
// not interpreted.
func parseStateChange(id int32, node restree.Node) model.StateChangeItem {
	item := model.StateChangeItem{ItemID: id}
	if node.Child("specEx") != nil {
		item.SpecEx = true
		return item
	}
	item.Info = parseStateChangeInfo(node.Child("spec"))
	return item
}

func parseStateChangeInfo(spec restree.Node) model.StateChangeInfo {
	var info model.StateChangeInfo
	if spec == nil {
		return info
	}
	for _, s := range stateChangeStats {
		v := restree.Int32(spec.Child(s.key), 0)
		if rate := restree.Int32(spec.Child(s.key+"R"), 0); rate != 0 {
			v = rate
			info.FlagRate |= s.flag
		}
		*s.field(&info) = v
		if v != 0 {
			info.Flag |= s.flag
		}
	}
	info.Time = restree.Int32(spec.Child("time"), 0)
	return info
}
