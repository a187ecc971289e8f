package main

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"sync"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/itemdb/internal/config"
	"github.com/udisondev/itemdb/internal/data"
	"github.com/udisondev/itemdb/internal/game/equip"
	"github.com/udisondev/itemdb/internal/model"
	"github.com/udisondev/itemdb/internal/variation"
)

const (
	searchLimit  = 50
	suggestLimit = 5
)

type app struct {
	out     io.Writer
	cfg     config.ItemDB
	catalog *data.Catalog
	engine  *equip.Engine
}

func (a *app) dispatch(ctx context.Context, command string, args []string) error {
	switch command {
	case "stats":
		return a.stats()
	case "lookup":
		if len(args) == 0 {
			return errUsage
		}
		return a.lookup(args)
	case "search":
		if len(args) == 0 {
			return errUsage
		}
		return a.search(strings.Join(args, " "))
	case "audit":
		return a.audit(ctx)
	default:
		return fmt.Errorf("unknown command %q: %w", command, errUsage)
	}
}

func (a *app) stats() error {
	c := a.catalog.Counts()
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "equip\t%d\n", c.Equip)
	fmt.Fprintf(w, "bundle\t%d\n", c.Bundle)
	fmt.Fprintf(w, "state_change\t%d\n", c.StateChange)
	fmt.Fprintf(w, "portal_scroll\t%d\n", c.PortalScroll)
	fmt.Fprintf(w, "upgrade\t%d\n", c.Upgrade)
	fmt.Fprintf(w, "item_names\t%d\n", c.ItemNames)
	fmt.Fprintf(w, "map_names\t%d\n", c.MapNames)
	fmt.Fprintf(w, "fingerprint\t%s\n", a.catalog.Fingerprint())
	return w.Flush()
}

func (a *app) lookup(args []string) error {
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 32)
		if err != nil {
			return fmt.Errorf("parsing item id %q: %w", arg, err)
		}
		a.printItem(int32(id))
	}
	return nil
}

func (a *app) printItem(id int32) {
	name, _ := a.catalog.ItemName(id)
	fmt.Fprintf(a.out, "%d %q\n", id, name)

	found := false
	if e, ok := a.catalog.EquipItem(id); ok {
		found = true
		fmt.Fprintf(a.out, "  equip: tuc=%d price=%d cash=%t two_handed=%t attack_speed=%d knockback=%d swim=%d\n",
			e.TUC, e.SellPrice, e.Cash, a.engine.IsTwoHanded(id), e.AttackSpeed, e.Knockback, e.Swim)
		fmt.Fprintf(a.out, "  req: level=%d str=%d dex=%d int=%d luk=%d pop=%d job=%d\n",
			e.Req.Level, e.Req.STR, e.Req.DEX, e.Req.INT, e.Req.LUK, e.Req.POP, e.Req.Job)
		a.printInc(e.Inc)
	}
	if b, ok := a.catalog.BundleItem(id); ok {
		found = true
		fmt.Fprintf(a.out, "  bundle: kind=%s slot_max=%d price=%d unit_price=%g cash=%t pad=%d\n",
			b.Kind, b.SlotMax, b.SellPrice, b.UnitPrice, b.Cash, b.IncPAD)
	}
	if s, ok := a.catalog.StateChangeItem(id); ok {
		if s.SpecEx {
			fmt.Fprintln(a.out, "  state_change: specEx")
		} else {
			i := s.Info
			fmt.Fprintf(a.out, "  state_change: hp=%d mp=%d pad=%d pdd=%d mad=%d mdd=%d acc=%d eva=%d speed=%d time=%d flag=%#x rate=%#x\n",
				i.HP, i.MP, i.PAD, i.PDD, i.MAD, i.MDD, i.ACC, i.EVA, i.Speed, i.Time, uint32(i.Flag), uint32(i.FlagRate))
		}
	}
	if p, ok := a.catalog.PortalScrollItem(id); ok {
		mapName, _ := a.catalog.MapName(p.MoveTo)
		fmt.Fprintf(a.out, "  portal_scroll: move_to=%d %q\n", p.MoveTo, mapName)
	}
	if u, ok := a.catalog.UpgradeItem(id); ok {
		fmt.Fprintf(a.out, "  upgrade: success=%d%%\n", u.Success)
		a.printInc(u.Inc)
	}
	if !found {
		fmt.Fprintln(a.out, "  not found")
	}
}

func (a *app) printInc(inc model.IncStats) {
	var parts []string
	inc.Each(func(name string, v int16) {
		if v != 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", name, v))
		}
	})
	if len(parts) > 0 {
		fmt.Fprintf(a.out, "  inc: %s\n", strings.Join(parts, " "))
	}
}

func (a *app) search(query string) error {
	ids := a.catalog.SearchItemNames(query, searchLimit)
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, id := range ids {
		name, _ := a.catalog.ItemName(id)
		fmt.Fprintf(w, "%d\t%s\n", id, name)
	}
	fmt.Fprintf(w, "%d match(es)\n", len(ids))

	if len(ids) == 0 {
		for _, id := range a.catalog.SuggestItemNames(query, suggestLimit) {
			name, _ := a.catalog.ItemName(id)
			fmt.Fprintf(w, "did you mean\t%d\t%s\n", id, name)
		}
	}
	return w.Flush()
}

// saturation is a varied stat that did not fit its destination width.
type saturation struct {
	ItemID int32
	Option int32
	Stat   string
	Want   int32
	Got    int32
}

func (a *app) audit(ctx context.Context) error {
	options := a.cfg.Variation.Options()
	if len(options) == 0 {
		fmt.Fprintln(a.out, "no variation options configured")
		return nil
	}

	var (
		mu    sync.Mutex
		found []saturation
	)

	f := a.cfg.Variation.Func()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.AuditWorkers)

	ids := a.catalog.EquipIDs()
	for _, id := range ids {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			local := auditEquip(a.catalog, a.engine, f, id, options)
			if len(local) > 0 {
				mu.Lock()
				found = append(found, local...)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("audit: %w", err)
	}

	slices.SortFunc(found, func(x, y saturation) int {
		if x.ItemID != y.ItemID {
			return cmp.Compare(x.ItemID, y.ItemID)
		}
		if x.Option != y.Option {
			return cmp.Compare(x.Option, y.Option)
		}
		return strings.Compare(x.Stat, y.Stat)
	})

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, s := range found {
		fmt.Fprintf(w, "%d\toption=%d\t%s\twant=%d\tgot=%d\n", s.ItemID, s.Option, s.Stat, s.Want, s.Got)
	}
	fmt.Fprintf(w, "%d equip(s), %d option(s), %d saturated stat(s)\n", len(ids), len(options), len(found))
	return w.Flush()
}

// auditEquip materializes the equip for every option and compares the slot
// against the unclamped policy output.
func auditEquip(catalog *data.Catalog, engine *equip.Engine, f variation.Func, id int32, options []int32) []saturation {
	info, ok := catalog.EquipItem(id)
	if !ok {
		return nil
	}

	var out []saturation
	for _, opt := range options {
		slot, ok := engine.MaterializeSlot(id, opt)
		if !ok {
			continue
		}
		es := slot.(*model.EquipSlot)

		if want := variation.Compute(f, info.TUC, opt); want != int32(es.RUC) {
			out = append(out, saturation{ItemID: id, Option: opt, Stat: "RUC", Want: want, Got: int32(es.RUC)})
		}

		var got []int16
		es.Inc.Each(func(_ string, v int16) { got = append(got, v) })
		i := 0
		info.Inc.Each(func(name string, base int16) {
			want := variation.Compute(f, int32(base), opt)
			if want != int32(got[i]) {
				out = append(out, saturation{ItemID: id, Option: opt, Stat: name, Want: want, Got: int32(got[i])})
			}
			i++
		})
	}
	return out
}
