package data

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/itemdb/internal/itemid"
	"github.com/udisondev/itemdb/internal/metrics"
	"github.com/udisondev/itemdb/internal/model"
	"github.com/udisondev/itemdb/internal/restree"
	"github.com/udisondev/itemdb/internal/testutil"
)

var quietLogger = testutil.DiscardLogger()

// loadTestCatalog строит каталог из testdata/wz.
func loadTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	src, err := restree.OpenFS("testdata/wz")
	require.NoError(t, err)
	c, err := Build(src, WithLogger(quietLogger))
	require.NoError(t, err)
	return c
}

func mustNode(t *testing.T, name, src string) restree.Node {
	t.Helper()
	n, err := restree.ParseNode(name, []byte(src))
	require.NoError(t, err)
	return n
}

func TestBuild_Counts(t *testing.T) {
	t.Parallel()

	c := loadTestCatalog(t)
	assert.Equal(t, Counts{
		Equip:        10,
		Bundle:       13,
		StateChange:  5,
		PortalScroll: 2,
		Upgrade:      2,
		ItemNames:    21,
		MapNames:     2,
	}, c.Counts())
}

func TestBuild_Equip(t *testing.T) {
	t.Parallel()

	c := loadTestCatalog(t)

	sword, ok := c.EquipItem(1302000)
	require.True(t, ok)
	assert.Equal(t, model.EquipItem{
		ItemID:      1302000,
		Name:        "Sword",
		Req:         model.EquipReq{Level: 10, STR: 35, Job: 1},
		Inc:         model.IncStats{PAD: 17},
		TUC:         7,
		SellPrice:   5000,
		Knockback:   1,
		AttackSpeed: 6,
	}, sword)

	staff, ok := c.EquipItem(1382000)
	require.True(t, ok)
	assert.Equal(t, int16(15), staff.Inc.MaxMP, "incMMD fallback")
	assert.Equal(t, int32(30), staff.Req.INT)

	overall, ok := c.EquipItem(1050000)
	require.True(t, ok)
	assert.Equal(t, int16(10), overall.Inc.MaxMP, "incMMP wins over incMMD")
	assert.Equal(t, int32(5), overall.Req.POP)

	shirt, ok := c.EquipItem(1040002)
	require.True(t, ok)
	assert.Equal(t, int16(2), shirt.Swim)

	hat, ok := c.EquipItem(1002140)
	require.True(t, ok)
	assert.True(t, hat.Cash)
	assert.Equal(t, int32(-1), hat.Req.Job)
}

func TestBuild_EquipWithoutInfo(t *testing.T) {
	t.Parallel()

	c := loadTestCatalog(t)

	plain, ok := c.EquipItem(1002000)
	require.True(t, ok)
	assert.Equal(t, model.EquipItem{ItemID: 1002000}, plain)

	_, ok = c.ItemName(1002000)
	assert.False(t, ok, "no name registered without info")
}

func TestBuild_SkipsAfterimage(t *testing.T) {
	t.Parallel()

	// swordOL.img is not numeric: loading Afterimage would fail the build.
	c := loadTestCatalog(t)
	for _, id := range c.EquipIDs() {
		assert.Equal(t, itemid.TypeEquip, itemid.TypeOf(id))
	}
}

func TestBuild_Bundle(t *testing.T) {
	t.Parallel()

	c := loadTestCatalog(t)

	potion, ok := c.BundleItem(2000000)
	require.True(t, ok)
	assert.Equal(t, model.BundleItem{
		ItemID:    2000000,
		Name:      "Red Potion",
		SellPrice: 25,
		SlotMax:   100,
		Kind:      itemid.BundleStateChange,
	}, potion)

	stars, ok := c.BundleItem(2070000)
	require.True(t, ok)
	assert.Equal(t, int16(15), stars.IncPAD)
	assert.InDelta(t, 0.5, stars.UnitPrice, 1e-9)
	assert.Equal(t, defaultSlotMax, stars.SlotMax)
	assert.Equal(t, itemid.BundleOrdinary, stars.Kind)

	bare, ok := c.BundleItem(4000001)
	require.True(t, ok)
	assert.Equal(t, model.BundleItem{ItemID: 4000001}, bare, "no info → zero defaults")

	weather, ok := c.BundleItem(2090000)
	require.True(t, ok)
	assert.Equal(t, itemid.BundleWeather, weather.Kind)
	assert.True(t, weather.Cash)

	_, ok = c.BundleItem(5000000)
	assert.False(t, ok, "Item/Pet is not a bundle category")
}

func TestBuild_StateChange(t *testing.T) {
	t.Parallel()

	c := loadTestCatalog(t)

	tests := []struct {
		name string
		id   int32
		want model.StateChangeInfo
	}{
		{
			name: "absolute hp",
			id:   2000000,
			want: model.StateChangeInfo{HP: 50, Flag: model.StatHP},
		},
		{
			name: "rate overrides absolute",
			id:   2000010,
			want: model.StateChangeInfo{HP: 10, Flag: model.StatHP, FlagRate: model.StatHP},
		},
		{
			name: "temporary buff",
			id:   2001000,
			want: model.StateChangeInfo{
				PAD: 5, PDD: 10, Speed: 8, Time: 60000,
				Flag: model.StatPAD | model.StatPDD | model.StatSpeed,
			},
		},
		{
			name: "mp rate",
			id:   2022000,
			want: model.StateChangeInfo{MP: 20, Flag: model.StatMP, FlagRate: model.StatMP},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, ok := c.StateChangeItem(tt.id)
			require.True(t, ok)
			assert.False(t, item.SpecEx)
			assert.Equal(t, tt.want, item.Info)
		})
	}
}

func TestBuild_StateChangeSpecEx(t *testing.T) {
	t.Parallel()

	c := loadTestCatalog(t)

	item, ok := c.StateChangeItem(2050000)
	require.True(t, ok)
	assert.True(t, item.SpecEx)
	assert.Equal(t, model.StateChangeInfo{}, item.Info, "specEx entries carry no effect")
}

func TestBuild_PortalScroll(t *testing.T) {
	t.Parallel()

	c := loadTestCatalog(t)

	scroll, ok := c.PortalScrollItem(2030000)
	require.True(t, ok)
	assert.Equal(t, int32(104000000), scroll.MoveTo)

	broken, ok := c.PortalScrollItem(2030001)
	require.True(t, ok)
	assert.Equal(t, model.InvalidField, broken.MoveTo)

	_, ok = c.PortalScrollItem(2000000)
	assert.False(t, ok)
}

func TestBuild_Upgrade(t *testing.T) {
	t.Parallel()

	c := loadTestCatalog(t)

	scroll, ok := c.UpgradeItem(2043000)
	require.True(t, ok)
	assert.Equal(t, model.UpgradeItem{
		ItemID:  2043000,
		Inc:     model.IncStats{PAD: 1, MaxMP: 3},
		Success: 100,
	}, scroll)

	dex, ok := c.UpgradeItem(2040500)
	require.True(t, ok)
	assert.Equal(t, uint8(60), dex.Success)
	assert.Equal(t, int16(2), dex.Inc.DEX)
}

// Каждый bundle ID получает не более одной специализированной записи.
func TestBuild_AtMostOneSpecialization(t *testing.T) {
	t.Parallel()

	c := loadTestCatalog(t)
	for _, id := range c.BundleIDs() {
		n := 0
		if _, ok := c.StateChangeItem(id); ok {
			n++
		}
		if _, ok := c.UpgradeItem(id); ok {
			n++
		}
		if _, ok := c.PortalScrollItem(id); ok {
			n++
		}
		assert.LessOrEqual(t, n, 1, "item %d", id)
	}
}

func TestBuild_Names(t *testing.T) {
	t.Parallel()

	c := loadTestCatalog(t)

	name, ok := c.ItemName(2000000)
	require.True(t, ok)
	assert.Equal(t, "Red Potion", name)

	name, ok = c.MapName(100000000)
	require.True(t, ok)
	assert.Equal(t, "Henesys", name)

	_, ok = c.MapName(999999998)
	assert.False(t, ok, "map without info")
	_, ok = c.ItemName(1234567)
	assert.False(t, ok)
}

func TestBuild_Idempotent(t *testing.T) {
	t.Parallel()

	a := loadTestCatalog(t)
	b := loadTestCatalog(t)

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.Equal(t, a.Counts(), b.Counts())
	for _, id := range a.EquipIDs() {
		ea, _ := a.EquipItem(id)
		eb, _ := b.EquipItem(id)
		assert.Equal(t, ea, eb)
	}
}

func TestBuild_Metrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	src, err := restree.OpenFS("testdata/wz")
	require.NoError(t, err)

	_, err = Build(src, WithLogger(quietLogger), WithMetrics(metrics.New(reg)))
	require.NoError(t, err)

	n, err := promtest.GatherAndCount(reg, "itemdb_catalog_entries")
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

func TestBuild_InvalidEquipID(t *testing.T) {
	t.Parallel()

	good := restree.NewMemDir("Cap", nil, []restree.Node{mustNode(t, "01002000.img", "info: {}")})
	bad := restree.NewMemDir("Weapon", nil, []restree.Node{
		mustNode(t, "01302000.img", "info: {}"),
		mustNode(t, "sword.img", "info: {}"),
	})
	after := restree.NewMemDir("Shield", nil, nil)
	root := restree.NewMemDir("Character", []restree.Dir{good, bad, after}, nil)

	_, err := Build(restree.MemSource{"Character": root}, WithLogger(quietLogger))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidID))

	assert.Equal(t, 1, good.Released())
	assert.Equal(t, 1, bad.Released(), "failing category is released")
	assert.Equal(t, 0, after.Released(), "not reached")
	assert.Equal(t, 1, root.Released(), "root released on error path")
}

func TestBuild_InvalidBundleID(t *testing.T) {
	t.Parallel()

	consume := restree.NewMemDir("Consume", nil, []restree.Node{
		mustNode(t, "0200.img", `{"02000000": {}, "-2000001": {}}`),
	})
	item := restree.NewMemDir("Item", []restree.Dir{consume}, nil)

	_, err := Build(restree.MemSource{"Item": item}, WithLogger(quietLogger))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.Equal(t, 1, consume.Released())
	assert.Equal(t, 1, item.Released())
}

func TestBuild_InvalidMapID(t *testing.T) {
	t.Parallel()

	maps := restree.NewMemDir("Map", nil, []restree.Node{mustNode(t, "henesys.img", "info: {}")})

	_, err := Build(restree.MemSource{"Map/Map": maps}, WithLogger(quietLogger))
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.Equal(t, 1, maps.Released())
}

func TestBuild_ReaderError(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk on fire")
	weapon := restree.NewMemDir("Weapon", nil, nil).FailWith(boom)
	root := restree.NewMemDir("Character", []restree.Dir{weapon}, nil)

	_, err := Build(restree.MemSource{"Character": root}, WithLogger(quietLogger))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, weapon.Released())
	assert.Equal(t, 1, root.Released())
}

func TestBuild_EmptySource(t *testing.T) {
	t.Parallel()

	c, err := Build(restree.MemSource{}, WithLogger(quietLogger))
	require.NoError(t, err)
	assert.Equal(t, Counts{}, c.Counts())
}

func TestParseID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    int32
		wantErr bool
	}{
		{"01302000.img", 1302000, false},
		{"100000000.img", 100000000, false},
		{"02000000", 2000000, false},
		{"0", 0, false},
		{"-1.img", 0, true},
		{"abc.img", 0, true},
		{"", 0, true},
		{"4294967296.img", 0, true},
	}
	for _, tt := range tests {
		got, err := parseID(tt.name)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidID, "parseID(%q)", tt.name)
			continue
		}
		require.NoError(t, err, "parseID(%q)", tt.name)
		assert.Equal(t, tt.want, got)
	}
}
