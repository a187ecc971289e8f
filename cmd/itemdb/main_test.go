package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/itemdb/internal/data"
	"github.com/udisondev/itemdb/internal/game/equip"
	"github.com/udisondev/itemdb/internal/metrics"
	"github.com/udisondev/itemdb/internal/model"
	"github.com/udisondev/itemdb/internal/testutil"
)

func testConfig(t *testing.T, extra string) string {
	t.Helper()
	body := "data_dir: " + testutil.ResourceDir(t) + "\nlog_level: error\n" + extra
	return testutil.WriteFile(t, t.TempDir(), "itemdb.yaml", body)
}

func runCommand(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	ctx := testutil.ContextWithTimeout(t, 10*time.Second)
	err := run(ctx, append([]string{"-config", cfgPath}, args...), &out)
	return out.String(), err
}

func TestRun_Stats(t *testing.T) {
	out, err := runCommand(t, testConfig(t, ""), "stats")
	require.NoError(t, err)

	assert.Regexp(t, `equip\s+10\n`, out)
	assert.Regexp(t, `bundle\s+13\n`, out)
	assert.Regexp(t, `upgrade\s+2\n`, out)
	assert.Regexp(t, `map_names\s+2\n`, out)
	assert.Regexp(t, `fingerprint\s+[0-9a-f]{64}\n`, out)
}

func TestRun_Lookup(t *testing.T) {
	cfg := testConfig(t, "")

	out, err := runCommand(t, cfg, "lookup", "1302000", "2030000", "2043000", "1")
	require.NoError(t, err)

	assert.Contains(t, out, `1302000 "Sword"`)
	assert.Contains(t, out, "req: level=10 str=35")
	assert.Contains(t, out, "inc: PAD=17")
	assert.Contains(t, out, `portal_scroll: move_to=104000000 "Lith Harbor"`)
	assert.Contains(t, out, "upgrade: success=100%")
	assert.Contains(t, out, "1 \"\"\n  not found")

	_, err = runCommand(t, cfg, "lookup", "sword")
	assert.Error(t, err)
}

func TestRun_Search(t *testing.T) {
	out, err := runCommand(t, testConfig(t, ""), "search", "sword")
	require.NoError(t, err)

	assert.Contains(t, out, "1302000")
	assert.Contains(t, out, "1402000")
	assert.Contains(t, out, "3 match(es)")

	out, err = runCommand(t, testConfig(t, ""), "search", "potoin")
	require.NoError(t, err)
	assert.Contains(t, out, "0 match(es)")
	assert.Regexp(t, `did you mean\s+2000000\s+Red Potion`, out)
}

func TestRun_Audit(t *testing.T) {
	out, err := runCommand(t, testConfig(t, ""), "audit")
	require.NoError(t, err)
	assert.Contains(t, out, "no variation options configured")

	out, err = runCommand(t, testConfig(t, "variation:\n  percent: {1: 10, 2: 1000}\n"), "audit")
	require.NoError(t, err)
	assert.Contains(t, out, "10 equip(s), 2 option(s), 0 saturated stat(s)")
}

func TestRun_Usage(t *testing.T) {
	cfg := testConfig(t, "")

	_, err := runCommand(t, cfg)
	assert.ErrorIs(t, err, errUsage)

	_, err = runCommand(t, cfg, "explode")
	assert.ErrorIs(t, err, errUsage)

	_, err = runCommand(t, cfg, "lookup")
	assert.ErrorIs(t, err, errUsage)
}

func TestRun_BadConfig(t *testing.T) {
	_, err := runCommand(t, testConfig(t, "audit_workers: 0\n"), "stats")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}

func TestAuditEquip_Saturation(t *testing.T) {
	t.Parallel()

	b := data.NewBuilder()
	b.AddEquip(model.EquipItem{ItemID: 1302000, Inc: model.IncStats{PAD: 17, STR: 20000}, TUC: 7})
	catalog := b.Finalize()

	double := func(base, _ int32) int32 { return base * 2 }
	engine := equip.New(catalog, equip.WithVariation(double))

	got := auditEquip(catalog, engine, double, 1302000, []int32{1})
	assert.Equal(t, []saturation{
		{ItemID: 1302000, Option: 1, Stat: "STR", Want: 40000, Got: 32767},
	}, got)

	huge := func(base, _ int32) int32 { return base * 100 }
	engine = equip.New(catalog, equip.WithVariation(huge))
	got = auditEquip(catalog, engine, huge, 1302000, []int32{3})
	assert.Equal(t, []saturation{
		{ItemID: 1302000, Option: 3, Stat: "RUC", Want: 700, Got: 255},
		{ItemID: 1302000, Option: 3, Stat: "STR", Want: 2000000, Got: 32767},
	}, got)

	assert.Nil(t, auditEquip(catalog, engine, huge, 1402000, []int32{1}))
}

func TestMetricsRouter(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	metrics.New(reg).SetCatalogEntries("equip", 10)

	srv := httptest.NewServer(metricsRouter(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `itemdb_catalog_entries{category="equip"} 10`)

	resp, err = http.Get(srv.URL + "/nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServeMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	metrics.New(reg).SetCatalogEntries("bundle", 13)

	addr := testutil.FreeAddr(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serveMetrics(ctx, addr, reg) }()

	require.NoError(t, testutil.WaitForHTTPReady("http://"+addr+"/metrics", 5*time.Second))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("metrics server did not stop")
	}
}

func TestServeMetrics_AddrInUse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	err := serveMetrics(context.Background(), srv.Listener.Addr().String(), prometheus.NewRegistry())
	assert.Error(t, err)
}
