package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaccine-assistant/internal/common/config"
	"vaccine-assistant/internal/common/logger"
	"vaccine-assistant/internal/common/observability"
	"vaccine-assistant/internal/outofscope"
	"vaccine-assistant/internal/server"
)

var shippedCatalog = filepath.Join("..", "..", "configs", "actions.json")

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func createTestConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Server:     config.ServerConfig{ListenAddr: ":0", ReadTimeout: 1000, WriteTimeout: 1000, CatalogPath: shippedCatalog},
		Catalogue:  config.CatalogueConfig{BaseURL: "http://localhost:8000/api/", Timeout: 1000},
		Cache:      config.CacheConfig{FactCapacity: 10},
		Session:    config.SessionConfig{Store: "memory", TTL: 60, KeyPrefix: "test:"},
		OutOfScope: config.OutOfScopeConfig{Sink: "csv", CSVPath: filepath.Join(dir, "oos.csv")},
		Logging:    config.LoggingConfig{Level: "debug", Format: "console"},
	}
}

// ==========================
// Commands
// ==========================

func TestVersionCmd(t *testing.T) {
	out, err := runCmd(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "vaccine-assistant dev\n", out)
}

func TestResolveCmd(t *testing.T) {
	out, err := runCmd(t, "resolve", "vắc", "xin", "cúm")
	require.NoError(t, err)

	var got resolution
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Vaxigrip Tetra", got.Vaccine.Name)
	assert.Equal(t, "synonym", string(got.Vaccine.Kind))

	_, err = runCmd(t, "resolve")
	assert.Error(t, err)
}

func TestKnowledgeValidateCmd(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"Synflorix": {"age_range": "Từ 6 tuần", "side_effects": "Sốt, sưng"}}`), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte(`{"Synflorix": {"age_range": 6}}`), 0o644))

	out, err := runCmd(t, "knowledge", "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, `"Synflorix"`)

	out, err = runCmd(t, "knowledge", "validate", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 invalid knowledge entries")
	assert.Contains(t, out, "invalid")

	_, err = runCmd(t, "knowledge", "validate", filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestCatalogCmds(t *testing.T) {
	out, err := runCmd(t, "catalog", "validate", "--file", shippedCatalog)
	require.NoError(t, err)
	assert.Contains(t, out, "Catalog validation passed: 19 actions.")

	out, err = runCmd(t, "catalog", "list", "--file", shippedCatalog)
	require.NoError(t, err)
	assert.Contains(t, out, "action_get_vaccine_price")
	assert.Contains(t, out, "ask_vaccine_price")
}

func TestCatalogValidate_Unimplemented(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actions.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version": "1.0.0", "actions": [
		{"id": "action_get_vaccine_price", "displayName": "Price", "category": "vaccine"},
		{"id": "action_book_appointment", "displayName": "Book", "category": "schedule"}
	]}`), 0o644))

	_, err := runCmd(t, "catalog", "validate", "--file", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "action_book_appointment")
}

func TestCatalogSetStatusCmd(t *testing.T) {
	data, err := os.ReadFile(shippedCatalog)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "actions.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	out, err := runCmd(t, "catalog", "set-status", "--file", path, "--id", "action_annotate_query", "--status", "verified")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated action_annotate_query status to verified")

	_, err = runCmd(t, "catalog", "set-status", "--file", path, "--id", "action_annotate_query")
	assert.Error(t, err)
}

// ==========================
// Serve wiring
// ==========================

func TestBuild_MemoryAndCSV(t *testing.T) {
	cfg := createTestConfig(t)

	a, err := build(context.Background(), cfg, logger.NewTestLogger(t), observability.NewNoop())
	require.NoError(t, err)
	defer a.close(logger.NewNoOpLogger())

	require.NotNil(t, a.server)
	assert.Empty(t, a.checks)
}

func TestBuild_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *config.Config)
	}{
		{"missing catalogue url", func(cfg *config.Config) { cfg.Catalogue.BaseURL = "" }},
		{"missing catalog file", func(cfg *config.Config) { cfg.Server.CatalogPath = filepath.Join(t.TempDir(), "none.json") }},
		{"unknown session store", func(cfg *config.Config) { cfg.Session.Store = "etcd" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := createTestConfig(t)
			tt.mutate(cfg)
			a, err := build(context.Background(), cfg, logger.NewNoOpLogger(), observability.NewNoop())
			assert.Error(t, err)
			require.NotNil(t, a)
			a.close(logger.NewNoOpLogger())
		})
	}
}

func TestOpenStore_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := createTestConfig(t)
	cfg.Session.Store = "redis"
	cfg.Database.Redis.Address = mr.Addr()

	a := &app{checks: map[string]server.Check{}}
	store, err := a.openStore(context.Background(), cfg, logger.NewNoOpLogger())
	require.NoError(t, err)
	defer a.close(logger.NewNoOpLogger())

	require.Contains(t, a.checks, "redis")
	assert.NoError(t, a.checks["redis"](context.Background()))

	slots, err := store.Load(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, slots.IsEmpty())
}

func TestOpenSink_CSV(t *testing.T) {
	cfg := createTestConfig(t)
	a := &app{checks: map[string]server.Check{}}

	sink, err := a.openSink(context.Background(), cfg, logger.NewNoOpLogger())
	require.NoError(t, err)
	_, isCSV := sink.(*outofscope.CSVSink)
	assert.True(t, isCSV)
}

func TestRetryWithBackoff(t *testing.T) {
	log := logger.NewNoOpLogger()

	attempts := 0
	err := retryWithBackoff(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return errors.New("not yet")
		}
		return nil
	}, 5, time.Millisecond, log, "op")
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)

	err = retryWithBackoff(context.Background(), func() error { return errors.New("down") }, 2, time.Millisecond, log, "op")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "op failed after 2 attempts")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = retryWithBackoff(ctx, func() error { return errors.New("down") }, 5, time.Hour, log, "op")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "op aborted")
}
