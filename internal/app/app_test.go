package app

import (
	"bytes"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"meadow/internal/growth"

	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("meadow", flag.ContinueOnError)
	cfg.Bind(fs)

	err := fs.Parse([]string{
		"-scale", "4",
		"-seed", "9",
		"-sampler", "nearest",
		"-persist",
		"-set", "spawn_chance=0.2",
		"-set", "max_age = 30",
		"-set", "broken",
	})
	require.NoError(t, err)

	assert.Equal(t, "meadow", cfg.Sim)
	assert.Equal(t, 4, cfg.Scale)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, "nearest", cfg.Sampler)
	assert.True(t, cfg.Persist)
	assert.Equal(t, map[string]string{"spawn_chance": "0.2", "max_age": "30"}, cfg.Set.Map())
}

func TestNewLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "WARN")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	_, err = NewLogger(&buf, "loud")
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func openTestManager(t *testing.T, app string) *gdata.Manager {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	mgr, err := gdata.Open(gdata.Config{AppName: app})
	require.NoError(t, err)
	return mgr
}

func TestParamStoreRoundTrip(t *testing.T) {
	store := NewParamStore(openTestManager(t, "meadow_test_roundtrip"), slog.New(slog.DiscardHandler))

	loaded, found, err := store.Load()
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, growth.DefaultParams(), loaded)

	want := growth.DefaultParams()
	want.SpawnChance = 0.25
	want.SpawnRadius = 3
	require.NoError(t, store.Save(want))

	loaded, found, err = store.Load()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, loaded)
}

func TestParamStoreFallsBackOnCorruptData(t *testing.T) {
	mgr := openTestManager(t, "meadow_test_corrupt")
	require.NoError(t, mgr.SaveObjectProp(paramsObject, paramsProperty, []byte("spawn_chance: [nope")))

	store := NewParamStore(mgr, slog.New(slog.DiscardHandler))
	loaded, found, err := store.Load()
	assert.Error(t, err)
	assert.False(t, found)
	assert.Equal(t, growth.DefaultParams(), loaded)
}

func TestParamStoreWithoutManager(t *testing.T) {
	store := NewParamStore(nil, nil)
	require.NoError(t, store.Save(growth.DefaultParams()))

	loaded, found, err := store.Load()
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, growth.DefaultParams(), loaded)
}

func configuredParams() growth.Params {
	p := growth.DefaultParams()
	p.SpawnChance = 0.2
	p.SpawnRadius = 2.5
	return p
}

func TestStartupParamsKeepsConfigWithoutSavedData(t *testing.T) {
	store := NewParamStore(openTestManager(t, "meadow_test_startup_empty"), slog.New(slog.DiscardHandler))

	got, err := StartupParams(configuredParams(), store, nil)
	require.NoError(t, err)
	assert.Equal(t, configuredParams(), got)
}

func TestStartupParamsPrefersSavedOverConfig(t *testing.T) {
	store := NewParamStore(openTestManager(t, "meadow_test_startup_saved"), slog.New(slog.DiscardHandler))
	saved := growth.DefaultParams()
	saved.MaxAge = 42
	require.NoError(t, store.Save(saved))

	got, err := StartupParams(configuredParams(), store, nil)
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	got, err = StartupParams(configuredParams(), store, map[string]string{"spawn_chance": "0.3"})
	require.NoError(t, err)
	assert.Equal(t, float32(42), got.MaxAge)
	assert.Equal(t, float32(0.3), got.SpawnChance)
}

func TestStartupParamsKeepsConfigOnCorruptData(t *testing.T) {
	mgr := openTestManager(t, "meadow_test_startup_corrupt")
	require.NoError(t, mgr.SaveObjectProp(paramsObject, paramsProperty, []byte("max_age: [oops")))
	store := NewParamStore(mgr, slog.New(slog.DiscardHandler))

	got, err := StartupParams(configuredParams(), store, nil)
	assert.Error(t, err)
	assert.Equal(t, configuredParams(), got)
}

func TestWatcherPublishesReloadedParams(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meadow.yaml")
	require.NoError(t, os.WriteFile(path, []byte("growth:\n  spawn_chance: 0.1\n"), 0o644))

	w, err := WatchConfig(path, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("growth:\n  spawn_chance: 0.4\n"), 0o644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case p := <-w.Updates():
			if p.SpawnChance == 0.4 {
				return
			}
		case <-deadline:
			t.Fatal("no reload observed")
		}
	}
}

func TestWatcherKeepsLatestUpdate(t *testing.T) {
	w := &Watcher{updates: make(chan growth.Params, 1)}
	first := growth.DefaultParams()
	first.SpawnChance = 0.1
	second := growth.DefaultParams()
	second.SpawnChance = 0.9

	w.publish(first)
	w.publish(second)

	got := <-w.Updates()
	assert.Equal(t, second, got)
	select {
	case extra := <-w.Updates():
		t.Fatalf("unexpected extra update %+v", extra)
	default:
	}
}

func TestWatcherIgnoresInvalidReload(t *testing.T) {
	var logs bytes.Buffer
	path := filepath.Join(t.TempDir(), "meadow.yaml")
	require.NoError(t, os.WriteFile(path, []byte("growth: [\n"), 0o644))

	w := &Watcher{
		path:    path,
		updates: make(chan growth.Params, 1),
		log:     slog.New(slog.NewTextHandler(&logs, nil)),
	}
	w.reload()

	assert.Empty(t, w.updates)
	assert.True(t, strings.Contains(logs.String(), "config reload failed"))
}
