// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Chain:    "mainnet",
			NodeID:   "02ab",
			CloudKey: "ck",
			SeedFile: "/tmp/seed.txt",
		},
		Adapter: ClientAdapter{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: time.Second,
			PageSize:       10,
		},
		Storage: ClientStorage{DB: ClientDB{DSN: "/tmp/seed.db"}},
		Workers: ClientWorkers{
			ReachabilityInterval: time.Second,
			CredentialsInterval:  time.Second,
		},
	}
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Chain: "testnet", NodeID: "first"}},
		&StructuredConfig{App: App{NodeID: "second"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "testnet", cfg.App.Chain)
	assert.Equal(t, "second", cfg.App.NodeID)
	// untouched defaults survive zero-valued overrides
	assert.Equal(t, "en", cfg.App.SeedLanguage)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
}

func TestBuild_RejectsNegativeValues(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Adapter: Adapter{PageSize: -1}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

// ── withEnv / withFlags ─────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_NODE_ID", "env-node")

	b := newConfigBuilder().withEnv()

	require.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
	assert.Equal(t, "env-node", b.configs[0].App.NodeID)
}

func TestWithFlags_OverridesEnv(t *testing.T) {
	t.Setenv("APP_CHAIN", "env-chain")

	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags([]string{"-chain", "flag-chain"}).
		build()
	require.NoError(t, err)
	assert.Equal(t, "flag-chain", cfg.App.Chain)
}

func TestWithFlags_ErrorIsAccumulated(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-bogus"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.NodeID = "json-node"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-node", b.configs[1].App.NodeID)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Chain = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/nonexistent/first.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Chain)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── client view ───────────────────────────────────────────────────────────────

func TestNewClientConfig_MapsFields(t *testing.T) {
	cfg := defaultConfig()
	cfg.App.NodeID = "02ab"
	cfg.Adapter.HTTPAddress = "localhost:8080"

	clientCfg := NewClientConfig(cfg)

	assert.Equal(t, "02ab", clientCfg.App.NodeID)
	assert.Equal(t, "mainnet", clientCfg.App.Chain)
	assert.Equal(t, "localhost:8080", clientCfg.Adapter.HTTPAddress)
	assert.Equal(t, 50, clientCfg.Adapter.PageSize)
	assert.Equal(t, "seed-keeper.db", clientCfg.Storage.DB.DSN)
	assert.Equal(t, 10*time.Second, clientCfg.Workers.ReachabilityInterval)
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(c *ClientConfig) {}},
		{name: "empty dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "memory dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = ":memory:" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no address", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero page size", mutate: func(c *ClientConfig) { c.Adapter.PageSize = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero interval", mutate: func(c *ClientConfig) { c.Workers.CredentialsInterval = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "no node id", mutate: func(c *ClientConfig) { c.App.NodeID = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "no cloud key", mutate: func(c *ClientConfig) { c.App.CloudKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "no seed file", mutate: func(c *ClientConfig) { c.App.SeedFile = "" }, wantErr: ErrNoSeedFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validClientConfig()
			tt.mutate(c)
			err := c.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
