package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/danielpatrickdp/vibes-hook/internal/config"
)

func TestOpenStoreOrNilDegrades(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	c := config.Default()
	c.StateBackend = config.BackendSQLite
	c.SQLitePath = filepath.Join(t.TempDir(), "missing", "sub", "vibes.db")

	store, closeStore := openStoreOrNil(c, zap.New(core))
	assert.Nil(t, store)
	assert.Nil(t, closeStore)

	entries := logs.FilterMessage("open state store failed, persisting nothing").All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].ContextMap(), "error")
}

func TestOpenStoreOrNilSuccess(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	c := config.Default()
	c.StateDir = t.TempDir()

	store, closeStore := openStoreOrNil(c, zap.New(core))
	assert.NotNil(t, store)
	assert.Nil(t, closeStore)
	assert.Zero(t, logs.Len())
}
