package storage_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fincore/internal/company/adapter/storage"
	"fincore/internal/company/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocalAssetStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	store, err := storage.NewLocalAssetStore(dir, nil)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, dir, store.Dir())
}

func TestNewLocalAssetStore_EmptyDir(t *testing.T) {
	_, err := storage.NewLocalAssetStore("", nil)
	assert.Error(t, err)
}

func TestStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalAssetStore(dir, nil)
	require.NoError(t, err)

	content := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}
	filename, err := store.Store(context.Background(), bytes.NewReader(content), "logo.png")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, ".png"), "stored name should keep the extension, got %q", filename)

	got, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestStore_UniqueNames(t *testing.T) {
	store, err := storage.NewLocalAssetStore(t.TempDir(), nil)
	require.NoError(t, err)

	first, err := store.Store(context.Background(), strings.NewReader("one"), "logo.png")
	require.NoError(t, err)
	second, err := store.Store(context.Background(), strings.NewReader("two"), "logo.png")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestStore_NoExtension(t *testing.T) {
	store, err := storage.NewLocalAssetStore(t.TempDir(), nil)
	require.NoError(t, err)

	filename, err := store.Store(context.Background(), strings.NewReader("raw"), "logo")
	require.NoError(t, err)
	assert.NotContains(t, filename, ".")
}

func TestStore_ExtensionLowercased(t *testing.T) {
	store, err := storage.NewLocalAssetStore(t.TempDir(), nil)
	require.NoError(t, err)

	filename, err := store.Store(context.Background(), strings.NewReader("raw"), "LOGO.PNG")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, ".png"))
}

func TestStore_DisallowedExtension(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalAssetStore(dir, []string{"png", "jpg"})
	require.NoError(t, err)

	_, err = store.Store(context.Background(), strings.NewReader("#!/bin/sh"), "logo.sh")
	assert.ErrorIs(t, err, usecase.ErrExtensionNotAllowed)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "rejected upload must not leave a file behind")
}

func TestStore_AllowedExtension(t *testing.T) {
	store, err := storage.NewLocalAssetStore(t.TempDir(), []string{"png"})
	require.NoError(t, err)

	filename, err := store.Store(context.Background(), strings.NewReader("data"), "logo.png")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, ".png"))
}

func TestStore_CancelledContext(t *testing.T) {
	store, err := storage.NewLocalAssetStore(t.TempDir(), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = store.Store(ctx, strings.NewReader("data"), "logo.png")
	assert.Error(t, err)
}
