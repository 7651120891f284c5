package storage

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roadwatch/pkg/errors"
)

func TestLocalStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	locator, err := store.Store(context.Background(), bytes.NewReader([]byte("jpeg-bytes")), "image/jpeg", 10)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(locator, "/uploads/"))
	assert.True(t, strings.HasSuffix(locator, ".jpg"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	require.NoError(t, store.Delete(context.Background(), locator))

	entries, err = os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLocalStoreRejectsDisallowedTypeBeforeWrite(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	_, err = store.Store(context.Background(), bytes.NewReader([]byte("plain")), "text/plain", 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLocalStoreRejectsOversizeBeforeWrite(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	_, err = store.Store(context.Background(), bytes.NewReader(nil), "image/png", MaxUploadSize+1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLocalStoreDeleteMissing(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	err = store.Delete(context.Background(), "/uploads/no-such-file.jpg")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestLocalStoreRejectsTraversalLocator(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	err = store.Delete(context.Background(), "/uploads/../etc/passwd")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestLocalStoreLocatorsAreUnique(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		locator, err := store.Store(context.Background(), bytes.NewReader([]byte("png-bytes")), "image/png", 9)
		require.NoError(t, err)
		assert.False(t, seen[locator])
		seen[locator] = true
	}
}
