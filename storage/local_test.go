package storage

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	ctx := context.Background()

	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	fileID := uuid.New()
	content := []byte("%PDF-1.4 archived invoice")

	key, err := store.Upload(ctx, fileID, "My Invoice.pdf", bytes.NewReader(content))
	require.NoError(t, err)
	assert.Contains(t, key, fileID.String())
	assert.NotContains(t, key, " ", "spaces should be sanitized out of keys")

	rc, err := store.Download(ctx, key)
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	require.NoError(t, store.Delete(ctx, key))
	_, err = store.Download(ctx, key)
	assert.Error(t, err)

	// Deleting a missing key is not an error
	assert.NoError(t, store.Delete(ctx, key))
}

func TestArchiveKeyUniqueness(t *testing.T) {
	a := archiveKey(uuid.New(), "invoice.pdf")
	b := archiveKey(uuid.New(), "invoice.pdf")
	assert.NotEqual(t, a, b)
}
