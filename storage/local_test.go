package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	key := NewKey("resume.pdf")

	err = store.Put(ctx, key, "application/pdf", strings.NewReader("pdf bytes"))
	require.NoError(t, err)

	reader, err := store.Get(ctx, key)
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(data))

	require.NoError(t, store.Delete(ctx, key))

	_, err = store.Get(ctx, key)
	assert.Error(t, err)
}

func TestLocalStorageDeleteMissingKey(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), "no/such_key.pdf"))
}

func TestNewKeyUniqueAndSanitized(t *testing.T) {
	a := NewKey("my resume.pdf")
	b := NewKey("my resume.pdf")

	assert.NotEqual(t, a, b)
	assert.NotContains(t, a, " ")
	assert.True(t, strings.HasSuffix(a, ".pdf"))
}
