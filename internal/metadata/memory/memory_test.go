package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credchain/internal/metadata"
)

func TestPutIsContentAddressed(t *testing.T) {
	store := New()
	m := metadata.Metadata{
		Recipient:   "Ada Lovelace",
		Credential:  "Go Level 1",
		Description: "Completed the Go fundamentals course",
		Proof:       "https://example.com/proof/1",
	}

	cid1, err := store.Put(context.Background(), m)
	require.NoError(t, err)
	require.NotEmpty(t, cid1)

	cid2, err := store.Put(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, cid1, cid2, "same object must yield the same content id")

	m.Description = "changed"
	cid3, err := store.Put(context.Background(), m)
	require.NoError(t, err)
	assert.NotEqual(t, cid1, cid3)

	blob, ok := store.Get(cid1)
	require.True(t, ok)
	assert.Contains(t, string(blob), "Go Level 1")
}

func TestPutCanceledContext(t *testing.T) {
	store := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Put(ctx, metadata.Metadata{Credential: "x"})
	assert.Error(t, err)
}
