package localstore

import (
	"context"
	"testing"

	"lanche/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
)

func TestStore_SaveAndLoad_FileBucket(t *testing.T) {
	dir := t.TempDir()
	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{CreateDir: true})
	require.NoError(t, err)
	t.Cleanup(func() { bucket.Close() })

	store := NewWithBucket(bucket)
	ctx := context.Background()

	payload := []byte(`{"schemaVersion":1,"items":[]}`)
	require.NoError(t, store.Save(ctx, "cart-slot", payload))

	got, err := store.Load(ctx, "cart-slot")
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestStore_Save_OverwritesWholesale(t *testing.T) {
	store := NewWithBucket(memblob.OpenBucket(nil))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "slot", []byte("first version, quite long")))
	require.NoError(t, store.Save(ctx, "slot", []byte("second")))

	got, err := store.Load(ctx, "slot")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)
}

func TestStore_Load_MissingSlot(t *testing.T) {
	store := NewWithBucket(memblob.OpenBucket(nil))

	_, err := store.Load(context.Background(), "never-written")
	assert.ErrorIs(t, err, repository.ErrSlotNotFound)
}
