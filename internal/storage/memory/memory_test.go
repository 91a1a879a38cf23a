package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitwizard/internal/storage"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, err := s.Get(ctx, storage.KeyNames)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	value := []byte(`["Alice"]`)
	require.NoError(t, s.Set(ctx, storage.KeyNames, value))
	require.NoError(t, s.Set(ctx, storage.KeyBills, []byte(`[]`)))

	// Stored values are copies.
	value[2] = 'X'
	got, err := s.Get(ctx, storage.KeyNames)
	require.NoError(t, err)
	assert.Equal(t, `["Alice"]`, string(got))

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{storage.KeyBills, storage.KeyNames}, keys)

	require.NoError(t, s.Delete(ctx, storage.KeyNames))
	require.NoError(t, s.Delete(ctx, storage.KeyNames))
	_, err = s.Get(ctx, storage.KeyNames)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.NoError(t, s.Close())
}
