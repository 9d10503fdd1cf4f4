// internal/services/store_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/marketplace-backend/internal/testutil"
)

func TestStoreService(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	m := testutil.NewMarketplace(t, db)
	svc := NewStoreService(db)

	store, err := svc.CreateStore(ctx, m.Stranger.ID, &CreateStoreRequest{Name: "Loom & Co", Location: "Asheville, NC"})
	require.NoError(t, err)
	assert.Equal(t, m.Stranger.ID, store.OwnerID)

	_, err = svc.CreateStore(ctx, m.Stranger.ID, &CreateStoreRequest{})
	assert.ErrorIs(t, err, ErrValidation)

	found, err := svc.GetStore(ctx, m.Store.ID)
	require.NoError(t, err)
	require.Len(t, found.Items, 2)
	assert.Equal(t, "Red Mug", found.Items[0].Name)

	_, err = svc.GetStore(ctx, 4242)
	assert.ErrorIs(t, err, ErrNotFound)

	owned, err := svc.GetStoresByOwner(ctx, m.Stranger.ID)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "Loom & Co", owned[0].Name)
}
