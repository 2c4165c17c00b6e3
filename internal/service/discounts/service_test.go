package discounts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
	"github.com/m04kA/SMC-FlatrentService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-FlatrentService/pkg/logger"
)

func TestService_List(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	flats := memory.NewFlatRepository(store)
	discounts := memory.NewDiscountRepository(store)
	svc := NewService(flats, discounts, logger.Nop())

	flat, err := flats.Create(ctx, &domain.Flat{LandlordID: 1, Name: "Студия", Address: "Невский 1"})
	require.NoError(t, err)

	tiers, err := svc.List(ctx, 1, flat.ID)
	require.NoError(t, err)
	assert.Empty(t, tiers)

	_, err = discounts.ReplaceTiers(ctx, flat.ID, []*domain.DiscountTier{
		{NightsThreshold: 30, DiscountPercent: 10},
		{NightsThreshold: 7, DiscountPercent: 5},
	})
	require.NoError(t, err)

	tiers, err = svc.List(ctx, 1, flat.ID)
	require.NoError(t, err)
	require.Len(t, tiers, 2)
	assert.Equal(t, 7, tiers[0].NightsThreshold)

	_, err = svc.List(ctx, 2, flat.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = svc.List(ctx, 1, 55)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
