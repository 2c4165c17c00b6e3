package tenants

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
	"github.com/m04kA/SMC-FlatrentService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-FlatrentService/pkg/logger"
)

func TestService_Register_Idempotent(t *testing.T) {
	repo := memory.NewTenantRepository(memory.NewStore())
	svc := NewService(repo, logger.Nop())
	ctx := context.Background()

	_, err := svc.Register(ctx, "+7 (999) 123-45-67", "  ирина петрова ")
	require.NoError(t, err)

	tenant, err := svc.Register(ctx, "+79991234567", "мария")
	require.NoError(t, err)
	assert.Equal(t, "Мария", tenant.Name)

	assert.Equal(t, 1, repo.Count(ctx))

	found, err := svc.Find(ctx, "+7 999 123 45 67")
	require.NoError(t, err)
	assert.Equal(t, "Мария", found.Name)
}

func TestService_Register_Invalid(t *testing.T) {
	svc := NewService(memory.NewTenantRepository(memory.NewStore()), logger.Nop())
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "Анна")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Register(ctx, "+79990000000", "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Register(ctx, "+79990000000", strings.Repeat("а", domain.MaxTenantNameLength+1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Find(ctx, "+70000000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
