package memory

import (
	"context"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
	tenantRepo "github.com/m04kA/SMC-FlatrentService/internal/infra/storage/tenant"
)

// TenantRepository гости в памяти
type TenantRepository struct {
	store *Store
}

// NewTenantRepository создает репозиторий гостей
func NewTenantRepository(store *Store) *TenantRepository {
	return &TenantRepository{store: store}
}

func (r *TenantRepository) FindByPhone(ctx context.Context, phone string) (*domain.Tenant, error) {
	defer r.store.lock(ctx)()

	t, ok := r.store.st.tenants[phone]
	if !ok {
		return nil, tenantRepo.ErrTenantNotFound
	}
	tenantCopy := *t
	return &tenantCopy, nil
}

func (r *TenantRepository) Upsert(ctx context.Context, tenant *domain.Tenant) error {
	defer r.store.lock(ctx)()

	tenantCopy := *tenant
	r.store.st.tenants[tenant.Phone] = &tenantCopy
	return nil
}

// Count количество гостей (для тестов)
func (r *TenantRepository) Count(ctx context.Context) int {
	defer r.store.lock(ctx)()
	return len(r.store.st.tenants)
}
