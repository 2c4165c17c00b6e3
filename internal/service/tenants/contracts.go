package tenants

import (
	"context"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

// TenantRepository интерфейс репозитория гостей
type TenantRepository interface {
	FindByPhone(ctx context.Context, phone string) (*domain.Tenant, error)
	Upsert(ctx context.Context, tenant *domain.Tenant) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
