package tenants

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

// Service регистрирует гостей при записи бронирования
type Service struct {
	tenantRepo TenantRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса гостей
func NewService(tenantRepo TenantRepository, logger Logger) *Service {
	return &Service{
		tenantRepo: tenantRepo,
		logger:     logger,
	}
}

// Register создает гостя по телефону или перезаписывает его имя.
// Телефон очищается от разделителей, имя приводится к виду "Имя Фамилия".
// Вызывается внутри транзакции бронирования.
func (s *Service) Register(ctx context.Context, phone, name string) (*domain.Tenant, error) {
	tenant := &domain.Tenant{
		Phone: domain.NormalizePhone(phone),
		Name:  domain.NormalizeTenantName(name),
	}

	if tenant.Phone == "" || utf8.RuneCountInString(tenant.Phone) > domain.MaxPhoneLength {
		return nil, fmt.Errorf("%w: phone must be 1..%d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}
	if tenant.Name == "" || utf8.RuneCountInString(tenant.Name) > domain.MaxTenantNameLength {
		return nil, fmt.Errorf("%w: name must be 1..%d characters", ErrInvalidInput, domain.MaxTenantNameLength)
	}

	existing, err := s.tenantRepo.FindByPhone(ctx, tenant.Phone)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.logger.Info("RegisterTenant: new tenant phone=%s", tenant.Phone)
	case err != nil:
		s.logger.Error("RegisterTenant: failed to find tenant phone=%s: %v", tenant.Phone, err)
		return nil, fmt.Errorf("%w: find tenant: %v", ErrInternal, err)
	case existing.Name != tenant.Name:
		s.logger.Info("RegisterTenant: tenant phone=%s renamed %q -> %q", tenant.Phone, existing.Name, tenant.Name)
	}

	if err := s.tenantRepo.Upsert(ctx, tenant); err != nil {
		s.logger.Error("RegisterTenant: failed to upsert tenant phone=%s: %v", tenant.Phone, err)
		return nil, fmt.Errorf("%w: upsert tenant: %v", ErrInternal, err)
	}

	return tenant, nil
}

// Find возвращает гостя по телефону
func (s *Service) Find(ctx context.Context, phone string) (*domain.Tenant, error) {
	tenant, err := s.tenantRepo.FindByPhone(ctx, domain.NormalizePhone(phone))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("FindTenant: failed to find tenant phone=%s: %v", phone, err)
		return nil, fmt.Errorf("%w: find tenant: %v", ErrInternal, err)
	}
	return tenant, nil
}
