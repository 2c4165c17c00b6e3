package tenant

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

var (
	// ErrTenantNotFound возвращается, когда гость с таким телефоном не найден
	ErrTenantNotFound = fmt.Errorf("%w: tenant.repository: tenant", domain.ErrNotFound)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("tenant.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("tenant.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("tenant.repository: failed to scan row")
)
