package discount

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

var (
	// ErrDuplicateTier возвращается при нарушении уникальности порога или процента
	ErrDuplicateTier = fmt.Errorf("%w: discount.repository: duplicate tier", domain.ErrInvalidDiscountConfig)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("discount.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("discount.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("discount.repository: failed to scan row")
)
