package flat

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

var (
	// ErrFlatNotFound возвращается, когда квартира не найдена
	ErrFlatNotFound = fmt.Errorf("%w: flat.repository: flat", domain.ErrNotFound)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("flat.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("flat.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("flat.repository: failed to scan row")
)
