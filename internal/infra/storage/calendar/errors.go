package calendar

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

var (
	// ErrNothingToUpdate возвращается, когда не передано ни одного поля для обновления
	ErrNothingToUpdate = fmt.Errorf("%w: calendar.repository: nothing to update", domain.ErrInvalidInput)

	// ErrFlatNotFound возвращается при записи дней несуществующей квартиры
	ErrFlatNotFound = fmt.Errorf("%w: calendar.repository: flat", domain.ErrNotFound)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("calendar.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("calendar.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("calendar.repository: failed to scan row")
)
