package booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("%w: booking.repository: booking", domain.ErrNotFound)

	// ErrDateConflict возвращается, когда ограничение исключения отклонило пересекающееся бронирование
	ErrDateConflict = fmt.Errorf("%w: booking.repository: overlapping booking", domain.ErrDateConflict)

	// ErrReferenceNotFound возвращается, когда квартира или гость бронирования не существует
	ErrReferenceNotFound = fmt.Errorf("%w: booking.repository: flat or tenant", domain.ErrNotFound)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
