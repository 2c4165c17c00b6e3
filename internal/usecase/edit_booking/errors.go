package edit_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("%w: edit_booking: booking", domain.ErrNotFound)

	// ErrAccessDenied возвращается, когда квартира бронирования принадлежит другому арендодателю
	ErrAccessDenied = fmt.Errorf("%w: edit_booking", domain.ErrUnauthorized)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: edit_booking", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("edit_booking: internal error")
)
