package bookings

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("%w: booking", domain.ErrNotFound)

	// ErrFlatNotFound возвращается, когда квартира не найдена
	ErrFlatNotFound = fmt.Errorf("%w: flat", domain.ErrNotFound)

	// ErrAccessDenied возвращается, когда квартира принадлежит другому арендодателю
	ErrAccessDenied = fmt.Errorf("%w: bookings", domain.ErrUnauthorized)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: bookings", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
