package update_calendar

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

var (
	// ErrFlatNotFound возвращается, когда квартира не найдена
	ErrFlatNotFound = fmt.Errorf("%w: update_calendar: flat", domain.ErrNotFound)

	// ErrAccessDenied возвращается, когда квартира принадлежит другому арендодателю
	ErrAccessDenied = fmt.Errorf("%w: update_calendar", domain.ErrUnauthorized)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: update_calendar", domain.ErrInvalidInput)

	// ErrDaysBooked возвращается при попытке закрыть дни, занятые бронированием
	ErrDaysBooked = fmt.Errorf("%w: update_calendar: days are booked", domain.ErrDateConflict)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_calendar: internal error")
)
