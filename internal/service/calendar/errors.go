package calendar

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

var (
	// ErrFlatNotFound возвращается, когда квартира не найдена
	ErrFlatNotFound = fmt.Errorf("%w: calendar: flat", domain.ErrNotFound)

	// ErrAccessDenied возвращается, когда квартира принадлежит другому арендодателю
	ErrAccessDenied = fmt.Errorf("%w: calendar", domain.ErrUnauthorized)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("calendar: internal error")
)
