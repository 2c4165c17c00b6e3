package statistics

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

var (
	// ErrFlatNotFound возвращается, когда квартира не найдена
	ErrFlatNotFound = fmt.Errorf("%w: statistics: flat", domain.ErrNotFound)

	// ErrAccessDenied возвращается, когда квартира принадлежит другому арендодателю
	ErrAccessDenied = fmt.Errorf("%w: statistics", domain.ErrUnauthorized)

	// ErrInvalidYear возвращается при некорректном годе
	ErrInvalidYear = fmt.Errorf("%w: statistics: year", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("statistics: internal error")
)
