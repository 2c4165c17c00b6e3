package discounts

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

var (
	// ErrFlatNotFound возвращается, когда квартира не найдена
	ErrFlatNotFound = fmt.Errorf("%w: discounts: flat", domain.ErrNotFound)

	// ErrAccessDenied возвращается, когда квартира принадлежит другому арендодателю
	ErrAccessDenied = fmt.Errorf("%w: discounts", domain.ErrUnauthorized)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("discounts: internal error")
)
