package flats

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

var (
	// ErrFlatNotFound возвращается, когда квартира не найдена
	ErrFlatNotFound = fmt.Errorf("%w: flat", domain.ErrNotFound)

	// ErrAccessDenied возвращается, когда квартира принадлежит другому арендодателю
	ErrAccessDenied = fmt.Errorf("%w: flats", domain.ErrUnauthorized)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("flats: internal error")
)
