package tenants

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при пустом или слишком длинном телефоне или имени
	ErrInvalidInput = fmt.Errorf("%w: tenants", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("tenants: internal error")
)
