package availability

import "errors"

var (
	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("availability: internal error")
)
