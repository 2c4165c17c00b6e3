package get_flat

import (
	"context"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

type FlatService interface {
	GetByID(ctx context.Context, id, landlordID int64) (*domain.Flat, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
