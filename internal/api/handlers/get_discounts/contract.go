package get_discounts

import (
	"context"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

type DiscountService interface {
	List(ctx context.Context, landlordID, flatID int64) ([]*domain.DiscountTier, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
