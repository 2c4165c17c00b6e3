package set_discounts

import (
	"context"

	setDiscounts "github.com/m04kA/SMC-FlatrentService/internal/usecase/set_discounts"
)

type SetDiscountsUseCase interface {
	Execute(ctx context.Context, req *setDiscounts.Request) (*setDiscounts.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
