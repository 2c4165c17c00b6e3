package create_flat

import (
	"context"

	createFlat "github.com/m04kA/SMC-FlatrentService/internal/usecase/create_flat"
)

type CreateFlatUseCase interface {
	Execute(ctx context.Context, req *createFlat.Request) (*createFlat.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
