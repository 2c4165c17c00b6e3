package delete_flat

import "context"

type FlatService interface {
	Delete(ctx context.Context, id, landlordID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
