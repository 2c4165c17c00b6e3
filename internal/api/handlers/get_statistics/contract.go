package get_statistics

import (
	"context"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

type StatisticsService interface {
	GetYearStats(ctx context.Context, landlordID, flatID int64, year int) (*domain.YearStats, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
