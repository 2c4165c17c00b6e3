package create_flat

import (
	"time"

	"github.com/m04kA/SMC-FlatrentService/internal/domain"
)

// CalendarSettings окно календаря новой квартиры и значения дней по умолчанию
type CalendarSettings struct {
	MonthsBack  int
	DaysForward int
	Defaults    domain.CalendarDefaults
}

// Request модель запроса на создание квартиры
type Request struct {
	LandlordID  int64
	Name        string
	Address     string
	LinkSites   *string
	LinkTenants *string
	Comment     *string
}

// Response модель ответа с созданной квартирой
type Response struct {
	ID           int64
	LandlordID   int64
	Name         string
	Address      string
	LinkSites    *string
	LinkTenants  *string
	Comment      *string
	CalendarFrom time.Time // первый день созданного календаря
	CalendarTo   time.Time // день после последнего
	DaysSeeded   int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
