package pricing

// Quote расчет стоимости проживания
type Quote struct {
	Nights          int   // количество ночей
	BasePrice       int64 // сумма базовых цен дней
	DiscountPercent int   // лучшая подходящая скидка
	Total           int64 // итоговая цена со скидкой
}
