package middleware

import (
	"context"
	"net/http"
	"strconv"
)

// HeaderLandlordID заголовок с ID арендодателя, который проставляет внешний шлюз авторизации
const HeaderLandlordID = "X-Landlord-ID"

type landlordIDKey struct{}

// Auth кладет ID арендодателя из заголовка в контекст.
// Запрос без корректного заголовка пропускается: ответ 401 отдает обработчик.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderLandlordID)
		if raw != "" {
			if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
				r = r.WithContext(WithLandlordID(r.Context(), id))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// WithLandlordID кладет ID арендодателя в контекст
func WithLandlordID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, landlordIDKey{}, id)
}

// GetLandlordID достает ID арендодателя из контекста
func GetLandlordID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(landlordIDKey{}).(int64)
	return id, ok
}
