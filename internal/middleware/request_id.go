package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/BossEl-566/LmBlog-sub001/internal/reqctx"
)

// RequestID присваивает каждому запросу идентификатор (или берёт его из
// заголовка X-Request-ID) и пробрасывает в контекст и ответ.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}

		ctx := context.WithValue(r.Context(), ContextRequestID, rid)
		ctx = reqctx.WithRequestID(ctx, rid)

		w.Header().Set("X-Request-ID", rid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
