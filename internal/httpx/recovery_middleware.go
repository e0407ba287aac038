package httpx

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
)

func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("panic recovered",
					slog.String("rqID", RequestIDFrom(r)),
					slog.Any("err", err),
					slog.String("stack", string(debug.Stack())),
				)

				var wroteHeader bool
				if rw, ok := w.(*responseWriter); ok {
					wroteHeader = rw.wroteHeader()
				}

				if !wroteHeader {
					TextError(w, r, http.StatusInternalServerError, fmt.Errorf("%v", err))
				}
			}
		}()
		next.ServeHTTP(w, r)
	})
}
