package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/mogith007/skillswap/internal/api/types"
	"github.com/mogith007/skillswap/pkg/logger"
	"go.uber.org/zap"
)

// Recovery logs panics and returns 500 with a generic message.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.L().Error("panic recovered",
					zap.String("id", GetRequestID(r.Context())),
					zap.Any("panic", rec),
					zap.ByteString("stack", debug.Stack()))
				writeJSON(w, http.StatusInternalServerError, types.Fail("Internal server error"))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
