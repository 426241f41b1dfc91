package middleware

import (
	"fmt"
	"net/http"

	apperror "godevs/internal/errors"
	"godevs/internal/pkg/logger"
)

// Recover é o tratador de último recurso: qualquer panic vira uma resposta 500.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				err := apperror.NewInternalError("internal server error", fmt.Errorf("panic: %v", rec))
				log.Error("Panic recuperado no handler.", err)
				writeError(w, err.HTTPStatus(), err.Category(), err.Message())
			}()

			next.ServeHTTP(w, r)
		})
	}
}
