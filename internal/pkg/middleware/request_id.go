package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// ContextKey é o tipo das chaves que este pacote guarda no contexto.
type ContextKey int

const (
	RequestIDKey ContextKey = iota
)

// RequestIDHeader é o header usado para propagar o ID da requisição.
const RequestIDHeader = "X-Request-ID"

// RequestID reaproveita o X-Request-ID recebido ou gera um UUID novo,
// devolvendo-o na resposta e anexando-o ao contexto.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)

		ctx := context.WithValue(r.Context(), RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID extrai o ID da requisição do contexto.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}
