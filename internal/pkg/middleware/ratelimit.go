package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"godevs/internal/pkg/cache"
	"godevs/internal/pkg/logger"
)

// RateLimiter limita requisições por IP em janelas fixas de `duration`,
// usando o contador do cache (INCR + EXPIRE).
// Se o cache falhar a requisição segue adiante: o limite não derruba a API.
func RateLimiter(client cache.Client, limit int, duration time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			key := "rate-limit:" + ip
			ctx := r.Context()

			count, err := client.Incr(ctx, key)
			if err != nil {
				log.Warn("Rate limiter indisponível, requisição liberada.", map[string]interface{}{"error": err.Error()})
				next.ServeHTTP(w, r)
				return
			}

			// Primeira requisição da janela: inicia o TTL.
			if count == 1 {
				if err := client.Expire(ctx, key, duration); err != nil {
					log.Warn("Falha ao definir a janela do rate limiter.", map[string]interface{}{"error": err.Error()})
				}
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			if count > int64(limit) {
				w.Header().Set("X-RateLimit-Remaining", "0")
				writeError(w, http.StatusTooManyRequests, "RATE_LIMITED", "Limite de requisições excedido. Tente novamente mais tarde.")
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(int64(limit)-count, 10))
			next.ServeHTTP(w, r)
		})
	}
}
