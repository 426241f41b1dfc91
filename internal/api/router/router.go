package router

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"godevs/internal/api/developer"
	"godevs/internal/domain"
	"godevs/internal/pkg/cache"
	"godevs/internal/pkg/logger"
	"godevs/internal/pkg/middleware"
)

// RateLimit configura o middleware de rate limit. Client nil desliga o limite.
type RateLimit struct {
	Client      cache.Client
	MaxRequests int
	Period      time.Duration
}

// NewRouter configura e retorna o roteador HTTP principal.
// Recebe os Handlers já inicializados por injeção de dependências.
func NewRouter(developerHandler *developer.Handler, rl RateLimit, log logger.Logger) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(notFoundHandler)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowedHandler)

	// --- 1. Rotas de Health Check ---
	r.HandleFunc("/", RootHandler).Methods(http.MethodGet)
	r.HandleFunc("/ping", PingHandler).Methods(http.MethodGet)

	// --- 2. Rotas do Módulo de Desenvolvedores ---
	dev := r.PathPrefix("/developer").Subrouter()
	dev.HandleFunc("", developerHandler.ListDevelopersHandler).Methods(http.MethodGet)
	dev.HandleFunc("", developerHandler.CreateDeveloperHandler).Methods(http.MethodPost)
	dev.HandleFunc("/", developerHandler.ListDevelopersHandler).Methods(http.MethodGet)
	dev.HandleFunc("/", developerHandler.CreateDeveloperHandler).Methods(http.MethodPost)

	dev.HandleFunc("/fullname/{fullname}", developerHandler.GetDeveloperByFullNameHandler).Methods(http.MethodGet)
	dev.HandleFunc("/cellphone/{cellphone}", developerHandler.GetDeveloperByCellphoneHandler).Methods(http.MethodGet)
	dev.HandleFunc("/cep/{cep}", developerHandler.GetDevelopersByCepHandler).Methods(http.MethodGet)
	dev.HandleFunc("/speciality/{speciality}", developerHandler.GetDevelopersBySpecialityHandler).Methods(http.MethodGet)

	dev.HandleFunc("/{id:[0-9]+}", developerHandler.GetDeveloperByIDHandler).Methods(http.MethodGet)
	dev.HandleFunc("/{id:[0-9]+}", developerHandler.UpdateDeveloperHandler).Methods(http.MethodPut)
	dev.HandleFunc("/{id:[0-9]+}", developerHandler.DeleteDeveloperHandler).Methods(http.MethodDelete)

	// --- 3. Middlewares Globais (de fora para dentro) ---
	var handler http.Handler = r
	if rl.Client != nil {
		handler = middleware.RateLimiter(rl.Client, rl.MaxRequests, rl.Period, log)(handler)
	}
	handler = middleware.Recover(log)(handler)
	handler = middleware.Logging(log)(handler)
	handler = middleware.RequestID(handler)

	return handler
}

// RootHandler responde na raiz, como verificação rápida de que o serviço está de pé.
func RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("it works"))
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeJSONError(w, http.StatusNotFound, "NOT_FOUND", "Rota não encontrada.")
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	writeJSONError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Método não permitido.")
}

func writeJSONError(w http.ResponseWriter, status int, category, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(domain.ErrorResponse{Code: status, Category: category, Message: message})
}
