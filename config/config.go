package config

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config armazena todas as configurações do serviço de desenvolvedores.
type Config struct {
	// Geral
	Port        string `validate:"required,numeric"`
	Environment string
	LogLevel    string

	// Banco de Dados (PostgreSQL)
	DatabaseURL string        `validate:"required"`
	DBTimeout   time.Duration `validate:"gt=0"`

	// Serviço de CEP (ViaCEP)
	ViaCEPBaseURL string        `validate:"required,url"`
	ViaCEPTimeout time.Duration `validate:"gt=0"`

	// Responder 400 em vez de 500 para payloads inválidos.
	ValidationAsBadRequest bool

	// Rate Limiting (Redis)
	RedisAddr            string
	RateLimitEnabled     bool
	RateLimitMaxRequests int           `validate:"gt=0"`
	RateLimitPeriod      time.Duration `validate:"gt=0"`
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
// O .env, quando existir, já deve ter sido carregado pelo main (godotenv).
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	// Sem prefixo: PORT -> "port", DATABASE_URL -> "database_url".
	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, fmt.Errorf("falha ao ler variáveis de ambiente: %w", err)
	}

	cfg := &Config{
		// 1. Geral
		Port:        getEnv(k, "port", "3000"),
		Environment: getEnv(k, "env", "development"),
		LogLevel:    getEnv(k, "log_level", "info"),

		// 2. Banco de Dados (PostgreSQL)
		DatabaseURL: getEnv(k, "database_url", ""),
		DBTimeout:   getDurationEnv(k, "db_timeout_sec", 5) * time.Second,

		// 3. Serviço de CEP
		ViaCEPBaseURL: getEnv(k, "viacep_base_url", "https://viacep.com.br"),
		ViaCEPTimeout: getDurationEnv(k, "viacep_timeout_sec", 5) * time.Second,

		ValidationAsBadRequest: getBoolEnv(k, "validation_as_bad_request", false),

		// 4. Rate Limiting
		RedisAddr:            getEnv(k, "redis_addr", "localhost:6379"),
		RateLimitEnabled:     getBoolEnv(k, "rate_limit_enabled", true),
		RateLimitMaxRequests: getIntEnv(k, "rate_limit_max_requests", 100),
		RateLimitPeriod:      getDurationEnv(k, "rate_limit_period_min", 1) * time.Minute,
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuração inválida: %w", err)
	}

	return cfg, nil
}

// Funções Helpers (Auxiliares)

// getEnv lê a chave ou retorna um valor padrão.
func getEnv(k *koanf.Koanf, key string, defaultValue string) string {
	if k.Exists(key) {
		return strings.TrimSpace(k.String(key))
	}
	return defaultValue
}

// getDurationEnv lê uma chave numérica e retorna-a como time.Duration (sem unidade).
func getDurationEnv(k *koanf.Koanf, key string, defaultValue int) time.Duration {
	return time.Duration(getIntEnv(k, key, defaultValue))
}

// getIntEnv lê uma chave numérica e retorna-a como int.
func getIntEnv(k *koanf.Koanf, key string, defaultValue int) int {
	valueStr := getEnv(k, key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Aviso: valor de %s ('%s') não é um número inteiro válido. Usando padrão (%d).", strings.ToUpper(key), valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// getBoolEnv lê uma chave booleana ("true", "1", "false", ...).
func getBoolEnv(k *koanf.Koanf, key string, defaultValue bool) bool {
	valueStr := getEnv(k, key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Aviso: valor de %s ('%s') não é um booleano válido. Usando padrão (%t).", strings.ToUpper(key), valueStr, defaultValue)
		return defaultValue
	}
	return value
}
