package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"godevs/config"
	"godevs/internal/api/developer"
	"godevs/internal/api/router"
	"godevs/internal/pkg/cache"
	"godevs/internal/pkg/database"
	"godevs/internal/pkg/logger"
	"godevs/internal/pkg/viacep"
	"godevs/internal/repository/developerrepo"
	"godevs/internal/service/developerservice"
	"godevs/internal/validation"
)

func main() {
	// 0. Variáveis de ambiente (.env é opcional: em Docker elas vêm do ambiente)
	if err := godotenv.Load(); err != nil {
		log.Println("Aviso: arquivo .env não encontrado. Carregando configs apenas do ambiente do sistema.")
	}

	// 1. Configuração e Logger
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Erro de configuração: %v", err)
	}
	logg := logger.NewLogger(cfg.LogLevel)
	logg.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment})

	ctx := context.Background()

	// 2. Conexão com Recursos de Infraestrutura

	// A. Banco de Dados (PostgreSQL)
	db, err := database.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		logg.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()
	logg.Info("Conexão PostgreSQL estabelecida.", nil)

	// B. Redis (rate limit). Sem Redis o serviço sobe sem limite.
	rateLimit := router.RateLimit{MaxRequests: cfg.RateLimitMaxRequests, Period: cfg.RateLimitPeriod}
	if cfg.RateLimitEnabled {
		redisClient, err := cache.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			logg.Warn("Redis indisponível, rate limit desativado.", map[string]interface{}{"addr": cfg.RedisAddr, "error": err.Error()})
			redisClient.Close()
		} else {
			defer redisClient.Close()
			rateLimit.Client = redisClient
			logg.Info("Conexão Redis estabelecida.", map[string]interface{}{"addr": cfg.RedisAddr})
		}
	}

	// 3. Injeção de Dependências: Repository -> Service -> Handler
	developerRepo := developerrepo.NewDeveloperRepository(db, cfg.DBTimeout, logg)
	addressClient := viacep.NewClient(cfg.ViaCEPBaseURL, cfg.ViaCEPTimeout, logg)
	developerSvc := developerservice.NewService(
		developerRepo,
		addressClient,
		validation.NewDeveloperValidator(),
		developerservice.Options{ValidationAsBadRequest: cfg.ValidationAsBadRequest},
		logg,
	)
	developerHandler := developer.NewHandler(developerSvc, logg, developer.Options{ValidationAsBadRequest: cfg.ValidationAsBadRequest})
	logg.Debug("Camadas de desenvolvedor inicializadas.", nil)

	// 4. Roteador e Servidor
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router.NewRouter(developerHandler, rateLimit, logg),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10*time.Second + cfg.ViaCEPTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	go func() {
		logg.Info("Servidor ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logg.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	logg.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logg.Error("Desligamento do servidor forçado.", err)
	}

	logg.Info("Servidor encerrado com sucesso.", nil)
}
