package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"quizmaster-service/internal/app"
	"quizmaster-service/internal/auth"
	"quizmaster-service/internal/config"
	"quizmaster-service/internal/infra/memory"
	pgstore "quizmaster-service/internal/infra/postgres"
	redisstore "quizmaster-service/internal/infra/redis"
	transport "quizmaster-service/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the quiz server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
	}

	var users app.UserRepository = memory.NewUserRepository()
	var quizzes app.QuizStore = memory.NewQuizStore()
	var results app.ResultLedger = memory.NewResultStore()
	if pool != nil {
		users = pgstore.NewUserRepository(pool)
		quizzes = pgstore.NewQuizStore(pool)
		results = pgstore.NewResultStore(pool)
	}

	catalogService := app.NewCatalogService(sampleQuizzes(), quizzes)

	cacheTTL := config.TTLDuration(cfg.Quiz.CacheTTL, 10*time.Minute)
	var catalog app.Catalog
	if redisClient != nil {
		catalog = redisstore.NewQuizCache(redisClient, catalogService, cacheTTL)
	} else {
		catalog = memory.NewQuizCache(catalogService, cacheTTL)
	}

	attemptTTL := config.TTLDuration(cfg.Attempt.TTL, time.Hour)
	var attempts app.AttemptStore
	if redisClient != nil {
		attempts = redisstore.NewAttemptStore(redisClient, attemptTTL)
	} else {
		attempts = memory.NewAttemptStore()
	}

	secret := cfg.Auth.Secret
	if secret == "" {
		secret = os.Getenv("AUTH_SECRET")
	}
	tokens := auth.NewTokens(secret, config.TTLDuration(cfg.Auth.TokenTTL, 24*time.Hour))

	authService := app.NewAuthService(users, tokens)
	attemptService := app.NewAttemptService(attempts, catalog, results)
	resultsService := app.NewResultsService(results)

	apiHandler := transport.NewAPIHandler(authService, catalogService, attemptService, resultsService)
	wsHandler := transport.NewAttemptWSHandler(authService, attemptService)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	apiHandler.Register(mux)
	mux.HandleFunc("/ws/attempt", wsHandler.ServeWS)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting quizmaster service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
