package integration

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"

	"github.com/jackc/pgx/v4/pgxpool"

	"quizmaster-service/internal/app"
	"quizmaster-service/internal/auth"
	"quizmaster-service/internal/domain"
	pgstore "quizmaster-service/internal/infra/postgres"
	pgmigrations "quizmaster-service/internal/infra/postgres/migrations"
	redisstore "quizmaster-service/internal/infra/redis"
)

func TestQuizAttemptEndToEnd(t *testing.T) {
	ctx := context.Background()
	requireDocker(t)

	pgURL, pgCleanup := startPostgres(t, ctx)
	defer pgCleanup()
	redisURL, redisCleanup := startRedis(t, ctx)
	defer redisCleanup()

	runMigrations(t, ctx, pgURL)

	pool, err := pgxpool.Connect(ctx, pgURL)
	if err != nil {
		t.Fatalf("connect pg: %v", err)
	}
	defer pool.Close()

	redisClient, err := redisClientFromURL(redisURL)
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}

	users := pgstore.NewUserRepository(pool)
	quizzes := pgstore.NewQuizStore(pool)
	results := pgstore.NewResultStore(pool)

	authService := app.NewAuthService(users, auth.NewTokens("integration-secret", time.Hour))
	catalogService := app.NewCatalogService(nil, quizzes)
	catalog := redisstore.NewQuizCache(redisClient, catalogService, 5*time.Minute)
	attempts := redisstore.NewAttemptStore(redisClient, 5*time.Minute)
	attemptService := app.NewAttemptService(attempts, catalog, results)
	resultsService := app.NewResultsService(results)

	user, token, err := authService.Register(ctx, "Alice", "alice@example.com", "s3cret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := authService.CurrentUser(ctx, token); err != nil {
		t.Fatalf("current user: %v", err)
	}
	if _, _, err := authService.Register(ctx, "Imposter", "alice@example.com", "pw"); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken from postgres unique index, got %v", err)
	}

	quiz, err := catalogService.CreateQuiz(ctx, user, app.QuizDraft{
		Title: "Arithmetic",
		Questions: []app.QuestionDraft{
			{Text: "What is 2 + 2?", Options: []string{"3", "4", "5", "6"}, CorrectAnswer: 1},
			{Text: "What is 3 * 3?", Options: []string{"6", "7", "8", "9"}, CorrectAnswer: 3},
		},
	})
	if err != nil {
		t.Fatalf("create quiz: %v", err)
	}

	attempt, err := attemptService.Start(ctx, quiz.ID, user)
	if err != nil {
		t.Fatalf("start attempt: %v", err)
	}
	if _, err := attemptService.SelectAnswer(ctx, attempt.ID, user.ID, 1); err != nil {
		t.Fatalf("select: %v", err)
	}
	if _, err := attemptService.Advance(ctx, attempt.ID, user.ID, app.DirectionNext); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if _, err := attemptService.SelectAnswer(ctx, attempt.ID, user.ID, 3); err != nil {
		t.Fatalf("select 2: %v", err)
	}

	result, err := attemptService.Submit(ctx, attempt.ID, user)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.CorrectAnswers != 2 || result.Score != 100.0 {
		t.Fatalf("expected perfect score, got %+v", result)
	}

	history, err := resultsService.History(ctx, user.ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 || history[0].ID != result.ID || history[0].Score != result.Score {
		t.Fatalf("expected stored result, got %+v", history)
	}
	if history[0].QuizTitle != "Arithmetic" || history[0].UserName != "Alice" {
		t.Fatalf("expected snapshots to survive postgres round trip, got %+v", history[0])
	}

	stats, err := resultsService.Stats(ctx, user.ID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.QuizzesTaken != 1 || stats.QuestionsAnswered != 2 || stats.AverageScore != 100.0 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func startPostgres(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_USER": "quiz", "POSTGRES_PASSWORD": "quizpass", "POSTGRES_DB": "quizdb"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start postgres: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	dsn := fmt.Sprintf("postgres://quiz:quizpass@%s:%s/quizdb?sslmode=disable", host, port.Port())
	return dsn, func() {
		_ = container.Terminate(ctx)
	}
}

func startRedis(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start redis: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("redis host: %v", err)
	}
	port, err := container.MappedPort(ctx, "6379/tcp")
	if err != nil {
		t.Fatalf("redis port: %v", err)
	}
	url := fmt.Sprintf("redis://%s:%s", host, port.Port())
	return url, func() {
		_ = container.Terminate(ctx)
	}
}

func runMigrations(t *testing.T, ctx context.Context, dsn string) {
	t.Helper()
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("migrator init: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
}

func redisClientFromURL(url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	}), nil
}

func requireDocker(t *testing.T) {
	t.Helper()
	if _, err := tc.NewDockerProvider(); err != nil {
		t.Skipf("docker not available: %v", err)
	}
}
