package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/ekovalova/contactbook/internal/handlers"
	internaljwt "github.com/ekovalova/contactbook/internal/jwt"
	"github.com/ekovalova/contactbook/internal/logger"
	"github.com/ekovalova/contactbook/internal/mailer"
	"github.com/ekovalova/contactbook/internal/middlewares"
	"github.com/ekovalova/contactbook/internal/migrations"
	"github.com/ekovalova/contactbook/internal/repositories"
	"github.com/ekovalova/contactbook/internal/services"
	"github.com/ekovalova/contactbook/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds all application settings resolved from the environment.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost     string
	redisPort     int
	redisDB       int
	redisPassword string

	kafkaAddr  string
	kafkaTopic string

	smtpHost     string
	smtpPort     string
	smtpUser     string
	smtpPassword string
	smtpFrom     string
	baseURL      string

	s3Endpoint  string
	s3Region    string
	s3Bucket    string
	s3AccessKey string
	s3SecretKey string

	jwtSecretKey        string
	jwtAccessExpSecond  int
	jwtRefreshExpSecond int

	birthdayWindowDays int
	rateLimitPerMinute int
}

// @title contactbook API
// @version 1.0.0
// @description Multi-tenant contact book with JWT auth, email confirmation and birthday reminders
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and resolves all
// application settings, falling back to defaults.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getEnvInt := func(key string, defaultValue int) (int, error) {
		raw := getEnv(key, strconv.Itoa(defaultValue))
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %w", key, err)
		}
		return n, nil
	}

	cfg := &config{
		appHost:  getEnv("APP_HOST", "localhost"),
		appPort:  getEnv("APP_PORT", "8080"),
		logLevel: getEnv("APP_LOG_LEVEL", "info"),

		pgHost:     getEnv("POSTGRES_HOST", "localhost"),
		pgUser:     getEnv("POSTGRES_USER", "user"),
		pgPassword: getEnv("POSTGRES_PASSWORD", "password"),
		pgDB:       getEnv("POSTGRES_DB", "contactbook"),

		redisHost:     getEnv("REDIS_HOST", "localhost"),
		redisPassword: getEnv("REDIS_PASSWORD", ""),

		kafkaAddr:  getEnv("KAFKA_ADDR", ""),
		kafkaTopic: getEnv("KAFKA_TOPIC", "contact-events"),

		smtpHost:     getEnv("SMTP_HOST", ""),
		smtpPort:     getEnv("SMTP_PORT", "587"),
		smtpUser:     getEnv("SMTP_USER", ""),
		smtpPassword: getEnv("SMTP_PASSWORD", ""),
		smtpFrom:     getEnv("SMTP_FROM", "noreply@localhost"),
		baseURL:      getEnv("APP_BASE_URL", "http://localhost:8080"),

		s3Endpoint:  getEnv("S3_ENDPOINT", ""),
		s3Region:    getEnv("S3_REGION", "us-east-1"),
		s3Bucket:    getEnv("S3_BUCKET", "avatars"),
		s3AccessKey: getEnv("S3_ACCESS_KEY", ""),
		s3SecretKey: getEnv("S3_SECRET_KEY", ""),

		jwtSecretKey: getEnv("JWT_SECRET_KEY", "my_super_secret_key"),
	}

	var err error
	if cfg.pgPort, err = getEnvInt("POSTGRES_PORT", 5432); err != nil {
		return nil, err
	}
	if cfg.pgMaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return nil, err
	}
	if cfg.pgMaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return nil, err
	}
	if cfg.redisPort, err = getEnvInt("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.redisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.jwtAccessExpSecond, err = getEnvInt("JWT_ACCESS_EXP_SECOND", 900); err != nil {
		return nil, err
	}
	if cfg.jwtRefreshExpSecond, err = getEnvInt("JWT_REFRESH_EXP_SECOND", 604800); err != nil {
		return nil, err
	}
	if cfg.birthdayWindowDays, err = getEnvInt("BIRTHDAY_WINDOW_DAYS", 7); err != nil {
		return nil, err
	}
	if cfg.rateLimitPerMinute, err = getEnvInt("RATE_LIMIT_PER_MINUTE", 10); err != nil {
		return nil, err
	}

	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka, SMTP and S3 clients,
// wires the HTTP server and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	// Apply migrations
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.UpContext(ctx, db.DB, "."); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password: cfg.redisPassword,
		DB:       cfg.redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for contact audit events, optional
	var kafkaWriter services.KafkaWriter
	if cfg.kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.kafkaAddr),
			Topic:                  cfg.kafkaTopic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
	}

	// SMTP mailer for confirmation links, optional
	var confirmationMailer services.Mailer
	if cfg.smtpHost != "" {
		m, err := mailer.New(
			mailer.WithAddr(cfg.smtpHost, cfg.smtpPort),
			mailer.WithCredentials(cfg.smtpUser, cfg.smtpPassword),
			mailer.WithFrom(cfg.smtpFrom),
			mailer.WithBaseURL(cfg.baseURL),
		)
		if err != nil {
			return fmt.Errorf("mailer init failed: %w", err)
		}
		confirmationMailer = m
	}

	// S3 store for avatars, optional
	var avatarStore services.AvatarStore
	if cfg.s3Endpoint != "" {
		s, err := storage.NewS3Store(ctx, storage.Config{
			Endpoint:  cfg.s3Endpoint,
			Region:    cfg.s3Region,
			Bucket:    cfg.s3Bucket,
			AccessKey: cfg.s3AccessKey,
			SecretKey: cfg.s3SecretKey,
		})
		if err != nil {
			return fmt.Errorf("S3 store init failed: %w", err)
		}
		avatarStore = s
	}

	// Initialize JWT service
	jwtSvc := internaljwt.New(
		internaljwt.WithSecretKey(cfg.jwtSecretKey),
		internaljwt.WithAccessExp(time.Duration(cfg.jwtAccessExpSecond)*time.Second),
		internaljwt.WithRefreshExp(time.Duration(cfg.jwtRefreshExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	contactReadRepo := repositories.NewContactReadRepository(db)
	contactWriteRepo := repositories.NewContactWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc, confirmationMailer)
	userService := services.NewUserService(userReadRepo, userWriteRepo, avatarStore)
	contactService := services.NewContactService(contactReadRepo, contactWriteRepo, kafkaWriter, cfg.birthdayWindowDays)

	// Redis-backed rate limiter for contact routes
	limiter := middlewares.NewRedisLimiter(rdb, int64(cfg.rateLimitPerMinute), time.Minute)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.TxMiddleware(db))

	// Public routes
	r.Post("/api/auth/register", handlers.NewRegisterHandler(authService))
	r.Post("/api/auth/login", handlers.NewLoginHandler(authService))
	r.Get("/api/auth/refresh", handlers.NewRefreshHandler(authService, jwtSvc))
	r.Get("/api/auth/confirm/{token}", handlers.NewConfirmEmailHandler(authService))
	r.Post("/api/auth/request-confirm", handlers.NewRequestConfirmHandler(authService))

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(jwtSvc))

		r.Post("/api/auth/logout", handlers.NewLogoutHandler(authService, jwtSvc))
		r.Patch("/api/users/avatar", handlers.NewUpdateAvatarHandler(userService, jwtSvc))

		// Contact routes additionally rate limited
		r.Group(func(r chi.Router) {
			r.Use(middlewares.RateLimitMiddleware(limiter))

			r.Post("/api/contacts", handlers.NewCreateContactHandler(contactService, jwtSvc))
			r.Get("/api/contacts", handlers.NewListContactsHandler(contactService, jwtSvc))
			r.Get("/api/contacts/search", handlers.NewSearchContactsHandler(contactService, jwtSvc))
			r.Get("/api/contacts/birthdays", handlers.NewBirthdaysHandler(contactService, jwtSvc))
			r.Get("/api/contacts/{id}", handlers.NewGetContactHandler(contactService, jwtSvc))
			r.Put("/api/contacts/{id}", handlers.NewUpdateContactHandler(contactService, jwtSvc))
			r.Delete("/api/contacts/{id}", handlers.NewDeleteContactHandler(contactService, jwtSvc))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
