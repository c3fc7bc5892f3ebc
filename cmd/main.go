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
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/walletgw/gw-wallet-topup/internal/facades"
	"github.com/walletgw/gw-wallet-topup/internal/form"
	"github.com/walletgw/gw-wallet-topup/internal/handlers"
	"github.com/walletgw/gw-wallet-topup/internal/jwt"
	"github.com/walletgw/gw-wallet-topup/internal/localization"
	"github.com/walletgw/gw-wallet-topup/internal/logger"
	"github.com/walletgw/gw-wallet-topup/internal/middlewares"
	"github.com/walletgw/gw-wallet-topup/internal/repositories"
	"github.com/walletgw/gw-wallet-topup/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"

	_ "github.com/walletgw/gw-wallet-topup/docs"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-wallet-topup API
// @version 1.0.0
// @description Microservice for managing user wallets and top-up form sessions
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaAddr, kafkaTopic,
		processorURL, processorHealthHost, processorHealthPort,
		logLevel,
		jwtSecret, jwtExp,
		topupResetSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaAddr, kafkaTopic,
		processorURL, processorHealthHost, processorHealthPort,
		logLevel,
		jwtSecret, jwtExp,
		topupResetSecond,
	); err != nil {
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

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, Kafka, processor, logging, JWT and
// form configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaAddr, kafkaTopic string,
	processorURL, processorHealthHost, processorHealthPort string,
	logLevel string,
	jwtSecretKey string, jwtExpSecond int,
	topupResetSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config
	kafkaAddr = getEnv("KAFKA_ADDR", "localhost:9092")
	kafkaTopic = getEnv("KAFKA_TOPIC", "wallet-transactions")

	// Payment processor config
	processorURL = getEnv("PROCESSOR_URL", "http://localhost:8090")
	processorHealthHost = getEnv("PROCESSOR_HEALTH_HOST", "localhost")
	processorHealthPort = getEnv("PROCESSOR_HEALTH_PORT", "50051")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Top-up form config
	if topupResetSecond, err = strconv.Atoi(getEnv("TOPUP_RESET_SECOND", "2")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, processor clients and
// the HTTP server. It sets up routes, applies middleware, and handles
// graceful shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaAddr, kafkaTopic string,
	processorURL, processorHealthHost, processorHealthPort string,
	logLevel string,
	jwtSecretKey string, jwtExpSecond int,
	topupResetSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	log.Infof("Connecting to PostgreSQL: %s", dsn)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for transaction publishing
	kafkaWriter := &kafka.Writer{
		Addr:     kafka.TCP(kafkaAddr),
		Topic:    kafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer kafkaWriter.Close()

	// Connect to the payment processor's health endpoint
	healthAddr := fmt.Sprintf("%s:%s", processorHealthHost, processorHealthPort)
	conn, err := grpc.NewClient(healthAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatal("Failed to connect to processor health endpoint at", healthAddr, ":", err)
	}
	defer conn.Close()
	healthClient := grpc_health_v1.NewHealthClient(conn)

	processor := facades.NewPaymentProcessorFacade(processorURL, nil, healthClient)

	// Initialize JWT service
	jwtSvc := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	walletWriteRepo := repositories.NewWalletWriteRepository(db, middlewares.GetTxFromContext)
	walletReadRepo := repositories.NewWalletReadRepository(db)
	methodRepo := repositories.NewPaymentMethodReadRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc)
	walletService := services.NewWalletService(
		walletWriteRepo, walletReadRepo, methodRepo, processor, kafkaWriter, "")

	// Translator and form session manager
	translator := localization.New(rdb, 24*time.Hour)
	sessions := form.NewManager(walletService, translator,
		time.Duration(topupResetSecond)*time.Second)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	balanceHandler := handlers.NewGetBalanceHandler(walletService, jwtSvc)
	methodsHandler := handlers.NewGetMethodsHandler(walletService, jwtSvc)
	openFormHandler := handlers.NewOpenTopupFormHandler(sessions, jwtSvc)
	getFormHandler := handlers.NewGetTopupFormHandler(sessions, jwtSvc)
	amountHandler := handlers.NewTopupAmountHandler(sessions, jwtSvc)
	methodHandler := handlers.NewTopupMethodHandler(sessions, jwtSvc)
	submitHandler := handlers.NewTopupSubmitHandler(sessions, jwtSvc)
	closeFormHandler := handlers.NewCloseTopupFormHandler(sessions, jwtSvc)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	// Public routes
	r.Post("/register", registerHandler)
	r.Post("/login", loginHandler)

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(jwtSvc))
		r.Get("/balance", balanceHandler)
		r.Get("/wallet/methods", methodsHandler)
		r.Route("/wallet/topup/form", func(r chi.Router) {
			r.With(middlewares.TxMiddleware(db)).Post("/submit", submitHandler)
			r.Post("/", openFormHandler)
			r.Get("/", getFormHandler)
			r.Delete("/", closeFormHandler)
			r.Post("/amount", amountHandler)
			r.Post("/method", methodHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
