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

	"github.com/ssekandi/bookpay/internal/facades"
	"github.com/ssekandi/bookpay/internal/handlers"
	"github.com/ssekandi/bookpay/internal/jwt"
	"github.com/ssekandi/bookpay/internal/logger"
	"github.com/ssekandi/bookpay/internal/middlewares"
	"github.com/ssekandi/bookpay/internal/repositories"
	"github.com/ssekandi/bookpay/internal/services"
	"github.com/ssekandi/bookpay/internal/store"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title bookpay API
// @version 1.0.0
// @description Mobile bookstore backend: catalog, favorites, mobile money payments and transaction status reconciliation
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, catalogExpSecond,
		kafkaAddr, kafkaTopic,
		mpBaseURL, mpAPIKey, mpAPISecret, mpCountry, mpCurrency, mpMinAmount, mpMaxAmount,
		pollIntervalSecond, pollMaxAttempts,
		logLevel,
		jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, catalogExpSecond,
		kafkaAddr, kafkaTopic,
		mpBaseURL, mpAPIKey, mpAPISecret, mpCountry, mpCurrency, mpMinAmount, mpMaxAmount,
		pollIntervalSecond, pollMaxAttempts,
		logLevel,
		jwtSecret, jwtExp,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, payment provider, polling, logging,
// and JWT configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, catalogExpSecond int,
	kafkaAddr, kafkaTopic string,
	mpBaseURL, mpAPIKey, mpAPISecret, mpCountry, mpCurrency string,
	mpMinAmount, mpMaxAmount int64,
	pollIntervalSecond, pollMaxAttempts int,
	logLevel string,
	jwtSecretKey string, jwtExpSecond int,
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
	if catalogExpSecond, err = strconv.Atoi(getEnv("CATALOG_CACHE_EXP_SECOND", "300")); err != nil {
		return
	}

	// Kafka config
	kafkaAddr = getEnv("KAFKA_ADDR", "localhost:9092")
	kafkaTopic = getEnv("KAFKA_TOPIC", "bookpay.transactions")

	// Payment provider config
	mpBaseURL = getEnv("MARZPAY_BASE_URL", "https://wallet.wearemarz.com/api/v1")
	mpAPIKey = getEnv("MARZPAY_API_KEY", "")
	mpAPISecret = getEnv("MARZPAY_API_SECRET", "")
	mpCountry = getEnv("MARZPAY_COUNTRY", "UG")
	mpCurrency = getEnv("MARZPAY_CURRENCY", "UGX")
	if mpMinAmount, err = strconv.ParseInt(getEnv("MARZPAY_MIN_AMOUNT", "500"), 10, 64); err != nil {
		return
	}
	if mpMaxAmount, err = strconv.ParseInt(getEnv("MARZPAY_MAX_AMOUNT", "10000000"), 10, 64); err != nil {
		return
	}

	// Status polling config
	if pollIntervalSecond, err = strconv.Atoi(getEnv("POLL_INTERVAL_SECOND", "5")); err != nil {
		return
	}
	if pollMaxAttempts, err = strconv.Atoi(getEnv("POLL_MAX_ATTEMPTS", "60")); err != nil {
		return
	}

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, the payment facade,
// and the HTTP server. It sets up routes, applies middleware, resumes
// pending reconciliation, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, catalogExpSecond int,
	kafkaAddr, kafkaTopic string,
	mpBaseURL, mpAPIKey, mpAPISecret, mpCountry, mpCurrency string,
	mpMinAmount, mpMaxAmount int64,
	pollIntervalSecond, pollMaxAttempts int,
	logLevel string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	log, err := logger.New(logLevel)
	if err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer log.Sync()
	log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	log.Infof("Connecting to PostgreSQL at %s:%d", pgHost, pgPort)

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

	// Kafka writer for transaction status events
	kafkaWriter := &kafka.Writer{
		Addr:     kafka.TCP(kafkaAddr),
		Topic:    kafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer kafkaWriter.Close()

	// Payment provider facade
	marzpay := facades.NewMarzPayFacade(facades.MarzPayConfig{
		BaseURL:   mpBaseURL,
		APIKey:    mpAPIKey,
		APISecret: mpAPISecret,
		Country:   mpCountry,
		Currency:  mpCurrency,
		MinAmount: mpMinAmount,
		MaxAmount: mpMaxAmount,
	}, nil)

	// Initialize JWT service
	jwtSvc := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	txWriteRepo := repositories.NewTransactionWriteRepository(db, middlewares.GetTxFromContext)
	txReadRepo := repositories.NewTransactionReadRepository(db)
	favoriteRepo := repositories.NewFavoriteRepository(db, middlewares.GetTxFromContext)
	bookCacheRepo := repositories.NewBookCacheRepository(rdb, time.Duration(catalogExpSecond)*time.Second)

	// In-memory transaction store and status reconciliation
	txStore := store.NewTransactionStore()
	reconciler := services.NewStatusReconciler(marzpay,
		time.Duration(pollIntervalSecond)*time.Second, pollMaxAttempts)
	defer reconciler.StopAll()

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc)
	catalogService := services.NewCatalogService(nil, bookCacheRepo, favoriteRepo)
	paymentService := services.NewPaymentService(marzpay, txStore, txWriteRepo, txReadRepo, reconciler, kafkaWriter, mpCurrency)
	accessService := services.NewAccessService(txStore)

	// Rebuild the in-memory store from postgres and resume reconciliation
	// for transactions left non-terminal by a previous run.
	if err := paymentService.ResumePending(ctx); err != nil {
		log.Errorw("failed to resume pending transactions", "error", err)
	}

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	listBooksHandler := handlers.NewListBooksHandler(catalogService)
	getBookHandler := handlers.NewGetBookHandler(catalogService)
	bookAccessHandler := handlers.NewBookAccessHandler(accessService, jwtSvc)
	listFavoritesHandler := handlers.NewListFavoritesHandler(catalogService, jwtSvc)
	addFavoriteHandler := handlers.NewAddFavoriteHandler(catalogService, jwtSvc)
	removeFavoriteHandler := handlers.NewRemoveFavoriteHandler(catalogService, jwtSvc)
	purchaseHandler := handlers.NewPurchaseHandler(paymentService, catalogService, jwtSvc)
	listTransactionsHandler := handlers.NewListTransactionsHandler(paymentService, jwtSvc)
	getTransactionHandler := handlers.NewGetTransactionHandler(paymentService, jwtSvc)
	recheckTransactionHandler := handlers.NewRecheckTransactionHandler(paymentService, jwtSvc)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	// Public routes
	r.Post("/register", registerHandler)
	r.Post("/login", loginHandler)
	r.Get("/books", listBooksHandler)
	r.Get("/books/{id}", getBookHandler)

	// Protected routes with JWT middleware
	authMiddleware := middlewares.AuthMiddleware(jwtSvc)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/books/{id}/access", bookAccessHandler)
		r.Get("/favorites", listFavoritesHandler)
		r.Get("/transactions", listTransactionsHandler)
		r.Get("/transactions/{uuid}", getTransactionHandler)
		r.Post("/transactions/{uuid}/check", recheckTransactionHandler)
		r.Post("/purchase", purchaseHandler)

		// Favorites mutations run inside a database transaction.
		r.Group(func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(db))
			r.Post("/favorites/{id}", addFavoriteHandler)
			r.Delete("/favorites/{id}", removeFavoriteHandler)
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
