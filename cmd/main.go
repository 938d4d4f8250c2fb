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

	"github.com/AfriTokeni/afritokeni-core/internal/config"
	"github.com/AfriTokeni/afritokeni-core/internal/facades"
	"github.com/AfriTokeni/afritokeni-core/internal/handlers"
	"github.com/AfriTokeni/afritokeni-core/internal/jwt"
	"github.com/AfriTokeni/afritokeni-core/internal/logger"
	"github.com/AfriTokeni/afritokeni-core/internal/middlewares"
	"github.com/AfriTokeni/afritokeni-core/internal/repositories"
	"github.com/AfriTokeni/afritokeni-core/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title afritokeni-core API
// @version 1.0.0
// @description Mobile-money core: agent cash-in/cash-out, transfers, crypto trading and escrow
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
		kafkaAddr, kafkaTopic,
		ratesHost, ratesPort, logLevel,
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
		kafkaAddr, kafkaTopic,
		ratesHost, ratesPort,
		logLevel,
		jwtSecret, jwtExp,
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

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, gRPC, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	kafkaAddr, kafkaTopic string,
	ratesHost, ratesPort, logLevel string,
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
	pgDB = getEnv("POSTGRES_DB", "afritokeni")
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

	// Kafka config; empty address disables event publishing
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "transactions")

	// Exchange-rate gRPC config
	ratesHost = getEnv("RATES_GRPC_HOST", "localhost")
	ratesPort = getEnv("RATES_GRPC_PORT", "50051")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, gRPC client, and HTTP
// server. It sets up routes, applies middleware, starts the expiry sweeper,
// and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaAddr, kafkaTopic string,
	ratesHost, ratesPort, logLevel string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", pgHost, pgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Connect to the exchange-rate gRPC service
	grpcAddr := fmt.Sprintf("%s:%s", ratesHost, ratesPort)
	conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		logger.Log.Fatal("Failed to connect to gRPC service at ", grpcAddr, ": ", err)
	}
	defer conn.Close()
	rateClient := pb.NewExchangeServiceClient(conn)

	// Kafka transaction events; best-effort, disabled without an address
	var publisher *services.TransactionPublisher
	if kafkaAddr != "" {
		kafkaWriter := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kafkaWriter.Close()
		publisher = services.NewTransactionPublisher(kafkaWriter)
	} else {
		publisher = services.NewTransactionPublisher(nil)
	}

	// Business configuration: fees, limits, fraud thresholds, PIN policy
	cfg := config.Default()

	// Initialize JWT service
	tokener := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	ledgerWriteRepo := repositories.NewLedgerWriterRepository(db, txGetter)
	ledgerReadRepo := repositories.NewLedgerReaderRepository(db)
	txnWriteRepo := repositories.NewTransactionWriterRepository(db, txGetter)
	txnReadRepo := repositories.NewTransactionReaderRepository(db)
	depositWriteRepo := repositories.NewDepositRequestWriterRepository(db, txGetter)
	depositReadRepo := repositories.NewDepositRequestReaderRepository(db)
	withdrawalWriteRepo := repositories.NewWithdrawalRequestWriterRepository(db, txGetter)
	withdrawalReadRepo := repositories.NewWithdrawalRequestReaderRepository(db)
	escrowWriteRepo := repositories.NewEscrowWriterRepository(db, txGetter)
	escrowReadRepo := repositories.NewEscrowReaderRepository(db)
	pinWriteRepo := repositories.NewPinWriterRepository(db, txGetter)
	pinReadRepo := repositories.NewPinReaderRepository(db)
	agentWriteRepo := repositories.NewAgentBalanceWriterRepository(db, txGetter)
	agentReadRepo := repositories.NewAgentBalanceReaderRepository(db)
	sequenceRepo := repositories.NewSequenceRepository(db)
	rateCacheRepo := repositories.NewRateCacheRepository(rdb, cfg.RateCacheTTL)

	// Initialize facades
	ratesFacade := facades.NewRatesGRPCFacade(rateClient, cfg.ExternalCallTimeout)

	// Initialize services
	locks := services.NewUserLocks()
	pinService := services.NewPinService(pinReadRepo, pinWriteRepo, cfg.Pin)
	fraudService := services.NewFraudService(txnReadRepo, userReadRepo, &cfg)
	accountService := services.NewAccountService(
		userReadRepo, userWriteRepo, ledgerReadRepo, txnReadRepo, agentReadRepo,
		pinService, pinService,
	)
	transferService := services.NewTransferService(
		ledgerWriteRepo, ledgerReadRepo, txnWriteRepo, pinService, fraudService,
		userReadRepo, locks, publisher, cfg.Fees,
	)
	depositService := services.NewDepositService(
		depositWriteRepo, depositReadRepo, ledgerWriteRepo, txnWriteRepo,
		pinService, fraudService, agentWriteRepo, sequenceRepo, locks, publisher, cfg,
	)
	withdrawalService := services.NewWithdrawalService(
		withdrawalWriteRepo, withdrawalReadRepo, ledgerWriteRepo, ledgerReadRepo,
		txnWriteRepo, pinService, fraudService, agentWriteRepo, sequenceRepo,
		locks, publisher, cfg,
	)
	cryptoService := services.NewCryptoService(
		ledgerWriteRepo, ledgerReadRepo, txnWriteRepo, pinService, fraudService,
		userReadRepo, ratesFacade, rateCacheRepo, locks, publisher, cfg.Fees,
	)
	escrowService := services.NewEscrowService(
		escrowWriteRepo, escrowReadRepo, ledgerWriteRepo, ledgerReadRepo,
		txnWriteRepo, pinService, sequenceRepo, locks, publisher, cfg.Codes,
	)
	sweeper := services.NewSweeper(
		withdrawalWriteRepo, withdrawalReadRepo, escrowWriteRepo, escrowReadRepo,
		ledgerWriteRepo, locks,
	)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/register", handlers.NewRegisterHandler(accountService))
		r.Post("/login", handlers.NewLoginHandler(accountService, tokener))

		// Protected routes; every mutation runs inside a request transaction
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokener))
			r.Use(middlewares.TxMiddleware(db))

			r.Post("/account/link", handlers.NewLinkIdentifierHandler(accountService, tokener))

			r.Get("/wallet/balance", handlers.NewBalanceHandler(accountService, tokener))
			r.Get("/wallet/history", handlers.NewHistoryHandler(accountService, tokener))
			r.Post("/wallet/transfer", handlers.NewTransferHandler(transferService, tokener))

			r.Post("/deposits", handlers.NewCreateDepositHandler(depositService, tokener))
			r.Post("/deposits/confirm", handlers.NewConfirmDepositHandler(depositService, tokener))

			r.Post("/withdrawals", handlers.NewCreateWithdrawalHandler(withdrawalService, tokener))
			r.Post("/withdrawals/confirm", handlers.NewConfirmWithdrawalHandler(withdrawalService, tokener))
			r.Post("/withdrawals/cancel", handlers.NewCancelWithdrawalHandler(withdrawalService, tokener))

			r.Post("/crypto/buy", handlers.NewBuyCryptoHandler(cryptoService, tokener))
			r.Post("/crypto/sell", handlers.NewSellCryptoHandler(cryptoService, tokener))
			r.Post("/crypto/swap", handlers.NewSwapCryptoHandler(cryptoService, tokener))
			r.Post("/crypto/send", handlers.NewSendCryptoHandler(cryptoService, tokener))

			r.Post("/escrows", handlers.NewCreateEscrowHandler(escrowService, tokener))
			r.Post("/escrows/claim", handlers.NewClaimEscrowHandler(escrowService, tokener))
			r.Post("/escrows/cancel", handlers.NewCancelEscrowHandler(escrowService, tokener))

			r.Get("/agent/balances", handlers.NewAgentBalancesHandler(accountService, tokener))

			r.Post("/admin/sweep", handlers.NewSweepHandler(sweeper, tokener))
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

	// Background expiry sweeper for overdue withdrawal holds and escrows
	go sweeper.Run(ctxShutdown, cfg.SweepInterval)

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
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
