package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"golang.org/x/sync/errgroup"

	"github.com/sbilibin2017/neko-list/internal/config"
	"github.com/sbilibin2017/neko-list/internal/hasher"
	"github.com/sbilibin2017/neko-list/internal/health"
	"github.com/sbilibin2017/neko-list/internal/identity"
	"github.com/sbilibin2017/neko-list/internal/jwt"
	"github.com/sbilibin2017/neko-list/internal/logger"
	"github.com/sbilibin2017/neko-list/internal/metrics"
	"github.com/sbilibin2017/neko-list/internal/middlewares"
	"github.com/sbilibin2017/neko-list/internal/repositories"
	"github.com/sbilibin2017/neko-list/internal/server"
	"github.com/sbilibin2017/neko-list/internal/services"
	"github.com/sbilibin2017/neko-list/internal/storage"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// healthTimeout bounds a single run of the dependency checks.
const healthTimeout = 2 * time.Second

// @title Neko List API
// @version 1.0.0
// @description Cats and their owners
// @host localhost:8000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err := run(ctx, cfg); err != nil {
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

// run wires storage, cache, events, services and servers, and blocks
// until ctx is canceled or a server fails.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	logger.Log.Infow("logger initialized", "level", cfg.LogLevel)

	pwHasher, err := hasher.New(cfg.PasswordHasher)
	if err != nil {
		return err
	}

	db, err := storage.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	logger.Log.Infow("database connected", "driver", cfg.DBDriver)

	if cfg.DBAutoMigrate {
		if err := storage.Migrate(ctx, db); err != nil {
			return err
		}
	}

	checker := health.NewChecker(healthTimeout).Add("db", health.DB(db))

	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(cfg.JWTExpiration()),
	)

	txGetter := repositories.TxGetter(middlewares.GetTxFromContext)
	userReadRepo := repositories.NewUserReadRepository(db, txGetter)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	catReadRepo := repositories.NewCatReadRepository(db, txGetter)
	catWriteRepo := repositories.NewCatWriteRepository(db, txGetter)

	resolverOpts := []identity.Opt{
		identity.WithTokens(tokens),
		identity.WithHeader(cfg.IdentityHeaderEnabled),
		identity.WithScope(middlewares.TxScope),
	}

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         cfg.RedisAddr,
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}

		checker.Add("redis", health.Redis(rdb))
		resolverOpts = append(resolverOpts,
			identity.WithCache(repositories.NewUserCacheRepository(rdb, cfg.RedisExpiration())))
		logger.Log.Infow("user cache enabled", "addr", cfg.RedisAddr)
	}

	// A nil interface turns event publishing off.
	var events services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		writer := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			Async:                  true,
			AllowAutoTopicCreation: true,
		}
		defer writer.Close()
		events = writer
		logger.Log.Infow("cat events enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	userService := services.NewUserService(userReadRepo, userWriteRepo, pwHasher, tokens)
	catService := services.NewCatService(catReadRepo, catWriteRepo, events,
		services.WithAfterCommit(middlewares.OnCommit))

	router := server.NewRouter(server.Deps{
		DB:            db,
		Users:         userService,
		Cats:          catService,
		Resolver:      identity.NewResolver(userReadRepo, resolverOpts...),
		Health:        checker,
		Metrics:       metrics.New(),
		Version:       buildVersion,
		AuthRateLimit: cfg.AuthRateLimitPerMinute,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Log.Infow("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	})

	if cfg.GRPCPort != "" {
		lis, err := net.Listen("tcp", net.JoinHostPort(cfg.AppHost, cfg.GRPCPort))
		if err != nil {
			return fmt.Errorf("gRPC listen: %w", err)
		}
		grpcSrv := health.NewGRPCServer(checker)

		g.Go(func() error {
			logger.Log.Infow("gRPC health server listening", "addr", lis.Addr().String())
			if err := grpcSrv.Serve(lis); err != nil {
				return fmt.Errorf("gRPC server failed: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			grpcSrv.GracefulStop()
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.AppShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Log.Errorw("HTTP server shutdown error", "error", err)
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Log.Info("servers stopped gracefully")
	return nil
}
