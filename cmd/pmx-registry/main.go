package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/edirooss/pmx-registry/internal/config"
	"github.com/edirooss/pmx-registry/internal/domain/mixer"
	"github.com/edirooss/pmx-registry/internal/http/handler"
	mw "github.com/edirooss/pmx-registry/internal/http/middleware"
	"github.com/edirooss/pmx-registry/internal/infrastructure/datastore"
	"github.com/edirooss/pmx-registry/internal/infrastructure/snapqueue"
	"github.com/edirooss/pmx-registry/internal/registry"
	"github.com/edirooss/pmx-registry/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := parseFlags()

	// Read env
	isDev := os.Getenv("ENV") == "dev"

	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Create Zap logger
	log, err := buildLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	log = log.Named("main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Persistence
	inputsStore, outputsStore, closeStores, err := buildStores(ctx, log, cfg.Persistence)
	if err != nil {
		log.Fatal("datastore creation failed", zap.Error(err))
	}
	defer closeStores()

	// Bootstrap; a corrupt snapshot stops the process.
	bootLog := log.Named("bootstrap")
	inputs, err := service.LoadSnapshot(ctx, bootLog, inputsStore, config.DefaultInputs)
	if err != nil {
		log.Fatal("load inputs failed", zap.Error(err))
	}
	outputs, err := service.LoadSnapshot(ctx, bootLog, outputsStore, config.DefaultOutputs)
	if err != nil {
		log.Fatal("load outputs failed", zap.Error(err))
	}

	inputsQ := snapqueue.New[[]mixer.Input]()
	outputsQ := snapqueue.New[[]mixer.Output]()
	reg, err := registry.New(log, inputs, outputs, inputsQ, outputsQ)
	if err != nil {
		log.Fatal("registry creation failed", zap.Error(err))
	}

	inputsWriter := service.NewSnapshotWriter(log.Named("snapshot_writer.inputs"), inputsQ, inputsStore, cfg.Persistence.CoalesceWindow)
	outputsWriter := service.NewSnapshotWriter(log.Named("snapshot_writer.outputs"), outputsQ, outputsStore, cfg.Persistence.CoalesceWindow)

	httpsrv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           buildRouter(log, cfg, isDev, reg),
		ReadHeaderTimeout: 2 * time.Second,  // kills header-drip Slowloris
		ReadTimeout:       10 * time.Second, // full request read (incl. body)
		WriteTimeout:      15 * time.Second, // avoid forever-hangs on writes
		IdleTimeout:       60 * time.Second, // keep-alive cap
		MaxHeaderBytes:    1 << 20,          // 1MB cap
	}

	// Writers outlive the HTTP server so their final flush sees the last mutation.
	writersCtx, stopWriters := context.WithCancel(context.Background())
	defer stopWriters()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return inputsWriter.Run(writersCtx) })
	g.Go(func() error { return outputsWriter.Run(writersCtx) })
	g.Go(func() error {
		log.Info("running HTTP server", zap.String("addr", httpsrv.Addr))
		if err := httpsrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		defer stopWriters()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpsrv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
	log.Info("server closed",
		zap.Uint64("inputs_writes", inputsWriter.Writes()),
		zap.Uint64("outputs_writes", outputsWriter.Writes()),
	)
}

// parseFlags handles -v/--version and returns the config path from -c/--config.
func parseFlags() string {
	v := flag.Bool("v", false, "print version and exit")
	flag.BoolVar(v, "version", false, "print version and exit")
	path := flag.String("c", config.DefaultPath, "path to config file")
	flag.StringVar(path, "config", config.DefaultPath, "path to config file")
	flag.Parse()

	if *v {
		fmt.Printf("pmx-registry %s (commit %s, built %s)\n", config.Version, config.GitCommit, config.BuildDate)
		os.Exit(0)
	}
	return *path
}

func buildRouter(log *zap.Logger, cfg config.Config, isDev bool, reg *registry.Registry) *gin.Engine {
	if !isDev {
		gin.SetMode(gin.ReleaseMode)
	}
	gin.DefaultWriter = zap.NewStdLog(log.Named("gin")).Writer() // Configure Gin's logger to use Zap
	r := gin.New()

	r.Use(gin.Recovery()) // Recovery first (outermost)
	r.Use(mw.RequestID()) // early in the chain so it's available everywhere

	if isDev { // Enable CORS for local UI dev
		r.Use(cors.New(cors.Config{
			AllowOrigins:  []string{"http://localhost:5173", "http://localhost:3000", "http://127.0.0.1:3000"},
			AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowHeaders:  []string{"X-Request-ID", "Content-Type"},
			ExposeHeaders: []string{"X-Request-ID", "X-Total-Count"},
			MaxAge:        12 * time.Hour,
		}))
	} else {
		r.SetTrustedProxies([]string{"127.0.0.1"})
		r.Use(secure.New(secure.Config{
			FrameDeny:          true,
			ContentTypeNosniff: true,
			IsDevelopment:      false,
		}))
	}

	r.Use(mw.AccessLog(log.Named("http")))
	r.Use(mw.LimitConcurrentRequests(cfg.MaxConcurrentRequests))
	r.Use(mw.LimitRequestBody(1 << 20)) // 1MB; registry bodies are tiny

	handler.RegisterRoutes(r, log, reg)
	return r
}

// buildStores returns the inputs and outputs stores for the configured backend,
// plus a func releasing backend resources.
func buildStores(ctx context.Context, log *zap.Logger, p config.Persistence) (datastore.Store, datastore.Store, func(), error) {
	dslog := log.Named("datastore")

	switch p.Backend {
	case config.BackendRedis:
		rdb := datastore.NewRedisClient(ctx, dslog, p.Redis.Address, p.Redis.DB)
		in, err := datastore.NewRedisStore(dslog, rdb.Client, p.Redis.KeyPrefix, p.InputsPath)
		if err != nil {
			rdb.Close()
			return nil, nil, nil, fmt.Errorf("inputs store: %w", err)
		}
		out, err := datastore.NewRedisStore(dslog, rdb.Client, p.Redis.KeyPrefix, p.OutputsPath)
		if err != nil {
			rdb.Close()
			return nil, nil, nil, fmt.Errorf("outputs store: %w", err)
		}
		return in, out, func() { _ = rdb.Close() }, nil

	default:
		in, err := datastore.NewFileStore(dslog, p.InputsPath)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("inputs store: %w", err)
		}
		out, err := datastore.NewFileStore(dslog, p.OutputsPath)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("outputs store: %w", err)
		}
		return in, out, func() {}, nil
	}
}

func buildLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log_level: %w", err)
	}
	logConfig := zap.NewDevelopmentConfig()
	logConfig.EncoderConfig.TimeKey = ""
	logConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logConfig.DisableStacktrace = true
	logConfig.DisableCaller = true
	logConfig.Level.SetLevel(lvl)
	return logConfig.Build()
}
