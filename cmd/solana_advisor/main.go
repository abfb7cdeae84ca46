package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"solana_advisor/internal/app/port"
	"solana_advisor/internal/app/service"
	apiclient "solana_advisor/internal/client"
	"solana_advisor/internal/config"
	"solana_advisor/internal/infrastructure/knowledgebase"
	chainclient "solana_advisor/internal/infrastructure/network/client"
	"solana_advisor/internal/infrastructure/restapi"
	"solana_advisor/internal/infrastructure/tokenregistry"
	"solana_advisor/internal/pkg/logger"
	"solana_advisor/internal/pkg/metrics"
	"solana_advisor/internal/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
)

func main() {
	// Bootstrap logger; the level is revisited once config is loaded.
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}
	defer zapLogger.Sync()

	slogHandler := zapslog.NewHandler(zapLogger.Core(), &zapslog.HandlerOptions{})
	stdLogger := slog.New(slogHandler)
	slog.SetDefault(stdLogger)
	logger.SetLogger(stdLogger)

	// .env is optional; real deployments set the variables directly.
	if err := godotenv.Load(); err != nil {
		zapLogger.Debug("No .env file loaded", zap.Error(err))
	}

	cfgPath := utils.GetEnv("CONFIG_PATH", "config/config.yaml")
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		log.Warnf("Invalid log level in config: %s. Defaulting to Info.", cfg.Logging.Level)
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	if cfg.Logging.File != "" {
		file, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			log.SetOutput(file)
		} else {
			log.Infof("Failed to log to file, using default stdout: %v", err)
		}
	}

	zapLogger.Info("Configuration loaded", zap.String("path", cfgPath))

	metrics.MustRegisterMetrics()

	serviceLogger := logger.NewSlogAdapter()

	// Balance sources in retry order: every RPC endpoint, then the explorer.
	explorerTimeout := time.Duration(cfg.Explorer.RequestTimeoutSeconds) * time.Second
	sources := chainclient.NewRPCSources(cfg, zapLogger)
	sources = append(sources, apiclient.NewExplorerClient(cfg.Explorer.BaseURL, explorerTimeout, zapLogger))
	balanceFetcher := service.NewBalanceFetcher(sources, serviceLogger)
	zapLogger.Info("Balance sources initialized", zap.Int("count", len(sources)))

	portfolioTimeout := time.Duration(cfg.Portfolio.RequestTimeoutSeconds) * time.Second
	portfolioClient := apiclient.NewPortfolioClient(
		cfg.Portfolio.BaseURL,
		cfg.Portfolio.APIKey,
		cfg.Portfolio.Currency,
		portfolioTimeout,
		zapLogger,
	)
	zapLogger.Info("Portfolio analytics client initialized")

	marketTimeout := time.Duration(cfg.Market.RequestTimeoutSeconds) * time.Second
	marketClient := apiclient.NewMarketClient(
		cfg.Market.BaseURL,
		cfg.Market.CoinID,
		cfg.Market.VsCurrency,
		cfg.Market.SeriesDays,
		marketTimeout,
		zapLogger,
	)
	zapLogger.Info("Market data client initialized")

	validatorRegistry := apiclient.NewValidatorRegistry(
		cfg.Validators.BaseURL,
		cfg.Validators.FetchEnabled,
		time.Duration(cfg.Validators.RequestTimeoutSeconds)*time.Second,
		time.Duration(cfg.Validators.CacheTTLMinutes)*time.Minute,
		time.Duration(cfg.Validators.CacheCleanupMinutes)*time.Minute,
		zapLogger,
	)
	zapLogger.Info("Validator registry initialized", zap.Bool("remote_fetch", cfg.Validators.FetchEnabled))

	var advisorySources []port.AdvisorySource
	if cfg.Advisory.Enabled {
		advisoryTimeout := time.Duration(cfg.Advisory.RequestTimeoutSeconds) * time.Second
		advisorySources = append(advisorySources,
			apiclient.NewAdvisoryClient(cfg.Advisory.BaseURL, cfg.Advisory.APIKey, advisoryTimeout, zapLogger))
		zapLogger.Info("Remote advisory source enabled", zap.String("base_url", cfg.Advisory.BaseURL))
	}

	knowledgeBase := knowledgebase.NewKnowledgeBase()
	tokenRegistry := tokenregistry.NewTokenRegistry(cfg.Solana.TokensFile, logger.Info, logger.Warn)

	engine := service.NewRecommendationEngine(knowledgeBase, advisorySources, serviceLogger)
	renderer := service.NewReportRenderer(cfg.Report.MaxHoldings)
	advisorService := service.NewAdvisorService(
		balanceFetcher,
		portfolioClient,
		marketClient,
		validatorRegistry,
		tokenRegistry,
		engine,
		serviceLogger,
	)
	chatService := service.NewChatService(advisorService, renderer, serviceLogger)
	zapLogger.Info("Advisor services initialized")

	router := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // Adjust for production
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.Use(utils.ZapLoggerMiddleware(zapLogger))
	router.Use(gin.Recovery())

	chatHandler := restapi.NewChatHandler(chatService)
	reportHandler := restapi.NewReportHandler(advisorService, renderer)
	restapi.RegisterRoutes(router, chatHandler, reportHandler, cfg)

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	zapLogger.Info("Prometheus metrics endpoint enabled", zap.String("path", "/metrics"))

	// Pprof endpoints (for debugging performance issues)
	// Make sure to protect these in a production environment
	pprofRouter := router.Group("/debug/pprof")
	{
		pprofRouter.GET("/", gin.WrapF(pprof.Index))
		pprofRouter.GET("/cmdline", gin.WrapF(pprof.Cmdline))
		pprofRouter.GET("/profile", gin.WrapF(pprof.Profile))
		pprofRouter.POST("/symbol", gin.WrapF(pprof.Symbol))
		pprofRouter.GET("/symbol", gin.WrapF(pprof.Symbol))
		pprofRouter.GET("/trace", gin.WrapF(pprof.Trace))
		pprofRouter.GET("/allocs", gin.WrapH(pprof.Handler("allocs")))
		pprofRouter.GET("/block", gin.WrapH(pprof.Handler("block")))
		pprofRouter.GET("/goroutine", gin.WrapH(pprof.Handler("goroutine")))
		pprofRouter.GET("/heap", gin.WrapH(pprof.Handler("heap")))
		pprofRouter.GET("/mutex", gin.WrapH(pprof.Handler("mutex")))
		pprofRouter.GET("/threadcreate", gin.WrapH(pprof.Handler("threadcreate")))
	}
	zapLogger.Info("Pprof endpoints enabled under /debug/pprof")

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		zapLogger.Info(fmt.Sprintf("Server starting on port %s", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		zapLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exiting")
}
