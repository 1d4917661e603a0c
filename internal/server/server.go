package server

import (
	"context"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/chawalitkim/veritas-lens-project/internal/cache"
	"github.com/chawalitkim/veritas-lens-project/internal/config"
	"github.com/chawalitkim/veritas-lens-project/internal/core"
	"github.com/chawalitkim/veritas-lens-project/internal/core/evidence"
	"github.com/chawalitkim/veritas-lens-project/internal/driver"
	"github.com/chawalitkim/veritas-lens-project/internal/enrich"
	"github.com/chawalitkim/veritas-lens-project/internal/llm"
	"github.com/chawalitkim/veritas-lens-project/internal/logger"
	"github.com/chawalitkim/veritas-lens-project/internal/metrics"
)

const corsMaxAgeHours = 12

type Server struct {
	Lens    *core.Lens
	Cache   *cache.VerdictCache
	Metrics *metrics.Metrics
	Config  *config.Config
	Log     *zap.Logger
}

// NewServer assembles the full pipeline from config and environment. It
// terminates the process on unrecoverable wiring failures; optional
// components (cache, enricher) degrade with a warning instead.
func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Must("info").Fatal("failed to load configuration", zap.String("path", cfgPath), zap.Error(err))
	}
	applyEnvOverrides(cfg)

	log := logger.Must(cfg.Server.LogLevel).With(zap.String("service", "veritas-lens"))

	d, err := driver.NewMemgraphDriver(cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password, log)
	if err != nil {
		log.Fatal("failed to connect to memgraph", zap.String("uri", cfg.Memgraph.URI), zap.Error(err))
	}

	llmClient, groundedClient, err := llm.NewClient(context.Background(), cfg.LLM)
	if err != nil {
		log.Fatal("failed to initialize llm client", zap.Error(err))
	}

	provider, err := evidence.NewProvider(cfg.Evidence)
	if err != nil {
		log.Fatal("failed to select evidence provider", zap.Error(err))
	}

	m := metrics.New()
	lens := core.NewLens(d, llmClient, groundedClient, provider, m, cfg, log)

	srv := &Server{
		Lens:    lens,
		Metrics: m,
		Config:  cfg,
		Log:     log,
	}

	if cfg.Cache.Enabled {
		vc, err := cache.New(cfg.Cache)
		if err != nil {
			log.Warn("verdict cache unavailable, continuing without it", zap.Error(err))
		} else {
			lens.Cache = vc
			srv.Cache = vc
		}
	}

	if cfg.Enrich.Enabled {
		lens.Enricher = enrich.New(cfg.Enrich, log)
	}

	if err := lens.BuildIndices(context.Background()); err != nil {
		log.Warn("failed to build graph indices", zap.Error(err))
	}

	log.Info("verification pipeline ready",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", cfg.LLM.Model),
		zap.String("evidence_mode", provider.Mode()),
		zap.Bool("cache", srv.Cache != nil),
	)

	return srv
}

func applyEnvOverrides(cfg *config.Config) {
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("MEMGRAPH_URI"); v != "" {
		cfg.Memgraph.URI = v
	}
	if v := os.Getenv("MEMGRAPH_USER"); v != "" {
		cfg.Memgraph.User = v
	}
	if v := os.Getenv("MEMGRAPH_PASSWORD"); v != "" {
		cfg.Memgraph.Password = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Cache.Addr = v
		cfg.Cache.Enabled = true
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Cache.Password = v
	}
	if v := os.Getenv("EVIDENCE_MODE"); v != "" {
		cfg.Evidence.Mode = v
	}

	if cfg.Memgraph.URI == "" {
		cfg.Memgraph.URI = "bolt://localhost:7687"
	}

	// Default to a local Ollama so the service runs without any cloud keys.
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = "ollama"
		cfg.LLM.Model = "gpt-oss:latest"
		cfg.LLM.BaseURL = "http://localhost:11434"
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()

	r.Use(RequestID())
	r.Use(RequestLogger(s.Log))
	r.Use(gin.Recovery())

	allowedOrigins := s.Config.Server.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		MaxAge:       corsMaxAgeHours * time.Hour,
	}))

	v1 := r.Group("/v1")
	v1.POST("/verify", RateLimit(s.Config.Server.RateLimitRPS, s.Config.Server.RateLimitBurst), s.Verify)
	v1.GET("/verifications", s.RecentVerifications)
	v1.GET("/verifications/:id", s.GetVerification)
	v1.GET("/domains/:domain", s.DomainStats)

	r.GET("/healthz", s.Health)
	r.GET("/metrics", gin.WrapH(s.Metrics.Handler()))

	return r
}

// Close releases the store and cache connections during shutdown.
func (s *Server) Close(ctx context.Context) {
	if s.Cache != nil {
		if err := s.Cache.Close(); err != nil {
			s.Log.Warn("failed to close cache", zap.Error(err))
		}
	}
	if err := s.Lens.Driver.Close(ctx); err != nil {
		s.Log.Warn("failed to close graph driver", zap.Error(err))
	}
}
