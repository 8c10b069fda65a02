package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/liftstats/internal/analytics"
	"github.com/2beens/liftstats/internal/chat"
	"github.com/2beens/liftstats/internal/config"
	"github.com/2beens/liftstats/internal/mcpserver"
	"github.com/2beens/liftstats/internal/middleware"
	"github.com/2beens/liftstats/internal/telemetry/metrics"
	metricsmiddleware "github.com/2beens/liftstats/internal/telemetry/metrics/middleware"
	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/internal/workouts"
	"github.com/2beens/liftstats/pkg"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config        *config.Config
	workoutsStore *workouts.Store
	analyzer      *analytics.Analyzer

	chatCompleter *chat.Completer
	chatContext   *chat.ContextBuilder
	chatHistory   *chat.HistoryStore

	redisClient *redis.Client

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	ChatAPIKey              string
	VersionInfo             string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	serverStartTime := time.Now()
	promRegistry := metrics.SetupPrometheus(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: "backend",
			Subsystem: "main",
			Name:      "uptime_seconds",
			Help:      "Seconds since the server process started",
		},
		func() float64 { return time.Since(serverStartTime).Seconds() },
	))
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0) // will be set to 1 when all is set and ran

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "liftstats-backend", rdb)
	if err != nil {
		return nil, err
	}

	muscleMapping, err := analytics.LoadMuscleMapping(params.Config.MuscleMappingPath)
	if err != nil {
		return nil, fmt.Errorf("load muscle mapping: %w", err)
	}

	store := workouts.NewStore(metricsManager)
	if csvPath := params.Config.WorkoutsCSVPath; csvPath != "" {
		// the log can also arrive later via the upload endpoint, a
		// missing or broken file must not keep the server down
		if err := loadWorkoutsCSV(ctx, store, csvPath); err != nil {
			log.Warnf("initial workouts csv not loaded: %s", err)
		}
	}

	analyzer := analytics.NewAnalyzer(store, muscleMapping, analytics.DefaultConfig())

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	s := &Server{
		config:      params.Config,
		versionInfo: params.VersionInfo,

		workoutsStore: store,
		analyzer:      analyzer,

		chatCompleter: chat.NewCompleter(
			params.Config.ChatBaseURL,
			params.ChatAPIKey,
			params.Config.ChatModel,
			time.Duration(params.Config.ChatTimeoutSeconds)*time.Second,
			params.Config.ChatMaxRetries,
			tracedHttpClient,
		),
		chatContext: chat.NewContextBuilder(
			analyzer,
			params.Config.ChatContextCacheTTLSeconds,
			metricsManager,
		),
		chatHistory: chat.NewHistoryStore(rdb, chat.DefaultHistoryTTL),

		redisClient: rdb,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	return s, nil
}

func loadWorkoutsCSV(ctx context.Context, store *workouts.Store, path string) error {
	csvFile, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open workouts csv: %w", err)
	}
	defer func() {
		if err := csvFile.Close(); err != nil {
			log.Warnf("close workouts csv file: %s", err)
		}
	}()

	snapshot, err := store.ReloadFromCSV(ctx, csvFile)
	if err != nil {
		return fmt.Errorf("reload from csv: %w", err)
	}

	log.Debugf("initial workouts csv loaded: %d sessions", len(snapshot.Sessions))
	return nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("liftstats-router"))

	workoutsHandler := workouts.NewHandler(s.workoutsStore)
	r.HandleFunc("/workouts/upload", workoutsHandler.HandleUpload).Methods("POST", "OPTIONS").Name("upload-workouts")
	r.HandleFunc("/workouts/sessions", workoutsHandler.HandleListSessions).Methods("GET", "OPTIONS").Name("list-sessions")
	r.HandleFunc("/workouts/sessions/page/{page}/size/{size}", workoutsHandler.HandleListSessionsPage).Methods("GET", "OPTIONS").Name("list-sessions-page")
	r.HandleFunc("/workouts/exercises", workoutsHandler.HandleListExercises).Methods("GET", "OPTIONS").Name("list-exercises")

	statsHandler := analytics.NewHandler(s.analyzer)
	r.HandleFunc("/stats/progression/{exercise}", statsHandler.HandleProgression).Methods("GET", "OPTIONS").Name("progression")
	r.HandleFunc("/stats/training-age", statsHandler.HandleTrainingAge).Methods("GET", "OPTIONS").Name("training-age")
	r.HandleFunc("/stats/trends", statsHandler.HandleTrends).Methods("GET", "OPTIONS").Name("trends")
	r.HandleFunc("/stats/records", statsHandler.HandleRecords).Methods("GET", "OPTIONS").Name("records")
	r.HandleFunc("/stats/forecast/{exercise}", statsHandler.HandleForecast).Methods("GET", "OPTIONS").Name("forecast")
	r.HandleFunc("/stats/muscle-volume", statsHandler.HandleMuscleVolume).Methods("GET", "OPTIONS").Name("muscle-volume")

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	chatHandler := chat.NewHandler(
		s.chatCompleter,
		s.chatContext,
		s.chatHistory,
		s.metricsManager,
	)
	chatSubrouter := r.PathPrefix("/chat").Subrouter()
	chatSubrouter.
		HandleFunc("", chatHandler.HandleChatMessage).
		Methods("POST", "OPTIONS").Name("chat-message")
	chatSubrouter.
		HandleFunc("/history", chatHandler.HandleClearHistory).
		Methods("DELETE", "OPTIONS").Name("chat-clear-history")

	// rate limit the assistant endpoints, every message costs an LLM call
	chatSubrouter.Use(middleware.RateLimit(reqRateLimiter, "chat", s.config.ChatRateLimitAllowedPerMin, s.metricsManager))
	chatSubrouter.Use(middleware.Cors())

	mcpServer := mcpserver.NewServer(s.workoutsStore, s.analyzer)
	r.Handle("/mcp", mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return mcpServer
	}, nil)).Name("mcp")

	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteTextResponseOK(w, "all good, go lift something heavy ;)")
	}).Methods("GET", "OPTIONS").Name("root")

	r.HandleFunc("/version", func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteTextResponseOK(w, s.versionInfo)
	}).Methods("GET").Name("version")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", metricsmiddleware.
		New(s.promRegistry, nil).
		WrapHandler("/metrics", promhttp.HandlerFor(
			s.promRegistry,
			promhttp.HandlerOpts{}),
		))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
