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

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/marquee/internal/config"
	"github.com/Nixie-Tech-LLC/marquee/internal/db"
	"github.com/Nixie-Tech-LLC/marquee/internal/engine"
	"github.com/Nixie-Tech-LLC/marquee/internal/http/middleware"
	"github.com/Nixie-Tech-LLC/marquee/internal/metrics"
	"github.com/Nixie-Tech-LLC/marquee/internal/notify"
	"github.com/Nixie-Tech-LLC/marquee/internal/redis"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to an optional YAML config file")
	issueToken := flag.String("issue-token", "", "print an admin token for this subject and exit")
	tokenTTL := flag.Duration("token-ttl", 72*time.Hour, "lifetime of a token from -issue-token")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	setupLogging(cfg)

	if *issueToken != "" {
		token, err := middleware.GenerateJWT(*issueToken, cfg.JWTSecret, *tokenTTL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to sign token")
		}
		fmt.Println(token)
		return
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid display timezone")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect")
	}
	defer conn.Close()

	if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}

	var store engine.Store = db.NewStore(conn)

	if cfg.Redis.Address != "" {
		rdb, err := redis.NewClient(ctx, cfg.Redis.Address, cfg.Redis.Username, cfg.Redis.Password)
		if err != nil {
			log.Fatal().Err(err).Str("address", cfg.Redis.Address).Msg("redis connect")
		}
		defer rdb.Close()
		store = redis.NewCachedStore(store, rdb, cfg.CacheTTL)
		log.Info().Str("address", cfg.Redis.Address).Dur("ttl", cfg.CacheTTL).Msg("row cache enabled")
	}

	hub := notify.NewHub(16)
	notifiers := notify.Multi{hub}
	if cfg.MQTT.BrokerURL != "" {
		pub, err := notify.NewMQTTPublisher(cfg.MQTT.BrokerURL, cfg.MQTT.ClientID)
		if err != nil {
			log.Fatal().Err(err).Str("broker", cfg.MQTT.BrokerURL).Msg("mqtt connect")
		}
		defer pub.Close()
		notifiers = append(notifiers, pub)
	}
	if cfg.RabbitMQ.URL != "" {
		mq, err := notify.NewRabbitMQ(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatal().Err(err).Str("exchange", cfg.RabbitMQ.Exchange).Msg("rabbitmq connect")
		}
		defer mq.Close()
		notifiers = append(notifiers, mq)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(reg)

	eng := engine.New(store,
		engine.WithNotifier(notifiers),
		engine.WithMetrics(collector),
		engine.WithClock(engine.ZoneClock{Location: loc}),
	)

	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())
	RegisterRoutes(r, cfg, eng, hub, conn, reg)

	srv := &http.Server{Addr: cfg.ServerAddress, Handler: r}
	log.Info().Str("address", cfg.ServerAddress).Str("timezone", loc.String()).Msg("listening")
	if err := serve(ctx, srv, 10*time.Second); err != nil {
		log.Error().Err(err).Msg("server error")
	}
}

// serve runs srv until ctx is done or the listener fails. On ctx done the
// server gets grace to drain. Returning instead of exiting lets main's
// deferred closes run.
func serve(ctx context.Context, srv *http.Server, grace time.Duration) error {
	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}

func setupLogging(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if cfg.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
