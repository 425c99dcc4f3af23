package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/coder/quartz"
	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"holdem-server/internal/config"
	"holdem-server/internal/mux"
	"holdem-server/internal/rng"
	"holdem-server/pkg/room"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10
const shutdownTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

// CLI are the command line flags, values set here override the configuration file
type CLI struct {
	Config   string `short:"c" env:"HOLDEM_CONFIG_FILE" default:"config.yaml" help:"Path to the YAML configuration file"`
	Addr     string `help:"The listen address"`
	LogLevel string `help:"The log level (trace, debug, info, warn, error)"`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("holdem-server"),
		kong.Description("Texas Hold'em game server"),
		kong.UsageOnError(),
	)

	_ = os.Setenv("HOLDEM_CONFIG_FILE", cli.Config)
	cfg := config.Instance()
	if cli.Addr != "" {
		cfg.Addr = cli.Addr
	}

	if cli.LogLevel != "" {
		cfg.Log.Level = cli.LogLevel
	}

	logger := setupLogger(cfg)

	pitBoss := room.NewPitBoss(logger, quartz.NewReal(), rng.Crypto{})
	defer pitBoss.Close()

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      loggingHandler(cfg, c.Handler(mux.NewMux(logger, cfg, pitBoss, Version))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.WithField("addr", srv.Addr).WithField("version", Version).Info("listening")
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}

func loggingHandler(cfg config.Config, next http.Handler) http.Handler {
	if cfg.Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger(cfg config.Config) logrus.FieldLogger {
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	return logrus.StandardLogger()
}
