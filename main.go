package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/envelope-zero/ledger/internal/config"
	v1 "github.com/envelope-zero/ledger/pkg/controllers/v1"
	"github.com/envelope-zero/ledger/pkg/ledger"
	"github.com/envelope-zero/ledger/pkg/models"
	"github.com/envelope-zero/ledger/pkg/router"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal().Err(err).Msg("Configuration")
	}

	gin.SetMode(cfg.GinMode)

	output := io.Writer(os.Stdout)
	if cfg.HumanLogs() {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	var db *gorm.DB
	if cfg.Database != nil {
		db, err = models.ConnectPostgres(cfg.Database.DSN())
	} else {
		err = os.MkdirAll(cfg.DataDir, os.ModePerm)
		if err != nil {
			log.Fatal().Err(err).Msg("Data directory")
		}

		db, err = models.Connect(cfg.SQLitePath())
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Database connection")
	}

	r, teardown, err := router.Config(cfg.APIURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Router configuration")
	}
	defer teardown()

	router.AttachRoutes(v1.Controller{Ledger: ledger.New(db)}, r.Group(cfg.APIURL.Path))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("Listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info().Str("signal", sig.String()).Msg("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown")
	}

	sqlDB, err := db.DB()
	if err == nil {
		sqlDB.Close()
	}
}
