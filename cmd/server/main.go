package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/voluntariados/volunteer-api/internal/api"
	"github.com/voluntariados/volunteer-api/internal/core/service"
	"github.com/voluntariados/volunteer-api/internal/infrastructure/config"
	"github.com/voluntariados/volunteer-api/internal/infrastructure/db/memory"
	"github.com/voluntariados/volunteer-api/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	// The store lives as long as the process; there is no persistence.
	store := memory.NewStore()
	usuarioRepo := memory.NewUsuarioRepository(store)
	voluntariadoRepo := memory.NewVoluntariadoRepository(store)

	usuarioService := service.NewUsuarioService(usuarioRepo, log)
	voluntariadoService := service.NewVoluntariadoService(voluntariadoRepo, log)

	e, err := api.NewRouter(usuarioService, voluntariadoService, store, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("server listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
	log.Info().Msg("server stopped")
}
