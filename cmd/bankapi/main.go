package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/config"
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/database"
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/handler"
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/logger"
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/middleware"
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/repository"
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/router"
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/server"
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/service"
	"github.com/shopspring/decimal"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Amounts go out as JSON numbers, e.g. {"balance": 250.5}.
	decimal.MarshalJSONWithoutQuotes = true

	loggerService := logger.NewLoggerService(cfg.Observability)
	defer loggerService.Shutdown()

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.Migrate(ctx, &log, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv)
	services := service.NewServices(srv, repos)
	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv, services.Tokens)

	r := router.NewRouter(srv, handlers, middlewares)
	srv.SetupHTTPServer(r)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
