package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"countrymap/internal/client"
	"countrymap/internal/config"
	"countrymap/internal/handler"
	"countrymap/internal/logger"
	"countrymap/internal/repository"
	"countrymap/internal/selection"
	"countrymap/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

//	@title			Country Map API
//	@version		1.0
//	@description	Click a point on the world map to see the country there.
//	@BasePath		/

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	if err := logger.Setup(config.LogLevel, config.LogFormat); err != nil {
		log.Fatal().Err(err).Msg("cannot configure logger")
	}

	if err := run(context.Background(), config); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

// run wires the application and serves until ctx is cancelled or a signal arrives.
func run(ctx context.Context, config config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Optional lookup journal
	var journal service.LookupJournal
	var lister handler.LookupLister
	if config.JournalEnabled() {
		conn, err := pgxpool.New(ctx, config.DBSource)
		if err != nil {
			return fmt.Errorf("cannot connect to db: %w", err)
		}
		defer conn.Close()

		repo := repository.NewRepository(conn)
		if err := repo.CreateSchema(ctx); err != nil {
			return err
		}
		journal = repo
		lister = repo
		log.Info().Msg("lookup journal enabled")
	}

	// Initialize layers
	httpClient := client.NewHTTPClient(config.HTTPClientTimeout, config.UserAgent)
	nominatim := client.NewNominatimClient(httpClient, config.NominatimURL)
	restCountries := client.NewRestCountriesClient(httpClient, config.RestCountriesURL)

	reverseGeocodeService := service.NewReverseGeoCodeService(nominatim)
	countryService := service.NewCountryService(restCountries)

	selected := selection.NewCell()
	clickService := service.NewClickService(reverseGeocodeService, countryService, selected, journal)

	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(handler.Handlers{
		Page:           handler.NewPageHandler(selected),
		Click:          handler.NewClickHandler(clickService),
		ReverseGeocode: handler.NewReverseGeocodeHandler(reverseGeocodeService),
		Country:        handler.NewCountryHandler(countryService),
		Lookup:         handler.NewLookupHandler(lister),
	})

	// Upstream calls carry no timeout by default, so writes are not bounded either.
	server := &http.Server{
		Addr:              config.ServerAddress,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info().Str("addr", config.ServerAddress).Msg("server starting")
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("error starting server: %w", err)
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info().Msg("server gracefully stopped")
	return nil
}
