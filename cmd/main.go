package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campus_energy/internal/catalog"
	"campus_energy/internal/generator"
	"campus_energy/internal/handlers"
	"campus_energy/internal/logger"
	"campus_energy/internal/repository"
	"campus_energy/internal/server"
	"campus_energy/internal/service"

	"github.com/spf13/viper"
)

const defaultChangeDelay = 1500 * time.Millisecond

func main() {
	// init logger
	log := logger.Get(logger.InfoLevel)

	// load config.yml
	if err := loadConfig(); err != nil {
		log.Fatalw("error reading config", "err", err)
	}

	// load and validate the static equipment catalog
	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		log.Fatalw("invalid equipment catalog", "err", err)
	}

	// wire dependencies
	repos := repository.NewRepository()
	gen := generator.New(cat, newRNG(log))
	services := service.NewService(cat, repos, gen, changeDelay())
	apiHandler := handlers.NewHandler(services, cat, log)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// newRNG builds the generator's random source. A fixed seed in config makes
// every generated day reproducible; otherwise the source is time-seeded.
func newRNG(log *logger.Logger) *rand.Rand {
	if !viper.IsSet("generator.seed") {
		return nil
	}
	seed := viper.GetInt64("generator.seed")
	log.Infow("using fixed generator seed", "seed", seed)
	return rand.New(rand.NewSource(seed))
}

// changeDelay reads the simulated equipment response delay from config.
func changeDelay() time.Duration {
	if ms := viper.GetInt("control.change_delay_ms"); ms > 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return defaultChangeDelay
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
