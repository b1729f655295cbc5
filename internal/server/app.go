// Package server initializes and runs the main application server.
// It connects to the document store, wires the authentication service,
// and starts the HTTP server with graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/medichain/backend/internal/logging"
	"github.com/medichain/backend/internal/server/config"
	hs "github.com/medichain/backend/internal/server/http"
	"github.com/medichain/backend/internal/server/repositories/refreshtokens"
	"github.com/medichain/backend/internal/server/repositories/users"
	"github.com/medichain/backend/internal/server/services"
	"github.com/medichain/backend/internal/server/storage"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	store       *storage.Mongo
	userService *services.UserService
}

// NewApp connects to MongoDB and wires the service graph. The process
// fails fast here if the store is unreachable rather than serving requests
// against a dead dependency.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	store, err := storage.NewMongo(ctx, c.MongoURI, c.MongoDatabase)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	userRepo := users.NewMongoRepository(store.Database())
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	refreshTokenRepo := refreshtokens.NewMongoRepository(store.Database())
	if err := refreshTokenRepo.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	us := services.NewUserService(userRepo, refreshTokenRepo, c)

	return &App{config: c, logger: logger, store: store, userService: us}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := hs.NewServer(app.config.EndpointAddrHTTP, app.logger, app.userService, app.config.AllowedOrigin)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.store.Close(context.Background()); err != nil {
		app.logger.Error(ctx, "store close error", "error", err)
	}
}
