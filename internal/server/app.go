// Package server initializes and runs the backend: it connects the database,
// applies migrations, selects the upload storage backend and serves the REST
// API with graceful shutdown on SIGINT/SIGTERM.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Asad-NCS/lostandfound/internal/logging"
	"github.com/Asad-NCS/lostandfound/internal/server/claims"
	"github.com/Asad-NCS/lostandfound/internal/server/config"
	"github.com/Asad-NCS/lostandfound/internal/server/httpapi"
	"github.com/Asad-NCS/lostandfound/internal/server/items"
	"github.com/Asad-NCS/lostandfound/internal/server/shared/db"
	"github.com/Asad-NCS/lostandfound/internal/server/storage"
	"github.com/Asad-NCS/lostandfound/internal/server/users"
	"github.com/Asad-NCS/lostandfound/internal/server/verifications"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	api    *httpapi.Server
	repos  db.RepositoryManager
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSON()

	// NewPostgresRepositoryManager applies the embedded migrations.
	rm, err := db.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	files, err := newStore(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	us := users.NewService(rm.Users(), []byte(c.SecretKey), c.TokenValidityDuration)
	is := items.NewService(rm.Items(), rm.Users())
	cs := claims.NewService(rm.Claims(), rm.Items(), rm.Users(), rm)
	vs := verifications.NewService(rm.Verifications(), rm.Claims(), rm.Users())

	api := httpapi.NewServer(c, logger, us, is, cs, vs, files)

	return &App{config: c, logger: logger, api: api, repos: rm}, nil
}

func newStore(ctx context.Context, c *config.Config) (storage.Store, error) {
	switch c.StorageBackend {
	case config.StorageS3:
		return storage.NewS3Store(ctx, c)
	default:
		return storage.NewDiskStore(c.UploadDir)
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "addr", app.config.EndpointAddr)

	app.initSignalHandler(cancelFunc)

	srv := &http.Server{
		Addr:    app.config.EndpointAddr,
		Handler: app.api.Router(),
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.logger.Error(ctx, "server error", "error", err)
			cancelFunc()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, "shutdown error", "error", err)
	}

	if conn := app.repos.Conn(); conn != nil {
		if err := conn.Close(); err != nil {
			app.logger.Error(shutdownCtx, "db close error", "error", err)
		}
	}

	wg.Wait()
	app.logger.Info(shutdownCtx, "Server stopped")
}
