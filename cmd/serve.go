package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/desertthunder/neonx/internal/player"
	"github.com/desertthunder/neonx/internal/server"
	"github.com/desertthunder/neonx/internal/shared"
	"github.com/desertthunder/neonx/internal/web"
	"github.com/urfave/cli/v3"
)

const shutdownTimeout = 5 * time.Second

// Serve runs the local web player until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	catalog, err := r.loadCatalog(cmd)
	if err != nil {
		return err
	}

	initial, err := r.initialState(catalog, cmd)
	if err != nil {
		return err
	}

	store := player.NewStore(initial, player.StoreOpts{Logger: r.logger})
	defer store.Close()

	router := server.NewBasicRouter()
	router.Use(
		server.Recover(r.logger),
		server.Logging(shared.WithLogger(r.logger, "component", "http")),
		server.RateLimit(r.config.Server.RateLimit),
	)
	web.NewHandler(store, catalog, r.logger).Register(router)

	addr := r.listenAddr(cmd)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	httpServer := server.New(addr, router)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErrors := make(chan error, 1)
	go func() {
		r.logger.Info("serving player", "addr", listener.Addr().String(), "player", store.ID())
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
		close(serverErrors)
	}()

	url := "http://" + listener.Addr().String()
	r.writePlain("→ Player running at %s (ctrl+c to stop)\n", url)
	if cmd.Bool("open") {
		if err := shared.OpenBrowser(url); err != nil {
			r.logger.Warn("failed to open browser automatically", "error", err)
		}
	}

	select {
	case err := <-serverErrors:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	r.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		r.logger.Warn("error shutting down server", "error", err)
	}
	return nil
}

func (r *Runner) listenAddr(cmd *cli.Command) string {
	host, port := r.config.Server.Host, r.config.Server.Port
	if cmd.IsSet("host") {
		host = cmd.String("host")
	}
	if cmd.IsSet("port") {
		port = cmd.Int("port")
	}
	return net.JoinHostPort(host, strconv.Itoa(port))
}
