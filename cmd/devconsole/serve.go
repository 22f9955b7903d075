package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/devarshiadi/devconsole/internal/config"
	"github.com/devarshiadi/devconsole/internal/database"
	"github.com/devarshiadi/devconsole/internal/handler"
	"github.com/devarshiadi/devconsole/internal/opener"
	"github.com/devarshiadi/devconsole/internal/platform/otel"
	"github.com/devarshiadi/devconsole/internal/repository"
	"github.com/devarshiadi/devconsole/internal/service"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Start the web server",
		Flags:  serveFlags(),
		Action: runServe,
	}
}

func serveFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "host",
			Value:   config.DefaultHost,
			Usage:   "HTTP server bind address",
			EnvVars: []string{"HOST"},
		},
		&cli.StringFlag{
			Name:    "port",
			Aliases: []string{"p"},
			Value:   config.DefaultPort,
			Usage:   "HTTP server port",
			EnvVars: []string{"PORT"},
		},
		&cli.StringFlag{
			Name:    "admin-token",
			Usage:   "Bearer token for /api/v1/stats (endpoint disabled when empty)",
			EnvVars: []string{"ADMIN_TOKEN"},
		},
		&cli.BoolFlag{
			Name:  "open",
			Usage: "Open the console in the default browser once listening",
		},
	}
}

func runServe(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	host := c.String("host")
	if host == "" {
		host = config.DefaultHost
	}
	port := c.String("port")
	if port == "" {
		port = config.DefaultPort
	}

	envCfg, err := config.LoadEnv()
	if err != nil {
		return err
	}

	shutdownTracing, err := otel.Setup(ctx, envCfg)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			slog.Error("tracing shutdown failed", "error", err)
		}
	}()

	ln, err := net.Listen("tcp", net.JoinHostPort(host, port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	serverURL := "http://" + ln.Addr().String() + "/"

	opts := handler.Options{AdminToken: c.String("admin-token")}

	// The recorder outlives the server so views served while draining are kept.
	recorderCtx, stopRecorder := context.WithCancel(context.Background())
	defer stopRecorder()

	g, gctx := errgroup.WithContext(ctx)

	if databaseURL := c.String("database-url"); databaseURL != "" {
		db, err := database.Open(ctx, databaseURL)
		if err != nil {
			ln.Close()
			return err
		}
		defer db.Close()

		repo := repository.NewPageViewRepository(db.Pool())
		recorder := service.NewViewRecorder(repo, service.DefaultQueueSize)
		opts.Views = recorder
		opts.Stats = repo
		opts.DB = db

		g.Go(func() error { return recorder.Run(recorderCtx) })
		slog.Info("page-view log enabled")
	}

	server := &http.Server{
		Handler:           handler.New(opts).Routes(),
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g.Go(func() error {
		slog.Info("starting server", "server_addr", serverURL)
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down server")
		defer stopRecorder()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	if c.Bool("open") {
		if err := opener.New(slog.Default()).OpenURL(serverURL); err != nil {
			slog.Warn("continuing without browser", "error", err)
		}
	}

	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("server stopped")
	return nil
}
