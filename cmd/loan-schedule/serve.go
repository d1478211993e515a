package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iwvelando/loan-schedule/internal/book"
	"github.com/iwvelando/loan-schedule/internal/config"
	"github.com/iwvelando/loan-schedule/internal/server"
	"github.com/iwvelando/loan-schedule/pkg/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	serverConfigLocation string
	serveAddress         string
	serveMaxRequestSize  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the loan API over HTTP",
	Long: `Serve the loan API. Loans from --config are preloaded into the session
loan book when that file exists; the book is never written back.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverConfigLocation, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	serveCmd.Flags().StringVar(&serveAddress, "address", "", "listen address override")
	serveCmd.Flags().StringVar(&serveMaxRequestSize, "max-request-size", "", "request body limit override, e.g. 256K or 1M")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := server.LoadConfig(serverConfigLocation)
	if err != nil {
		return fmt.Errorf("failed to load server configuration at %s: %w", serverConfigLocation, err)
	}
	if serveAddress != "" {
		cfg.Address = serveAddress
	}
	if serveMaxRequestSize != "" {
		size, err := server.ParseSize(serveMaxRequestSize)
		if err != nil {
			return err
		}
		cfg.SetRequestSizeBytes(size)
	}

	logger, err := initializeLogger(cfg.Logging, logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	clock := time.Now
	if nowOverride != "" {
		fixed, err := resolveNow(nowOverride, time.Now)
		if err != nil {
			return err
		}
		clock = func() time.Time { return fixed }
	}

	loanBook, err := preloadBook(configLocation, logger)
	if err != nil {
		return err
	}

	handler := server.NewHandler(logger, loanBook, server.Options{
		MaxRequestSize: cfg.RequestSizeBytes(),
		Version:        version,
		Locale:         cfg.Locale,
		Now:            clock,
	})

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			zap.String("op", "main.runServe"),
			zap.String("address", cfg.Address),
			zap.Int64("maxRequestSize", cfg.RequestSizeBytes()),
			zap.Int("loans", loanBook.Len()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received", zap.String("op", "main.runServe"))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("server stopped", zap.String("op", "main.runServe"))
	return nil
}

// preloadBook fills a loan book from the loan config when it exists. A
// missing file yields an empty book.
func preloadBook(path string, logger *zap.Logger) (*book.Book, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return book.New(logger), nil
	}
	conf, err := config.LoadConfiguration(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration at %s: %w", path, err)
	}
	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning, zap.String("op", "main.preloadBook"))
	}
	return fillBook(conf, logger)
}
