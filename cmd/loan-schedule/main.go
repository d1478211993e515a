// Command loan-schedule computes, compares and exports loan amortization
// schedules, and can serve them over HTTP.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/iwvelando/loan-schedule/internal/book"
	"github.com/iwvelando/loan-schedule/internal/config"
	"github.com/iwvelando/loan-schedule/internal/i18n"
	"github.com/iwvelando/loan-schedule/pkg/constants"
	"github.com/iwvelando/loan-schedule/pkg/datetime"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	configLocation string
	logLevel       string
	nowOverride    string
)

var rootCmd = &cobra.Command{
	Use:   "loan-schedule",
	Short: "Compute and compare loan amortization schedules",
	Long: `loan-schedule computes month-by-month amortization schedules for the
loans in a config file, compares their total interest, exports schedules to
CSV or Excel and serves the same calculations over an HTTP API.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configLocation, "config", constants.DefaultConfigFile, "path to configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&nowOverride, "now", "", "evaluate progress as of this date (YYYY-MM-DD) instead of today")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// session is everything a report command needs once the config is loaded.
type session struct {
	conf   *config.Configuration
	logger *zap.Logger
	book   *book.Book
	labels *i18n.Translator
	now    time.Time
}

// openSession loads the config, builds the logger and fills a loan book.
// Callers must Sync the returned logger.
func openSession() (*session, error) {
	conf, err := config.LoadConfiguration(configLocation)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration at %s: %w", configLocation, err)
	}

	logger, err := initializeLogger(conf.Logging, logLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	now, err := resolveNow(nowOverride, time.Now)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main.openSession"),
		)
	}

	loanBook, err := fillBook(conf, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	return &session{
		conf:   conf,
		logger: logger,
		book:   loanBook,
		labels: i18n.New(conf.Locale),
		now:    now,
	}, nil
}

func fillBook(conf *config.Configuration, logger *zap.Logger) (*book.Book, error) {
	inputs, err := conf.Inputs()
	if err != nil {
		return nil, fmt.Errorf("invalid loan configuration: %w", err)
	}
	loanBook := book.New(logger)
	for _, in := range inputs {
		loanBook.Add(in)
	}
	return loanBook, nil
}

// resolveNow parses a --now override, falling back to clock.
func resolveNow(value string, clock func() time.Time) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return clock(), nil
	}
	now, ok := datetime.ParseDate(value)
	if !ok {
		return time.Time{}, fmt.Errorf("invalid --now %q: expected YYYY-MM-DD", value)
	}
	return now, nil
}
