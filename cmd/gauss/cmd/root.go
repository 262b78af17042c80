package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/gauss/foundation/core/config"
	mdwerror "github.com/msto63/gauss/foundation/core/error"
	mdwlog "github.com/msto63/gauss/foundation/core/log"
	"github.com/msto63/gauss/internal/gauss/service"
	"github.com/msto63/gauss/pkg/core/logging"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string

	// set up by PersistentPreRunE
	svc          *service.Service
	logger       *mdwlog.Logger
	activeConfig *config.Config

	// replaced in tests
	clock service.Clock = service.SystemClock
)

var rootCmd = &cobra.Command{
	Use:   "gauss",
	Short: "gauss - Datums- und Zeitrechnung für Skripte",
	Long: `gauss verändert, vergleicht, parst und formatiert Datums- und Zeitwerte.

Werte werden im ISO-Format (2017-05-30, 14:00:23.439, 2017-05-30T14:00:23.439)
oder in einem an der Länge erkannten Format (2017-05-30 14:00) angegeben.
"now" und "today" stehen für den aktuellen UTC-Zeitpunkt bzw. das heutige Datum.

Änderungsmuster bestehen aus durch ':' getrennten Segmenten aus Feldcode,
Operator (+ - =) und Betrag, z.B. Y+1:M-2:D=1:h+3.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and prints a failure to stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./gauss.toml, Benutzer- oder /etc/gauss-Verzeichnis)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log-Level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log-Format (text, json, console, logfmt)")
}

// setup loads the configuration and builds logger and service
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	lc := logging.LoggerConfigFromConfig(cfg, "gauss")
	if logLevel != "" {
		lc.Level = logLevel
	}
	if logFormat != "" {
		lc.Format = logFormat
	}
	lc.Output = cmd.ErrOrStderr()
	if err := lc.Validate(); err != nil {
		return err
	}
	logger = logging.NewLogger(lc).
		WithCorrelationID(uuid.NewString()).
		WithField("command", cmd.Name())

	if cfg.FilePath() != "" {
		logger.Debug("configuration loaded", mdwlog.Field("file", cfg.FilePath()))
	}

	activeConfig = cfg
	svc, err = newService(cfg)
	return err
}

func newService(cfg *config.Config) (*service.Service, error) {
	opts, err := service.OptionsFromConfig(cfg, clock, logger)
	if err != nil {
		return nil, err
	}
	return service.New(opts)
}

// reloadService reads the configuration again and builds a new service
// from it
func reloadService() (*service.Service, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	next, err := newService(cfg)
	if err != nil {
		return nil, err
	}
	activeConfig = cfg
	return next, nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadWithOptions(cfgFile, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: "GAUSS",
			Defaults:  service.Defaults(),
		})
	}
	opts := config.DefaultDiscoveryOptions()
	opts.Defaults = service.Defaults()
	return config.Discover(opts)
}

func printError(err error) {
	code := mdwerror.GetCode(err)
	if code == mdwerror.CodeUnknown {
		fmt.Fprintf(os.Stderr, "Fehler: %v\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "Fehler [%s]: %v\n", code, err)
}
