package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/luca-patrignani/hand-scorer/application"
	"github.com/luca-patrignani/hand-scorer/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app is what every subcommand needs once the configuration is loaded.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	service *application.ScoringService
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var configPath string
	a := &app{}

	root := &cobra.Command{
		Use:          "handscore",
		Short:        "Classify and score five-card poker hands",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadWith(v, configPath)
			if err != nil {
				return err
			}
			table, err := cfg.Scoring.ScoreTable()
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = newLogger(cmd.ErrOrStderr(), cfg.Log.SlogLevel())
			a.service = application.NewScoringService(table, cfg.Batch.Concurrency, a.logger)
			a.logger.Debug("configuration loaded",
				"config", configPath,
				"spacing", table.Spacing(),
				"monotonic", table.Monotonic(),
				"concurrency", cfg.Batch.Concurrency,
			)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.Bool("legacy-scores", false, "use the legacy score table (base values 10 apart)")
	mustBind(v, "log.level", flags.Lookup("log-level"))
	mustBind(v, "scoring.legacy", flags.Lookup("legacy-scores"))

	root.AddCommand(
		newScoreCmd(a),
		newFileCmd(a, v),
		newServeCmd(a, v),
	)
	return root
}

// mustBind lets a flag override the configuration key when it is set.
func mustBind(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

// newLogger builds a slog logger writing through pterm at the given level.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	logger := pterm.DefaultLogger.WithWriter(w).WithLevel(ptermLevel(level))
	return slog.New(pterm.NewSlogHandler(logger))
}

func ptermLevel(level slog.Level) pterm.LogLevel {
	switch {
	case level <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case level <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case level <= slog.LevelWarn:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}
