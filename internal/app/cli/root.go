// Package cli implements datavizz-view, the terminal dashboard that fetches
// the record set from a datavizz server and renders chart inputs.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dalemusser/datavizz/internal/app/system/prefs"
	"github.com/dalemusser/datavizz/internal/app/system/provider"
	"github.com/dalemusser/datavizz/internal/app/system/timeouts"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Version is set at build time with -ldflags.
var Version = "dev"

// DefaultEndpoint is the server address the viewer fetches from.
const DefaultEndpoint = "http://localhost:4000"

// session carries what every subcommand needs once flags and config are read.
type session struct {
	v       *viper.Viper
	cfgFile string
	log     *zap.Logger
	prov    *provider.Provider
}

// NewRootCommand builds the datavizz-view command tree.
func NewRootCommand() *cobra.Command {
	s := &session{v: viper.New()}

	root := &cobra.Command{
		Use:   "datavizz-view",
		Short: "DataVizz - terminal dashboard for the insights data set",
		Long: `datavizz-view fetches the insight records from a datavizz server once,
filters them by end year, topic, sector, region, PEST, source, SWOT and
country, and prints the inputs of the dashboard's seven charts.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (DATAVIZZ_VIEW_*, also read from .env)
3. Config file (~/.datavizz/config.yaml)
4. Defaults`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if s.log != nil {
				_ = s.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&s.cfgFile, "config", "", "config file (default: $HOME/.datavizz/config.yaml)")
	pf.String("endpoint", DefaultEndpoint, "datavizz server URL")
	pf.Duration("timeout", timeouts.DefaultFetch, "fetch timeout")
	pf.String("prefs", "", "preferences file (default: $HOME/.datavizz/prefs.yaml)")
	pf.StringP("output", "o", "json", "output format: json or yaml")
	pf.BoolP("verbose", "v", false, "verbose output")

	for _, name := range []string{"endpoint", "timeout", "prefs", "output", "verbose"} {
		_ = s.v.BindPFlag(name, pf.Lookup(name))
	}

	root.AddCommand(
		newChartsCommand(s),
		newFiltersCommand(s),
		newRecordsCommand(s),
		newThemeCommand(s),
		newVersionCommand(),
	)
	return root
}

// Execute runs the viewer.
func Execute() error {
	return NewRootCommand().Execute()
}

// init reads .env and the config file, then builds the logger and provider.
func (s *session) init() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	home, _ := os.UserHomeDir()
	if s.cfgFile != "" {
		s.v.SetConfigFile(s.cfgFile)
	} else if home != "" {
		s.v.AddConfigPath(filepath.Join(home, ".datavizz"))
		s.v.SetConfigType("yaml")
		s.v.SetConfigName("config")
	}

	s.v.SetEnvPrefix("DATAVIZZ_VIEW")
	s.v.AutomaticEnv()

	if err := s.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if s.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	log, err := newLogger(s.v.GetBool("verbose"))
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	s.log = log
	if f := s.v.ConfigFileUsed(); f != "" {
		s.log.Debug("using config file", zap.String("path", f))
	}

	if d := s.v.GetDuration("timeout"); d > 0 {
		timeouts.Configure(timeouts.Config{Fetch: d})
	}

	prefsPath := s.v.GetString("prefs")
	if prefsPath == "" {
		prefsPath = filepath.Join(home, ".datavizz", "prefs.yaml")
	}
	store, err := prefs.Open(prefsPath)
	if err != nil {
		s.log.Warn("preferences unreadable; using light theme", zap.Error(err))
		store = prefs.Empty(prefsPath)
	}

	s.prov = provider.New(s.v.GetString("endpoint"), prefs.Theme{Store: store},
		provider.WithLogger(s.log),
		provider.WithHTTPClient(&http.Client{Timeout: timeouts.Fetch()}),
	)
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// loadData performs the provider's single fetch bounded by the configured
// timeout. On failure the error has already been logged by the provider.
func (s *session) loadData(cmd *cobra.Command) error {
	if err := s.prov.Load(cmd.Context()); err != nil {
		return fmt.Errorf("dashboard data unavailable: %w", err)
	}
	return nil
}
