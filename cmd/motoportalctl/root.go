package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aanand-mishra/motoportal-api/internal/config"
	"github.com/aanand-mishra/motoportal-api/internal/hours"
	"github.com/aanand-mishra/motoportal-api/internal/logger"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	timezone   string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "motoportalctl",
		Short: "Operate the motorcycle portal from the command line",
		Long: `motoportalctl works on the same storage and schedules as the API server.

Available subcommands:
  seed   - import a seed file into the configured database
  status - evaluate a schedule and print ОТКРЫТО or ЗАКРЫТО
  filter - run the catalog filters over a seed file`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", os.Getenv("CONFIG_PATH"),
		"Path to the configuration YAML file (or set CONFIG_PATH)")
	root.PersistentFlags().StringVar(&opts.timezone, "tz", "",
		"IANA timezone for schedule evaluation (default: hours.timezone from the config, else Asia/Yekaterinburg)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging to stderr")

	root.AddCommand(newSeedCmd(opts))
	root.AddCommand(newStatusCmd(opts))
	root.AddCommand(newFilterCmd(opts))

	return root
}

// loadConfig reads the file named by --config.
func (o *globalOptions) loadConfig() (*config.Config, error) {
	if o.configPath == "" {
		return nil, fmt.Errorf("config path is not set: use --config flag or CONFIG_PATH env var")
	}
	return config.Load(o.configPath)
}

// evaluator builds the hours evaluator. With a config file the per-kind
// overrides apply; --tz always wins over the configured timezone.
func (o *globalOptions) evaluator(now func() time.Time) (*hours.Evaluator, error) {
	hc := config.Hours{Timezone: "Asia/Yekaterinburg"}
	if o.configPath != "" {
		cfg, err := o.loadConfig()
		if err != nil {
			return nil, err
		}
		hc = cfg.Hours
	}
	if o.timezone != "" {
		hc.Timezone = o.timezone
	}
	return hours.FromConfig(hc, now)
}

// logger writes debug output to stderr with --verbose and discards it otherwise.
func (o *globalOptions) logger(cmd *cobra.Command) *slog.Logger {
	var w io.Writer = io.Discard
	if o.verbose {
		w = cmd.ErrOrStderr()
	}
	return logger.New("dev", w)
}
