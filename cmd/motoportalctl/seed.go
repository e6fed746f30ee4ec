package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aanand-mishra/motoportal-api/internal/seed"
	"github.com/aanand-mishra/motoportal-api/internal/storage/driver"
	"github.com/aanand-mishra/motoportal-api/internal/validation"
)

func newSeedCmd(g *globalOptions) *cobra.Command {
	var (
		file  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Import a seed file into the configured database",
		Long: `Import listings, events and classifieds from a YAML seed file.

The file defaults to seed_path from the config. A store that already has
listings is left alone unless --force is given, in which case the seed is
appended.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			if file == "" {
				file = cfg.SeedPath
			}
			if file == "" {
				return fmt.Errorf("no seed file: use --file or set seed_path in the config")
			}

			log := g.logger(cmd)

			f, err := seed.Load(file)
			if err != nil {
				return err
			}

			store, err := driver.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			n, err := store.CountListings()
			if err != nil {
				return err
			}
			if n > 0 && !force {
				return fmt.Errorf("store already has %d listings: use --force to append", n)
			}

			res, err := seed.Import(store, f, validation.New())
			if err != nil {
				return err
			}

			log.Debug("seed imported", slog.String("file", file), slog.String("driver", cfg.StorageDriver))
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d listings, %d events, %d classifieds\n",
				res.Listings, res.Events, res.Classifieds)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Seed YAML file (default: seed_path from the config)")
	cmd.Flags().BoolVar(&force, "force", false, "Append even when the store already has listings")

	return cmd
}
