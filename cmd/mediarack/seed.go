package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/mediarack/internal/sqlite"
)

// flagSeedCount overrides the configured number of random records.
var flagSeedCount int

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed an empty store with sample records",
	Long: `Populate an empty database with the fixed sample set plus a number
of randomly generated records. Seeding a non-empty store is a no-op.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		if flagSeedCount >= 0 {
			cfg.SeedCount = flagSeedCount
		}

		store := sqlite.NewStore()
		if err := store.Open(cfg); err != nil {
			return err
		}
		defer store.Close()

		inserted, err := store.Seed(cmd.Context(), cfg.SeedCount)
		if err != nil {
			return err
		}
		if inserted == 0 {
			fmt.Println("store is not empty, nothing seeded")
			return nil
		}
		fmt.Printf("seeded %d records\n", inserted)
		return nil
	},
}

func init() {
	seedCmd.Flags().IntVar(&flagSeedCount, "count", -1, "random records to add on top of the sample set (default: seed_count from config)")
}
