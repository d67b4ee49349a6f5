package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"nethra_backend/internal/app/di"
	infradb "nethra_backend/internal/platform/db"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Migrate and load the mandi price and equipment tables",
		Long:  "seed creates the reference tables on the database named by DB_DRIVER / DATABASE_URL / DB_PATH\nand upserts the bundled rows. Running it twice is safe.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := infradb.Open(infradb.LoadConfigFromEnv())
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			// シードはDBへ直接書き込み、キャッシュは参照時に失効する
			mandi := di.NewMandiRepository(db, nil)
			equipment := di.NewEquipmentRepository(db)
			if err := di.MigrateAndSeed(cmd.Context(), db, mandi, equipment); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]string{"status": "seeded"})
		},
	}
}
