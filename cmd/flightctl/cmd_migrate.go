package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"flight-booking/cmd/internal/logger"
	"flight-booking/db"
)

func newMigrateCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pool, err := connect(ctx, v)
			if err != nil {
				return err
			}
			defer pool.Close()

			applied, err := db.Migrate(ctx, pool)
			if err != nil {
				return err
			}
			if len(applied) == 0 {
				cmd.Println("schema is up to date")
				return nil
			}
			logger.InfoWithFields("migrations applied", logger.Fields{"versions": applied})
			cmd.Printf("applied %d migration(s): %v\n", len(applied), applied)
			return nil
		},
	}
}
