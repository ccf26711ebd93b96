package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"flight-booking/cmd/internal/logger"
	"flight-booking/config"
	"flight-booking/db"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// cobra 가 이미 에러를 출력했다.
		os.Exit(1)
	}
}

// newRootCmd 는 flightctl 루트 명령이다. 플래그는 FLIGHTCTL_* 환경변수로도 줄 수 있다.
func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("FLIGHTCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "flightctl",
		Short: "Flight booking administration tool",
		Long: `flightctl runs one-off maintenance tasks against the flight booking database.

  flightctl migrate                         Apply pending schema migrations
  flightctl create-admin --username root    Create a superuser account
  flightctl seed-flights --file flights.yaml
                                            Insert flights from a YAML file`,
		Version:       version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.InitFromEnv("LOG_LEVEL")
			if v.GetBool("debug") {
				logger.Log = logger.NewLogger("debug")
			}
		},
	}

	rootCmd.PersistentFlags().String("dsn", "", "PostgreSQL DSN (default: postgres.dsn in config.yaml or DATABASE_URL)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	_ = v.BindPFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newMigrateCmd(v),
		newCreateAdminCmd(v),
		newSeedFlightsCmd(v),
	)
	return rootCmd
}

// connect 는 --dsn 또는 설정 파일의 DSN 으로 커넥션 풀을 연다.
func connect(ctx context.Context, v *viper.Viper) (*pgxpool.Pool, error) {
	cfg := config.GetConfig().Postgres
	if dsn := v.GetString("dsn"); dsn != "" {
		cfg.DSN = dsn
	}
	cfg.MaxConns = 2
	cfg.MinConns = 0
	cfg.AppName = "flightctl"

	level := "none"
	if v.GetBool("debug") {
		level = "debug"
	}
	tracer := logger.NewPgxTracer(level)
	pool, err := db.NewPostgresPool(ctx, cfg, tracer)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return pool, nil
}
