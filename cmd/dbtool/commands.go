package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/jhoicas/invoice-dashboard/internal/application/auth"
	"github.com/jhoicas/invoice-dashboard/internal/infrastructure/postgres"
	"github.com/jhoicas/invoice-dashboard/internal/infrastructure/seed"
	"github.com/jhoicas/invoice-dashboard/pkg/config"
	"github.com/jhoicas/invoice-dashboard/pkg/logger"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dbtool",
		Short:         "Esquema y datos de demo del invoice dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newMigrateCmd())
	cmd.AddCommand(newSeedCmd())
	return cmd
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica las migraciones embebidas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withPool(cmd.Context(), func(pool *pgxpool.Pool) error {
				applied, err := postgres.Migrate(cmd.Context(), pool)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderMigrations(applied))
				return nil
			})
		},
	}
}

func newSeedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Carga usuarios, clientes, facturas e ingresos de demo",
		Long:  "Carga los fixtures en una sola transacción. Las filas existentes se conservan, así que se puede repetir.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fixtures, err := loadFixtures(file)
			if err != nil {
				return err
			}
			return withPool(cmd.Context(), func(pool *pgxpool.Pool) error {
				var summary seed.Summary
				err := postgres.NewTxRunner(pool).Run(cmd.Context(), func(q postgres.Querier) error {
					var err error
					summary, err = seed.Apply(cmd.Context(), q, fixtures, auth.HashPassword)
					return err
				})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderSummary(summary))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "archivo YAML de fixtures (por defecto los embebidos)")
	return cmd
}

func loadFixtures(path string) (*seed.Fixtures, error) {
	if path == "" {
		return seed.Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer fixtures: %w", err)
	}
	return seed.Parse(data)
}

// withPool abre el pool con la configuración del entorno y lo cierra al terminar.
func withPool(ctx context.Context, fn func(*pgxpool.Pool) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, App: "dbtool", Output: os.Stderr})

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()
	log.Debug().Str("db", cfg.DB.DBName).Msg("conectado")
	return fn(pool)
}
