package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"time"

	"phantom-mask/cmd/bootstrap"
	"phantom-mask/cmd/bootstrap/components"
	"phantom-mask/internal/infra/db"
	"phantom-mask/internal/pkg/clock"
	"phantom-mask/internal/pkg/config"
	"phantom-mask/internal/pkg/errs"
	"phantom-mask/internal/usecase/commands"
	"phantom-mask/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

type options struct {
	pharmacies string
	members    string
	migrations string
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.pharmacies, "pharmacies", "data/pharmacies.json", "pharmacy fixture file, empty to skip")
	flag.StringVar(&o.members, "members", "data/members.json", "member fixture file, empty to skip")
	flag.StringVar(&o.migrations, "migrations", "", "apply the *.sql files in this directory first")
	flag.Parse()
	return o
}

func newFixtureCommands(uow shared.UnitOfWork, cfg config.Config) (commands.FixtureCommands, error) {
	loc, err := time.LoadLocation(cfg.DB.TimeZone)
	if err != nil {
		return nil, errs.Wrapf(err, "invalid DB_TIMEZONE %q", cfg.DB.TimeZone)
	}
	return commands.NewFixtureCommands(uow, clock.NewSystemClock(), loc, cfg.Batch.Size), nil
}

func readJSON[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []T
	if err := json.NewDecoder(f).Decode(&out); err != nil {
		return nil, errs.Wrapf(err, "failed to decode %s", path)
	}
	return out, nil
}

func run(ctx context.Context, o options, pool *pgxpool.Pool, fixtures commands.FixtureCommands) error {
	if o.migrations != "" {
		if err := db.ApplyMigrations(ctx, pool, o.migrations); err != nil {
			return err
		}
	}

	// members reference pharmacies by name, so pharmacies go first
	if o.pharmacies != "" {
		records, err := readJSON[commands.PharmacyRecord](o.pharmacies)
		if err != nil {
			return err
		}
		if _, err := fixtures.LoadPharmacies(ctx, records); err != nil {
			return err
		}
	}
	if o.members != "" {
		records, err := readJSON[commands.MemberRecord](o.members)
		if err != nil {
			return err
		}
		if _, err := fixtures.LoadMembers(ctx, records); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	o := parseFlags()

	var (
		logger   *slog.Logger
		pool     *pgxpool.Pool
		fixtures commands.FixtureCommands
	)
	app := fx.New(
		bootstrap.ConfigModule,
		bootstrap.LoggerModule,
		bootstrap.DBModule,
		components.PersistenceModule,
		fx.Provide(newFixtureCommands),
		fx.Populate(&logger, &pool, &fixtures),
		fx.NopLogger,
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("loader failed to start", "error", err)
		os.Exit(1)
	}

	code := 0
	if err := run(context.Background(), o, pool, fixtures); err != nil {
		logger.Error("loading fixtures failed", "error", err, "detail", errs.Detail(err))
		code = 1
	}

	if err := app.Stop(context.Background()); err != nil {
		logger.Error("loader failed to stop cleanly", "error", err)
	}
	os.Exit(code)
}
