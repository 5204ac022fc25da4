package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/shauncritzer/memoir/internal/course"
	"github.com/shauncritzer/memoir/internal/hints"
	"github.com/shauncritzer/memoir/internal/seed"
)

func runSeed(ctx context.Context, args []string, env *Environment) error {
	f, err := parseSeedFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	cfg, log, err := setup(env, f.common)
	if err != nil {
		return err
	}
	defer log.Sync()

	if f.databaseURL != "" {
		cfg.Database.URL = f.databaseURL
	}
	if f.product != "" {
		cfg.Database.ProductID = f.product
	}

	// Checked before any connection attempt.
	if cfg.Database.URL == "" {
		return fmt.Errorf("%w%s", seed.ErrMissingURL, hints.ForDatabaseURL())
	}
	dbCfg, err := seed.ParseURL(cfg.Database.URL)
	if err != nil {
		return err
	}

	log = log.With("run_id", uuid.NewString(), "target", dbCfg.String(), "product", cfg.Database.ProductID)
	say := progress(env, f.common.quiet)
	say("🌱 Starting to seed 7-Day REWIRED Reset lessons...")

	db, err := env.OpenDB(ctx, dbCfg)
	if err != nil {
		var se *seed.Error
		if errors.As(err, &se) && se.Kind == seed.ConnectionError {
			return fmt.Errorf("%w%s", err, hints.ForDatabaseConnect())
		}
		return err
	}
	defer func() {
		if err := seed.Close(db); err != nil {
			log.Warn("Closing database", "error", err)
		}
	}()
	log.Debug("Connected")
	say("✅ Connected to database")

	lessons := course.SevenDayReset()
	res, err := seed.New(db, log).Seed(ctx, cfg.Database.ProductID, lessons)
	if err != nil {
		log.Error("Seeding failed", "error", err)
		return err
	}

	if res.Deleted > 0 {
		say("⚠️  Deleted %d existing lessons for %s", res.Deleted, res.ProductID)
	}
	for _, l := range res.Lessons {
		say("   ✓ Day %d: %s", l.DayNumber, l.Title)
	}
	say("")
	say("✅ Successfully seeded all %d lessons!", res.Inserted)
	say("")
	say("📊 Summary:")
	say("   Product ID: %s", res.ProductID)
	say("   Total Lessons: %d", res.Inserted)
	say("   Total Duration: %d minutes", res.TotalMinutes)

	log.Info("Seed committed", "deleted", res.Deleted, "inserted", res.Inserted, "minutes", res.TotalMinutes)
	return nil
}
