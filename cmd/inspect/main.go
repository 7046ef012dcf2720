// Command inspect runs one integrity-check session against the database
// and reports what it found. Findings are persisted to the log tables.
package main

import (
	"context"
	"os"
	"strconv"
	"time"

	"nba_dfs/maintenance/internal/config"
	"nba_dfs/maintenance/internal/integrity"
	"nba_dfs/maintenance/internal/names"
	"nba_dfs/maintenance/internal/repository"
	"nba_dfs/maintenance/internal/scheduler"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	})

	cfg := config.MustLoad()
	log.Info().Ints("seasons", cfg.Seasons).Msg("Running database integrity check")

	ctx := context.Background()

	db, err := repository.NewDatabase(ctx, repository.Config{
		Host:     cfg.DatabaseHost,
		Port:     strconv.Itoa(cfg.DatabasePort),
		User:     cfg.DatabaseUser,
		Password: cfg.DatabasePassword,
		Database: cfg.DatabaseName,
		SSLMode:  cfg.DatabaseSSLMode,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	sched := scheduler.NewScheduler(cfg, db, nil)

	report, err := sched.RunIntegrityCheck(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Integrity check failed")
	}

	if report.Clean() {
		return
	}

	for _, d := range report.Discrepancies {
		log.Warn().
			Str("table", d.Table).
			Str("id", d.ID).
			Msg(d.Info)
	}
	for _, n := range report.NearDuplicates {
		log.Warn().
			Str("name1", n.Name1).
			Str("name2", n.Name2).
			Int("dist", n.Distance).
			Msg("Similar player names")
	}

	suggestCanonical(ctx, cfg, db, report)

	os.Exit(1)
}

// suggestCanonical proposes canonical spellings for names flagged in the
// injuries and news tables, so the operator can turn them into new
// conversion pairs.
func suggestCanonical(ctx context.Context, cfg *config.Config, db *repository.Database, report *integrity.Report) {
	entries, err := db.Reference.GetNicknames(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load nicknames, skipping suggestions")
		return
	}
	universe, err := db.PlayerStats.GetPlayerNames(ctx, cfg.Seasons)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load player names, skipping suggestions")
		return
	}

	resolver := names.NewCanonicalResolver(universe, names.NewAliasTable(entries))
	for _, d := range report.Discrepancies {
		if d.Table != "injuries" && d.Table != "news" {
			continue
		}
		if canon, err := resolver.Resolve(d.ID); err == nil && canon != d.ID {
			log.Info().
				Str("name", d.ID).
				Str("suggestion", canon).
				Msg("Possible canonical spelling")
		}
	}
}
