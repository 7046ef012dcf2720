// Command renamer updates database rows whose player name is not in the
// canonical form: it scans injuries, news and playerstats for names with
// a known conversion, builds the UPDATE statements and executes them in
// one transaction.
package main

import (
	"context"
	"flag"
	"os"
	"strconv"
	"time"

	"nba_dfs/maintenance/internal/config"
	"nba_dfs/maintenance/internal/repository"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	force := flag.Bool("force", false, "commit even when some updates fail")
	dryRun := flag.Bool("dry-run", false, "list pending updates without executing them")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	})

	cfg := config.MustLoad()
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

	pairs, err := db.Reference.GetNamePairs(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load name conversions")
	}
	log.Info().Int("count", len(pairs)).Msg("Name conversions loaded")

	var updates []repository.NameUpdate
	for _, table := range []string{"injuries", "news", "playerstats"} {
		found, err := db.Updates.FindRenameCandidates(ctx, table, pairs, cfg.Seasons)
		if err != nil {
			log.Fatal().Err(err).Str("table", table).Msg("Failed to find rename candidates")
		}
		updates = append(updates, found...)
	}

	if len(updates) == 0 {
		log.Info().Msg("No rows need renaming")
		return
	}

	if *dryRun {
		for _, u := range updates {
			log.Info().
				Str("table", u.Table).
				Int("id", u.ID).
				Str("old", u.OldName).
				Str("new", u.NewName).
				Msg("Would rename")
		}
		log.Info().Int("count", len(updates)).Msg("Dry run complete")
		return
	}

	log.Info().Int("count", len(updates)).Msg("Executing name updates...")
	results, err := db.Updates.ApplyNameUpdates(ctx, updates, *force)
	if err != nil {
		failed := 0
		for _, res := range results {
			if res.Err != nil {
				failed++
			}
		}
		log.Fatal().Err(err).Int("failed", failed).Msg("Name updates not committed")
	}

	log.Info().Int("count", len(results)).Msg("Full success")
}
