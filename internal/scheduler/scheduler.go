package scheduler

import (
	"context"
	"fmt"
	"time"

	"nba_dfs/maintenance/internal/cache"
	"nba_dfs/maintenance/internal/config"
	"nba_dfs/maintenance/internal/integrity"
	"nba_dfs/maintenance/internal/metrics"
	"nba_dfs/maintenance/internal/names"
	"nba_dfs/maintenance/internal/repository"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Scheduler manages the background integrity-check task. The nightly
// cron loads fresh snapshots, runs a full checker session and persists
// whatever it finds.
type Scheduler struct {
	cfg   *config.Config
	db    *repository.Database
	cache *cache.RedisCache
	cron  *cron.Cron
}

// NewScheduler creates a new scheduler instance. The cache is optional;
// pass nil to always load reference data from the database.
func NewScheduler(cfg *config.Config, db *repository.Database, redisCache *cache.RedisCache) *Scheduler {
	return &Scheduler{
		cfg:   cfg,
		db:    db,
		cache: redisCache,
		cron:  cron.New(),
	}
}

// Start registers the nightly check and starts the cron scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	log.Info().Msg("Scheduler starting...")

	if _, err := s.cron.AddFunc(s.cfg.NightlyCheckCron, func() {
		log.Info().Msg("Running nightly integrity check...")
		if _, err := s.RunIntegrityCheck(ctx); err != nil {
			log.Error().Err(err).Msg("Nightly integrity check failed")
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule nightly check: %w", err)
	}

	s.cron.Start()
	log.Info().
		Str("schedule", s.cfg.NightlyCheckCron).
		Msg("Nightly integrity check scheduled")

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	log.Info().Msg("Stopping scheduler...")
	if s.cron != nil {
		s.cron.Stop()
	}
	log.Info().Msg("Scheduler stopped")
}

// RunIntegrityCheck executes one full checking session: load reference
// data and table snapshots, run every inspection, persist the logs and
// update metrics. Reference-data loading failures abort the session;
// there is no partial mode without a complete canonical universe.
func (s *Scheduler) RunIntegrityCheck(ctx context.Context) (*integrity.Report, error) {
	start := time.Now()

	converter, err := s.buildConverter(ctx)
	if err != nil {
		metrics.IntegrityChecksTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	knownPairs, err := s.db.Reference.GetKnownSimilarPairs(ctx)
	if err != nil {
		metrics.IntegrityChecksTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to load approved similar names: %w", err)
	}

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		metrics.IntegrityChecksTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	checker := integrity.NewChecker(snap, knownPairs, converter)
	report := checker.Run()

	checkedAt := time.Now()
	if err := s.db.Logs.SaveDiscrepancies(ctx, checkedAt, report.Discrepancies); err != nil {
		return report, err
	}
	if err := s.db.Logs.SaveNearDuplicates(ctx, checkedAt, report.NearDuplicates); err != nil {
		return report, err
	}

	s.publishMetrics(report)
	metrics.IntegrityChecksTotal.WithLabelValues("success").Inc()
	metrics.IntegrityCheckDuration.Observe(time.Since(start).Seconds())

	if report.Clean() {
		log.Info().Msg("All looks good. No errors or similar player names encountered.")
	} else {
		log.Warn().
			Int("errors", len(report.Discrepancies)).
			Int("similar_names", len(report.NearDuplicates)).
			Msg("Integrity check found problems")
	}

	return report, nil
}

// buildConverter assembles the session NameConverter, consulting the
// Redis cache for the conversion pairs and known-missing set before
// falling back to the database.
func (s *Scheduler) buildConverter(ctx context.Context) (*names.Converter, error) {
	pairs, ok := s.cachedPairs(ctx)
	if !ok {
		var err error
		pairs, err = s.db.Reference.GetNamePairs(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load name conversions: %w", err)
		}
		if s.cache != nil {
			s.cache.SetNamePairs(ctx, pairs)
		}
	}

	missing, ok := s.cachedMissing(ctx)
	if !ok {
		var err error
		missing, err = s.db.Reference.GetKnownMissing(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load known missing names: %w", err)
		}
		if s.cache != nil {
			s.cache.SetKnownMissing(ctx, missing)
		}
	}

	known, err := s.db.PlayerStats.GetPlayerNames(ctx, s.cfg.Seasons)
	if err != nil {
		return nil, fmt.Errorf("failed to load canonical names: %w", err)
	}

	var teamNames []string
	if s.cfg.IncludeTeamNames {
		teamNames, err = s.db.Reference.GetTeamRepresentations(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load team representations: %w", err)
		}
	}

	return names.NewConverter(names.ConverterConfig{
		Pairs:        pairs,
		KnownMissing: missing,
		Known:        known,
		TeamNames:    teamNames,
		Lenient:      !s.cfg.StrictNames,
	}), nil
}

func (s *Scheduler) cachedPairs(ctx context.Context) (map[string]string, bool) {
	if s.cache == nil {
		return nil, false
	}
	return s.cache.GetNamePairs(ctx)
}

func (s *Scheduler) cachedMissing(ctx context.Context) ([]string, bool) {
	if s.cache == nil {
		return nil, false
	}
	return s.cache.GetKnownMissing(ctx)
}

func (s *Scheduler) loadSnapshot(ctx context.Context) (integrity.Snapshot, error) {
	var snap integrity.Snapshot
	var err error

	snap.PlayerStats, err = s.db.PlayerStats.GetBySeasons(ctx, s.cfg.Seasons)
	if err != nil {
		return snap, fmt.Errorf("failed to load playerstats snapshot: %w", err)
	}

	snap.TeamStats, err = s.db.TeamStats.GetBySeasons(ctx, s.cfg.Seasons)
	if err != nil {
		return snap, fmt.Errorf("failed to load teamstats snapshot: %w", err)
	}

	snap.Injuries, err = s.db.Injuries.GetAll(ctx)
	if err != nil {
		return snap, fmt.Errorf("failed to load injuries snapshot: %w", err)
	}

	snap.News, err = s.db.News.GetAll(ctx)
	if err != nil {
		return snap, fmt.Errorf("failed to load news snapshot: %w", err)
	}

	return snap, nil
}

func (s *Scheduler) publishMetrics(report *integrity.Report) {
	counts := make(map[string]int)
	for _, d := range report.Discrepancies {
		counts[d.Table]++
	}
	for _, table := range []string{"playerstats", "teamstats", "injuries", "news"} {
		metrics.DiscrepanciesFound.WithLabelValues(table).Set(float64(counts[table]))
	}
	metrics.NearDuplicateNames.Set(float64(len(report.NearDuplicates)))
}
