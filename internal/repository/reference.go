package repository

import (
	"context"
	"fmt"

	"nba_dfs/maintenance/internal/integrity"
	"nba_dfs/maintenance/internal/models"
	"nba_dfs/maintenance/internal/names"

	"github.com/rs/zerolog/log"
)

// ReferenceRepository loads the reference datasets consulted during name
// reconciliation: conversion pairs, known-missing players, approved
// similar-name pairs, nicknames and team representations. All of them
// are loaded once at session start and held read-only.
type ReferenceRepository struct {
	db *Database
}

// GetNamePairs returns the mapping from non-canonical spellings to their
// canonical replacement.
func (r *ReferenceRepository) GetNamePairs(ctx context.Context) (map[string]string, error) {
	query := `SELECT old_name, new_name FROM name_conversions`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get name conversions: %w", err)
	}
	defer rows.Close()

	pairs := make(map[string]string)
	for rows.Next() {
		var p models.NamePair
		if err := rows.Scan(&p.Old, &p.New); err != nil {
			return nil, fmt.Errorf("failed to scan name conversion: %w", err)
		}
		pairs[p.Old] = p.New
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating name conversions: %w", err)
	}

	log.Debug().Int("count", len(pairs)).Msg("Name conversion pairs loaded")
	return pairs, nil
}

// GetKnownMissing returns players known to be legitimately absent from
// playerstats.
func (r *ReferenceRepository) GetKnownMissing(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT player FROM known_missing_names ORDER BY player`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get known missing names: %w", err)
	}
	defer rows.Close()

	var players []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("failed to scan known missing name: %w", err)
		}
		players = append(players, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating known missing names: %w", err)
	}

	return players, nil
}

// GetKnownSimilarPairs returns the pre-approved pairs of names that are
// close in edit distance but genuinely distinct.
func (r *ReferenceRepository) GetKnownSimilarPairs(ctx context.Context) (integrity.KnownSimilarPairs, error) {
	query := `SELECT name1, name2 FROM approved_similar_names`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get approved similar names: %w", err)
	}
	defer rows.Close()

	var pairs integrity.KnownSimilarPairs
	for rows.Next() {
		var sp models.SimilarPair
		if err := rows.Scan(&sp.Name1, &sp.Name2); err != nil {
			return nil, fmt.Errorf("failed to scan approved similar names: %w", err)
		}
		pairs = append(pairs, [2]string{sp.Name1, sp.Name2})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating approved similar names: %w", err)
	}

	return pairs, nil
}

// GetNicknames returns the first-name/nickname alias entries.
func (r *ReferenceRepository) GetNicknames(ctx context.Context) ([]names.AliasEntry, error) {
	query := `SELECT name, nickname FROM nicknames`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get nicknames: %w", err)
	}
	defer rows.Close()

	var entries []names.AliasEntry
	for rows.Next() {
		var e names.AliasEntry
		if err := rows.Scan(&e.Name, &e.Nickname); err != nil {
			return nil, fmt.Errorf("failed to scan nickname: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating nicknames: %w", err)
	}

	return entries, nil
}

// GetTeamRepresentations returns every distinct way an active team is
// referred to across feeds: code, short name, full name and mascot.
func (r *ReferenceRepository) GetTeamRepresentations(ctx context.Context) ([]string, error) {
	query := `
		SELECT nba_code, short_name, full_name, mascot
		FROM teams
		WHERE active = TRUE
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get team representations: %w", err)
	}
	defer rows.Close()

	seen := make(map[string]struct{})
	var reprs []string
	for rows.Next() {
		var code, short, full, mascot string
		if err := rows.Scan(&code, &short, &full, &mascot); err != nil {
			return nil, fmt.Errorf("failed to scan team row: %w", err)
		}
		for _, repr := range []string{code, short, full, mascot} {
			if _, dup := seen[repr]; dup {
				continue
			}
			seen[repr] = struct{}{}
			reprs = append(reprs, repr)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating team rows: %w", err)
	}

	return reprs, nil
}
