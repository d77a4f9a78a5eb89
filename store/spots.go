// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/spots/models"
)

// Counts are distinct voters per kind; spots with no votes report zero.
const summarySelect = `
	SELECT s.spot_id, s.name, s.address, s.lat, s.lng, s.note, s.date,
		u.username,
		COALESCE(been_nums.n, 0) AS been_count,
		COALESCE(good_nums.n, 0) AS good_count
	FROM spots s
	INNER JOIN users u ON u.user_id = s.user_id
	LEFT JOIN (
		SELECT spot_id, COUNT(DISTINCT user_id) AS n FROM been GROUP BY spot_id
	) AS been_nums ON been_nums.spot_id = s.spot_id
	LEFT JOIN (
		SELECT spot_id, COUNT(DISTINCT user_id) AS n FROM good GROUP BY spot_id
	) AS good_nums ON good_nums.spot_id = s.spot_id
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSummary(row rowScanner) (models.SpotSummary, error) {
	var sp models.SpotSummary
	err := row.Scan(
		&sp.ID,
		&sp.Name,
		&sp.Address,
		&sp.Lat,
		&sp.Lng,
		&sp.Note,
		&sp.Date,
		&sp.Username,
		&sp.BeenHereCount,
		&sp.GoodSpotCount,
	)
	return sp, err
}

// ListSpots returns every spot ordered by name in byte order.
func (s *Store) ListSpots(ctx context.Context) ([]models.SpotSummary, error) {
	rows, err := s.db.QueryContext(ctx, summarySelect+`
	ORDER BY s.name COLLATE "C" ASC, s.spot_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query spots: %w", err)
	}
	defer rows.Close()

	spots := []models.SpotSummary{}
	for rows.Next() {
		sp, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("scan spot: %w", err)
		}
		spots = append(spots, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate spots: %w", err)
	}

	return spots, nil
}

// GetSpot returns one spot or ErrNotFound.
func (s *Store) GetSpot(ctx context.Context, spotID int64) (models.SpotSummary, error) {
	row := s.db.QueryRowContext(ctx, summarySelect+`
	WHERE s.spot_id = $1
	`, spotID)

	sp, err := scanSummary(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SpotSummary{}, ErrNotFound
	}
	if err != nil {
		return models.SpotSummary{}, fmt.Errorf("query spot: %w", err)
	}

	return sp, nil
}

// CreateSpot inserts a spot owned by userID and returns the stored row.
func (s *Store) CreateSpot(ctx context.Context, userID int64, req models.CreateSpotRequest) (models.Spot, error) {
	var sp models.Spot
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO spots (name, user_id, address, lat, lng, note, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING spot_id, name, user_id, address, lat, lng, note, date
	`, req.Name, userID, req.Address, req.Lat, req.Lng, req.Note, req.Date).Scan(
		&sp.ID,
		&sp.Name,
		&sp.UserID,
		&sp.Address,
		&sp.Lat,
		&sp.Lng,
		&sp.Note,
		&sp.Date,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			// Owner vanished between token issue and insert
			return models.Spot{}, ErrNotFound
		}
		return models.Spot{}, fmt.Errorf("insert spot: %w", err)
	}

	return sp, nil
}

// lockOwner locks the spot row for the rest of the transaction and checks
// that userID owns it.
func lockOwner(ctx context.Context, tx DBTX, spotID, userID int64) error {
	var owner int64
	err := tx.QueryRowContext(ctx, `
		SELECT user_id FROM spots WHERE spot_id = $1 FOR UPDATE
	`, spotID).Scan(&owner)

	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("query spot owner: %w", err)
	}
	if owner != userID {
		return ErrNotOwner
	}
	return nil
}

// UpdateSpotNote replaces the note of a spot owned by userID.
// Returns ErrNotFound or ErrNotOwner without changing anything.
func (s *Store) UpdateSpotNote(ctx context.Context, spotID, userID int64, note *string) (*string, error) {
	var updated *string
	err := s.withTx(ctx, func(tx DBTX) error {
		if err := lockOwner(ctx, tx, spotID, userID); err != nil {
			return err
		}
		err := tx.QueryRowContext(ctx, `
			UPDATE spots SET note = $1 WHERE spot_id = $2
			RETURNING note
		`, note, spotID).Scan(&updated)
		if err != nil {
			return fmt.Errorf("update note: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteSpot removes a spot owned by userID along with its votes and
// returns the removed spot's name.
func (s *Store) DeleteSpot(ctx context.Context, spotID, userID int64) (string, error) {
	var name string
	err := s.withTx(ctx, func(tx DBTX) error {
		if err := lockOwner(ctx, tx, spotID, userID); err != nil {
			return err
		}
		err := tx.QueryRowContext(ctx, `
			DELETE FROM spots WHERE spot_id = $1
			RETURNING name
		`, spotID).Scan(&name)
		if err != nil {
			return fmt.Errorf("delete spot: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return name, nil
}
