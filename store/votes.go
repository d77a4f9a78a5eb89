// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"github.com/danielhkuo/spots/models"
)

// voteTables maps each vote kind to its table. Table names are only ever
// taken from here, never from request input.
var voteTables = map[models.VoteKind]string{
	models.VoteBeen: "been",
	models.VoteGood: "good",
}

// AddVote records a vote of the given kind. A second vote of the same kind
// by the same user returns ErrDuplicate; a vote on a missing spot returns
// ErrNotFound.
func (s *Store) AddVote(ctx context.Context, kind models.VoteKind, userID, spotID int64) error {
	table, ok := voteTables[kind]
	if !ok {
		return fmt.Errorf("unknown vote kind %q", kind)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO `+table+` (user_id, spot_id) VALUES ($1, $2)`,
		userID, spotID)

	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return ErrDuplicate
	case isForeignKeyViolation(err):
		return ErrNotFound
	default:
		return fmt.Errorf("insert %s vote: %w", table, err)
	}
}

// VoteStatus reports whether userID has each kind of vote on spotID.
func (s *Store) VoteStatus(ctx context.Context, userID, spotID int64) (models.VoteStatus, error) {
	status := models.VoteStatus{SpotID: spotID}
	err := s.db.QueryRowContext(ctx, `
		SELECT
			EXISTS(SELECT 1 FROM been WHERE user_id = $1 AND spot_id = $2),
			EXISTS(SELECT 1 FROM good WHERE user_id = $1 AND spot_id = $2)
	`, userID, spotID).Scan(&status.BeenHere, &status.LikedHere)

	if err != nil {
		return models.VoteStatus{}, fmt.Errorf("query vote status: %w", err)
	}
	return status, nil
}

// UserVotes lists the spot ids userID has voted on, per kind.
func (s *Store) UserVotes(ctx context.Context, userID int64) (models.UserVotes, error) {
	votes := models.UserVotes{BeenArray: []int64{}, GoodArray: []int64{}}
	err := s.db.QueryRowContext(ctx, `
		SELECT
			ARRAY(SELECT spot_id FROM been WHERE user_id = $1 ORDER BY spot_id),
			ARRAY(SELECT spot_id FROM good WHERE user_id = $1 ORDER BY spot_id)
	`, userID).Scan(pq.Array(&votes.BeenArray), pq.Array(&votes.GoodArray))

	if err != nil {
		return models.UserVotes{}, fmt.Errorf("query user votes: %w", err)
	}
	return votes, nil
}
