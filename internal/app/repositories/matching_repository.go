package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/buddybridge/backend/internal/app/models"
)

// MatchingRepository reads matching records. Matchings are created by the
// matching feature; this module only needs them to derive post status.
type MatchingRepository struct {
	db *pgxpool.Pool
}

// NewMatchingRepository creates a new MatchingRepository
func NewMatchingRepository(db *pgxpool.Pool) *MatchingRepository {
	return &MatchingRepository{db: db}
}

// GetAllByPostID retrieves every matching attached to a post
func (r *MatchingRepository) GetAllByPostID(ctx context.Context, postID int64) ([]models.Matching, error) {
	query := squirrel.Select("id", "post_id", "giver_id", "taker_id", "matching_status", "created_at", "modified_at").
		From("matchings").
		Where("post_id = ?", postID).
		OrderBy("created_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var matchings []models.Matching
	for rows.Next() {
		var matching models.Matching
		err := rows.Scan(
			&matching.ID,
			&matching.PostID,
			&matching.GiverID,
			&matching.TakerID,
			&matching.MatchingStatus,
			&matching.CreatedAt,
			&matching.ModifiedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		matchings = append(matchings, matching)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return matchings, nil
}
