package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/buddybridge/backend/internal/app/models"
	"github.com/buddybridge/backend/internal/pkg/apperrors"
	"github.com/buddybridge/backend/internal/pkg/dberrors"
	"github.com/buddybridge/backend/internal/pkg/helpers"
)

const membersEmailConstraint = "members_email_key"

var memberColumns = []string{
	"id", "email", "password", "name", "nickname", "profile_image_url",
	"age", "gender", "disability_type", "created_at", "modified_at",
}

// MemberRepository handles database operations for members
type MemberRepository struct {
	db *pgxpool.Pool
}

// NewMemberRepository creates a new MemberRepository
func NewMemberRepository(db *pgxpool.Pool) *MemberRepository {
	return &MemberRepository{db: db}
}

// GetByID retrieves a member by ID. Returns (nil, nil) when the member does
// not exist.
func (r *MemberRepository) GetByID(ctx context.Context, id int64) (*models.Member, error) {
	query := squirrel.Select(memberColumns...).
		From("members").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	return r.scanMemberRow(r.db.QueryRow(ctx, sql, args...))
}

// GetByEmail retrieves a member by email. Returns (nil, nil) when no member
// has that email.
func (r *MemberRepository) GetByEmail(ctx context.Context, email string) (*models.Member, error) {
	query := squirrel.Select(memberColumns...).
		From("members").
		Where("email = ?", email).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	return r.scanMemberRow(r.db.QueryRow(ctx, sql, args...))
}

// Create inserts a new member and returns the assigned id
func (r *MemberRepository) Create(ctx context.Context, member *models.Member) (int64, error) {
	query := squirrel.Insert("members").
		Columns("email", "password", "name", "nickname", "profile_image_url", "age", "gender", "disability_type").
		Values(member.Email, member.Password, member.Name, member.Nickname,
			helpers.GetNullString(member.ProfileImageURL), member.Age, member.Gender, member.DisabilityType).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, membersEmailConstraint) {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return id, nil
}

func (r *MemberRepository) scanMemberRow(row pgx.Row) (*models.Member, error) {
	var member models.Member
	err := row.Scan(
		&member.ID,
		&member.Email,
		&member.Password,
		&member.Name,
		&member.Nickname,
		&member.ProfileImageURL,
		&member.Age,
		&member.Gender,
		&member.DisabilityType,
		&member.CreatedAt,
		&member.ModifiedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return &member, nil
}
