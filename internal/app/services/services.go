package services

// Services defined in this package:
// - PostService: assistance post lifecycle, listing and status derivation
// - AuthService: member registration and login
// - MemberService: member profile projection

import (
	"context"

	"github.com/buddybridge/backend/internal/app/models"
)

// PostStore is the persistence contract the post service needs. It is
// implemented by repositories.PostRepository.
type PostStore interface {
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	GetPage(ctx context.Context, postType *models.PostType, offset uint64, limit int, direction string) ([]models.Post, int64, error)
	Create(ctx context.Context, post *models.Post) (int64, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id int64) error
}

// MemberStore is the persistence contract for members, implemented by
// repositories.MemberRepository.
type MemberStore interface {
	GetByID(ctx context.Context, id int64) (*models.Member, error)
	GetByEmail(ctx context.Context, email string) (*models.Member, error)
	Create(ctx context.Context, member *models.Member) (int64, error)
}

// MatchingStore is the read-only persistence contract for matchings,
// implemented by repositories.MatchingRepository.
type MatchingStore interface {
	GetAllByPostID(ctx context.Context, postID int64) ([]models.Matching, error)
}
