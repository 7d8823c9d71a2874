package services

import (
	"context"
	"fmt"

	"github.com/buddybridge/backend/internal/app/models"
	"github.com/buddybridge/backend/internal/app/models/dto"
	"github.com/buddybridge/backend/internal/pkg/apperrors"
	"github.com/buddybridge/backend/internal/pkg/helpers"
)

// PostService handles the assistance post lifecycle: single reads, paged
// listings, creation, author-only update/delete and status derivation.
type PostService struct {
	postRepo     PostStore
	memberRepo   MemberStore
	matchingRepo MatchingStore
}

// NewPostService creates a new post service instance
func NewPostService(postRepo PostStore, memberRepo MemberStore, matchingRepo MatchingStore) *PostService {
	return &PostService{
		postRepo:     postRepo,
		memberRepo:   memberRepo,
		matchingRepo: matchingRepo,
	}
}

// GetPost retrieves a single post with its author and derived status
func (s *PostService) GetPost(ctx context.Context, postID int64) (*dto.PostResponse, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving post: %w", err)
	}
	if post == nil {
		return nil, apperrors.NewPostNotFoundError("post does not exist")
	}

	resp, err := s.toPostResponse(ctx, post)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetPosts retrieves one page of posts ordered by creation time.
//
// The page parameter is 1-based; zero and negative values mean page 1. The
// isLast flag compares the requested page number against the total page
// count directly, it is not derived from the fetched offset.
func (s *PostService) GetPosts(ctx context.Context, page, size int, sort string, postType *models.PostType) (*dto.PostCustomPage, error) {
	direction, err := helpers.ParseSortDirection(sort)
	if err != nil {
		return nil, err
	}

	page = helpers.NormalizePage(page)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	posts, total, err := s.postRepo.GetPage(ctx, postType, offset, limit, direction)
	if err != nil {
		return nil, fmt.Errorf("error retrieving posts: %w", err)
	}

	responses := make([]dto.PostResponse, 0, len(posts))
	for i := range posts {
		resp, err := s.toPostResponse(ctx, &posts[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}

	return &dto.PostCustomPage{
		Posts:      responses,
		TotalCount: total,
		IsLast:     page >= helpers.TotalPages(total, limit),
	}, nil
}

// CreatePost creates a post owned by the given member and returns the
// assigned id
func (s *PostService) CreatePost(ctx context.Context, req *dto.PostRequest, memberID int64) (int64, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return 0, fmt.Errorf("error retrieving member: %w", err)
	}
	if member == nil {
		return 0, apperrors.NewMemberNotFoundError("member does not exist")
	}

	post := postFromRequest(req)
	post.AuthorID = member.ID
	// The request carries no disability classifier; a post inherits its
	// author's at creation time.
	post.DisabilityType = member.DisabilityType

	id, err := s.postRepo.Create(ctx, post)
	if err != nil {
		return 0, fmt.Errorf("error creating post: %w", err)
	}

	return id, nil
}

// UpdatePost replaces the mutable fields of a post. Only the author may
// update it.
func (s *PostService) UpdatePost(ctx context.Context, postID int64, req *dto.PostRequest, memberID int64) (int64, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return 0, fmt.Errorf("error retrieving post: %w", err)
	}
	if post == nil {
		return 0, apperrors.NewPostNotFoundError("post does not exist")
	}

	if post.AuthorID != memberID {
		return 0, apperrors.NewForbiddenError("only the author may modify the post")
	}

	applyRequest(post, req)

	if err := s.postRepo.Update(ctx, post); err != nil {
		return 0, fmt.Errorf("error updating post: %w", err)
	}

	return post.ID, nil
}

// DeletePost permanently removes a post. Only the author may delete it.
// Matchings referencing the post are left untouched.
func (s *PostService) DeletePost(ctx context.Context, postID int64, memberID int64) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return fmt.Errorf("error retrieving post: %w", err)
	}
	if post == nil {
		return apperrors.NewPostNotFoundError("post does not exist")
	}

	if post.AuthorID != memberID {
		return apperrors.NewForbiddenError("only the author may modify the post")
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return fmt.Errorf("error deleting post: %w", err)
	}

	return nil
}

// GetPostMatchings lists the matchings attached to a post
func (s *PostService) GetPostMatchings(ctx context.Context, postID int64) ([]models.Matching, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving post: %w", err)
	}
	if post == nil {
		return nil, apperrors.NewPostNotFoundError("post does not exist")
	}

	matchings, err := s.matchingRepo.GetAllByPostID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving matchings: %w", err)
	}
	if matchings == nil {
		matchings = []models.Matching{}
	}

	return matchings, nil
}

// DeterminePostStatus derives a post's status from its current matching
// list: FINISHED as soon as any matching is DONE, RECRUITING otherwise.
// The result is recomputed on every read and never stored.
func DeterminePostStatus(matchings []models.Matching) models.PostStatus {
	for _, matching := range matchings {
		if matching.MatchingStatus == models.MatchingStatusDone {
			return models.PostStatusFinished
		}
	}
	return models.PostStatusRecruiting
}

// toPostResponse maps a post (author already resolved) to its response,
// deriving the status from a fresh matching snapshot.
func (s *PostService) toPostResponse(ctx context.Context, post *models.Post) (dto.PostResponse, error) {
	matchings, err := s.matchingRepo.GetAllByPostID(ctx, post.ID)
	if err != nil {
		return dto.PostResponse{}, fmt.Errorf("error retrieving matchings: %w", err)
	}
	return dto.FromPost(post, DeterminePostStatus(matchings)), nil
}

// postFromRequest builds a post entity from the request's field set
func postFromRequest(req *dto.PostRequest) *models.Post {
	return &models.Post{
		Title:          req.Title,
		Content:        req.Content,
		AssistanceType: req.AssistanceType,
		District:       req.District,
		PostType:       req.PostType,
		Schedule: models.Schedule{
			StartTime:       req.StartTime,
			EndTime:         req.EndTime,
			ScheduleType:    req.ScheduleType,
			ScheduleDetails: req.ScheduleDetails,
		},
	}
}

// applyRequest replaces every mutable field of an existing post; id, author
// and createdAt stay as they are.
func applyRequest(post *models.Post, req *dto.PostRequest) {
	post.Title = req.Title
	post.Content = req.Content
	post.AssistanceType = req.AssistanceType
	post.District = req.District
	post.PostType = req.PostType
	post.Schedule = models.Schedule{
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		ScheduleType:    req.ScheduleType,
		ScheduleDetails: req.ScheduleDetails,
	}
}
