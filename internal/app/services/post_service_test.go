package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buddybridge/backend/internal/app/models"
	"github.com/buddybridge/backend/internal/app/models/dto"
	"github.com/buddybridge/backend/internal/pkg/apperrors"
)

// ===== MOCK STORES =====

// mockPostStore implements PostStore for testing. Reads resolve the author
// the way the real repository's join does.
type mockPostStore struct {
	posts    map[int64]*models.Post
	members  *mockMemberStore
	nextID   int64
	getErr   error
	pageErr  error
	saveErr  error
	lastPage struct {
		postType  *models.PostType
		offset    uint64
		limit     int
		direction string
	}
}

func newMockPostStore(members *mockMemberStore) *mockPostStore {
	return &mockPostStore{posts: make(map[int64]*models.Post), members: members, nextID: 1}
}

func (m *mockPostStore) resolved(post *models.Post) models.Post {
	copied := *post
	copied.Author = m.members.members[post.AuthorID]
	return copied
}

func (m *mockPostStore) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	post, ok := m.posts[id]
	if !ok {
		return nil, nil
	}
	copied := m.resolved(post)
	return &copied, nil
}

func (m *mockPostStore) GetPage(ctx context.Context, postType *models.PostType, offset uint64, limit int, direction string) ([]models.Post, int64, error) {
	if m.pageErr != nil {
		return nil, 0, m.pageErr
	}
	m.lastPage.postType = postType
	m.lastPage.offset = offset
	m.lastPage.limit = limit
	m.lastPage.direction = direction

	var filtered []models.Post
	for id := int64(1); id < m.nextID; id++ {
		post, ok := m.posts[id]
		if !ok {
			continue
		}
		if postType != nil && post.PostType != *postType {
			continue
		}
		filtered = append(filtered, m.resolved(post))
	}

	total := int64(len(filtered))
	start := int(offset)
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end], total, nil
}

func (m *mockPostStore) Create(ctx context.Context, post *models.Post) (int64, error) {
	if m.saveErr != nil {
		return 0, m.saveErr
	}
	stored := *post
	stored.ID = m.nextID
	stored.CreatedAt = time.Now()
	stored.ModifiedAt = stored.CreatedAt
	m.posts[stored.ID] = &stored
	m.nextID++
	return stored.ID, nil
}

func (m *mockPostStore) Update(ctx context.Context, post *models.Post) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	existing, ok := m.posts[post.ID]
	if !ok {
		return fmt.Errorf("post not found with ID %d", post.ID)
	}
	updated := *post
	updated.CreatedAt = existing.CreatedAt
	updated.ModifiedAt = time.Now()
	m.posts[post.ID] = &updated
	return nil
}

func (m *mockPostStore) Delete(ctx context.Context, id int64) error {
	if _, ok := m.posts[id]; !ok {
		return fmt.Errorf("post not found with ID %d", id)
	}
	delete(m.posts, id)
	return nil
}

// mockMemberStore implements MemberStore for testing
type mockMemberStore struct {
	members map[int64]*models.Member
}

func newMockMemberStore(members ...*models.Member) *mockMemberStore {
	store := &mockMemberStore{members: make(map[int64]*models.Member)}
	for _, member := range members {
		store.members[member.ID] = member
	}
	return store
}

func (m *mockMemberStore) GetByID(ctx context.Context, id int64) (*models.Member, error) {
	member, ok := m.members[id]
	if !ok {
		return nil, nil
	}
	return member, nil
}

func (m *mockMemberStore) GetByEmail(ctx context.Context, email string) (*models.Member, error) {
	for _, member := range m.members {
		if member.Email == email {
			return member, nil
		}
	}
	return nil, nil
}

func (m *mockMemberStore) Create(ctx context.Context, member *models.Member) (int64, error) {
	id := int64(len(m.members) + 1)
	stored := *member
	stored.ID = id
	m.members[id] = &stored
	return id, nil
}

// mockMatchingStore implements MatchingStore for testing
type mockMatchingStore struct {
	byPostID map[int64][]models.Matching
	err      error
}

func newMockMatchingStore() *mockMatchingStore {
	return &mockMatchingStore{byPostID: make(map[int64][]models.Matching)}
}

func (m *mockMatchingStore) GetAllByPostID(ctx context.Context, postID int64) ([]models.Matching, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.byPostID[postID], nil
}

// ===== FIXTURES =====

func testMember(id int64) *models.Member {
	return &models.Member{
		ID:             id,
		Email:          fmt.Sprintf("member%d@buddybridge.kr", id),
		Name:           fmt.Sprintf("Member %d", id),
		Nickname:       fmt.Sprintf("nick%d", id),
		Age:            25,
		Gender:         models.GenderMale,
		DisabilityType: models.DisabilityTypeVisual,
	}
}

func testPostRequest() *dto.PostRequest {
	return &dto.PostRequest{
		Title:           "Need a commute buddy",
		AssistanceType:  models.AssistanceTypeCommute,
		StartTime:       time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC),
		EndTime:         time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC),
		ScheduleType:    models.ScheduleTypeRecurring,
		ScheduleDetails: "Every weekday morning",
		District:        "Mapo-gu",
		Content:         "Looking for help on the subway commute.",
		PostType:        models.PostTypeTaker,
	}
}

func newTestService() (*PostService, *mockPostStore, *mockMemberStore, *mockMatchingStore) {
	memberStore := newMockMemberStore(testMember(1), testMember(2))
	postStore := newMockPostStore(memberStore)
	matchingStore := newMockMatchingStore()
	return NewPostService(postStore, memberStore, matchingStore), postStore, memberStore, matchingStore
}

// ===== TESTS =====

func TestDeterminePostStatus(t *testing.T) {
	tests := []struct {
		name      string
		matchings []models.Matching
		want      models.PostStatus
	}{
		{
			name:      "no matchings means recruiting",
			matchings: nil,
			want:      models.PostStatusRecruiting,
		},
		{
			name: "no done matching means recruiting",
			matchings: []models.Matching{
				{MatchingStatus: models.MatchingStatusPending},
				{MatchingStatus: models.MatchingStatusInProgress},
				{MatchingStatus: models.MatchingStatusCanceled},
			},
			want: models.PostStatusRecruiting,
		},
		{
			name: "any done matching means finished",
			matchings: []models.Matching{
				{MatchingStatus: models.MatchingStatusPending},
				{MatchingStatus: models.MatchingStatusDone},
			},
			want: models.PostStatusFinished,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeterminePostStatus(tt.matchings))
		})
	}
}

func TestGetPost(t *testing.T) {
	ctx := context.Background()
	service, _, _, matchingStore := newTestService()

	postID, err := service.CreatePost(ctx, testPostRequest(), 1)
	require.NoError(t, err)

	t.Run("existing post", func(t *testing.T) {
		resp, err := service.GetPost(ctx, postID)
		require.NoError(t, err)
		assert.Equal(t, postID, resp.ID)
		assert.Equal(t, int64(1), resp.Author.MemberID)
		assert.Equal(t, models.PostStatusRecruiting, resp.PostStatus)
	})

	t.Run("status is finished once a matching is done", func(t *testing.T) {
		matchingStore.byPostID[postID] = []models.Matching{
			{PostID: postID, MatchingStatus: models.MatchingStatusDone},
		}
		resp, err := service.GetPost(ctx, postID)
		require.NoError(t, err)
		assert.Equal(t, models.PostStatusFinished, resp.PostStatus)
	})

	t.Run("missing post", func(t *testing.T) {
		_, err := service.GetPost(ctx, 9999)
		assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
	})
}

func TestGetPostRoundTrip(t *testing.T) {
	ctx := context.Background()
	service, _, _, _ := newTestService()
	req := testPostRequest()

	postID, err := service.CreatePost(ctx, req, 1)
	require.NoError(t, err)

	resp, err := service.GetPost(ctx, postID)
	require.NoError(t, err)

	assert.Equal(t, req.Title, resp.Title)
	assert.Equal(t, req.AssistanceType, resp.AssistanceType)
	assert.Equal(t, req.StartTime, resp.StartTime)
	assert.Equal(t, req.EndTime, resp.EndTime)
	assert.Equal(t, req.ScheduleType, resp.ScheduleType)
	assert.Equal(t, req.ScheduleDetails, resp.ScheduleDetails)
	assert.Equal(t, req.District, resp.District)
	assert.Equal(t, req.Content, resp.Content)
	assert.Equal(t, req.PostType, resp.PostType)
	assert.Equal(t, int64(1), resp.Author.MemberID)
	assert.Equal(t, models.PostStatusRecruiting, resp.PostStatus)
}

func TestCreatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown member", func(t *testing.T) {
		service, postStore, _, _ := newTestService()
		_, err := service.CreatePost(ctx, testPostRequest(), 9999)
		assert.ErrorIs(t, err, apperrors.ErrMemberNotFound)
		assert.Empty(t, postStore.posts)
	})

	t.Run("post inherits author disability type", func(t *testing.T) {
		service, postStore, _, _ := newTestService()
		postID, err := service.CreatePost(ctx, testPostRequest(), 1)
		require.NoError(t, err)
		assert.Equal(t, models.DisabilityTypeVisual, postStore.posts[postID].DisabilityType)
	})
}

func TestGetPostsSortDirection(t *testing.T) {
	ctx := context.Background()
	service, postStore, _, _ := newTestService()

	_, err := service.CreatePost(ctx, testPostRequest(), 1)
	require.NoError(t, err)

	t.Run("sort is case-insensitive", func(t *testing.T) {
		lower, err := service.GetPosts(ctx, 1, 10, "asc", nil)
		require.NoError(t, err)
		assert.Equal(t, "ASC", postStore.lastPage.direction)

		upper, err := service.GetPosts(ctx, 1, 10, "ASC", nil)
		require.NoError(t, err)
		assert.Equal(t, lower, upper)
	})

	t.Run("descending", func(t *testing.T) {
		_, err := service.GetPosts(ctx, 1, 10, "desc", nil)
		require.NoError(t, err)
		assert.Equal(t, "DESC", postStore.lastPage.direction)
	})

	t.Run("invalid sort method", func(t *testing.T) {
		_, err := service.GetPosts(ctx, 1, 10, "sideways", nil)
		assert.ErrorIs(t, err, apperrors.ErrInvalidSortDirection)
	})
}

func TestGetPostsPagination(t *testing.T) {
	ctx := context.Background()
	service, _, _, _ := newTestService()

	for i := 0; i < 25; i++ {
		_, err := service.CreatePost(ctx, testPostRequest(), 1)
		require.NoError(t, err)
	}

	t.Run("first page", func(t *testing.T) {
		page, err := service.GetPosts(ctx, 1, 10, "asc", nil)
		require.NoError(t, err)
		assert.Len(t, page.Posts, 10)
		assert.Equal(t, int64(25), page.TotalCount)
		assert.False(t, page.IsLast)
	})

	t.Run("last page", func(t *testing.T) {
		page, err := service.GetPosts(ctx, 3, 10, "asc", nil)
		require.NoError(t, err)
		assert.Len(t, page.Posts, 5)
		assert.Equal(t, int64(25), page.TotalCount)
		assert.True(t, page.IsLast)
	})

	t.Run("page beyond the end keeps the full total and isLast true", func(t *testing.T) {
		page, err := service.GetPosts(ctx, 4, 10, "asc", nil)
		require.NoError(t, err)
		assert.Empty(t, page.Posts)
		assert.Equal(t, int64(25), page.TotalCount)
		assert.True(t, page.IsLast)
	})

	t.Run("page zero is normalized to page one", func(t *testing.T) {
		zero, err := service.GetPosts(ctx, 0, 10, "asc", nil)
		require.NoError(t, err)
		one, err := service.GetPosts(ctx, 1, 10, "asc", nil)
		require.NoError(t, err)
		assert.Equal(t, one, zero)
	})
}

func TestGetPostsTypeFilter(t *testing.T) {
	ctx := context.Background()
	service, postStore, _, _ := newTestService()

	takerReq := testPostRequest()
	_, err := service.CreatePost(ctx, takerReq, 1)
	require.NoError(t, err)

	giverReq := testPostRequest()
	giverReq.PostType = models.PostTypeGiver
	_, err = service.CreatePost(ctx, giverReq, 2)
	require.NoError(t, err)

	giver := models.PostTypeGiver
	page, err := service.GetPosts(ctx, 1, 10, "asc", &giver)
	require.NoError(t, err)

	require.NotNil(t, postStore.lastPage.postType)
	assert.Equal(t, giver, *postStore.lastPage.postType)
	require.Len(t, page.Posts, 1)
	assert.Equal(t, models.PostTypeGiver, page.Posts[0].PostType)
	assert.Equal(t, int64(1), page.TotalCount)
}

func TestUpdatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("missing post", func(t *testing.T) {
		service, _, _, _ := newTestService()
		_, err := service.UpdatePost(ctx, 9999, testPostRequest(), 1)
		assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
	})

	t.Run("non-author is rejected and post unchanged", func(t *testing.T) {
		service, postStore, _, _ := newTestService()
		postID, err := service.CreatePost(ctx, testPostRequest(), 1)
		require.NoError(t, err)
		before := *postStore.posts[postID]

		changed := testPostRequest()
		changed.Title = "Hijacked"
		_, err = service.UpdatePost(ctx, postID, changed, 2)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
		assert.Equal(t, before, *postStore.posts[postID])
	})

	t.Run("author replaces every mutable field", func(t *testing.T) {
		service, postStore, _, _ := newTestService()
		postID, err := service.CreatePost(ctx, testPostRequest(), 1)
		require.NoError(t, err)
		before := *postStore.posts[postID]

		changed := &dto.PostRequest{
			Title:           "Study session helper wanted",
			AssistanceType:  models.AssistanceTypeStudy,
			StartTime:       time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC),
			EndTime:         time.Date(2025, 6, 1, 16, 0, 0, 0, time.UTC),
			ScheduleType:    models.ScheduleTypeNegotiable,
			ScheduleDetails: "Weekend afternoons",
			District:        "Gangnam-gu",
			Content:         "Need a note taker for lectures.",
			PostType:        models.PostTypeGiver,
		}

		updatedID, err := service.UpdatePost(ctx, postID, changed, 1)
		require.NoError(t, err)
		assert.Equal(t, postID, updatedID)

		after := postStore.posts[postID]
		assert.Equal(t, changed.Title, after.Title)
		assert.Equal(t, changed.AssistanceType, after.AssistanceType)
		assert.Equal(t, changed.StartTime, after.Schedule.StartTime)
		assert.Equal(t, changed.EndTime, after.Schedule.EndTime)
		assert.Equal(t, changed.ScheduleType, after.Schedule.ScheduleType)
		assert.Equal(t, changed.ScheduleDetails, after.Schedule.ScheduleDetails)
		assert.Equal(t, changed.District, after.District)
		assert.Equal(t, changed.Content, after.Content)
		assert.Equal(t, changed.PostType, after.PostType)

		// id, author, createdAt and disability type are never altered by update
		assert.Equal(t, before.ID, after.ID)
		assert.Equal(t, before.AuthorID, after.AuthorID)
		assert.Equal(t, before.CreatedAt, after.CreatedAt)
		assert.Equal(t, before.DisabilityType, after.DisabilityType)
	})
}

func TestDeletePost(t *testing.T) {
	ctx := context.Background()

	t.Run("missing post", func(t *testing.T) {
		service, _, _, _ := newTestService()
		err := service.DeletePost(ctx, 9999, 1)
		assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
	})

	t.Run("non-author is rejected", func(t *testing.T) {
		service, postStore, _, _ := newTestService()
		postID, err := service.CreatePost(ctx, testPostRequest(), 1)
		require.NoError(t, err)

		err = service.DeletePost(ctx, postID, 2)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
		assert.Contains(t, postStore.posts, postID)
	})

	t.Run("author deletes, matchings survive", func(t *testing.T) {
		service, postStore, _, matchingStore := newTestService()
		postID, err := service.CreatePost(ctx, testPostRequest(), 1)
		require.NoError(t, err)
		matchingStore.byPostID[postID] = []models.Matching{
			{PostID: postID, MatchingStatus: models.MatchingStatusPending},
		}

		err = service.DeletePost(ctx, postID, 1)
		require.NoError(t, err)
		assert.NotContains(t, postStore.posts, postID)
		assert.Len(t, matchingStore.byPostID[postID], 1)
	})
}

func TestGetPostMatchings(t *testing.T) {
	ctx := context.Background()
	service, _, _, matchingStore := newTestService()

	postID, err := service.CreatePost(ctx, testPostRequest(), 1)
	require.NoError(t, err)

	t.Run("missing post", func(t *testing.T) {
		_, err := service.GetPostMatchings(ctx, 9999)
		assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
	})

	t.Run("no matchings yields empty list", func(t *testing.T) {
		matchings, err := service.GetPostMatchings(ctx, postID)
		require.NoError(t, err)
		assert.NotNil(t, matchings)
		assert.Empty(t, matchings)
	})

	t.Run("returns attached matchings", func(t *testing.T) {
		matchingStore.byPostID[postID] = []models.Matching{
			{ID: 1, PostID: postID, MatchingStatus: models.MatchingStatusPending},
			{ID: 2, PostID: postID, MatchingStatus: models.MatchingStatusDone},
		}
		matchings, err := service.GetPostMatchings(ctx, postID)
		require.NoError(t, err)
		assert.Len(t, matchings, 2)
	})
}

func TestStoreFailurePropagates(t *testing.T) {
	ctx := context.Background()
	service, postStore, _, _ := newTestService()

	storeErr := errors.New("connection reset")
	postStore.getErr = storeErr

	_, err := service.GetPost(ctx, 1)
	assert.ErrorIs(t, err, storeErr)
}
