package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/buddybridge/backend/internal/app/models"
)

// postWithAuthorColumns selects a post row joined with its author so the
// mapping layer never has to resolve the member lazily.
var postWithAuthorColumns = []string{
	"p.id", "p.author_id", "p.title", "p.content", "p.assistance_type",
	"p.district", "p.post_type", "p.disability_type",
	"p.start_time", "p.end_time", "p.schedule_type", "p.schedule_details",
	"p.created_at", "p.modified_at",
	"m.id", "m.email", "m.name", "m.nickname", "m.profile_image_url",
	"m.age", "m.gender", "m.disability_type", "m.created_at", "m.modified_at",
}

// PostRepository handles database operations for assistance posts
type PostRepository struct {
	db *pgxpool.Pool
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{db: db}
}

// GetByID retrieves a post with its author. Returns (nil, nil) when the
// post does not exist.
func (r *PostRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	query := squirrel.Select(postWithAuthorColumns...).
		From("posts p").
		Join("members m ON m.id = p.author_id").
		Where("p.id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	row := r.db.QueryRow(ctx, sql, args...)
	post, err := scanPostWithAuthor(row, nil)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return post, nil
}

// GetPage retrieves one page of posts ordered by creation time in the given
// direction (ASC or DESC), optionally restricted to a post type, together
// with the total count of the filtered set.
func (r *PostRepository) GetPage(ctx context.Context, postType *models.PostType, offset uint64, limit int, direction string) ([]models.Post, int64, error) {
	query := squirrel.Select(postWithAuthorColumns...).
		Column("COUNT(*) OVER() AS total_count").
		From("posts p").
		Join("members m ON m.id = p.author_id").
		PlaceholderFormat(squirrel.Dollar)

	if postType != nil {
		query = query.Where("p.post_type = ?", *postType)
	}

	query = query.OrderBy("p.created_at " + direction).
		Limit(uint64(limit)).
		Offset(offset)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var posts []models.Post
	var total int64

	for rows.Next() {
		post, err := scanPostWithAuthor(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		posts = append(posts, *post)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	// An offset past the end yields no rows, so the window count never ran;
	// fetch the total separately so the caller still sees the full count.
	if len(posts) == 0 && offset > 0 {
		total, err = r.countPosts(ctx, postType)
		if err != nil {
			return nil, 0, err
		}
	}

	return posts, total, nil
}

// countPosts counts posts, optionally restricted to a post type
func (r *PostRepository) countPosts(ctx context.Context, postType *models.PostType) (int64, error) {
	query := squirrel.Select("COUNT(*)").
		From("posts p").
		PlaceholderFormat(squirrel.Dollar)

	if postType != nil {
		query = query.Where("p.post_type = ?", *postType)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return total, nil
}

// Create inserts a new post and returns the assigned id. Timestamps are
// stamped by the database.
func (r *PostRepository) Create(ctx context.Context, post *models.Post) (int64, error) {
	query := squirrel.Insert("posts").
		Columns("author_id", "title", "content", "assistance_type", "district",
			"post_type", "disability_type", "start_time", "end_time",
			"schedule_type", "schedule_details").
		Values(post.AuthorID, post.Title, post.Content, post.AssistanceType, post.District,
			post.PostType, post.DisabilityType, post.Schedule.StartTime, post.Schedule.EndTime,
			post.Schedule.ScheduleType, post.Schedule.ScheduleDetails).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return id, nil
}

// Update replaces the mutable fields of an existing post. The author and
// creation timestamp are never touched; modified_at is stamped by the
// database.
func (r *PostRepository) Update(ctx context.Context, post *models.Post) error {
	query := squirrel.Update("posts").
		Set("title", post.Title).
		Set("content", post.Content).
		Set("assistance_type", post.AssistanceType).
		Set("district", post.District).
		Set("post_type", post.PostType).
		Set("start_time", post.Schedule.StartTime).
		Set("end_time", post.Schedule.EndTime).
		Set("schedule_type", post.Schedule.ScheduleType).
		Set("schedule_details", post.Schedule.ScheduleDetails).
		Set("modified_at", squirrel.Expr("NOW()")).
		Where("id = ?", post.ID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("post not found with ID %d", post.ID)
	}

	return nil
}

// Delete permanently removes a post. Matchings referencing the post are
// left in place.
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("posts").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("post not found with ID %d", id)
	}

	return nil
}

// scanPostWithAuthor scans a joined post+member row. When total is non-nil
// the row is expected to carry a trailing total_count column.
func scanPostWithAuthor(row pgx.Row, total *int64) (*models.Post, error) {
	var post models.Post
	var author models.Member

	dest := []interface{}{
		&post.ID,
		&post.AuthorID,
		&post.Title,
		&post.Content,
		&post.AssistanceType,
		&post.District,
		&post.PostType,
		&post.DisabilityType,
		&post.Schedule.StartTime,
		&post.Schedule.EndTime,
		&post.Schedule.ScheduleType,
		&post.Schedule.ScheduleDetails,
		&post.CreatedAt,
		&post.ModifiedAt,
		&author.ID,
		&author.Email,
		&author.Name,
		&author.Nickname,
		&author.ProfileImageURL,
		&author.Age,
		&author.Gender,
		&author.DisabilityType,
		&author.CreatedAt,
		&author.ModifiedAt,
	}
	if total != nil {
		dest = append(dest, total)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	post.Author = &author
	return &post, nil
}
