package dto

import (
	"time"

	"github.com/buddybridge/backend/internal/app/models"
)

// --- Request DTOs ---

// PostRequest carries the full mutable field set of a post. The same shape
// is used for creation and update; update replaces every field it names and
// never touches id, author or createdAt.
type PostRequest struct {
	Title           string                `json:"title" binding:"required"`
	AssistanceType  models.AssistanceType `json:"assistanceType" binding:"required"`
	StartTime       time.Time             `json:"startTime" binding:"required"`
	EndTime         time.Time             `json:"endTime" binding:"required"`
	ScheduleType    models.ScheduleType   `json:"scheduleType" binding:"required"`
	ScheduleDetails string                `json:"scheduleDetails"`
	District        string                `json:"district" binding:"required"`
	Content         string                `json:"content" binding:"required"`
	PostType        models.PostType       `json:"postType" binding:"required,oneof=TAKER GIVER"`
}

// --- Response DTOs ---

// PostResponse is the full post projection: post fields, flattened
// schedule, author summary and the derived post status.
type PostResponse struct {
	ID              int64                 `json:"id" example:"1"`
	Author          MemberResponse        `json:"author"`
	Title           string                `json:"title" example:"Need a commute buddy"`
	AssistanceType  models.AssistanceType `json:"assistanceType" example:"COMMUTE"`
	StartTime       time.Time             `json:"startTime"`
	EndTime         time.Time             `json:"endTime"`
	ScheduleType    models.ScheduleType   `json:"scheduleType" example:"RECURRING"`
	ScheduleDetails string                `json:"scheduleDetails"`
	District        string                `json:"district" example:"Mapo-gu"`
	Content         string                `json:"content"`
	PostType        models.PostType       `json:"postType" example:"TAKER"`
	CreatedAt       time.Time             `json:"createdAt"`
	ModifiedAt      time.Time             `json:"modifiedAt"`
	PostStatus      models.PostStatus     `json:"postStatus" example:"RECRUITING"`
	DisabilityType  models.DisabilityType `json:"disabilityType" example:"VISUAL"`
}

// FromPost converts a post and its derived status to a PostResponse. The
// post's author must already be resolved.
func FromPost(post *models.Post, status models.PostStatus) PostResponse {
	resp := PostResponse{
		ID:              post.ID,
		Title:           post.Title,
		AssistanceType:  post.AssistanceType,
		StartTime:       post.Schedule.StartTime,
		EndTime:         post.Schedule.EndTime,
		ScheduleType:    post.Schedule.ScheduleType,
		ScheduleDetails: post.Schedule.ScheduleDetails,
		District:        post.District,
		Content:         post.Content,
		PostType:        post.PostType,
		CreatedAt:       post.CreatedAt,
		ModifiedAt:      post.ModifiedAt,
		PostStatus:      status,
		DisabilityType:  post.DisabilityType,
	}
	if post.Author != nil {
		resp.Author = FromMember(post.Author)
	}
	return resp
}

// PostCustomPage is the page envelope for post listings. IsLast compares
// the requested 1-based page against the total page count.
type PostCustomPage struct {
	Posts      []PostResponse `json:"posts"`
	TotalCount int64          `json:"totalCount" example:"25"`
	IsLast     bool           `json:"isLast" example:"false"`
}

// CreatePostResponse returns the id assigned to a newly created post
type CreatePostResponse struct {
	PostID int64 `json:"postId" example:"1"`
}
