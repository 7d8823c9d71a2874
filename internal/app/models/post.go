package models

import "time"

// Schedule is the assistance time window embedded in a post. The start and
// end times belong exclusively to their post; schedules are never shared.
type Schedule struct {
	StartTime       time.Time    `json:"startTime" db:"start_time"`
	EndTime         time.Time    `json:"endTime" db:"end_time"`
	ScheduleType    ScheduleType `json:"scheduleType" db:"schedule_type" example:"RECURRING"`
	ScheduleDetails string       `json:"scheduleDetails" db:"schedule_details" example:"Every weekday morning"`
}

// Post defines the assistance post model based on the 'posts' table
type Post struct {
	ID             int64          `json:"id" db:"id" example:"1"`
	AuthorID       int64          `json:"authorId" db:"author_id"`
	Title          string         `json:"title" db:"title" example:"Need a commute buddy"`
	Content        string         `json:"content" db:"content"`
	AssistanceType AssistanceType `json:"assistanceType" db:"assistance_type" example:"COMMUTE"`
	District       string         `json:"district" db:"district" example:"Mapo-gu"`
	PostType       PostType       `json:"postType" db:"post_type" example:"TAKER"`
	DisabilityType DisabilityType `json:"disabilityType" db:"disability_type" example:"VISUAL"`
	Schedule       Schedule       `json:"schedule"`
	CreatedAt      time.Time      `json:"createdAt" db:"created_at"`
	ModifiedAt     time.Time      `json:"modifiedAt" db:"modified_at"`

	// Author is resolved eagerly by the repository; no lazy loading.
	Author *Member `json:"author,omitempty"`
}
