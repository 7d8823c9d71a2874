package models

import "time"

// Matching pairs a post with a helper. Matchings are created and managed by
// the matching feature; this module only reads them by post id to derive
// the post status.
type Matching struct {
	ID             int64          `json:"id" db:"id"`
	PostID         int64          `json:"postId" db:"post_id"`
	GiverID        int64          `json:"giverId" db:"giver_id"`
	TakerID        int64          `json:"takerId" db:"taker_id"`
	MatchingStatus MatchingStatus `json:"matchingStatus" db:"matching_status" example:"PENDING"`
	CreatedAt      time.Time      `json:"createdAt" db:"created_at"`
	ModifiedAt     time.Time      `json:"modifiedAt" db:"modified_at"`
}
