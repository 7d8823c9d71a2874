package dto

import "github.com/buddybridge/backend/internal/app/models"

// MemberResponse is the member projection embedded in post responses and
// returned by the profile endpoint.
type MemberResponse struct {
	MemberID        int64                 `json:"memberId" example:"1"`
	Name            string                `json:"name" example:"Kim Minsu"`
	Nickname        string                `json:"nickname" example:"minsu"`
	ProfileImageURL *string               `json:"profileImageUrl,omitempty"`
	Email           string                `json:"email" example:"member@buddybridge.kr"`
	Age             int                   `json:"age" example:"25"`
	Gender          models.Gender         `json:"gender" example:"MALE"`
	DisabilityType  models.DisabilityType `json:"disabilityType" example:"VISUAL"`
}

// FromMember converts a models.Member to a MemberResponse
func FromMember(member *models.Member) MemberResponse {
	return MemberResponse{
		MemberID:        member.ID,
		Name:            member.Name,
		Nickname:        member.Nickname,
		ProfileImageURL: member.ProfileImageURL,
		Email:           member.Email,
		Age:             member.Age,
		Gender:          member.Gender,
		DisabilityType:  member.DisabilityType,
	}
}
