package services

import (
	"context"
	"fmt"

	"github.com/buddybridge/backend/internal/app/models/dto"
	"github.com/buddybridge/backend/internal/pkg/apperrors"
)

// MemberService handles member read operations
type MemberService struct {
	memberRepo MemberStore
}

// NewMemberService creates a new member service instance
func NewMemberService(memberRepo MemberStore) *MemberService {
	return &MemberService{memberRepo: memberRepo}
}

// GetMember retrieves a member summary by id
func (s *MemberService) GetMember(ctx context.Context, memberID int64) (*dto.MemberResponse, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving member: %w", err)
	}
	if member == nil {
		return nil, apperrors.NewMemberNotFoundError("member does not exist")
	}

	resp := dto.FromMember(member)
	return &resp, nil
}
