package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/buddybridge/backend/internal/app/models"
	"github.com/buddybridge/backend/internal/app/models/dto"
	"github.com/buddybridge/backend/internal/pkg/apperrors"
	"github.com/buddybridge/backend/internal/pkg/auth"
)

// AuthService handles member registration and login
type AuthService struct {
	memberRepo MemberStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(memberRepo MemberStore, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		memberRepo: memberRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a new member and returns the assigned id
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (int64, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return 0, fmt.Errorf("error hashing password: %w", err)
	}

	member := &models.Member{
		Email:          req.Email,
		Password:       hashed,
		Name:           req.Name,
		Nickname:       req.Nickname,
		Age:            req.Age,
		Gender:         req.Gender,
		DisabilityType: req.DisabilityType,
	}

	id, err := s.memberRepo.Create(ctx, member)
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("memberId", id).Str("email", req.Email).Msg("Member registered")
	return id, nil
}

// Login verifies credentials and issues an access token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	member, err := s.memberRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error retrieving member: %w", err)
	}
	if member == nil || !auth.CheckPassword(member.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(member)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}
