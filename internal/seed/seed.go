package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/buddybridge/backend/internal/app/models"
	appRepos "github.com/buddybridge/backend/internal/app/repositories"
	"github.com/buddybridge/backend/internal/pkg/apperrors"
	"github.com/buddybridge/backend/internal/pkg/auth"
)

// CreateDefaultData creates demo members if they don't exist. Errors are
// collected and reported but do not abort startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	memberRepo := appRepos.NewMemberRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (members)...")

	defaults := []struct {
		member   appModels.Member
		password string
	}{
		{
			member: appModels.Member{
				Email:          "minsu@buddybridge.kr",
				Name:           "Kim Minsu",
				Nickname:       "minsu",
				Age:            25,
				Gender:         appModels.GenderMale,
				DisabilityType: appModels.DisabilityTypeVisual,
			},
			password: "buddybridge1!",
		},
		{
			member: appModels.Member{
				Email:          "jiyoung@buddybridge.kr",
				Name:           "Lee Jiyoung",
				Nickname:       "jiyoung",
				Age:            28,
				Gender:         appModels.GenderFemale,
				DisabilityType: appModels.DisabilityTypeEtc,
			},
			password: "buddybridge1!",
		},
	}

	var finalErr error
	for _, d := range defaults {
		hashed, err := auth.HashPassword(d.password)
		if err != nil {
			lgr.Error().Err(err).Str("email", d.member.Email).Msg("Error hashing default member password")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		member := d.member
		member.Password = hashed

		id, err := memberRepo.Create(ctx, &member)
		switch {
		case errors.Is(err, apperrors.ErrEmailAlreadyExists):
			lgr.Debug().Str("email", member.Email).Msg("Default member already exists")
		case err != nil:
			lgr.Error().Err(err).Str("email", member.Email).Msg("Error creating default member")
			finalErr = errors.Join(finalErr, err)
		default:
			lgr.Info().Int64("memberId", id).Str("email", member.Email).Msg("Default member created")
		}
	}

	return finalErr
}
