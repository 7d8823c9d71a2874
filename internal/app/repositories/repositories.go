package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	MemberRepository   *MemberRepository
	PostRepository     *PostRepository
	MatchingRepository *MatchingRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		MemberRepository:   NewMemberRepository(db),
		PostRepository:     NewPostRepository(db),
		MatchingRepository: NewMatchingRepository(db),
	}
}
