package service

import (
	"context"

	"github.com/ByPavel22/ByPavel22Bot/internal/model"
	"github.com/ByPavel22/ByPavel22Bot/internal/repository"
)

// recentUsersLimit caps the "recent users" section of the stats summary.
const recentUsersLimit = 5

// Stats is an aggregate snapshot of bot usage.
type Stats struct {
	TotalUsers    int64
	TotalMessages int64
	Recent        []model.User // newest first
}

// StatsService builds usage summaries for the administrator.
type StatsService struct {
	users    *repository.UserRepository
	messages *repository.MessageRepository
	admin    AdminGate
}

func NewStatsService(users *repository.UserRepository, messages *repository.MessageRepository, admin AdminGate) *StatsService {
	return &StatsService{users: users, messages: messages, admin: admin}
}

// Stats returns usage counters and the most recently registered users.
// Non-administrators get ErrUnauthorized.
func (s *StatsService) Stats(ctx context.Context, requesterID int64) (Stats, error) {
	if !s.admin.IsAdmin(requesterID) {
		return Stats{}, ErrUnauthorized
	}

	var stats Stats
	var err error

	if stats.TotalUsers, err = s.users.Count(ctx); err != nil {
		return Stats{}, err
	}
	if stats.TotalMessages, err = s.messages.Count(ctx); err != nil {
		return Stats{}, err
	}
	if stats.Recent, err = s.users.ListRecent(ctx, recentUsersLimit); err != nil {
		return Stats{}, err
	}

	return stats, nil
}
