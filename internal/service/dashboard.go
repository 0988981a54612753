package service

import (
	"context"

	"github.com/careerpilot/careerpilot-go/internal/model"
	"github.com/careerpilot/careerpilot-go/internal/repository"
)

const recentMessageCount = 5

// DashboardService assembles the landing-view aggregate.
type DashboardService struct {
	repo *repository.DashboardRepository
	chat ChatStore
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(repo *repository.DashboardRepository, chat ChatStore) *DashboardService {
	return &DashboardService{repo: repo, chat: chat}
}

// Get returns the user's dashboard counts and most recent chat messages.
func (s *DashboardService) Get(ctx context.Context, userID int64) (*model.Dashboard, error) {
	dashboard, err := s.repo.Counts(ctx, userID)
	if err != nil {
		return nil, classifyStoreErr(err)
	}

	recent, err := s.chat.Recent(ctx, userID, recentMessageCount)
	if err != nil {
		return nil, classifyStoreErr(err)
	}
	if recent == nil {
		recent = []model.ChatMessage{}
	}
	dashboard.RecentMessages = recent

	return dashboard, nil
}
