package services

import (
	"context"

	"turftrack/internal/dto"
	"turftrack/internal/repositories"

	"go.uber.org/zap"
)

type DashboardService struct {
	dashboardRepository repositories.DashboardRepositoryInterface
	logger              *zap.Logger
}

func NewDashboardService(dashboardRepository repositories.DashboardRepositoryInterface, logger *zap.Logger) *DashboardService {
	return &DashboardService{dashboardRepository: dashboardRepository, logger: logger}
}

func (s *DashboardService) GetStats(ctx context.Context, userID uint64) (*dto.DashboardStatsDTO, error) {
	stats, err := s.dashboardRepository.GetStats(ctx, userID)
	if err != nil {
		s.logger.Error("failed to load dashboard stats", zap.Uint64("userId", userID), zap.Error(err))
		return nil, err
	}
	return stats, nil
}
