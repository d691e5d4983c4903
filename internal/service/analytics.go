package service

import (
	"github.com/zshield/zshield-api/internal/models"
	"github.com/zshield/zshield-api/internal/repository"
)

// Fixed demo baselines the live counters are added onto.
const (
	baselineTotalSwaps   = 150000
	baselinePrivateSwaps = 142000
	baselineActiveUsers  = 1250
)

// AnalyticsService computes the platform stats aggregate from live store
// counts layered over fixed accumulated baselines.
type AnalyticsService struct {
	swaps    *repository.SwapRepository
	sessions *repository.SessionRepository
}

// NewAnalyticsService creates the analytics service.
func NewAnalyticsService(swaps *repository.SwapRepository, sessions *repository.SessionRepository) *AnalyticsService {
	return &AnalyticsService{swaps: swaps, sessions: sessions}
}

// GetPlatformStats returns the platform statistics aggregate.
func (s *AnalyticsService) GetPlatformStats() models.PlatformStats {
	totalSwaps := s.swaps.Count()
	activeUsers := s.sessions.CountActive()

	return models.PlatformStats{
		TotalVolumeUSD:  "2,450,000",
		TotalSwaps:      baselineTotalSwaps + totalSwaps,
		PrivateSwaps:    baselinePrivateSwaps + totalSwaps*9/10,
		ActiveUsers24h:  baselineActiveUsers + activeUsers,
		AverageSwapTime: "45s",
		SuccessRate:     "99.8%",
		TVL:             "12,500,000",
		SupportedPairs:  45,
	}
}
