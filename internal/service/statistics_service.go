package service

import (
	"context"
	"time"

	"payrates/internal/model"
	"payrates/internal/repository"
)

type StatisticsService interface {
	// GetRuleStatistics summarizes the computed rules effective at asOf (today when nil).
	GetRuleStatistics(ctx context.Context, asOf *time.Time) (model.RuleStatisticsResponse, error)
}

type statisticsService struct {
	statsRepo repository.StatisticsRepository
	clock     Clock
}

func NewStatisticsService(statsRepo repository.StatisticsRepository, clock Clock) StatisticsService {
	return &statisticsService{statsRepo: statsRepo, clock: clock}
}

func (s *statisticsService) GetRuleStatistics(ctx context.Context, asOf *time.Time) (model.RuleStatisticsResponse, error) {
	date := resolveDate(s.clock, asOf)

	awards, err := s.statsRepo.RuleStatistics(ctx, date)
	if err != nil {
		return model.RuleStatisticsResponse{}, err
	}

	response := model.RuleStatisticsResponse{
		AsOf:          formatDate(date),
		AwardsCovered: len(awards),
		Awards:        awards,
	}
	if response.Awards == nil {
		response.Awards = []model.AwardRuleStatistics{}
	}
	for _, a := range awards {
		response.TotalRules += a.RuleCount
	}

	return response, nil
}
