package service

import (
	"context"
	"errors"
	"fmt"

	"payrates/internal/model"
	"payrates/internal/repository"

	"gorm.io/gorm"
)

type AwardResponse struct {
	ID            int     `json:"id"`
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	IndustryCode  string  `json:"industry_code"`
	IndustryName  string  `json:"industry_name"`
	OperativeFrom string  `json:"operative_from"`
	OperativeTo   *string `json:"operative_to"`
	VersionNumber int     `json:"version_number"`
	IsActive      bool    `json:"is_active"`
}

type AwardService interface {
	ListAwards(ctx context.Context, page, limit int, activeOnly bool) ([]AwardResponse, int64, error)
	GetAward(ctx context.Context, id int) (AwardResponse, error)
}

type awardService struct {
	awardRepo repository.AwardRepository
}

func NewAwardService(awardRepo repository.AwardRepository) AwardService {
	return &awardService{awardRepo: awardRepo}
}

func (s *awardService) ListAwards(ctx context.Context, page, limit int, activeOnly bool) ([]AwardResponse, int64, error) {
	awards, total, err := s.awardRepo.List(ctx, page, limit, activeOnly)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list awards: %w", err)
	}

	res := make([]AwardResponse, 0, len(awards))
	for _, a := range awards {
		res = append(res, toAwardResponse(a))
	}
	return res, total, nil
}

func (s *awardService) GetAward(ctx context.Context, id int) (AwardResponse, error) {
	award, err := s.awardRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AwardResponse{}, invalidInput("Award %d not found", id)
		}
		return AwardResponse{}, fmt.Errorf("failed to load award: %w", err)
	}
	return toAwardResponse(*award), nil
}

func toAwardResponse(a model.Award) AwardResponse {
	res := AwardResponse{
		ID:            a.ID,
		Code:          a.Code,
		Name:          a.Name,
		OperativeFrom: formatDate(a.OperativeFrom),
		VersionNumber: a.VersionNumber,
		IsActive:      a.IsActive,
	}
	if a.Industry != nil {
		res.IndustryCode = a.Industry.Code
		res.IndustryName = a.Industry.Name
	}
	if a.OperativeTo != nil {
		to := formatDate(*a.OperativeTo)
		res.OperativeTo = &to
	}
	return res
}
