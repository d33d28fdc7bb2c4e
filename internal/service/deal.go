package service

import (
	"fmt"
	"time"

	"github.com/alfieapp/quarterly/internal/model"
	"github.com/alfieapp/quarterly/internal/repository"
	"github.com/alfieapp/quarterly/internal/validation"
	"github.com/google/uuid"
)

type DealService struct {
	repo repository.DealRepository
}

func NewDealService(repo repository.DealRepository) *DealService {
	return &DealService{repo: repo}
}

// Deals lists the quarter's deals, newest first.
func (s *DealService) Deals(userID, quarterID string) ([]*model.Deal, error) {
	return s.repo.ByQuarter(userID, quarterID)
}

func (s *DealService) Create(userID, quarterID, name string, value float64) (*model.Deal, error) {
	err := validation.ValidateDeal(name, value)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	deal := &model.Deal{
		ID:        uuid.New().String(),
		UserID:    userID,
		QuarterID: quarterID,
		Name:      name,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.repo.Create(deal)
	if err != nil {
		return nil, fmt.Errorf("failed to create deal: %w", err)
	}

	return deal, nil
}

// UpdateValue edits a deal's monetary value in place.
func (s *DealService) UpdateValue(userID, quarterID, dealID string, value float64) (*model.Deal, error) {
	if value < 0 {
		return nil, fmt.Errorf("deal value must not be negative")
	}

	err := s.repo.UpdateValue(userID, quarterID, dealID, value)
	if err != nil {
		return nil, err
	}

	return s.repo.ByID(userID, quarterID, dealID)
}

func (s *DealService) Delete(userID, quarterID, dealID string) error {
	return s.repo.Delete(userID, quarterID, dealID)
}
