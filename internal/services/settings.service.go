package services

import (
	"context"
	"errors"
	"strconv"

	"github.com/mobileshop/pos/internal/model"
	"github.com/mobileshop/pos/internal/repository"
)

type SettingRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	SetIfAbsent(ctx context.Context, key, value string) error
	All(ctx context.Context) (map[string]string, error)
}

// SettingsService exposes the settings table through typed accessors; every
// value is stored as text and parsed on the way out.
type SettingsService struct {
	repo SettingRepository
}

func NewSettingsService(repo SettingRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

func (s *SettingsService) Get(ctx context.Context, key string) (string, error) {
	return s.repo.Get(ctx, key)
}

func (s *SettingsService) Set(ctx context.Context, key, value string) error {
	return s.repo.Set(ctx, key, value)
}

func (s *SettingsService) All(ctx context.Context) (map[string]string, error) {
	return s.repo.All(ctx)
}

func (s *SettingsService) ShopName(ctx context.Context) (string, error) {
	return s.getOrDefault(ctx, model.SettingShopName, "Mobile Shop")
}

func (s *SettingsService) Currency(ctx context.Context) (string, error) {
	return s.getOrDefault(ctx, model.SettingCurrency, "PKR")
}

func (s *SettingsService) TaxEnabled(ctx context.Context) (bool, error) {
	v, err := s.getOrDefault(ctx, model.SettingTaxEnabled, "0")
	if err != nil {
		return false, err
	}
	return v == "1", nil
}

func (s *SettingsService) TaxRate(ctx context.Context) (float64, error) {
	v, err := s.getOrDefault(ctx, model.SettingTaxRate, "0")
	if err != nil {
		return 0, err
	}
	rate, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, nil
	}
	return rate, nil
}

func (s *SettingsService) getOrDefault(ctx context.Context, key, fallback string) (string, error) {
	v, err := s.repo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrSettingNotFound) {
			return fallback, nil
		}
		return "", err
	}
	return v, nil
}
