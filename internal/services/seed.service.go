package services

import (
	"context"

	"github.com/mobileshop/pos/internal/model"
	"github.com/mobileshop/pos/pkg/logger"
)

// First-run defaults. The admin account and these settings must exist before
// the first login screen is shown.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
	DefaultAdminPIN      = "1234"
)

var defaultSettings = []model.Setting{
	{Key: model.SettingShopName, Value: "Mobile Shop"},
	{Key: model.SettingCurrency, Value: "PKR"},
	{Key: model.SettingTaxEnabled, Value: "0"},
	{Key: model.SettingTaxRate, Value: "0"},
}

type SeedUserRepository interface {
	CountByUsername(ctx context.Context, username string) (int64, error)
	Create(ctx context.Context, username, password, pin string) error
}

type SeedSettingRepository interface {
	SetIfAbsent(ctx context.Context, key, value string) error
}

// SeedService makes the store usable on first run. Running it again against
// an initialized store is a no-op: it never duplicates the admin account and
// never overwrites edited settings.
type SeedService struct {
	users    SeedUserRepository
	settings SeedSettingRepository
}

func NewSeedService(users SeedUserRepository, settings SeedSettingRepository) *SeedService {
	return &SeedService{
		users:    users,
		settings: settings,
	}
}

func (s *SeedService) EnsureDefaults(ctx context.Context) error {
	count, err := s.users.CountByUsername(ctx, DefaultAdminUsername)
	if err != nil {
		return err
	}
	if count == 0 {
		if err := s.users.Create(ctx, DefaultAdminUsername, DefaultAdminPassword, DefaultAdminPIN); err != nil {
			return err
		}
		logger.Info("seeded default admin account")
	}

	for _, setting := range defaultSettings {
		if err := s.settings.SetIfAbsent(ctx, setting.Key, setting.Value); err != nil {
			return err
		}
	}
	return nil
}
