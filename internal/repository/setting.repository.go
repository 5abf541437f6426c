package repository

import (
	"context"
	"errors"

	"github.com/mobileshop/pos/pkg/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrSettingNotFound = errors.New("setting not found")

type SettingRepository struct {
	*sqlite.DB
}

func NewSettingRepository(db *sqlite.DB) *SettingRepository {
	return &SettingRepository{
		db,
	}
}

func (r *SettingRepository) Get(ctx context.Context, key string) (string, error) {
	var entity SettingEntity
	err := r.Read(ctx).Where("key = ?", key).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrSettingNotFound
		}
		return "", err
	}
	return entity.Value, nil
}

// Set upserts by key.
func (r *SettingRepository) Set(ctx context.Context, key, value string) error {
	return r.Write(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&SettingEntity{Key: key, Value: value}).Error
}

// SetIfAbsent inserts only when the key is missing; existing values win.
// Used by the first-run seed so re-running never overwrites operator edits.
func (r *SettingRepository) SetIfAbsent(ctx context.Context, key, value string) error {
	return r.Write(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoNothing: true,
		}).
		Create(&SettingEntity{Key: key, Value: value}).Error
}

func (r *SettingRepository) All(ctx context.Context) (map[string]string, error) {
	var entities []*SettingEntity
	if err := r.Read(ctx).Find(&entities).Error; err != nil {
		return nil, err
	}
	settings := make(map[string]string, len(entities))
	for _, e := range entities {
		settings[e.Key] = e.Value
	}
	return settings, nil
}
