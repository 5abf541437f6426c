package repository

import (
	"github.com/mobileshop/pos/internal/model"
)

type SettingEntity struct {
	Key   string `db:"key"   gorm:"primaryKey;column:key"`
	Value string `db:"value" gorm:"column:value;not null"`
}

func (SettingEntity) TableName() string {
	return "settings"
}

func toSettingModel(e *SettingEntity) *model.Setting {
	if e == nil {
		return nil
	}
	return &model.Setting{Key: e.Key, Value: e.Value}
}
