package repository

import (
	"github.com/mobileshop/pos/internal/model"
)

type UserEntity struct {
	ID        int64   `db:"id"         gorm:"primaryKey;autoIncrement;column:id"`
	Username  string  `db:"username"   gorm:"column:username;not null;unique"`
	Password  string  `db:"password"   gorm:"column:password;not null"`
	PIN       *string `db:"pin"        gorm:"column:pin"`
	AutoLogin int     `db:"auto_login" gorm:"column:auto_login;not null;default:0"`
}

func (UserEntity) TableName() string {
	return "users"
}

func toUserModel(e *UserEntity) *model.User {
	if e == nil {
		return nil
	}
	return &model.User{
		ID:        e.ID,
		Username:  e.Username,
		Password:  e.Password,
		PIN:       deref(e.PIN),
		AutoLogin: e.AutoLogin != 0,
	}
}
