package model

type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Password  string `json:"-"`
	PIN       string `json:"-"`
	AutoLogin bool   `json:"auto_login"`
}
