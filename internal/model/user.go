package model

import "time"

type User struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	Username   string    `gorm:"uniqueIndex;size:32;not null" json:"username"`
	Email      string    `gorm:"size:64" json:"email"`
	Password   string    `gorm:"size:255;not null" json:"-"`
	DisplayPic string    `gorm:"size:255" json:"display_pic"`
	LastLogin  time.Time `json:"last_login"`
	CreatedAt  time.Time `json:"time_joined"`
	UpdatedAt  time.Time `json:"-"`
}

func (User) TableName() string { return "users" }
