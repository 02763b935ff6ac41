package model

import "time"

type Post struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Content     string    `gorm:"type:text" json:"content"`
	DisplayPic  string    `gorm:"size:255" json:"display_pic"`
	Upvotes     int64     `gorm:"not null;default:0" json:"upvotes"`
	Downvotes   int64     `gorm:"not null;default:0" json:"downvotes"`
	ViewCount   int64     `gorm:"not null;default:0" json:"view_count"`
	IsDeleted   bool      `gorm:"not null;default:false" json:"is_deleted"`
	UserID      uint64    `gorm:"not null;index" json:"user_id"`
	CommunityID uint64    `gorm:"not null;index" json:"community_id"`
	CreatedAt   time.Time `json:"time_created"`
	UpdatedAt   time.Time `json:"-"`
}

func (Post) TableName() string { return "posts" }
