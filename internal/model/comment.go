package model

import "time"

type Comment struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Upvotes   int64     `gorm:"not null;default:0" json:"upvotes"`
	Downvotes int64     `gorm:"not null;default:0" json:"downvotes"`
	IsDeleted bool      `gorm:"not null;default:false" json:"is_deleted"`
	UserID    uint64    `gorm:"not null;index" json:"user_id"`
	PostID    uint64    `gorm:"not null;index" json:"post_id"`
	ParentID  *uint64   `gorm:"index" json:"parent_comment"` // null = 顶层评论
	CreatedAt time.Time `json:"time_created"`
	UpdatedAt time.Time `json:"-"`
}

func (Comment) TableName() string { return "comments" }
