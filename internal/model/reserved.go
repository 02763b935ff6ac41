package model

import "time"

// 预留关系表：建表占位，当前没有任何接口操作它们。

type SavedPost struct {
	ID        uint64 `gorm:"primaryKey"`
	UserID    uint64 `gorm:"not null;index"`
	PostID    uint64 `gorm:"not null;index"`
	CreatedAt time.Time
}

func (SavedPost) TableName() string { return "saved_posts" }

type SavedComment struct {
	ID        uint64 `gorm:"primaryKey"`
	UserID    uint64 `gorm:"not null;index"`
	CommentID uint64 `gorm:"not null;index"`
	CreatedAt time.Time
}

func (SavedComment) TableName() string { return "saved_comments" }

type History struct {
	ID        uint64 `gorm:"primaryKey"`
	UserID    uint64 `gorm:"not null;index"`
	PostID    uint64 `gorm:"not null;index"`
	CreatedAt time.Time
}

func (History) TableName() string { return "history" }

type View struct {
	ID        uint64 `gorm:"primaryKey"`
	UserID    uint64 `gorm:"not null;index"`
	PostID    uint64 `gorm:"not null;index"`
	CreatedAt time.Time
}

func (View) TableName() string { return "views" }

type FollowUser struct {
	ID        uint64 `gorm:"primaryKey"`
	Follower  uint64 `gorm:"not null;index"`
	Following uint64 `gorm:"not null;index"`
	CreatedAt time.Time
}

func (FollowUser) TableName() string { return "follow_users" }

type BlockedUser struct {
	ID        uint64 `gorm:"primaryKey"`
	BlockerID uint64 `gorm:"not null;index"`
	BlockedID uint64 `gorm:"not null;index"`
	CreatedAt time.Time
}

func (BlockedUser) TableName() string { return "blocked_users" }
