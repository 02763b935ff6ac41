package model

import "time"

// Vote 帖子投票，(user_id, post_id) 唯一。
// 唯一索引兜底并发：同一对重复插入会触发冲突回滚，而不是双计数。
type Vote struct {
	ID        uint64 `gorm:"primaryKey" json:"id"`
	UserID    uint64 `gorm:"not null;index;uniqueIndex:uk_user_post" json:"user_id"`
	PostID    uint64 `gorm:"not null;index;uniqueIndex:uk_user_post" json:"post_id"`
	Upvote    bool   `gorm:"not null" json:"upvote"`
	CreatedAt time.Time
}

func (Vote) TableName() string { return "votes" }

// CommentVote 评论投票，(user_id, comment_id) 唯一
type CommentVote struct {
	ID        uint64 `gorm:"primaryKey" json:"id"`
	UserID    uint64 `gorm:"not null;index;uniqueIndex:uk_user_comment" json:"user_id"`
	CommentID uint64 `gorm:"not null;index;uniqueIndex:uk_user_comment" json:"comment_id"`
	Upvote    bool   `gorm:"not null" json:"upvote"`
	CreatedAt time.Time
}

func (CommentVote) TableName() string { return "comment_votes" }
