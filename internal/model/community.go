package model

import "time"

type Community struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;size:50;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	DisplayPic  string    `gorm:"size:255" json:"display_pic"`
	IsBanned    bool      `gorm:"not null;default:false" json:"is_banned"`
	IsDeleted   bool      `gorm:"not null;default:false" json:"is_deleted"`
	SubCount    int64     `gorm:"not null;default:1" json:"sub_count"`
	AdminID     uint64    `gorm:"not null;index" json:"admin_id"`
	CreatorID   uint64    `gorm:"not null;index" json:"created_by_id"`
	CreatedAt   time.Time `json:"time_created"`
	UpdatedAt   time.Time `json:"-"`
}

func (Community) TableName() string { return "communities" }

// SubscribedCommunity 订阅关系，(user_id, community_id) 唯一，重复加入幂等
type SubscribedCommunity struct {
	ID          uint64 `gorm:"primaryKey" json:"id"`
	UserID      uint64 `gorm:"not null;index;uniqueIndex:uk_sub_user_community" json:"user_id"`
	CommunityID uint64 `gorm:"not null;index;uniqueIndex:uk_sub_user_community" json:"community_id"`
	CreatedAt   time.Time
}

func (SubscribedCommunity) TableName() string { return "subscribed_communities" }

// Moderator 版主记录，建社区时自动给创建者写一条
type Moderator struct {
	ID          uint64 `gorm:"primaryKey" json:"id"`
	UserID      uint64 `gorm:"not null;index;uniqueIndex:uk_mod_user_community" json:"user_id"`
	CommunityID uint64 `gorm:"not null;index;uniqueIndex:uk_mod_user_community" json:"community_id"`
	CreatedAt   time.Time
}

func (Moderator) TableName() string { return "moderators" }
