package mysql

import (
	"cop_forum/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB 打开连接。TranslateError 把驱动的唯一键冲突统一成 gorm.ErrDuplicatedKey，
// 上层据此区分 Conflict 和其它存储错误。
func InitDB(dsn string) error {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return err
	}
	DB = db
	return nil
}

// AutoMigrate 自动建表（开发阶段 OK）
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Community{},
		&model.SubscribedCommunity{},
		&model.Moderator{},
		&model.Post{},
		&model.Comment{},
		&model.Vote{},
		&model.CommentVote{},
		&model.SavedPost{},
		&model.SavedComment{},
		&model.History{},
		&model.View{},
		&model.FollowUser{},
		&model.BlockedUser{},
	)
}
