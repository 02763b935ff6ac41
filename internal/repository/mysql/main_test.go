package mysql

import (
	"testing"

	"cop_forum/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB 内存 sqlite，限制单连接避免 :memory: 按连接隔离
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, AutoMigrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := &model.User{Username: username, Password: "x"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedCommunity(t *testing.T, db *gorm.DB, creatorID uint64, name string) *model.Community {
	t.Helper()
	community := &model.Community{Name: name, AdminID: creatorID, CreatorID: creatorID}
	require.NoError(t, db.Create(community).Error)
	return community
}

func seedPost(t *testing.T, db *gorm.DB, userID, communityID uint64, title string) *model.Post {
	t.Helper()
	post := &model.Post{Title: title, UserID: userID, CommunityID: communityID}
	require.NoError(t, db.Create(post).Error)
	return post
}

func seedComment(t *testing.T, db *gorm.DB, userID, postID uint64, parentID *uint64) *model.Comment {
	t.Helper()
	comment := &model.Comment{Content: "c", UserID: userID, PostID: postID, ParentID: parentID}
	require.NoError(t, db.Create(comment).Error)
	return comment
}
