package service

import (
	"testing"

	"cop_forum/internal/model"
	"cop_forum/internal/repository/mysql"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, mysql.AutoMigrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := &model.User{Username: username, Password: "x"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedCommunity(t *testing.T, db *gorm.DB, svc *CommunityService, creatorID uint64, name string) *model.Community {
	t.Helper()
	community, err := svc.Create(creatorID, name, "", "")
	require.NoError(t, err)
	return community
}
