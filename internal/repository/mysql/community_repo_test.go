package mysql

import (
	"testing"

	"cop_forum/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateCommunityAtomic(t *testing.T) {
	db := newTestDB(t)
	repo := &CommunityRepository{DB: db}
	alice := seedUser(t, db, "alice")

	community := &model.Community{Name: "golang", AdminID: alice.ID, CreatorID: alice.ID}
	require.NoError(t, repo.Create(community))
	require.NotZero(t, community.ID)

	// 创建者自动订阅 + 自动版主
	members := &MemberRepository{DB: db}
	isMember, err := members.IsMember(alice.ID, community.ID)
	require.NoError(t, err)
	assert.True(t, isMember)

	isMod, err := members.IsModerator(alice.ID, community.ID)
	require.NoError(t, err)
	assert.True(t, isMod)

	got, err := repo.FindByID(community.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.AdminID)
	assert.Equal(t, alice.ID, got.CreatorID)
	assert.Equal(t, int64(1), got.SubCount)
}

func TestCreateCommunityDuplicateName(t *testing.T) {
	db := newTestDB(t)
	repo := &CommunityRepository{DB: db}
	alice := seedUser(t, db, "alice")

	require.NoError(t, repo.Create(&model.Community{Name: "golang", AdminID: alice.ID, CreatorID: alice.ID}))
	err := repo.Create(&model.Community{Name: "golang", AdminID: alice.ID, CreatorID: alice.ID})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// 重名失败不能留下半截数据
	var n int64
	require.NoError(t, db.Model(&model.Community{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestJoinIdempotent(t *testing.T) {
	db := newTestDB(t)
	communities := &CommunityRepository{DB: db}
	members := &MemberRepository{DB: db}

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	community := &model.Community{Name: "golang", AdminID: alice.ID, CreatorID: alice.ID}
	require.NoError(t, communities.Create(community))

	joined, err := members.Join(bob.ID, community.ID)
	require.NoError(t, err)
	assert.True(t, joined)

	// 重复 join：不报错、不加行、不加计数
	joined, err = members.Join(bob.ID, community.ID)
	require.NoError(t, err)
	assert.False(t, joined)

	var rows int64
	require.NoError(t, db.Model(&model.SubscribedCommunity{}).
		Where("user_id = ? AND community_id = ?", bob.ID, community.ID).
		Count(&rows).Error)
	assert.Equal(t, int64(1), rows)

	got, err := communities.FindByID(community.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.SubCount)
}

func TestLeaveIdempotent(t *testing.T) {
	db := newTestDB(t)
	communities := &CommunityRepository{DB: db}
	members := &MemberRepository{DB: db}

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	community := &model.Community{Name: "golang", AdminID: alice.ID, CreatorID: alice.ID}
	require.NoError(t, communities.Create(community))

	_, err := members.Join(bob.ID, community.ID)
	require.NoError(t, err)

	left, err := members.Leave(bob.ID, community.ID)
	require.NoError(t, err)
	assert.True(t, left)

	// 再退一次是 no-op
	left, err = members.Leave(bob.ID, community.ID)
	require.NoError(t, err)
	assert.False(t, left)

	got, err := communities.FindByID(community.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.SubCount)

	isMember, err := members.IsMember(bob.ID, community.ID)
	require.NoError(t, err)
	assert.False(t, isMember)
}

func TestListJoined(t *testing.T) {
	db := newTestDB(t)
	communities := &CommunityRepository{DB: db}
	members := &MemberRepository{DB: db}

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	c1 := &model.Community{Name: "golang", AdminID: alice.ID, CreatorID: alice.ID}
	c2 := &model.Community{Name: "rust", AdminID: alice.ID, CreatorID: alice.ID}
	require.NoError(t, communities.Create(c1))
	require.NoError(t, communities.Create(c2))

	_, err := members.Join(bob.ID, c2.ID)
	require.NoError(t, err)

	list, err := communities.ListJoined(bob.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, c2.ID, list[0].ID)

	// 创建者两个都在
	list, err = communities.ListJoined(alice.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
