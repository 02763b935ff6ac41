package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostPagination(t *testing.T) {
	db := newTestDB(t)
	communities := NewCommunityService(db)
	posts := NewPostService(db, nil)

	alice := seedUser(t, db, "alice")
	community := seedCommunity(t, db, communities, alice.ID, "golang")

	ctx := context.Background()
	for i := 0; i < 25; i++ {
		_, err := posts.Create(ctx, alice.ID, community.ID, fmt.Sprintf("post %d", i), "", "")
		require.NoError(t, err)
	}

	// 第 0 页：最新 10 条，倒序
	list, pages, err := posts.ListByUser(alice.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), pages)
	require.Len(t, list, 10)
	assert.Equal(t, "post 24", list[0].Title)
	assert.Greater(t, list[0].ID, list[1].ID)

	// 最后一页是零头
	list, pages, err = posts.ListByUser(alice.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), pages)
	assert.Len(t, list, 5)

	// 越界页给空列表不报错
	list, pages, err = posts.ListByUser(alice.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), pages)
	assert.Empty(t, list)

	// 按社区分页与按用户同一套算法
	list, pages, err = posts.ListByCommunity(community.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), pages)
	assert.Len(t, list, 10)
}

func TestPostPagesExactMultiple(t *testing.T) {
	db := newTestDB(t)
	communities := NewCommunityService(db)
	posts := NewPostService(db, nil)

	alice := seedUser(t, db, "alice")
	community := seedCommunity(t, db, communities, alice.ID, "golang")

	ctx := context.Background()
	for i := 0; i < 20; i++ {
		_, err := posts.Create(ctx, alice.ID, community.ID, fmt.Sprintf("post %d", i), "", "")
		require.NoError(t, err)
	}

	_, pages, err := posts.ListByUser(alice.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), pages)

	// 没有帖子时 0 页
	bob := seedUser(t, db, "bob")
	list, pages, err := posts.ListByUser(bob.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), pages)
	assert.Empty(t, list)
}

func TestPostCreateUnknownCommunity(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostService(db, nil)
	alice := seedUser(t, db, "alice")

	_, err := posts.Create(context.Background(), alice.ID, 9999, "t", "", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostGetCountsView(t *testing.T) {
	db := newTestDB(t)
	communities := NewCommunityService(db)
	posts := NewPostService(db, nil)

	alice := seedUser(t, db, "alice")
	community := seedCommunity(t, db, communities, alice.ID, "golang")
	created, err := posts.Create(context.Background(), alice.ID, community.ID, "t", "body", "")
	require.NoError(t, err)

	_, err = posts.Get(created.ID)
	require.NoError(t, err)
	got, err := posts.Get(created.ID)
	require.NoError(t, err)
	// 第二次读到的是第一次读累计的浏览数
	assert.Equal(t, int64(1), got.ViewCount)

	_, err = posts.Get(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostUpdateOwnerOnly(t *testing.T) {
	db := newTestDB(t)
	communities := NewCommunityService(db)
	posts := NewPostService(db, nil)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	community := seedCommunity(t, db, communities, alice.ID, "golang")
	created, err := posts.Create(context.Background(), alice.ID, community.ID, "old", "body", "")
	require.NoError(t, err)

	err = posts.Update(bob.ID, created.ID, strPtr("new"), nil, nil)
	assert.ErrorIs(t, err, ErrNoPermission)

	// nil 字段不动
	require.NoError(t, posts.Update(alice.ID, created.ID, strPtr("new"), nil, nil))
	got, err := posts.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Title)
	assert.Equal(t, "body", got.Content)

	err = posts.Update(alice.ID, created.ID, strPtr(""), nil, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFeedFromSubscriptions(t *testing.T) {
	db := newTestDB(t)
	communities := NewCommunityService(db)
	posts := NewPostService(db, nil)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	c1 := seedCommunity(t, db, communities, alice.ID, "golang")
	c2 := seedCommunity(t, db, communities, alice.ID, "rust")

	ctx := context.Background()
	inC1, err := posts.Create(ctx, alice.ID, c1.ID, "in c1", "", "")
	require.NoError(t, err)
	_, err = posts.Create(ctx, alice.ID, c2.ID, "in c2", "", "")
	require.NoError(t, err)

	// bob 只订阅 c1，feed 里不能出现 c2 的帖子
	require.NoError(t, communities.Join(bob.ID, c1.ID))
	feed, err := posts.Feed(bob.ID)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, inC1.ID, feed[0].ID)

	// 创建者自动订阅，两个社区的帖子都在
	feed, err = posts.Feed(alice.ID)
	require.NoError(t, err)
	assert.Len(t, feed, 2)
}

func TestFeedLimitAndOrder(t *testing.T) {
	db := newTestDB(t)
	communities := NewCommunityService(db)
	posts := NewPostService(db, nil)

	alice := seedUser(t, db, "alice")
	community := seedCommunity(t, db, communities, alice.ID, "golang")

	ctx := context.Background()
	for i := 0; i < 25; i++ {
		_, err := posts.Create(ctx, alice.ID, community.ID, fmt.Sprintf("post %d", i), "", "")
		require.NoError(t, err)
	}

	feed, err := posts.Feed(alice.ID)
	require.NoError(t, err)
	require.Len(t, feed, FeedLimit)
	assert.Equal(t, "post 24", feed[0].Title)
	for i := 1; i < len(feed); i++ {
		assert.Greater(t, feed[i-1].ID, feed[i].ID)
	}
}

func strPtr(s string) *string { return &s }
