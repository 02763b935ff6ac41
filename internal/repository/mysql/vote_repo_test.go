package mysql

import (
	"context"
	"testing"

	"cop_forum/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type voteFixture struct {
	db   *gorm.DB
	repo *VoteRepository
	user *model.User
	post *model.Post
}

func newVoteFixture(t *testing.T) *voteFixture {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	community := seedCommunity(t, db, user.ID, "golang")
	post := seedPost(t, db, user.ID, community.ID, "first")
	return &voteFixture{
		db:   db,
		repo: &VoteRepository{DB: db},
		user: user,
		post: post,
	}
}

func (f *voteFixture) counts(t *testing.T) (up, down int64) {
	t.Helper()
	var post model.Post
	require.NoError(t, f.db.First(&post, f.post.ID).Error)
	return post.Upvotes, post.Downvotes
}

func (f *voteFixture) rows(t *testing.T, upvote bool) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&model.Vote{}).
		Where("post_id = ? AND upvote = ?", f.post.ID, upvote).
		Count(&n).Error)
	return n
}

// checkInvariant 聚合计数必须等于票行数
func (f *voteFixture) checkInvariant(t *testing.T) {
	t.Helper()
	up, down := f.counts(t)
	assert.Equal(t, f.rows(t, true), up)
	assert.Equal(t, f.rows(t, false), down)
}

func TestVoteFirstUpvote(t *testing.T) {
	f := newVoteFixture(t)
	ctx := context.Background()

	require.NoError(t, f.repo.Apply(ctx, PostVotes, f.user.ID, f.post.ID, true))

	up, down := f.counts(t)
	assert.Equal(t, int64(1), up)
	assert.Equal(t, int64(0), down)

	state, err := f.repo.State(ctx, PostVotes, f.user.ID, f.post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, state)
	f.checkInvariant(t)
}

func TestVoteFirstDownvote(t *testing.T) {
	f := newVoteFixture(t)
	ctx := context.Background()

	// 首次 downvote 必须记 downvote 票，不能变成 upvote
	require.NoError(t, f.repo.Apply(ctx, PostVotes, f.user.ID, f.post.ID, false))

	up, down := f.counts(t)
	assert.Equal(t, int64(0), up)
	assert.Equal(t, int64(1), down)

	state, err := f.repo.State(ctx, PostVotes, f.user.ID, f.post.ID)
	require.NoError(t, err)
	assert.Equal(t, -1, state)
	f.checkInvariant(t)
}

func TestVoteToggleRemoves(t *testing.T) {
	f := newVoteFixture(t)
	ctx := context.Background()

	require.NoError(t, f.repo.Apply(ctx, PostVotes, f.user.ID, f.post.ID, true))
	require.NoError(t, f.repo.Apply(ctx, PostVotes, f.user.ID, f.post.ID, true))

	up, down := f.counts(t)
	assert.Equal(t, int64(0), up)
	assert.Equal(t, int64(0), down)

	state, err := f.repo.State(ctx, PostVotes, f.user.ID, f.post.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, state)
	f.checkInvariant(t)
}

func TestVoteFlip(t *testing.T) {
	f := newVoteFixture(t)
	ctx := context.Background()

	require.NoError(t, f.repo.Apply(ctx, PostVotes, f.user.ID, f.post.ID, true))
	require.NoError(t, f.repo.Apply(ctx, PostVotes, f.user.ID, f.post.ID, false))

	up, down := f.counts(t)
	assert.Equal(t, int64(0), up)
	assert.Equal(t, int64(1), down)

	state, err := f.repo.State(ctx, PostVotes, f.user.ID, f.post.ID)
	require.NoError(t, err)
	assert.Equal(t, -1, state)

	// 再翻回去
	require.NoError(t, f.repo.Apply(ctx, PostVotes, f.user.ID, f.post.ID, true))
	up, down = f.counts(t)
	assert.Equal(t, int64(1), up)
	assert.Equal(t, int64(0), down)
	f.checkInvariant(t)
}

func TestVoteSequenceKeepsInvariant(t *testing.T) {
	f := newVoteFixture(t)
	ctx := context.Background()

	// 任意操作序列之后，计数和票行都要对得上
	seq := []bool{true, false, false, true, true, false, true}
	for _, up := range seq {
		require.NoError(t, f.repo.Apply(ctx, PostVotes, f.user.ID, f.post.ID, up))
		f.checkInvariant(t)

		var rows int64
		require.NoError(t, f.db.Model(&model.Vote{}).
			Where("user_id = ? AND post_id = ?", f.user.ID, f.post.ID).
			Count(&rows).Error)
		assert.LessOrEqual(t, rows, int64(1), "一个用户对一个帖子最多一行票")
	}
}

func TestVoteTwoVoters(t *testing.T) {
	f := newVoteFixture(t)
	ctx := context.Background()
	bob := seedUser(t, f.db, "bob")

	require.NoError(t, f.repo.Apply(ctx, PostVotes, f.user.ID, f.post.ID, true))
	require.NoError(t, f.repo.Apply(ctx, PostVotes, bob.ID, f.post.ID, true))

	up, _ := f.counts(t)
	assert.Equal(t, int64(2), up)

	// bob 撤票不影响 alice 的票
	require.NoError(t, f.repo.Apply(ctx, PostVotes, bob.ID, f.post.ID, true))
	up, _ = f.counts(t)
	assert.Equal(t, int64(1), up)

	state, err := f.repo.State(ctx, PostVotes, f.user.ID, f.post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, state)
	f.checkInvariant(t)
}

func TestVoteTargetNotFound(t *testing.T) {
	f := newVoteFixture(t)
	ctx := context.Background()

	err := f.repo.Apply(ctx, PostVotes, f.user.ID, 9999, true)
	assert.ErrorIs(t, err, ErrTargetNotFound)

	// 失败的投票不能留下任何票行
	var n int64
	require.NoError(t, f.db.Model(&model.Vote{}).Count(&n).Error)
	assert.Equal(t, int64(0), n)
}

func TestVoteStateNoVote(t *testing.T) {
	f := newVoteFixture(t)

	state, err := f.repo.State(context.Background(), PostVotes, f.user.ID, f.post.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, state)
}

func TestCommentVotesSameMachine(t *testing.T) {
	f := newVoteFixture(t)
	ctx := context.Background()
	comment := seedComment(t, f.db, f.user.ID, f.post.ID, nil)

	require.NoError(t, f.repo.Apply(ctx, CommentVotes, f.user.ID, comment.ID, false))

	var got model.Comment
	require.NoError(t, f.db.First(&got, comment.ID).Error)
	assert.Equal(t, int64(0), got.Upvotes)
	assert.Equal(t, int64(1), got.Downvotes)

	// 翻转
	require.NoError(t, f.repo.Apply(ctx, CommentVotes, f.user.ID, comment.ID, true))
	require.NoError(t, f.db.First(&got, comment.ID).Error)
	assert.Equal(t, int64(1), got.Upvotes)
	assert.Equal(t, int64(0), got.Downvotes)

	// 评论票不碰帖子票表
	var n int64
	require.NoError(t, f.db.Model(&model.Vote{}).Count(&n).Error)
	assert.Equal(t, int64(0), n)

	state, err := f.repo.State(ctx, CommentVotes, f.user.ID, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, state)
}

func TestVoteDuplicateRowRejected(t *testing.T) {
	f := newVoteFixture(t)

	require.NoError(t, f.db.Create(&model.Vote{
		UserID: f.user.ID, PostID: f.post.ID, Upvote: true,
	}).Error)
	err := f.db.Create(&model.Vote{
		UserID: f.user.ID, PostID: f.post.ID, Upvote: false,
	}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
