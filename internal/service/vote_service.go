package service

import (
	"context"
	"errors"

	"cop_forum/internal/repository/mysql"

	"gorm.io/gorm"
)

// VoteService 帖子和评论共用一套投票状态机，只是 Votable 不同
type VoteService struct {
	votes  *mysql.VoteRepository
	events *EventPublisher
}

func NewVoteService(db *gorm.DB, events *EventPublisher) *VoteService {
	return &VoteService{
		votes:  &mysql.VoteRepository{DB: db},
		events: events,
	}
}

func (s *VoteService) UpvotePost(ctx context.Context, userID, postID uint64) error {
	return s.apply(ctx, mysql.PostVotes, userID, postID, true, "post_vote")
}

func (s *VoteService) DownvotePost(ctx context.Context, userID, postID uint64) error {
	return s.apply(ctx, mysql.PostVotes, userID, postID, false, "post_vote")
}

func (s *VoteService) PostVoteState(ctx context.Context, userID, postID uint64) (int, error) {
	return s.votes.State(ctx, mysql.PostVotes, userID, postID)
}

func (s *VoteService) UpvoteComment(ctx context.Context, userID, commentID uint64) error {
	return s.apply(ctx, mysql.CommentVotes, userID, commentID, true, "comment_vote")
}

func (s *VoteService) DownvoteComment(ctx context.Context, userID, commentID uint64) error {
	return s.apply(ctx, mysql.CommentVotes, userID, commentID, false, "comment_vote")
}

func (s *VoteService) CommentVoteState(ctx context.Context, userID, commentID uint64) (int, error) {
	return s.votes.State(ctx, mysql.CommentVotes, userID, commentID)
}

func (s *VoteService) apply(ctx context.Context, v mysql.Votable, userID, targetID uint64, up bool, event string) error {
	var err error
	// 并发首投撞唯一索引时事务会整体回滚，重试一次让后到的请求
	// 按“已有票”的分支正常转移
	for attempt := 0; attempt < 2; attempt++ {
		err = s.votes.Apply(ctx, v, userID, targetID, up)
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			break
		}
	}
	if errors.Is(err, mysql.ErrTargetNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	s.events.Publish(ctx, event, userID, targetID)
	return nil
}
