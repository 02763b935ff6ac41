package service

import (
	"context"
	"errors"

	"cop_forum/internal/model"
	"cop_forum/internal/repository/mysql"

	"gorm.io/gorm"
)

const (
	// PageSize 列表接口固定页大小，页码从 0 开始
	PageSize = 10
	// FeedLimit feed 不分页，固定取最新 20 条
	FeedLimit = 20
)

// pageCount pages = ceil(count / PageSize)
func pageCount(count int64) int64 {
	return (count + PageSize - 1) / PageSize
}

type PostService struct {
	repo        *mysql.PostRepository
	communities *mysql.CommunityRepository
	events      *EventPublisher
}

func NewPostService(db *gorm.DB, events *EventPublisher) *PostService {
	return &PostService{
		repo:        &mysql.PostRepository{DB: db},
		communities: &mysql.CommunityRepository{DB: db},
		events:      events,
	}
}

func (s *PostService) Create(ctx context.Context, userID, communityID uint64, title, content, displayPic string) (*model.Post, error) {
	if title == "" {
		return nil, ErrInvalidInput
	}
	if _, err := s.communities.FindByID(communityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	post := &model.Post{
		Title:       title,
		Content:     content,
		DisplayPic:  displayPic,
		UserID:      userID,
		CommunityID: communityID,
	}
	if err := s.repo.Create(post); err != nil {
		return nil, err
	}
	s.events.Publish(ctx, "post_created", userID, post.ID)
	return post, nil
}

// Get 读帖子顺带记一次浏览
func (s *PostService) Get(id uint64) (*model.Post, error) {
	post, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	_ = s.repo.IncrementView(id)
	return post, nil
}

// Update 只有作者能改；nil 字段不动
func (s *PostService) Update(userID, postID uint64, title, content, displayPic *string) error {
	post, err := s.repo.FindByID(postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return ErrNoPermission
	}

	updates := map[string]any{}
	if title != nil {
		if *title == "" {
			return ErrInvalidInput
		}
		updates["title"] = *title
	}
	if content != nil {
		updates["content"] = *content
	}
	if displayPic != nil {
		updates["display_pic"] = *displayPic
	}
	return s.repo.Updates(postID, updates)
}

// ListByUser 返回第 page 页（0 基）和总页数；越界页给空列表不报错
func (s *PostService) ListByUser(userID uint64, page int) ([]model.Post, int64, error) {
	count, err := s.repo.CountByUser(userID)
	if err != nil {
		return nil, 0, err
	}
	list, err := s.repo.ListByUser(userID, page*PageSize, PageSize)
	return list, pageCount(count), err
}

func (s *PostService) ListByCommunity(communityID uint64, page int) ([]model.Post, int64, error) {
	count, err := s.repo.CountByCommunity(communityID)
	if err != nil {
		return nil, 0, err
	}
	list, err := s.repo.ListByCommunity(communityID, page*PageSize, PageSize)
	return list, pageCount(count), err
}

// Feed 订阅社区的最新帖子（原版只取用户创建的社区，这里取订阅，见 DESIGN.md）
func (s *PostService) Feed(userID uint64) ([]model.Post, error) {
	return s.repo.Feed(userID, FeedLimit)
}
