package service

import (
	"errors"

	"cop_forum/internal/model"
	"cop_forum/internal/repository/mysql"

	"gorm.io/gorm"
)

type CommentService struct {
	repo  *mysql.CommentRepository
	posts *mysql.PostRepository
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{
		repo:  &mysql.CommentRepository{DB: db},
		posts: &mysql.PostRepository{DB: db},
	}
}

// Create 回复时父评论必须属于同一个帖子
func (s *CommentService) Create(userID, postID uint64, parentID *uint64, content string) (*model.Comment, error) {
	if content == "" {
		return nil, ErrInvalidInput
	}
	if _, err := s.posts.FindByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if parentID != nil {
		parent, err := s.repo.FindByID(*parentID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, err
		}
		if parent.PostID != postID {
			return nil, ErrInvalidInput
		}
	}

	comment := &model.Comment{
		Content:  content,
		UserID:   userID,
		PostID:   postID,
		ParentID: parentID,
	}
	if err := s.repo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// PostComments 帖子的顶层评论，子回复走 Replies
func (s *CommentService) PostComments(postID uint64) ([]model.Comment, error) {
	return s.repo.TopLevelByPost(postID)
}

func (s *CommentService) Replies(commentID uint64) ([]model.Comment, error) {
	return s.repo.Replies(commentID)
}

// ParentWithPost 评论的父评论（顶层评论则为 nil）和所属帖子
func (s *CommentService) ParentWithPost(commentID uint64) (*model.Comment, *model.Post, error) {
	comment, err := s.repo.FindByID(commentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	var parent *model.Comment
	if comment.ParentID != nil {
		parent, err = s.repo.FindByID(*comment.ParentID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, err
		}
	}

	post, err := s.posts.FindByID(comment.PostID)
	if err != nil {
		return nil, nil, err
	}
	return parent, post, nil
}

func (s *CommentService) ListByUser(userID uint64, page int) ([]model.Comment, int64, error) {
	count, err := s.repo.CountByUser(userID)
	if err != nil {
		return nil, 0, err
	}
	list, err := s.repo.ListByUser(userID, page*PageSize, PageSize)
	return list, pageCount(count), err
}
