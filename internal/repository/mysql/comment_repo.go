package mysql

import (
	"cop_forum/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	DB *gorm.DB
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.DB.Create(comment).Error
}

func (r *CommentRepository) FindByID(id uint64) (*model.Comment, error) {
	var comment model.Comment
	err := r.DB.First(&comment, id).Error
	return &comment, err
}

// TopLevelByPost 帖子下的顶层评论，新的在前
func (r *CommentRepository) TopLevelByPost(postID uint64) ([]model.Comment, error) {
	var list []model.Comment
	err := r.DB.Where("post_id = ? AND parent_id IS NULL", postID).
		Order("id desc").
		Find(&list).Error
	return list, err
}

// Replies 直接子评论，不递归整棵子树
func (r *CommentRepository) Replies(parentID uint64) ([]model.Comment, error) {
	var list []model.Comment
	err := r.DB.Where("parent_id = ?", parentID).Find(&list).Error
	return list, err
}

func (r *CommentRepository) CountByUser(userID uint64) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Comment{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *CommentRepository) ListByUser(userID uint64, offset, limit int) ([]model.Comment, error) {
	var list []model.Comment
	err := r.DB.Where("user_id = ?", userID).
		Order("id desc").Offset(offset).Limit(limit).
		Find(&list).Error
	return list, err
}
