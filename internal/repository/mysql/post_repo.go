package mysql

import (
	"cop_forum/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

func (r *PostRepository) Create(post *model.Post) error {
	return r.DB.Create(post).Error
}

func (r *PostRepository) FindByID(id uint64) (*model.Post, error) {
	var post model.Post
	err := r.DB.First(&post, id).Error
	return &post, err
}

func (r *PostRepository) IncrementView(id uint64) error {
	return r.DB.Model(&model.Post{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

// Updates 只改显式给出的列
func (r *PostRepository) Updates(id uint64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return r.DB.Model(&model.Post{}).Where("id = ?", id).Updates(updates).Error
}

func (r *PostRepository) CountByUser(userID uint64) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Post{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *PostRepository) ListByUser(userID uint64, offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.Where("user_id = ?", userID).
		Order("id desc").Offset(offset).Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *PostRepository) CountByCommunity(communityID uint64) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Post{}).Where("community_id = ?", communityID).Count(&count).Error
	return count, err
}

func (r *PostRepository) ListByCommunity(communityID uint64, offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.Where("community_id = ?", communityID).
		Order("id desc").Offset(offset).Limit(limit).
		Find(&list).Error
	return list, err
}

// Feed 用户订阅的所有社区里最新的帖子
func (r *PostRepository) Feed(userID uint64, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.
		Joins("JOIN subscribed_communities sc ON sc.community_id = posts.community_id").
		Where("sc.user_id = ?", userID).
		Order("posts.id desc").
		Limit(limit).
		Find(&list).Error
	return list, err
}
