package mysql

import (
	"cop_forum/internal/model"

	"gorm.io/gorm"
)

type CommunityRepository struct {
	DB *gorm.DB
}

// Create 建社区、创建者订阅、创建者版主三条写入放在同一个事务里，
// 任意一步失败全部回滚。
func (r *CommunityRepository) Create(c *model.Community) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		if err := tx.Create(&model.SubscribedCommunity{
			UserID:      c.CreatorID,
			CommunityID: c.ID,
		}).Error; err != nil {
			return err
		}
		return tx.Create(&model.Moderator{
			UserID:      c.CreatorID,
			CommunityID: c.ID,
		}).Error
	})
}

func (r *CommunityRepository) FindByID(id uint64) (*model.Community, error) {
	var community model.Community
	err := r.DB.First(&community, id).Error
	return &community, err
}

func (r *CommunityRepository) FindByName(name string) (*model.Community, error) {
	var community model.Community
	err := r.DB.Where("name = ?", name).First(&community).Error
	return &community, err
}

func (r *CommunityRepository) List() ([]model.Community, error) {
	var list []model.Community
	err := r.DB.Order("id desc").Find(&list).Error
	return list, err
}

// ListJoined 用户订阅的社区
func (r *CommunityRepository) ListJoined(userID uint64) ([]model.Community, error) {
	var list []model.Community
	err := r.DB.
		Joins("JOIN subscribed_communities sc ON sc.community_id = communities.id").
		Where("sc.user_id = ?", userID).
		Order("communities.id desc").
		Find(&list).Error
	return list, err
}

// ListCreatedBy 用户创建的社区
func (r *CommunityRepository) ListCreatedBy(userID uint64) ([]model.Community, error) {
	var list []model.Community
	err := r.DB.Where("creator_id = ?", userID).Order("id desc").Find(&list).Error
	return list, err
}

// Updates 只改显式给出的列
func (r *CommunityRepository) Updates(id uint64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return r.DB.Model(&model.Community{}).Where("id = ?", id).Updates(updates).Error
}
