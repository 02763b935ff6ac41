package mysql

import (
	"cop_forum/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MemberRepository struct {
	DB *gorm.DB
}

// Join 幂等插入：(user_id, community_id) 已存在则不报错也不动计数。
// 返回本次是否真的新增了订阅。
func (r *MemberRepository) Join(userID, communityID uint64) (bool, error) {
	var joined bool
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "community_id"}},
			DoNothing: true,
		}).Create(&model.SubscribedCommunity{
			UserID:      userID,
			CommunityID: communityID,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		joined = true
		return tx.Model(&model.Community{}).
			Where("id = ?", communityID).
			UpdateColumn("sub_count", gorm.Expr("sub_count + 1")).Error
	})
	return joined, err
}

// Leave 幂等删除，真的删了才减计数
func (r *MemberRepository) Leave(userID, communityID uint64) (bool, error) {
	var left bool
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND community_id = ?", userID, communityID).
			Delete(&model.SubscribedCommunity{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		left = true
		return tx.Model(&model.Community{}).
			Where("id = ?", communityID).
			UpdateColumn("sub_count", gorm.Expr("CASE WHEN sub_count > 0 THEN sub_count - 1 ELSE 0 END")).Error
	})
	return left, err
}

func (r *MemberRepository) IsMember(userID, communityID uint64) (bool, error) {
	var count int64
	err := r.DB.Model(&model.SubscribedCommunity{}).
		Where("user_id = ? AND community_id = ?", userID, communityID).
		Count(&count).Error
	return count > 0, err
}

func (r *MemberRepository) IsModerator(userID, communityID uint64) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Moderator{}).
		Where("user_id = ? AND community_id = ?", userID, communityID).
		Count(&count).Error
	return count > 0, err
}
