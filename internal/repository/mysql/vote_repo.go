package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrTargetNotFound = errors.New("vote target not found")

// Votable 描述一种可投票对象：票表、目标表、票表里指向目标的外键列。
// 帖子和评论共用同一套状态机实现，只差这三个名字。
type Votable struct {
	VoteTable   string
	TargetTable string
	RefColumn   string
}

var (
	PostVotes    = Votable{VoteTable: "votes", TargetTable: "posts", RefColumn: "post_id"}
	CommentVotes = Votable{VoteTable: "comment_votes", TargetTable: "comments", RefColumn: "comment_id"}
)

type VoteRepository struct {
	DB *gorm.DB
}

type voteRow struct {
	ID     uint64
	Upvote bool
}

// Apply 执行一次投票转移，up=true 表示 upvote 操作。
// 状态机（当前票 -> 操作后）：
//
//	无票   + 同向  -> 记一票，计数 +1
//	同向票 + 同向  -> 删票，计数 -1
//	反向票 + 同向  -> 翻转，两边计数各动 1
//
// 整个转移在一个事务里完成，票行和聚合计数要么都变要么都不变。
// (user_id, target_id) 唯一索引兜底并发：两个并发首投只有一个能提交。
func (r *VoteRepository) Apply(ctx context.Context, v Votable, userID, targetID uint64, up bool) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Table(v.TargetTable).Where("id = ?", targetID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrTargetNotFound
		}

		var row voteRow
		err := tx.Table(v.VoteTable).
			Select("id", "upvote").
			Where("user_id = ? AND "+v.RefColumn+" = ?", userID, targetID).
			Take(&row).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Table(v.VoteTable).Create(map[string]any{
				"user_id":    userID,
				v.RefColumn:  targetID,
				"upvote":     up,
				"created_at": time.Now(),
			}).Error; err != nil {
				return err
			}
			if up {
				return r.bump(tx, v, targetID, +1, 0)
			}
			return r.bump(tx, v, targetID, 0, +1)

		case err != nil:
			return err
		}

		if row.Upvote == up {
			// 同向再投：撤票回到无票
			if err := tx.Exec("DELETE FROM "+v.VoteTable+" WHERE id = ?", row.ID).Error; err != nil {
				return err
			}
			if up {
				return r.bump(tx, v, targetID, -1, 0)
			}
			return r.bump(tx, v, targetID, 0, -1)
		}

		// 反向票：翻转
		if err := tx.Table(v.VoteTable).Where("id = ?", row.ID).
			Update("upvote", up).Error; err != nil {
			return err
		}
		if up {
			return r.bump(tx, v, targetID, +1, -1)
		}
		return r.bump(tx, v, targetID, -1, +1)
	})
}

// State 当前签名票态：1=upvote，-1=downvote，0=无票
func (r *VoteRepository) State(ctx context.Context, v Votable, userID, targetID uint64) (int, error) {
	var row voteRow
	err := r.DB.WithContext(ctx).Table(v.VoteTable).
		Select("id", "upvote").
		Where("user_id = ? AND "+v.RefColumn+" = ?", userID, targetID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if row.Upvote {
		return 1, nil
	}
	return -1, nil
}

func (r *VoteRepository) bump(tx *gorm.DB, v Votable, targetID uint64, upDelta, downDelta int64) error {
	updates := map[string]any{}
	if upDelta != 0 {
		updates["upvotes"] = gorm.Expr("upvotes + ?", upDelta)
	}
	if downDelta != 0 {
		updates["downvotes"] = gorm.Expr("downvotes + ?", downDelta)
	}
	return tx.Table(v.TargetTable).Where("id = ?", targetID).Updates(updates).Error
}
