package service

import (
	"errors"

	"cop_forum/internal/model"
	"cop_forum/internal/repository/mysql"

	"gorm.io/gorm"
)

type CommunityService struct {
	repo       *mysql.CommunityRepository
	memberRepo *mysql.MemberRepository
}

func NewCommunityService(db *gorm.DB) *CommunityService {
	return &CommunityService{
		repo:       &mysql.CommunityRepository{DB: db},
		memberRepo: &mysql.MemberRepository{DB: db},
	}
}

// Create 创建者自动成为 admin、订阅者和版主（单事务，见 repo）
func (s *CommunityService) Create(userID uint64, name, desc, displayPic string) (*model.Community, error) {
	if name == "" {
		return nil, ErrInvalidInput
	}

	community := &model.Community{
		Name:        name,
		Description: desc,
		DisplayPic:  displayPic,
		AdminID:     userID,
		CreatorID:   userID,
	}
	if err := s.repo.Create(community); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return community, nil
}

func (s *CommunityService) Join(userID, communityID uint64) error {
	if _, err := s.InfoByID(communityID); err != nil {
		return err
	}
	_, err := s.memberRepo.Join(userID, communityID)
	return err
}

func (s *CommunityService) Leave(userID, communityID uint64) error {
	if _, err := s.InfoByID(communityID); err != nil {
		return err
	}
	_, err := s.memberRepo.Leave(userID, communityID)
	return err
}

func (s *CommunityService) List() ([]model.Community, error) {
	return s.repo.List()
}

func (s *CommunityService) Joined(userID uint64) ([]model.Community, error) {
	return s.repo.ListJoined(userID)
}

func (s *CommunityService) CreatedBy(userID uint64) ([]model.Community, error) {
	return s.repo.ListCreatedBy(userID)
}

func (s *CommunityService) InfoByID(id uint64) (*model.Community, error) {
	community, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return community, err
}

func (s *CommunityService) InfoByName(name string) (*model.Community, error) {
	community, err := s.repo.FindByName(name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return community, err
}

// Update 只有 admin 能改；nil 字段不动
func (s *CommunityService) Update(userID, id uint64, name, desc, displayPic *string) error {
	community, err := s.InfoByID(id)
	if err != nil {
		return err
	}
	if community.AdminID != userID {
		return ErrNoPermission
	}

	updates := map[string]any{}
	if name != nil {
		if *name == "" {
			return ErrInvalidInput
		}
		updates["name"] = *name
	}
	if desc != nil {
		updates["description"] = *desc
	}
	if displayPic != nil {
		updates["display_pic"] = *displayPic
	}
	if err := s.repo.Updates(id, updates); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrConflict
		}
		return err
	}
	return nil
}
