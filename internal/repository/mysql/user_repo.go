package mysql

import (
	"cop_forum/internal/model"
	"time"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint64) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("username = ?", username).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

// Updates 只改显式给出的列
func (r *UserRepository) Updates(id uint64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return r.DB.Model(&model.User{}).Where("id = ?", id).Updates(updates).Error
}

func (r *UserRepository) TouchLastLogin(id uint64) error {
	return r.DB.Model(&model.User{}).Where("id = ?", id).
		UpdateColumn("last_login", time.Now()).Error
}
