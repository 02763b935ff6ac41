package service

import (
	"errors"

	"cop_forum/internal/model"
	"cop_forum/internal/pkg"
	"cop_forum/internal/repository/mysql"
	"cop_forum/internal/repository/redis"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	repo     *mysql.UserRepository
	sessions *redis.SessionRepository
	emailSvc *EmailService
}

func NewUserService(db *gorm.DB, emailSvc *EmailService) *UserService {
	return &UserService{
		repo:     &mysql.UserRepository{DB: db},
		sessions: &redis.SessionRepository{},
		emailSvc: emailSvc,
	}
}

// Register 用户名唯一索引是权威判定，冲突翻译成 ErrConflict
func (s *UserService) Register(username, password, email, displayPic string) error {
	if username == "" || password == "" {
		return ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &model.User{
		Username:   username,
		Password:   string(hash),
		Email:      email,
		DisplayPic: displayPic,
	}
	if err := s.repo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrConflict
		}
		return err
	}
	return nil
}

// Login 区分用户不存在（404）和密码错误（401）
func (s *UserService) Login(username, password string) (string, error) {
	user, err := s.repo.FindByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", ErrWrongPassword
	}

	token, err := pkg.GenerateToken(user.ID)
	if err != nil {
		return "", err
	}
	// 会话写入 redis，登出即吊销；redis 未配置时跳过
	if err := s.sessions.AddToken(user.ID, token, pkg.TokenTTL); err != nil {
		return "", err
	}
	_ = s.repo.TouchLastLogin(user.ID)
	return token, nil
}

func (s *UserService) Logout(userID uint64) error {
	return s.sessions.DeleteToken(userID)
}

func (s *UserService) GetByID(id uint64) (*model.User, error) {
	user, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return user, err
}

func (s *UserService) GetByUsername(username string) (*model.User, error) {
	user, err := s.repo.FindByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return user, err
}

// UpdateMe 指针字段为 nil 表示没传，空串也是合法的显式值
func (s *UserService) UpdateMe(userID uint64, username, password *string) error {
	updates := map[string]any{}
	if username != nil {
		if *username == "" {
			return ErrInvalidInput
		}
		updates["username"] = *username
	}
	if password != nil {
		if *password == "" {
			return ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		updates["password"] = string(hash)
	}
	if err := s.repo.Updates(userID, updates); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrConflict
		}
		return err
	}
	return nil
}

// ResetPassword 忘记密码：校验邮箱验证码后改写哈希
func (s *UserService) ResetPassword(email, code, newPassword string) error {
	ok, err := s.emailSvc.VerifyResetCode(email, code)
	if err != nil || !ok {
		return ErrWrongPassword
	}

	user, err := s.repo.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.repo.Updates(user.ID, map[string]any{"password": string(hash)}); err != nil {
		return err
	}
	// 改密后吊销旧会话
	return s.sessions.DeleteToken(user.ID)
}
