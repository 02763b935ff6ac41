package service

import (
	"errors"

	"cop_forum/internal/pkg"
	"cop_forum/internal/repository/redis"
)

type EmailService struct {
	emailCfg pkg.SMTPConfig
	rds      *redis.EmailRepository
}

func NewEmailService(cfg pkg.SMTPConfig) *EmailService {
	return &EmailService{emailCfg: cfg, rds: &redis.EmailRepository{}}
}

// SendResetCode 发送重置密码验证码
func (s *EmailService) SendResetCode(email string) error {
	if !s.emailCfg.Enabled() || !redis.Enabled() {
		return errors.New("password reset is not configured")
	}

	code, err := pkg.RandDigits(6)
	if err != nil {
		return err
	}
	if err = s.rds.SetResetCode(email, code); err != nil {
		return err
	}

	html := pkg.EmailCodeHTML("重置密码", code, redis.DefaultEmailCodeTTL)
	if err = pkg.SendEmail(s.emailCfg, email, "密码重置验证码", html); err != nil {
		// 邮件没发出去就清掉验证码
		_ = s.rds.DeleteResetCode(email)
		return err
	}
	return nil
}

// VerifyResetCode 校验验证码，命中后一次性删除
func (s *EmailService) VerifyResetCode(email, code string) (bool, error) {
	if !redis.Enabled() {
		return false, errors.New("password reset is not configured")
	}
	val, err := s.rds.GetResetCode(email)
	if err != nil {
		return false, err
	}
	if val != code {
		return false, nil
	}
	if err = s.rds.DeleteResetCode(email); err != nil {
		return false, err
	}
	return true, nil
}
