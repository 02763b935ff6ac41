package service

import "errors"

// 业务错误哨兵，handler 层统一映射为 HTTP 状态码
var (
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("already exists")
	ErrWrongPassword = errors.New("incorrect password")
	ErrInvalidInput  = errors.New("invalid params")
	ErrNoPermission  = errors.New("no permission")
)
