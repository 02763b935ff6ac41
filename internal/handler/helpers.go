package handler

import (
	"errors"
	"net/http"
	"strconv"

	"cop_forum/internal/middleware"
	"cop_forum/internal/service"

	"github.com/gin-gonic/gin"
)

// currentUserID 认证中间件跑过之后才有值
func currentUserID(c *gin.Context) uint64 {
	v, _ := c.Get(middleware.ContextUserIDKey)
	id, _ := v.(uint64)
	return id
}

// parseID 路径参数转 uint64，失败直接写 400
func parseID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

func parsePage(c *gin.Context) (int, bool) {
	page, err := strconv.Atoi(c.Param("page"))
	if err != nil || page < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
		return 0, false
	}
	return page, true
}

// writeError 业务错误统一映射：
// 参数/冲突 400、凭证 401、权限 403、缺失 404，其它一律 500
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrWrongPassword):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNoPermission):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func writeOK(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}
