package handler

import (
	"net/http"

	"cop_forum/internal/service"

	"github.com/gin-gonic/gin"
)

type EmailHandler struct {
	svc *service.EmailService
}

type SendCodeReq struct {
	Email string `json:"email" binding:"required,email"`
}

func NewEmailHandler(svc *service.EmailService) *EmailHandler {
	return &EmailHandler{svc: svc}
}

// SendResetCode 发重置密码验证码
func (h *EmailHandler) SendResetCode(c *gin.Context) {
	var req SendCodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.svc.SendResetCode(req.Email); err != nil {
		writeError(c, err)
		return
	}
	writeOK(c)
}
