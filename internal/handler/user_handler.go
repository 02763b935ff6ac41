package handler

import (
	"net/http"

	"cop_forum/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserHandler struct {
	svc *service.UserService
}

// RegisterReq 注册请求体
type RegisterReq struct {
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required"`
	Email      string `json:"email"`
	DisplayPic string `json:"display_pic"`
}

type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateMeReq 指针字段：没传就不改
type UpdateMeReq struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

type ResetReq struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required,len=6"`
	NewPassword string `json:"new_password" binding:"required"`
}

func NewUserHandler(db *gorm.DB, emailSvc *service.EmailService) *UserHandler {
	return &UserHandler{
		svc: service.NewUserService(db, emailSvc),
	}
}

// Register 注册接口，重名返回 400
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.svc.Register(req.Username, req.Password, req.Email, req.DisplayPic); err != nil {
		writeError(c, err)
		return
	}
	writeOK(c)
}

// Login 成功时 body 就是裸 token 字符串
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.String(http.StatusOK, token)
}

func (h *UserHandler) Logout(c *gin.Context) {
	if err := h.svc.Logout(currentUserID(c)); err != nil {
		writeError(c, err)
		return
	}
	writeOK(c)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, err := h.svc.GetByID(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetInfo 按用户名查，路径里 :id 这一段当用户名用
func (h *UserHandler) GetInfo(c *gin.Context) {
	user, err := h.svc.GetByUsername(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.svc.GetByID(currentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req UpdateMeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.svc.UpdateMe(currentUserID(c), req.Username, req.Password); err != nil {
		writeError(c, err)
		return
	}
	writeOK(c)
}

// ResetPassword 忘记密码，验证码见 EmailHandler.SendResetCode
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req ResetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.svc.ResetPassword(req.Email, req.Code, req.NewPassword); err != nil {
		writeError(c, err)
		return
	}
	writeOK(c)
}
