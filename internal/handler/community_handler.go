package handler

import (
	"net/http"

	"cop_forum/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommunityHandler struct {
	svc *service.CommunityService
}

type CommunityCreateReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	DisplayPic  string `json:"display_pic"`
}

// CommunityIDReq join/leave 用
type CommunityIDReq struct {
	ID uint64 `json:"id" binding:"required"`
}

type CommunityUpdateReq struct {
	ID          uint64  `json:"id" binding:"required"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	DisplayPic  *string `json:"display_pic"`
}

func NewCommunityHandler(db *gorm.DB) *CommunityHandler {
	return &CommunityHandler{
		svc: service.NewCommunityService(db),
	}
}

func (h *CommunityHandler) Create(c *gin.Context) {
	var req CommunityCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.svc.Create(currentUserID(c), req.Name, req.Description, req.DisplayPic); err != nil {
		writeError(c, err)
		return
	}
	writeOK(c)
}

func (h *CommunityHandler) Join(c *gin.Context) {
	var req CommunityIDReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.svc.Join(currentUserID(c), req.ID); err != nil {
		writeError(c, err)
		return
	}
	writeOK(c)
}

func (h *CommunityHandler) Leave(c *gin.Context) {
	var req CommunityIDReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.svc.Leave(currentUserID(c), req.ID); err != nil {
		writeError(c, err)
		return
	}
	writeOK(c)
}

func (h *CommunityHandler) Update(c *gin.Context) {
	var req CommunityUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.svc.Update(currentUserID(c), req.ID, req.Name, req.Description, req.DisplayPic); err != nil {
		writeError(c, err)
		return
	}
	writeOK(c)
}

func (h *CommunityHandler) List(c *gin.Context) {
	list, err := h.svc.List()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Joined 当前用户订阅的社区
func (h *CommunityHandler) Joined(c *gin.Context) {
	list, err := h.svc.Joined(currentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// MyCommunities 当前用户创建的社区
func (h *CommunityHandler) MyCommunities(c *gin.Context) {
	list, err := h.svc.CreatedBy(currentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *CommunityHandler) GetByName(c *gin.Context) {
	community, err := h.svc.InfoByName(c.Param("name"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, community)
}

func (h *CommunityHandler) Info(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	community, err := h.svc.InfoByID(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, community)
}
