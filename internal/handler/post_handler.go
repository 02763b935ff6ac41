package handler

import (
	"net/http"

	"cop_forum/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostHandler struct {
	svc *service.PostService
}

type CreatePostReq struct {
	CommunityID uint64 `json:"community_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content" binding:"required"`
	DisplayPic  string `json:"display_pic"`
}

type UpdatePostReq struct {
	ID         uint64  `json:"id" binding:"required"`
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	DisplayPic *string `json:"display_pic"`
}

func NewPostHandler(db *gorm.DB, events *service.EventPublisher) *PostHandler {
	return &PostHandler{
		svc: service.NewPostService(db, events),
	}
}

// Create 创建帖子接口，返回新帖 id
func (h *PostHandler) Create(c *gin.Context) {
	var req CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.svc.Create(c.Request.Context(), currentUserID(c), req.CommunityID, req.Title, req.Content, req.DisplayPic)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": post.ID})
}

func (h *PostHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	post, err := h.svc.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Update(c *gin.Context) {
	var req UpdatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.svc.Update(currentUserID(c), req.ID, req.Title, req.Content, req.DisplayPic); err != nil {
		writeError(c, err)
		return
	}
	writeOK(c)
}

// ListByUser 某用户的帖子，固定 10 条一页，页码 0 基
func (h *PostHandler) ListByUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	page, ok := parsePage(c)
	if !ok {
		return
	}

	list, pages, err := h.svc.ListByUser(id, page)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pages": pages, "posts": list})
}

func (h *PostHandler) ListByCommunity(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	page, ok := parsePage(c)
	if !ok {
		return
	}

	list, pages, err := h.svc.ListByCommunity(id, page)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pages": pages, "posts": list})
}

// Feed 订阅社区的最新 20 条
func (h *PostHandler) Feed(c *gin.Context) {
	list, err := h.svc.Feed(currentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
