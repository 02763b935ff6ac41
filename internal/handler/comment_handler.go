package handler

import (
	"net/http"

	"cop_forum/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommentHandler struct {
	svc *service.CommentService
}

type CreateCommentReq struct {
	Post    uint64  `json:"post" binding:"required"`
	Parent  *uint64 `json:"parent"`
	Content string  `json:"content" binding:"required"`
}

func NewCommentHandler(db *gorm.DB) *CommentHandler {
	return &CommentHandler{
		svc: service.NewCommentService(db),
	}
}

func (h *CommentHandler) Create(c *gin.Context) {
	var req CreateCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.svc.Create(currentUserID(c), req.Post, req.Parent, req.Content); err != nil {
		writeError(c, err)
		return
	}
	writeOK(c)
}

// PostComments 帖子的顶层评论
func (h *CommentHandler) PostComments(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	list, err := h.svc.PostComments(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Replies 直接子回复
func (h *CommentHandler) Replies(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	list, err := h.svc.Replies(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Parent 父评论（可能为 null）和所属帖子
func (h *CommentHandler) Parent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	parent, post, err := h.svc.ParentWithPost(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comment": parent, "post": post})
}

func (h *CommentHandler) ListByUser(c *gin.Context) {
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
	c.JSON(http.StatusOK, gin.H{"pages": pages, "comments": list})
}
