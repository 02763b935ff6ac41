package handler

import (
	"net/http"

	"cop_forum/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// VoteHandler 帖子票和评论票走同一个 service
type VoteHandler struct {
	svc *service.VoteService
}

func NewVoteHandler(db *gorm.DB, events *service.EventPublisher) *VoteHandler {
	return &VoteHandler{
		svc: service.NewVoteService(db, events),
	}
}

func (h *VoteHandler) UpvotePost(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.UpvotePost(c.Request.Context(), currentUserID(c), id); err != nil {
		writeError(c, err)
		return
	}
	writeOK(c)
}

func (h *VoteHandler) DownvotePost(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DownvotePost(c.Request.Context(), currentUserID(c), id); err != nil {
		writeError(c, err)
		return
	}
	writeOK(c)
}

func (h *VoteHandler) PostVoteState(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	vote, err := h.svc.PostVoteState(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vote": vote})
}

func (h *VoteHandler) UpvoteComment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.UpvoteComment(c.Request.Context(), currentUserID(c), id); err != nil {
		writeError(c, err)
		return
	}
	writeOK(c)
}

func (h *VoteHandler) DownvoteComment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DownvoteComment(c.Request.Context(), currentUserID(c), id); err != nil {
		writeError(c, err)
		return
	}
	writeOK(c)
}

func (h *VoteHandler) CommentVoteState(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	vote, err := h.svc.CommentVoteState(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vote": vote})
}
