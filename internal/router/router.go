package router

import (
	"cop_forum/internal/handler"
	"cop_forum/internal/middleware"
	"cop_forum/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func InitRouter(db *gorm.DB, events *service.EventPublisher, emailSvc *service.EmailService) *gin.Engine {
	r := gin.Default()

	user := handler.NewUserHandler(db, emailSvc)
	email := handler.NewEmailHandler(emailSvc)
	community := handler.NewCommunityHandler(db)
	post := handler.NewPostHandler(db, events)
	comment := handler.NewCommentHandler(db)
	vote := handler.NewVoteHandler(db, events)

	auth := middleware.AuthMiddleware()

	// 用户相关接口
	u := r.Group("/u")
	{
		u.POST("/create", user.Register)
		u.POST("/login", user.Login)
		u.POST("/reset-code", email.SendResetCode)
		u.POST("/reset", user.ResetPassword)
		u.POST("/logout", auth, user.Logout)
		u.GET("/:id", user.Get)
		u.GET("/:id/info", user.GetInfo) // :id 段是用户名
		u.GET("/:id/posts/:page", post.ListByUser)
		u.GET("/:id/comments/:page", comment.ListByUser)
	}

	// 帖子相关接口
	p := r.Group("/p")
	{
		p.POST("/create", auth, post.Create)
		p.POST("/update", auth, post.Update)
		p.POST("/upvote/:id", auth, vote.UpvotePost)
		p.POST("/downvote/:id", auth, vote.DownvotePost)
		p.GET("/:id", post.Get)
		p.GET("/:id/comments", comment.PostComments)
		p.GET("/:id/vote", auth, vote.PostVoteState)
	}

	// 社区相关接口
	cg := r.Group("/c")
	{
		cg.POST("/create", auth, community.Create)
		cg.POST("/join", auth, community.Join)
		cg.POST("/leave", auth, community.Leave)
		cg.POST("/update", auth, community.Update)
		cg.GET("/get", community.List)
		cg.GET("/get/:name", community.GetByName)
		cg.GET("/info/:id", community.Info)
		cg.GET("/joined", auth, community.Joined)
		cg.GET("/posts/:id/:page", post.ListByCommunity)
	}

	// 评论相关接口
	cm := r.Group("/cm")
	{
		cm.POST("/create", auth, comment.Create)
		cm.POST("/upvote/:id", auth, vote.UpvoteComment)
		cm.POST("/downvote/:id", auth, vote.DownvoteComment)
		cm.GET("/:id/replies", comment.Replies)
		cm.GET("/:id/parent", comment.Parent)
		cm.GET("/:id/vote", auth, vote.CommentVoteState)
	}

	// 当前用户
	me := r.Group("/me")
	me.Use(auth)
	{
		me.GET("/info", user.Me)
		me.GET("/communities", community.MyCommunities)
		me.GET("/feed", post.Feed)
		me.POST("/update", user.UpdateMe)
	}

	return r
}
