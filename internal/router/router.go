package router

import (
	"Social_Feed/internal/dto"
	"Social_Feed/internal/handler"
	"Social_Feed/internal/middleware"
	"Social_Feed/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"
)

// Services 路由依赖的服务
type Services struct {
	DB       *gorm.DB
	Posts    *service.PostService
	Comments *service.CommentService
	Likes    *service.LikeService
}

func InitRouter(svc Services, corsOrigins []string) *gin.Engine {
	binding.Validator = dto.NewValidator()

	r := gin.New()
	r.Use(middleware.RequestLogger(), middleware.Recovery(), middleware.CORS(corsOrigins))

	post := handler.NewPostHandler(svc.Posts)
	comment := handler.NewCommentHandler(svc.Comments)
	like := handler.NewLikeHandler(svc.Likes)
	health := handler.NewHealthHandler(svc.DB)

	// 帖子相关接口
	postGroup := r.Group("/posts")
	{
		postGroup.GET("", post.ListPosts)
		postGroup.POST("", post.CreatePost)
		postGroup.GET("/:postId", post.GetPost)
		postGroup.PATCH("/:postId", post.UpdatePost)
		postGroup.DELETE("/:postId", post.DeletePost)
	}

	// 评论相关接口
	commentGroup := r.Group("/posts/:postId/comments")
	{
		commentGroup.GET("", comment.ListComments)
		commentGroup.POST("", comment.CreateComment)
		commentGroup.GET("/:commentId", comment.GetComment)
		commentGroup.PATCH("/:commentId", comment.UpdateComment)
		commentGroup.DELETE("/:commentId", comment.DeleteComment)
	}

	// 点赞相关接口
	likeGroup := r.Group("/posts/:postId/likes")
	{
		likeGroup.POST("", like.Like)
		likeGroup.DELETE("", like.Unlike)
	}

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", health.Health)
		apiGroup.GET("/info", health.Info)
	}

	return r
}
