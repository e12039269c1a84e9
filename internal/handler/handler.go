package handler

import (
	"github.com/blogify/blog-service/internal/model"
	"github.com/blogify/blog-service/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

type Handler struct {
	services *service.Service
}

func New(services *service.Service) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{viper.GetString("client.origin")},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE"},
		AllowCredentials: true,
	}))

	v1 := r.Group("/api/v1")
	{
		posts := v1.Group("/posts")
		{
			posts.GET("", h.postsList)
			posts.POST("", h.authMiddleware, h.postsCreate)
			posts.GET("/my", h.authMiddleware, h.postsGetMy)
			posts.GET("/slug/:slug", h.notRequiredAuthMiddleware, h.postsGetBySlug)

			post := posts.Group("/:postID")
			{
				post.GET("", h.notRequiredAuthMiddleware, h.postsGetByID)
				post.PATCH("", h.authMiddleware, h.postsUpdate)
				post.DELETE("", h.authMiddleware, h.postsDelete)
				post.POST("/like", h.authMiddleware, h.postsLike)
				post.DELETE("/unlike", h.authMiddleware, h.postsUnlike)
				post.GET("/isLiked", h.notRequiredAuthMiddleware, h.postsIsLiked)
				post.GET("/comments", h.commentsGet)
				post.POST("/comments", h.authMiddleware, h.commentsCreate)
			}
		}

		comments := v1.Group("/comments")
		{
			comments.DELETE("/:commentID", h.authMiddleware, h.commentsDelete)
		}
	}

	return r
}

func (h *Handler) getUserFromRequest(c *gin.Context) *model.SessionUser {
	userReq, _ := c.Get("user")

	user, ok := userReq.(model.SessionUser)
	if !ok {
		return nil
	}

	return &user
}
