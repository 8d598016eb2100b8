// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"socialnet/internal/delivery/http/middleware"
	"socialnet/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	PostHandler     *handler.PostHandler
	CommentHandler  *handler.CommentHandler
	ReactionHandler *handler.ReactionHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	postHandler     *handler.PostHandler
	commentHandler  *handler.CommentHandler
	reactionHandler *handler.ReactionHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		userHandler:     params.UserHandler,
		postHandler:     params.PostHandler,
		commentHandler:  params.CommentHandler,
		reactionHandler: params.ReactionHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes issue and renew tokens; they are the only unguarded
	// business endpoints.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/token", r.authHandler.GetAccessToken)
	}

	// API v1 routes all require a bearer access token.
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	apiV1.GET("/profile", r.userHandler.GetProfile)

	usersGroup := apiV1.Group("/users")
	{
		usersGroup.GET("/:id", r.userHandler.GetUser)
		usersGroup.PUT("/:id", r.userHandler.UpdateUser)
		usersGroup.DELETE("/:id", r.userHandler.DeleteUser)
		usersGroup.POST("/:id/follow", r.userHandler.Follow)
		usersGroup.GET("/:id/posts", r.postHandler.ListByAuthor)
	}

	postsGroup := apiV1.Group("/posts")
	{
		postsGroup.POST("", r.postHandler.CreatePost)
		postsGroup.GET("/search", r.postHandler.SearchPosts)
		postsGroup.GET("/:id", r.postHandler.GetPost)
		postsGroup.PUT("/:id", r.postHandler.UpdatePost)
		postsGroup.DELETE("/:id", r.postHandler.DeletePost)
		postsGroup.POST("/:id/comments", r.commentHandler.CreateComment)
		postsGroup.GET("/:id/comments", r.commentHandler.ListComments)
	}

	commentsGroup := apiV1.Group("/comments")
	{
		commentsGroup.PUT("/:id", r.commentHandler.UpdateComment)
		commentsGroup.DELETE("/:id", r.commentHandler.DeleteComment)
	}

	reactionsGroup := apiV1.Group("/reactions")
	{
		reactionsGroup.POST("", r.reactionHandler.AddReaction)
		reactionsGroup.DELETE("", r.reactionHandler.RemoveReaction)
		reactionsGroup.GET("/counts", r.reactionHandler.GetReactionCounts)
	}
}
