// Package router mounts the Care Corner HTTP routes.
package router

import (
	"carecorner/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler *handler.AuthHandler
	PostHandler *handler.PostHandler
}

type router struct {
	auth  *handler.AuthHandler
	posts *handler.PostHandler
}

func NewRouter(params RouterParams) *router {
	return &router{auth: params.AuthHandler, posts: params.PostHandler}
}

// RegisterRoutes mounts the health probe and the /api surface. There is no
// session: post and comment authors are identified by author_id in the body.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	api.POST("/register", r.auth.Register)
	api.POST("/login", r.auth.Login)

	posts := api.Group("/posts")
	posts.GET("", r.posts.ListPosts)
	posts.POST("", r.posts.CreatePost)
	posts.GET("/:id", r.posts.GetPost)
	posts.DELETE("/:id", r.posts.DeletePost)
	posts.POST("/:id/comments", r.posts.AddComment)
}
