package handler

import (
	"log/slog"
	"net/http"

	"carecorner/internal/delivery/api/response"
	"carecorner/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PostHandlerParams holds dependencies for PostHandler, injected by Fx.
type PostHandlerParams struct {
	fx.In

	ContentUC usecase.ContentUsecase
	Logger    *slog.Logger
}

// PostHandler serves posts and their comments.
type PostHandler struct {
	contentUC usecase.ContentUsecase
	logger    *slog.Logger
}

// NewPostHandler is the constructor for PostHandler
func NewPostHandler(params PostHandlerParams) *PostHandler {
	return &PostHandler{
		contentUC: params.ContentUC,
		logger:    params.Logger,
	}
}

// CreatePostRequest represents the request body for publishing a post
type CreatePostRequest struct {
	Title       string `json:"title"`
	Category    string `json:"category" validate:"required"`
	Content     string `json:"content" validate:"required"`
	AuthorID    int64  `json:"author_id" validate:"required,gt=0"`
	IsAnonymous bool   `json:"is_anonymous"`
}

// AddCommentRequest represents the request body for commenting on a post
type AddCommentRequest struct {
	Content  string `json:"content" validate:"required"`
	AuthorID int64  `json:"author_id" validate:"required,gt=0"`
}

// ListPosts returns every post, newest first
func (h *PostHandler) ListPosts(c echo.Context) error {
	posts, err := h.contentUC.ListPosts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, posts)
}

// CreatePost handles publishing a post
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	post, err := h.contentUC.CreatePost(c.Request().Context(), &usecase.CreatePostInput{
		Title:       req.Title,
		Category:    req.Category,
		Content:     req.Content,
		AuthorID:    req.AuthorID,
		IsAnonymous: req.IsAnonymous,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, post)
}

// GetPost returns a post with its comments
func (h *PostHandler) GetPost(c echo.Context) error {
	postID, err := postIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	detail, err := h.contentUC.GetPostDetail(c.Request().Context(), postID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail)
}

// DeletePost removes a post and its comments
func (h *PostHandler) DeletePost(c echo.Context) error {
	postID, err := postIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.contentUC.DeletePost(c.Request().Context(), postID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// AddComment attaches a comment to a post
func (h *PostHandler) AddComment(c echo.Context) error {
	postID, err := postIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AddCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	comment, err := h.contentUC.AddComment(c.Request().Context(), &usecase.AddCommentInput{
		PostID:   postID,
		Content:  req.Content,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, comment)
}
