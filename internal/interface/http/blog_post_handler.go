package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"blogpost-api/internal/application"
	"blogpost-api/internal/interface/middleware"
	"blogpost-api/pkg/response"
	"blogpost-api/pkg/validation"
)

type BlogPostHandler struct {
	Svc    application.BlogPostService
	Logger *logrus.Logger
}

func NewBlogPostHandler(svc application.BlogPostService, logger *logrus.Logger) *BlogPostHandler {
	return &BlogPostHandler{Svc: svc, Logger: logger}
}

type postRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"required,min=10"`
}

func postID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "blog post not found")
		return 0, false
	}
	return id, true
}

// ListAll GET /blogposts (optional auth). The public feed, newest first.
func (h *BlogPostHandler) ListAll(c *gin.Context) {
	posts, err := h.Svc.ListAll(c.Request.Context(), middleware.ViewerID(c))
	if err != nil {
		h.Logger.WithError(err).Error("listing blog posts failed")
		response.Error(c, http.StatusInternalServerError, "an error occurred")
		return
	}
	c.JSON(http.StatusOK, posts)
}

// ListByUser GET /blogposts/user/:userId (optional auth). The path parameter
// selects the post set; the bearer identity only drives the isOwner flag.
func (h *BlogPostHandler) ListByUser(c *gin.Context) {
	ownerID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "user not found")
		return
	}

	posts, err := h.Svc.ListByUser(c.Request.Context(), ownerID, middleware.ViewerID(c))
	if err != nil {
		h.Logger.WithError(err).WithField("owner_id", ownerID).Error("listing user posts failed")
		response.Error(c, http.StatusInternalServerError, "an error occurred")
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetByID GET /blogposts/:id (optional auth)
func (h *BlogPostHandler) GetByID(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	post, err := h.Svc.GetByID(c.Request.Context(), id, middleware.ViewerID(c))
	if err != nil {
		if errors.Is(err, application.ErrPostNotFound) {
			response.Error(c, http.StatusNotFound, "blog post not found")
			return
		}
		h.Logger.WithError(err).WithField("post_id", id).Error("get blog post failed")
		response.Error(c, http.StatusInternalServerError, "an error occurred")
		return
	}
	c.JSON(http.StatusOK, post)
}

// Create POST /blogposts (auth required)
func (h *BlogPostHandler) Create(c *gin.Context) {
	uid := middleware.ViewerID(c)
	if uid == nil {
		response.Error(c, http.StatusUnauthorized, "missing bearer token")
		return
	}

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusBadRequest, validation.ToDetails(err))
		return
	}

	post, err := h.Svc.Create(c.Request.Context(), application.PostInput{Title: req.Title, Content: req.Content}, *uid)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", *uid).Error("create blog post failed")
		response.Error(c, http.StatusInternalServerError, "an error occurred")
		return
	}

	c.Header("Location", fmt.Sprintf("/blogposts/%d", post.ID))
	c.JSON(http.StatusCreated, post)
}

// Update PUT /blogposts/:id (auth required, owner only)
func (h *BlogPostHandler) Update(c *gin.Context) {
	uid := middleware.ViewerID(c)
	if uid == nil {
		response.Error(c, http.StatusUnauthorized, "missing bearer token")
		return
	}

	id, ok := postID(c)
	if !ok {
		return
	}

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusBadRequest, validation.ToDetails(err))
		return
	}

	post, err := h.Svc.Update(c.Request.Context(), id, application.PostInput{Title: req.Title, Content: req.Content}, *uid)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrPostNotFound):
			response.Error(c, http.StatusNotFound, "blog post not found")
		case errors.Is(err, application.ErrNotPostOwner):
			response.Error(c, http.StatusForbidden, "you are not the owner of this blog post")
		default:
			h.Logger.WithError(err).WithField("post_id", id).Error("update blog post failed")
			response.Error(c, http.StatusInternalServerError, "an error occurred")
		}
		return
	}
	c.JSON(http.StatusOK, post)
}

// Delete DELETE /blogposts/:id (auth required, owner only). Deleting an id
// that no longer exists keeps answering 404, so repeats are harmless.
func (h *BlogPostHandler) Delete(c *gin.Context) {
	uid := middleware.ViewerID(c)
	if uid == nil {
		response.Error(c, http.StatusUnauthorized, "missing bearer token")
		return
	}

	id, ok := postID(c)
	if !ok {
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), id, *uid); err != nil {
		switch {
		case errors.Is(err, application.ErrPostNotFound):
			response.Error(c, http.StatusNotFound, "blog post not found")
		case errors.Is(err, application.ErrNotPostOwner):
			response.Error(c, http.StatusForbidden, "you are not the owner of this blog post")
		default:
			h.Logger.WithError(err).WithField("post_id", id).Error("delete blog post failed")
			response.Error(c, http.StatusInternalServerError, "an error occurred")
		}
		return
	}
	c.Status(http.StatusNoContent)
}
