package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"blogpost-api/internal/application"
	"blogpost-api/internal/interface/middleware"
	"blogpost-api/pkg/response"
	"blogpost-api/pkg/validation"
)

type AuthHandler struct {
	Svc    application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Username string `json:"username" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,pwd"`
	FullName string `json:"fullName" binding:"omitempty,max=100"`
}

type loginRequest struct {
	EmailOrUsername string `json:"emailOrUsername" binding:"required"`
	Password        string `json:"password" binding:"required"`
}

type updateProfileRequest struct {
	FullName        string `json:"fullName" binding:"omitempty,max=100"`
	Bio             string `json:"bio" binding:"omitempty,max=500"`
	ProfileImageURL string `json:"profileImageUrl" binding:"omitempty,max=500"`
}

// Register POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusBadRequest, validation.ToDetails(err))
		return
	}

	res, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) || errors.Is(err, application.ErrUsernameTaken) {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.WithError(err).Error("registration failed")
		response.Error(c, http.StatusInternalServerError, "an error occurred")
		return
	}
	c.JSON(http.StatusOK, res)
}

// Login POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusBadRequest, validation.ToDetails(err))
		return
	}

	res, err := h.Svc.Login(c.Request.Context(), req.EmailOrUsername, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Error(c, http.StatusBadRequest, "invalid credentials")
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.Error(c, http.StatusInternalServerError, "an error occurred")
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetProfile GET /auth/profile (auth required)
func (h *AuthHandler) GetProfile(c *gin.Context) {
	uid := middleware.ViewerID(c)
	if uid == nil {
		response.Error(c, http.StatusUnauthorized, "missing bearer token")
		return
	}

	u, err := h.Svc.GetProfile(c.Request.Context(), *uid)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "user not found")
			return
		}
		h.Logger.WithError(err).Error("get profile failed")
		response.Error(c, http.StatusInternalServerError, "an error occurred")
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateProfile PUT /auth/profile (auth required). Only non-empty fields
// replace stored values.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	uid := middleware.ViewerID(c)
	if uid == nil {
		response.Error(c, http.StatusUnauthorized, "missing bearer token")
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusBadRequest, validation.ToDetails(err))
		return
	}

	u, err := h.Svc.UpdateProfile(c.Request.Context(), *uid, application.UpdateProfileInput{
		FullName:        req.FullName,
		Bio:             req.Bio,
		ProfileImageURL: req.ProfileImageURL,
	})
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "user not found")
			return
		}
		h.Logger.WithError(err).WithField("user_id", *uid).Error("update profile failed")
		response.Error(c, http.StatusInternalServerError, "an error occurred")
		return
	}
	c.JSON(http.StatusOK, u)
}

// GetUser GET /auth/user/:id (public)
func (h *AuthHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "user not found")
		return
	}

	u, err := h.Svc.GetProfile(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "user not found")
			return
		}
		h.Logger.WithError(err).WithField("user_id", id).Error("get user failed")
		response.Error(c, http.StatusInternalServerError, "an error occurred")
		return
	}
	c.JSON(http.StatusOK, u)
}
