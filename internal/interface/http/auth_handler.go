package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/geoauth/internal/application"
	"github.com/oksasatya/geoauth/internal/interface/middleware"
	"github.com/oksasatya/geoauth/pkg/response"
	"github.com/oksasatya/geoauth/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

// authStatus maps service errors onto the HTTP taxonomy. Unrecognized errors
// are dependency failures and stay opaque.
func authStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, application.ErrInvalidEmail),
		errors.Is(err, application.ErrWeakPassword),
		errors.Is(err, application.ErrPasswordRequired):
		return http.StatusBadRequest, true
	case errors.Is(err, application.ErrCodeExpired),
		errors.Is(err, application.ErrCodeMismatch),
		errors.Is(err, application.ErrInvalidOrExpiredCode),
		errors.Is(err, application.ErrInvalidCredentials),
		errors.Is(err, application.ErrNoPasswordSet):
		return http.StatusForbidden, true
	case errors.Is(err, application.ErrUserNotFound):
		return http.StatusNotFound, true
	}
	return http.StatusInternalServerError, false
}

func (h *AuthHandler) fail(c *gin.Context, err error) {
	status, known := authStatus(err)
	if !known {
		h.Logger.WithError(err).WithField("path", c.FullPath()).Error("dependency failure")
		response.Fail(c, status, "internal error", nil)
		return
	}
	response.Fail(c, status, err.Error(), nil)
}

type sendCodeRequest struct {
	Email string `json:"email" binding:"required"`
}

// SendCode POST /auth/send-code
func (h *AuthHandler) SendCode(c *gin.Context) {
	var req sendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.SendCode(c.Request.Context(), req.Email); err != nil {
		h.fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "verification code sent")
}

type verifyCodeRequest struct {
	Email    string `json:"email" binding:"required"`
	Code     string `json:"code" binding:"required"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// VerifyCode POST /auth/verify-code
func (h *AuthHandler) VerifyCode(c *gin.Context) {
	var req verifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.VerifyCode(c.Request.Context(), req.Email, req.Code, req.Name, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, "login successful")
}

// ForgotPassword POST /auth/forgotPassword
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req sendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		h.fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "password reset code sent")
}

type resetPasswordRequest struct {
	Email       string `json:"email" binding:"required"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// ResetPassword POST /auth/resetPassword
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.ResetPassword(c.Request.Context(), req.Email, req.Code, req.NewPassword); err != nil {
		h.fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "password updated")
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// ChangePassword PATCH /auth/changePassword (bearer-authenticated)
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	var missing []string
	if req.OldPassword == "" {
		missing = append(missing, "oldPassword")
	}
	if req.NewPassword == "" {
		missing = append(missing, "newPassword")
	}
	if len(missing) > 0 {
		response.Fail(c, http.StatusBadRequest, "missing fields: "+strings.Join(missing, ", "), nil)
		return
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.ChangePassword(c.Request.Context(), uid, req.OldPassword, req.NewPassword); err != nil {
		h.fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "password updated")
}

// GetProfile GET /auth/getProfile (bearer-authenticated)
func (h *AuthHandler) GetProfile(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"id":    u.ID,
		"email": u.Email,
		"name":  u.Name,
	}, "profile")
}
