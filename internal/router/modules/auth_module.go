package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/geoauth/internal/interface/http"
	"github.com/oksasatya/geoauth/internal/interface/middleware"
	"github.com/oksasatya/geoauth/pkg/helpers"
)

// AuthModule wires the auth endpoints under /auth.
// Public: send-code, verify-code, forgotPassword, resetPassword.
// Protected: changePassword, getProfile (bearer access token).
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.POST("/send-code", m.Handler.SendCode)
	auth.POST("/verify-code", m.Handler.VerifyCode)
	auth.POST("/forgotPassword", m.Handler.ForgotPassword)
	auth.POST("/resetPassword", m.Handler.ResetPassword)

	protected := auth.Group("/")
	protected.Use(middleware.Auth(m.JWT))
	{
		protected.PATCH("/changePassword", m.Handler.ChangePassword)
		protected.GET("/getProfile", m.Handler.GetProfile)
	}
}
