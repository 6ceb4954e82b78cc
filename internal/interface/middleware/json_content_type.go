package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/geoauth/pkg/response"
)

// RequireJSON rejects POST/PUT/PATCH requests that do not declare an
// application/json body, before any controller runs.
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
			ct := c.ContentType()
			if !strings.EqualFold(ct, "application/json") {
				resp := response.Error[any](c, http.StatusBadRequest, "Content-Type must be application/json", nil)
				c.AbortWithStatusJSON(resp.Status, resp)
				return
			}
		}
		c.Next()
	}
}
