package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/campushub/campus-hub-api/internal/middleware"
	"github.com/campushub/campus-hub-api/internal/models"
)

// claimsFromContext returns the JWT claims stored by the auth middleware, or
// nil when the request is unauthenticated.
func claimsFromContext(c *gin.Context) *models.JWTClaims {
	value, ok := c.Get(middleware.ContextUserKey)
	if !ok {
		return nil
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return nil
	}
	return claims
}
