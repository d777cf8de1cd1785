package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderOrganizationID scopes every API request to one organization.
	HeaderOrganizationID = "X-Organization-ID"

	ContextKeyOrganizationID = "organization_id"
)

// OrganizationScope returns middleware that requires a valid organization id
// header and stores it in the request context.
func OrganizationScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderOrganizationID)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   gin.H{"code": "MISSING_ORGANIZATION", "message": "X-Organization-ID header is required"},
			})
			return
		}
		orgID, err := uuid.Parse(raw)
		if err != nil || orgID == uuid.Nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   gin.H{"code": "INVALID_ORGANIZATION", "message": "X-Organization-ID must be a UUID"},
			})
			return
		}
		c.Set(ContextKeyOrganizationID, orgID)
		c.Next()
	}
}

// GetOrganizationID extracts the organization id set by OrganizationScope.
func GetOrganizationID(c *gin.Context) (uuid.UUID, error) {
	val, exists := c.Get(ContextKeyOrganizationID)
	if !exists {
		return uuid.Nil, errors.New("organization_id not found in context")
	}
	id, ok := val.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("organization_id has invalid type")
	}
	return id, nil
}
