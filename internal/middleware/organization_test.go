package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightdoc/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func orgEngine(seen *uuid.UUID) *gin.Engine {
	r := gin.New()
	r.Use(middleware.OrganizationScope())
	r.GET("/test", func(c *gin.Context) {
		id, err := middleware.GetOrganizationID(c)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		*seen = id
		c.Status(http.StatusOK)
	})
	return r
}

func TestOrganizationScope_Valid(t *testing.T) {
	var seen uuid.UUID
	r := orgEngine(&seen)
	orgID := uuid.New()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set(middleware.HeaderOrganizationID, orgID.String())
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, orgID, seen)
}

func TestOrganizationScope_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
		code   string
	}{
		{"missing", "", "MISSING_ORGANIZATION"},
		{"not a uuid", "acme", "INVALID_ORGANIZATION"},
		{"nil uuid", uuid.Nil.String(), "INVALID_ORGANIZATION"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen uuid.UUID
			r := orgEngine(&seen)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
			if tt.header != "" {
				req.Header.Set(middleware.HeaderOrganizationID, tt.header)
			}
			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.code)
			assert.Equal(t, uuid.Nil, seen)
		})
	}
}

func TestGetOrganizationID_NotSet(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, err := middleware.GetOrganizationID(c)
	assert.Error(t, err)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("X-Request-ID", "req-42")
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/test", http.NoBody)
	r.ServeHTTP(w, req)
	_, err := uuid.Parse(w.Header().Get("X-Request-ID"))
	assert.NoError(t, err)
}
