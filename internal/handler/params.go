package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"creditwatch/internal/domain"
)

// pathUUID parses a UUID path parameter, writing a 400 response on failure.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// queryUUID parses an optional UUID query parameter. A missing parameter
// yields (nil, true).
func queryUUID(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_QUERY", "invalid "+name)
		return nil, false
	}
	return &id, true
}

// queryDate parses an optional YYYY-MM-DD query parameter. A missing
// parameter yields (nil, true).
func queryDate(c *gin.Context, name string) (*domain.Date, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_QUERY", name+" must be YYYY-MM-DD")
		return nil, false
	}
	return &d, true
}
