package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sebasr/information-service/internal/repository"
)

const (
	defaultLookupLimit = 20
	maxLookupLimit     = 100
)

// LookupHandler exposes the lookup audit log
type LookupHandler struct {
	lookupRepo repository.LookupRepository
}

// NewLookupHandler creates a new lookup handler
func NewLookupHandler(lookupRepo repository.LookupRepository) *LookupHandler {
	return &LookupHandler{lookupRepo: lookupRepo}
}

// ListRecent returns the most recent lookups, newest first
// GET /api/v1/lookups?limit=<n>
func (h *LookupHandler) ListRecent(c *gin.Context) {
	limit := defaultLookupLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxLookupLimit {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_limit",
				"message": "limit must be an integer between 1 and " + strconv.Itoa(maxLookupLimit),
			})
			return
		}
		limit = parsed
	}

	records, err := h.lookupRepo.Recent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to retrieve lookups",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"lookups": records,
		"count":   len(records),
	})
}
