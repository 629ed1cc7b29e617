// Package handlers contains HTTP request handlers for the information service.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus"

	"github.com/sebasr/information-service/internal/information"
	"github.com/sebasr/information-service/internal/middleware"
	"github.com/sebasr/information-service/internal/models"
	"github.com/sebasr/information-service/internal/repository"
)

const defaultAuditTimeout = 2 * time.Second

// InformationHandler serves information records
type InformationHandler struct {
	provider     information.Provider
	lookupRepo   repository.LookupRepository
	auditTimeout time.Duration
	log          logrus.FieldLogger
}

// NewInformationHandler creates a new information handler
func NewInformationHandler(provider information.Provider, log logrus.FieldLogger) *InformationHandler {
	return &InformationHandler{
		provider:     provider,
		auditTimeout: defaultAuditTimeout,
		log:          log,
	}
}

// WithLookupRepository records every served lookup in repo
func (h *InformationHandler) WithLookupRepository(repo repository.LookupRepository, timeout time.Duration) *InformationHandler {
	h.lookupRepo = repo
	if timeout > 0 {
		h.auditTimeout = timeout
	}
	return h
}

// GetInformation returns the information record for the requested name
// GET /information?name=<name>
func (h *InformationHandler) GetInformation(c *gin.Context) {
	name := requestedName(c)
	info := h.provider.Lookup(name)

	if h.lookupRepo != nil {
		h.recordLookup(c, name, info)
	}

	c.Negotiate(http.StatusOK, gin.Negotiate{
		Offered: []string{binding.MIMEJSON, binding.MIMEXML, binding.MIMEXML2},
		Data:    info,
	})
}

// requestedName reads the name parameter; a missing or empty value means the default name
func requestedName(c *gin.Context) string {
	name := c.Query("name")
	if name == "" && c.Request.Method == http.MethodPost {
		name = c.PostForm("name")
	}
	if name == "" {
		return information.DefaultName
	}
	return name
}

// recordLookup writes the audit entry. Failures are logged and never affect the response.
func (h *InformationHandler) recordLookup(c *gin.Context, name string, info models.Information) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.auditTimeout)
	defer cancel()

	record := models.NewLookupRecord(middleware.GetRequestID(c), name, info, information.Matches(name))
	if err := h.lookupRepo.Record(ctx, record); err != nil {
		h.log.WithFields(logrus.Fields{
			"request_id": record.RequestID,
			"name":       name,
		}).WithError(err).Warn("failed to record lookup")
	}
}
