// File: handlers/lead.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/clicksalesmedia/clicksalesmedia-sub003/models"
	"github.com/clicksalesmedia/clicksalesmedia-sub003/services/lead"
	"github.com/clicksalesmedia/clicksalesmedia-sub003/utils"
)

// LeadHandler serves the contact pipeline and the two legacy forms.
type LeadHandler struct {
	Service lead.LeadService
	Logger  *zap.Logger
}

// NewLeadHandler constructs a LeadHandler.
func NewLeadHandler(service lead.LeadService, logger *zap.Logger) *LeadHandler {
	return &LeadHandler{Service: service, Logger: logger}
}

// SubmitLead accepts a public contact-form submission.
// POST /api/leads
func (h *LeadHandler) SubmitLead(c *gin.Context) {
	var req models.LeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Service.Submit(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to submit lead", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// SubmitLegacyLead accepts a submission to one of the two legacy forms.
// POST /api/leads/legacy/:form
func (h *LeadHandler) SubmitLegacyLead(c *gin.Context) {
	var req models.LegacyLead
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if req.Name == "" || req.Email == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "name and email are required")
		return
	}

	created, err := h.Service.SubmitLegacy(c.Request.Context(), c.Param("form"), req)
	if err != nil {
		if errors.Is(err, lead.ErrUnknownForm) {
			utils.JSONError(c, http.StatusNotFound, "unknown form", c.Param("form"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to submit lead", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListLeads serves the admin pipeline view.
// GET /api/admin/leads?status=&limit=&offset=
func (h *LeadHandler) ListLeads(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	leads, err := h.Service.List(c.Request.Context(), c.Query("status"), limit, offset)
	if err != nil {
		if errors.Is(err, lead.ErrInvalidLeadStatus) {
			utils.JSONError(c, http.StatusBadRequest, "invalid status filter", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to list leads", err.Error())
		return
	}
	c.JSON(http.StatusOK, leads)
}

// GetLead returns one lead by ID.
// GET /api/admin/leads/:id
func (h *LeadHandler) GetLead(c *gin.Context) {
	l, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, lead.ErrLeadNotFound) {
			utils.JSONError(c, http.StatusNotFound, "lead not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch lead", err.Error())
		return
	}
	c.JSON(http.StatusOK, l)
}

// UpdateLeadStatus moves a lead along the pipeline.
// PATCH /api/admin/leads/:id/status
func (h *LeadHandler) UpdateLeadStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, lead.ErrLeadNotFound):
			utils.JSONError(c, http.StatusNotFound, "lead not found", "")
		case errors.Is(err, lead.ErrInvalidLeadStatus):
			utils.JSONError(c, http.StatusBadRequest, "invalid status", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to update lead", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteLead removes a lead record.
// DELETE /api/admin/leads/:id
func (h *LeadHandler) DeleteLead(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, lead.ErrLeadNotFound) {
			utils.JSONError(c, http.StatusNotFound, "lead not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete lead", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ListLegacyLeads returns submissions of one legacy form for the dashboard.
// GET /api/admin/leads/legacy/:form
func (h *LeadHandler) ListLegacyLeads(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	leads, err := h.Service.ListLegacy(c.Request.Context(), c.Param("form"), limit)
	if err != nil {
		if errors.Is(err, lead.ErrUnknownForm) {
			utils.JSONError(c, http.StatusNotFound, "unknown form", c.Param("form"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to list legacy leads", err.Error())
		return
	}
	c.JSON(http.StatusOK, leads)
}
