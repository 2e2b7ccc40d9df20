package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tropicacao/leads-api/internal/models"
	apperrors "github.com/tropicacao/leads-api/pkg/errors"
)

// LeadSubmitter runs the submission pipeline for a decoded request.
type LeadSubmitter interface {
	Submit(ctx context.Context, sub *models.Submission, clientIP string) (*models.SubmitResponse, error)
}

// LeadHandler exposes the lead submission endpoints.
type LeadHandler struct {
	service LeadSubmitter
}

func NewLeadHandler(service LeadSubmitter) *LeadHandler {
	return &LeadHandler{service: service}
}

// SubmitLead handles POST /api/v1/leads.
func (h *LeadHandler) SubmitLead(c *gin.Context) {
	var sub models.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request", fmt.Errorf("%w: %v", apperrors.ErrMalformed, err))
		return
	}

	h.process(c, &sub)
}

// SubmitLegacyContact handles POST /api/v1/contact, the flat payload shape
// the previous site version sent. It is remapped onto the contact form and
// runs through the same pipeline.
func (h *LeadHandler) SubmitLegacyContact(c *gin.Context) {
	var req models.LegacyContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request", fmt.Errorf("%w: %v", apperrors.ErrMalformed, err))
		return
	}

	h.process(c, req.ToSubmission())
}

func (h *LeadHandler) process(c *gin.Context, sub *models.Submission) {
	resp, err := h.service.Submit(c.Request.Context(), sub, c.ClientIP())
	if err != nil {
		h.respondSubmitError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// respondSubmitError maps pipeline errors onto the HTTP contract. Captcha
// rejections are deliberately indistinct so callers cannot probe the policy.
func (h *LeadHandler) respondSubmitError(c *gin.Context, err error) {
	var fieldErrs *apperrors.FieldErrors

	switch {
	case errors.Is(err, apperrors.ErrUnknownFormType):
		attachError(c, err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Unknown form type",
			"validTypes": models.ValidFormTypes(),
		})
	case errors.As(err, &fieldErrs):
		attachError(c, err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Validation failed",
			"fields": fieldErrs.Fields,
		})
	case errors.Is(err, apperrors.ErrVerificationMissing),
		errors.Is(err, apperrors.ErrVerificationFailed),
		errors.Is(err, apperrors.ErrVerificationSuspicious):
		respondError(c, http.StatusForbidden, "Forbidden", err)
	default:
		respondError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}
