package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/veridoc/kyc-portal/internal/application"
	"github.com/veridoc/kyc-portal/internal/domain/entity"
	"github.com/veridoc/kyc-portal/pkg/response"
	"github.com/veridoc/kyc-portal/pkg/validation"
)

type AdminHandler struct {
	Svc    *application.ReviewService
	Logger *logrus.Logger
}

func NewAdminHandler(svc *application.ReviewService, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Svc: svc, Logger: logger}
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func summaryView(s entity.KycSummary) gin.H {
	return gin.H{
		"id":             s.ID,
		"fullName":       s.FullName,
		"email":          s.Email,
		"phone":          s.Phone,
		"status":         s.Status,
		"faceImageUrl":   s.FaceImage,
		"idDocumentUrl":  s.IDDocument,
		"submittedAt":    s.SubmittedAt,
		"applicantName":  s.ApplicantName,
		"applicantEmail": s.ApplicantEmail,
	}
}

// ListAll GET /api/admin/all
// Full dump; filtering by status or search text happens client-side.
func (h *AdminHandler) ListAll(c *gin.Context) {
	summaries, err := h.Svc.ListAll(c.Request.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("admin fetch failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "Failed to load submissions", nil)
		return
	}

	out := make([]gin.H, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, summaryView(s))
	}
	response.Success(c, http.StatusOK, out, "submissions")
}

// UpdateStatus PUT /api/admin/update/:id
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Invalid status", validation.ToDetails(err))
		return
	}

	k, err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("id"), entity.Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidStatus):
			response.Error[any](c, http.StatusBadRequest, "Invalid status", nil)
		case errors.Is(err, application.ErrSubmissionNotFound):
			response.Error[any](c, http.StatusNotFound, "Submission not found", nil)
		default:
			if h.Logger != nil {
				h.Logger.WithError(err).WithField("kyc_id", c.Param("id")).Error("update status failed")
			}
			response.Error[any](c, http.StatusInternalServerError, "Could not update status", nil)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"updated": statusView(k)}, "Status updated")
}
