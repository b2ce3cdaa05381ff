package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/veridoc/kyc-portal/internal/application"
	"github.com/veridoc/kyc-portal/internal/domain/entity"
	"github.com/veridoc/kyc-portal/internal/interface/middleware"
	"github.com/veridoc/kyc-portal/pkg/response"
)

type KycHandler struct {
	Svc    *application.KycService
	Logger *logrus.Logger
}

func NewKycHandler(svc *application.KycService, logger *logrus.Logger) *KycHandler {
	return &KycHandler{Svc: svc, Logger: logger}
}

// Submit POST /api/kyc/submit (multipart)
// Text fields: fullName, email, phone, address, idNumber.
// Files: faceImage, idDocument — both required.
func (h *KycHandler) Submit(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)

	in := application.SubmitInput{
		FullName: c.PostForm("fullName"),
		Email:    c.PostForm("email"),
		Phone:    c.PostForm("phone"),
		Address:  c.PostForm("address"),
		IDNumber: c.PostForm("idNumber"),
	}

	var closers []multipart.File
	defer func() {
		for _, f := range closers {
			_ = f.Close()
		}
	}()

	if fh, err := c.FormFile("faceImage"); err == nil {
		f, err := fh.Open()
		if err != nil {
			response.Error[any](c, http.StatusInternalServerError, "KYC error", nil)
			return
		}
		closers = append(closers, f)
		in.FaceImage = &application.Upload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Content:     f,
		}
	}
	if fh, err := c.FormFile("idDocument"); err == nil {
		f, err := fh.Open()
		if err != nil {
			response.Error[any](c, http.StatusInternalServerError, "KYC error", nil)
			return
		}
		closers = append(closers, f)
		in.IDDocument = &application.Upload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Content:     f,
		}
	}

	if err := h.Svc.Submit(c.Request.Context(), uid, in); err != nil {
		if errors.Is(err, application.ErrMissingDocument) {
			response.Error[any](c, http.StatusBadRequest, "Face image and ID document are required", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("user_id", uid).Error("kyc submit failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "KYC error", nil)
		return
	}

	// Confirmation only; the created record body is not returned.
	response.Success[any](c, http.StatusOK, nil, "KYC submitted successfully")
}

func statusView(k *entity.KycSubmission) gin.H {
	return gin.H{
		"id":              k.ID,
		"status":          k.Status,
		"fullName":        k.FullName,
		"email":           k.Email,
		"phone":           k.Phone,
		"address":         k.Address,
		"idNumber":        k.IDNumber,
		"faceImageUrl":    k.FaceImage,
		"idDocumentUrl":   k.IDDocument,
		"submittedAt":     k.CreatedAt,
		"reviewedAt":      k.UpdatedAt,
		"rejectionReason": k.RejectionReason,
	}
}

// Status GET /api/kyc/status
func (h *KycHandler) Status(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)

	k, err := h.Svc.Status(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, application.ErrNotSubmitted) {
			// expected for users who have not submitted yet
			response.Error[any](c, http.StatusNotFound, "No KYC found", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("user_id", uid).Error("fetch kyc status failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "Error fetching KYC status", nil)
		return
	}

	response.Success(c, http.StatusOK, statusView(k), "kyc status")
}
