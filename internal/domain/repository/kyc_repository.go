package repository

import (
	"context"

	"github.com/veridoc/kyc-portal/internal/domain/entity"
)

// KycRepository defines the interface for KYC submission persistence.
type KycRepository interface {
	Create(ctx context.Context, k *entity.KycSubmission) error
	GetByID(ctx context.Context, id string) (*entity.KycSubmission, error)
	// GetLatestByUser returns the newest submission for the user, or
	// an error satisfying errors.Is(err, ErrNotFound) when the user has
	// never submitted.
	GetLatestByUser(ctx context.Context, userID string) (*entity.KycSubmission, error)
	ListAll(ctx context.Context) ([]entity.KycSummary, error)
	// UpdateStatus overwrites the status and bumps updated_at,
	// returning the updated row.
	UpdateStatus(ctx context.Context, id string, status entity.Status) (*entity.KycSubmission, error)
}
