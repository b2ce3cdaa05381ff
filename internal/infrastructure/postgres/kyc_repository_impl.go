package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/veridoc/kyc-portal/internal/domain/entity"
	"github.com/veridoc/kyc-portal/internal/domain/repository"
)

const kycColumns = `id, user_id, status, full_name, email, phone, address, id_number,
	face_image, id_document, rejection_reason, created_at, updated_at`

type KycRepository struct {
	pool *pgxpool.Pool
}

func NewKycRepository(pool *pgxpool.Pool) *KycRepository {
	return &KycRepository{pool: pool}
}

func scanSubmission(row pgx.Row) (*entity.KycSubmission, error) {
	k := &entity.KycSubmission{}
	if err := row.Scan(&k.ID, &k.UserID, &k.Status, &k.FullName, &k.Email, &k.Phone,
		&k.Address, &k.IDNumber, &k.FaceImage, &k.IDDocument, &k.RejectionReason,
		&k.CreatedAt, &k.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return k, nil
}

func (r *KycRepository) Create(ctx context.Context, k *entity.KycSubmission) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO kyc_submissions
			(user_id, full_name, email, phone, address, id_number, face_image, id_document)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, status, created_at, updated_at
	`, k.UserID, k.FullName, k.Email, k.Phone, k.Address, k.IDNumber, k.FaceImage, k.IDDocument)

	return row.Scan(&k.ID, &k.Status, &k.CreatedAt, &k.UpdatedAt)
}

func (r *KycRepository) GetByID(ctx context.Context, id string) (*entity.KycSubmission, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+kycColumns+`
		FROM kyc_submissions
		WHERE id = $1
	`, id)
	return scanSubmission(row)
}

// GetLatestByUser resolves "the most relevant record" for the status
// view as the newest submission; resubmission inserts rows rather than
// replacing them.
func (r *KycRepository) GetLatestByUser(ctx context.Context, userID string) (*entity.KycSubmission, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+kycColumns+`
		FROM kyc_submissions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, userID)
	return scanSubmission(row)
}

func (r *KycRepository) ListAll(ctx context.Context) ([]entity.KycSummary, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT k.id, k.full_name, k.email, k.phone, k.status,
		       k.face_image, k.id_document, k.created_at,
		       u.full_name, u.email
		FROM kyc_submissions k
		JOIN users u ON u.id = k.user_id
		ORDER BY k.created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.KycSummary, 0)
	for rows.Next() {
		var s entity.KycSummary
		if err := rows.Scan(&s.ID, &s.FullName, &s.Email, &s.Phone, &s.Status,
			&s.FaceImage, &s.IDDocument, &s.SubmittedAt,
			&s.ApplicantName, &s.ApplicantEmail); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *KycRepository) UpdateStatus(ctx context.Context, id string, status entity.Status) (*entity.KycSubmission, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE kyc_submissions
		SET status = $1, updated_at = now()
		WHERE id = $2
		RETURNING `+kycColumns+`
	`, status, id)
	return scanSubmission(row)
}

var _ repository.KycRepository = (*KycRepository)(nil)
