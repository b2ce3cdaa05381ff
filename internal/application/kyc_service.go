package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/veridoc/kyc-portal/internal/domain/entity"
	repo "github.com/veridoc/kyc-portal/internal/domain/repository"
	"github.com/veridoc/kyc-portal/pkg/blobstore"
	"github.com/veridoc/kyc-portal/pkg/helpers"
	"github.com/veridoc/kyc-portal/pkg/mailer"
	tpl "github.com/veridoc/kyc-portal/pkg/mailer/templates"
)

var (
	ErrMissingDocument = errors.New("face image and id document are required")
	// ErrNotSubmitted is the normal outcome for a user who has never
	// submitted, not a fault.
	ErrNotSubmitted = errors.New("no kyc submission")
)

const statusCacheTTL = 5 * time.Minute

func statusCacheKey(userID string) string {
	return "kyc:status:" + userID
}

// Upload is one file received from a multipart request.
type Upload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// SubmitInput carries the personal fields and the two required
// documents. Personal fields are free text, presence-checked at the
// binding layer only.
type SubmitInput struct {
	FullName string
	Email    string
	Phone    string
	Address  string
	IDNumber string

	FaceImage  *Upload
	IDDocument *Upload
}

// KycService owns the submission workflow and the per-user status view.
type KycService struct {
	Repo    repo.KycRepository
	Users   repo.UserRepository
	Blobs   blobstore.Store
	Redis   *redis.Client
	Pub     *helpers.RabbitPublisher
	Logger  *logrus.Logger
	AppName string
}

func NewKycService(kycs repo.KycRepository, users repo.UserRepository, blobs blobstore.Store,
	rdb *redis.Client, pub *helpers.RabbitPublisher, logger *logrus.Logger, appName string) *KycService {
	return &KycService{
		Repo:    kycs,
		Users:   users,
		Blobs:   blobs,
		Redis:   rdb,
		Pub:     pub,
		Logger:  logger,
		AppName: appName,
	}
}

// Submit stores both documents, then inserts a new pending submission
// owned by the caller. Submitting again inserts another record; nothing
// is replaced. Validation happens before any blob or row is written.
func (s *KycService) Submit(ctx context.Context, userID string, in SubmitInput) error {
	if in.FaceImage == nil || in.IDDocument == nil {
		return ErrMissingDocument
	}

	faceRef, err := s.storeBlob(ctx, in.FaceImage)
	if err != nil {
		return err
	}
	docRef, err := s.storeBlob(ctx, in.IDDocument)
	if err != nil {
		return err
	}

	k := &entity.KycSubmission{
		UserID:     userID,
		FullName:   in.FullName,
		Email:      in.Email,
		Phone:      in.Phone,
		Address:    in.Address,
		IDNumber:   in.IDNumber,
		FaceImage:  faceRef,
		IDDocument: docRef,
	}
	if err := s.Repo.Create(ctx, k); err != nil {
		return err
	}

	s.invalidateStatus(ctx, userID)
	s.notifySubmitted(ctx, userID, k)
	return nil
}

// Status returns the newest submission for the user, or ErrNotSubmitted.
func (s *KycService) Status(ctx context.Context, userID string) (*entity.KycSubmission, error) {
	if s.Redis != nil {
		var cached entity.KycSubmission
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, statusCacheKey(userID), &cached); err == nil && ok {
			return &cached, nil
		}
	}

	k, err := s.Repo.GetLatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotSubmitted
		}
		return nil, err
	}

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, statusCacheKey(userID), k, statusCacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Warn("status cache write failed")
		}
	}
	return k, nil
}

func (s *KycService) storeBlob(ctx context.Context, up *Upload) (string, error) {
	ext := strings.ToLower(filepath.Ext(up.Filename))
	key := uuid.NewString() + ext
	return s.Blobs.Put(ctx, key, up.ContentType, up.Content)
}

func (s *KycService) invalidateStatus(ctx context.Context, userID string) {
	if s.Redis == nil {
		return
	}
	if err := helpers.RedisDel(ctx, s.Redis, statusCacheKey(userID)); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Warn("status cache invalidation failed")
	}
}

func (s *KycService) notifySubmitted(ctx context.Context, userID string, k *entity.KycSubmission) {
	if s.Pub == nil {
		return
	}
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil || u == nil {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: tpl.KycSubmitted,
		Data: tpl.ToMap(tpl.EmailData{
			Name:        u.FullName,
			Email:       u.Email,
			AppName:     s.AppName,
			SubmittedAt: k.CreatedAt.UTC().Format("02 January 2006, 15:04 MST"),
		}),
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Warn("publish submitted email failed")
	}
}
