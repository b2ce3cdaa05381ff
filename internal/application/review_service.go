package application

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/veridoc/kyc-portal/internal/domain/entity"
	repo "github.com/veridoc/kyc-portal/internal/domain/repository"
	"github.com/veridoc/kyc-portal/pkg/helpers"
	"github.com/veridoc/kyc-portal/pkg/mailer"
	tpl "github.com/veridoc/kyc-portal/pkg/mailer/templates"
)

var (
	ErrInvalidStatus      = errors.New("invalid status")
	ErrSubmissionNotFound = errors.New("submission not found")
)

// ReviewService is the admin-only review workflow: list everything,
// move submissions between states. The reviewer's identity is not
// recorded and transitions are unrestricted, any state to any state.
type ReviewService struct {
	Repo    repo.KycRepository
	Users   repo.UserRepository
	Redis   *redis.Client
	Pub     *helpers.RabbitPublisher
	Logger  *logrus.Logger
	AppName string
}

func NewReviewService(kycs repo.KycRepository, users repo.UserRepository,
	rdb *redis.Client, pub *helpers.RabbitPublisher, logger *logrus.Logger, appName string) *ReviewService {
	return &ReviewService{
		Repo:    kycs,
		Users:   users,
		Redis:   rdb,
		Pub:     pub,
		Logger:  logger,
		AppName: appName,
	}
}

// ListAll returns every submission with the owning account joined in.
// Filtering and pagination are the client's concern.
func (s *ReviewService) ListAll(ctx context.Context) ([]entity.KycSummary, error) {
	return s.Repo.ListAll(ctx)
}

// UpdateStatus overwrites the submission's status and returns the
// updated record. The target may equal the current status; nothing
// guards the transition.
func (s *ReviewService) UpdateStatus(ctx context.Context, id string, status entity.Status) (*entity.KycSubmission, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	k, err := s.Repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}

	if s.Redis != nil {
		if err := helpers.RedisDel(ctx, s.Redis, statusCacheKey(k.UserID)); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", k.UserID).Warn("status cache invalidation failed")
		}
	}

	s.notifyDecision(ctx, k)
	return k, nil
}

func (s *ReviewService) notifyDecision(ctx context.Context, k *entity.KycSubmission) {
	if s.Pub == nil {
		return
	}
	u, err := s.Users.GetByID(ctx, k.UserID)
	if err != nil || u == nil {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: tpl.KycDecision,
		Data: tpl.ToMap(tpl.EmailData{
			Name:       u.FullName,
			Email:      u.Email,
			AppName:    s.AppName,
			Status:     string(k.Status),
			ReviewedAt: k.UpdatedAt.UTC().Format("02 January 2006, 15:04 MST"),
		}),
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("kyc_id", k.ID).Warn("publish decision email failed")
	}
}
