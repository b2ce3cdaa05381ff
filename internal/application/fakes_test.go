package application

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/veridoc/kyc-portal/internal/domain/entity"
	repo "github.com/veridoc/kyc-portal/internal/domain/repository"
)

type fakeUserRepo struct {
	users map[string]*entity.User // by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

type fakeKycRepo struct {
	users *fakeUserRepo
	subs  []*entity.KycSubmission
	seq   int
}

func newFakeKycRepo(users *fakeUserRepo) *fakeKycRepo {
	return &fakeKycRepo{users: users}
}

func (f *fakeKycRepo) Create(ctx context.Context, k *entity.KycSubmission) error {
	f.seq++
	k.ID = uuid.NewString()
	k.Status = entity.StatusPending
	// distinct, monotonically increasing timestamps
	k.CreatedAt = time.Now().Add(time.Duration(f.seq) * time.Millisecond)
	k.UpdatedAt = k.CreatedAt
	cp := *k
	f.subs = append(f.subs, &cp)
	return nil
}

func (f *fakeKycRepo) GetByID(ctx context.Context, id string) (*entity.KycSubmission, error) {
	for _, s := range f.subs {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeKycRepo) GetLatestByUser(ctx context.Context, userID string) (*entity.KycSubmission, error) {
	var latest *entity.KycSubmission
	for _, s := range f.subs {
		if s.UserID != userID {
			continue
		}
		if latest == nil || s.CreatedAt.After(latest.CreatedAt) {
			latest = s
		}
	}
	if latest == nil {
		return nil, repo.ErrNotFound
	}
	cp := *latest
	return &cp, nil
}

func (f *fakeKycRepo) ListAll(ctx context.Context) ([]entity.KycSummary, error) {
	out := make([]entity.KycSummary, 0, len(f.subs))
	for _, s := range f.subs {
		sum := entity.KycSummary{
			ID:          s.ID,
			FullName:    s.FullName,
			Email:       s.Email,
			Phone:       s.Phone,
			Status:      s.Status,
			FaceImage:   s.FaceImage,
			IDDocument:  s.IDDocument,
			SubmittedAt: s.CreatedAt,
		}
		if f.users != nil {
			if u, err := f.users.GetByID(ctx, s.UserID); err == nil {
				sum.ApplicantName = u.FullName
				sum.ApplicantEmail = u.Email
			}
		}
		out = append(out, sum)
	}
	return out, nil
}

func (f *fakeKycRepo) UpdateStatus(ctx context.Context, id string, status entity.Status) (*entity.KycSubmission, error) {
	for _, s := range f.subs {
		if s.ID == id {
			s.Status = status
			s.UpdatedAt = s.UpdatedAt.Add(time.Millisecond)
			cp := *s
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

type fakeBlobStore struct {
	puts []string
}

func (f *fakeBlobStore) Put(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	f.puts = append(f.puts, key)
	return f.URL(key), nil
}

func (f *fakeBlobStore) URL(key string) string {
	return fmt.Sprintf("/uploads/%s", key)
}
