package application

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridoc/kyc-portal/internal/domain/entity"
)

func upload(name string) *Upload {
	return &Upload{
		Filename:    name,
		ContentType: "image/png",
		Content:     strings.NewReader("fake image bytes"),
	}
}

func submitInput() SubmitInput {
	return SubmitInput{
		FullName:   "Jane Doe",
		Email:      "jane@example.com",
		Phone:      "+15550100",
		Address:    "1 Main St",
		IDNumber:   "A1234567",
		FaceImage:  upload("face.png"),
		IDDocument: upload("passport.png"),
	}
}

func newKycFixture(t *testing.T) (*KycService, *fakeUserRepo, *fakeKycRepo, *fakeBlobStore, string) {
	t.Helper()
	users := newFakeUserRepo()
	kycs := newFakeKycRepo(users)
	blobs := &fakeBlobStore{}
	svc := NewKycService(kycs, users, blobs, nil, nil, nil, "kyc-portal")

	u := &entity.User{Email: "jane@example.com", FullName: "Jane Doe", Role: entity.RoleUser}
	require.NoError(t, users.Create(context.Background(), u))
	return svc, users, kycs, blobs, u.ID
}

func TestSubmitMissingDocuments(t *testing.T) {
	ctx := context.Background()
	svc, _, kycs, blobs, uid := newKycFixture(t)

	in := submitInput()
	in.FaceImage = nil
	assert.ErrorIs(t, svc.Submit(ctx, uid, in), ErrMissingDocument)

	in = submitInput()
	in.IDDocument = nil
	assert.ErrorIs(t, svc.Submit(ctx, uid, in), ErrMissingDocument)

	in = submitInput()
	in.FaceImage = nil
	in.IDDocument = nil
	assert.ErrorIs(t, svc.Submit(ctx, uid, in), ErrMissingDocument)

	// fail-fast: nothing was stored
	assert.Empty(t, kycs.subs)
	assert.Empty(t, blobs.puts)
}

func TestSubmitCreatesPendingRecord(t *testing.T) {
	ctx := context.Background()
	svc, _, kycs, blobs, uid := newKycFixture(t)

	require.NoError(t, svc.Submit(ctx, uid, submitInput()))

	require.Len(t, kycs.subs, 1)
	k := kycs.subs[0]
	assert.Equal(t, uid, k.UserID)
	assert.Equal(t, entity.StatusPending, k.Status)
	assert.Equal(t, "Jane Doe", k.FullName)
	assert.NotEmpty(t, k.FaceImage)
	assert.NotEmpty(t, k.IDDocument)
	assert.NotEqual(t, k.FaceImage, k.IDDocument)
	assert.Len(t, blobs.puts, 2)

	// blob keys keep the original extension but not the original name
	for _, key := range blobs.puts {
		assert.True(t, strings.HasSuffix(key, ".png"), key)
		assert.NotContains(t, key, "face")
		assert.NotContains(t, key, "passport")
	}
}

func TestSubmitTwiceCreatesTwoRecords(t *testing.T) {
	ctx := context.Background()
	svc, _, kycs, _, uid := newKycFixture(t)

	require.NoError(t, svc.Submit(ctx, uid, submitInput()))
	require.NoError(t, svc.Submit(ctx, uid, submitInput()))

	// insert-always: the first record is untouched
	require.Len(t, kycs.subs, 2)
	assert.NotEqual(t, kycs.subs[0].ID, kycs.subs[1].ID)
}

func TestStatusNotSubmitted(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _, uid := newKycFixture(t)

	_, err := svc.Status(ctx, uid)
	assert.ErrorIs(t, err, ErrNotSubmitted)
}

func TestStatusAfterSubmit(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _, uid := newKycFixture(t)

	require.NoError(t, svc.Submit(ctx, uid, submitInput()))

	k, err := svc.Status(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, k.Status)
	assert.NotEmpty(t, k.FaceImage)
	assert.NotEmpty(t, k.IDDocument)
	assert.Empty(t, k.RejectionReason)
}

func TestStatusReturnsNewestSubmission(t *testing.T) {
	ctx := context.Background()
	svc, _, kycs, _, uid := newKycFixture(t)

	require.NoError(t, svc.Submit(ctx, uid, submitInput()))
	in := submitInput()
	in.FullName = "Jane Q. Doe"
	require.NoError(t, svc.Submit(ctx, uid, in))

	k, err := svc.Status(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, "Jane Q. Doe", k.FullName)
	assert.Equal(t, kycs.subs[1].ID, k.ID)
}

// End to end through both workflows: submit, verify, observe.
func TestSubmitReviewRoundtrip(t *testing.T) {
	ctx := context.Background()
	svc, users, kycs, _, uid := newKycFixture(t)
	review := NewReviewService(kycs, users, nil, nil, nil, "kyc-portal")

	require.NoError(t, svc.Submit(ctx, uid, submitInput()))

	k, err := svc.Status(ctx, uid)
	require.NoError(t, err)
	require.Equal(t, entity.StatusPending, k.Status)

	updated, err := review.UpdateStatus(ctx, k.ID, entity.StatusVerified)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusVerified, updated.Status)

	k, err = svc.Status(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusVerified, k.Status)
}
