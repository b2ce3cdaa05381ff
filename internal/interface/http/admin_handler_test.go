package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridoc/kyc-portal/internal/domain/entity"
)

func seedSubmission(t *testing.T, env *testEnv, email string) string {
	t.Helper()
	_, token := env.userToken(t, email, entity.RoleUser)
	w := env.submit(t, token, submitFields(), []filePart{
		{field: "faceImage", name: "face.png", content: "png-bytes"},
		{field: "idDocument", name: "passport.jpg", content: "jpg-bytes"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	return env.kycs.subs[len(env.kycs.subs)-1].ID
}

func TestAdminRoutesRejectUserRole(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.userToken(t, "jane@example.com", entity.RoleUser)

	w := env.get("/api/admin/all", token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.putJSON("/api/admin/update/some-id", `{"status":"verified"}`, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminListAll(t *testing.T) {
	env := newTestEnv(t)
	seedSubmission(t, env, "jane@example.com")
	seedSubmission(t, env, "bob@example.com")
	_, admin := env.userToken(t, "admin@example.com", entity.RoleAdmin)

	w := env.get("/api/admin/all", admin)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w.Body.Bytes())
	data := body["data"].([]any)
	require.Len(t, data, 2)

	first := data[0].(map[string]any)
	assert.Equal(t, "pending", first["status"])
	assert.NotEmpty(t, first["applicantEmail"])
}

func TestAdminListAllEmpty(t *testing.T) {
	env := newTestEnv(t)
	_, admin := env.userToken(t, "admin@example.com", entity.RoleAdmin)

	w := env.get("/api/admin/all", admin)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w.Body.Bytes())
	data, ok := body["data"].([]any)
	require.True(t, ok, "data must be a list even when empty")
	assert.Empty(t, data)
}

func TestAdminUpdateStatus(t *testing.T) {
	env := newTestEnv(t)
	id := seedSubmission(t, env, "jane@example.com")
	_, admin := env.userToken(t, "admin@example.com", entity.RoleAdmin)

	w := env.putJSON("/api/admin/update/"+id, `{"status":"verified"}`, admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Status updated")

	body := decodeBody(t, w.Body.Bytes())
	updated := body["data"].(map[string]any)["updated"].(map[string]any)
	assert.Equal(t, "verified", updated["status"])
	assert.Equal(t, id, updated["id"])
}

func TestAdminUpdateStatusRejected(t *testing.T) {
	env := newTestEnv(t)
	id := seedSubmission(t, env, "jane@example.com")
	_, admin := env.userToken(t, "admin@example.com", entity.RoleAdmin)

	w := env.putJSON("/api/admin/update/"+id, `{"status":"rejected"}`, admin)
	require.Equal(t, http.StatusOK, w.Code)

	// applicant now sees the decision
	assert.Equal(t, entity.StatusRejected, env.kycs.subs[0].Status)
}

func TestAdminUpdateStatusInvalid(t *testing.T) {
	env := newTestEnv(t)
	id := seedSubmission(t, env, "jane@example.com")
	_, admin := env.userToken(t, "admin@example.com", entity.RoleAdmin)

	for _, body := range []string{`{"status":"approved"}`, `{}`, `not-json`} {
		w := env.putJSON("/api/admin/update/"+id, body, admin)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
		assert.Contains(t, w.Body.String(), "Invalid status")
	}
}

func TestAdminUpdateStatusUnknownID(t *testing.T) {
	env := newTestEnv(t)
	_, admin := env.userToken(t, "admin@example.com", entity.RoleAdmin)

	w := env.putJSON("/api/admin/update/00000000-0000-0000-0000-000000000000",
		`{"status":"verified"}`, admin)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Submission not found")
}
