package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleCan(t *testing.T) {
	assert.True(t, RoleAdmin.Can(CapReviewSubmissions))
	assert.False(t, RoleUser.Can(CapReviewSubmissions))
	assert.False(t, Role("superadmin").Can(CapReviewSubmissions))
	assert.False(t, RoleAdmin.Can(Capability("unknown")))
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("").Valid())
	assert.False(t, Role("root").Valid())
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusVerified, StatusRejected} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, Status("approved").Valid())
	assert.False(t, Status("").Valid())
	assert.False(t, Status("Pending").Valid(), "statuses are case sensitive")
}
