package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridoc/kyc-portal/internal/domain/entity"
)

func TestJWTRoundtrip(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	token, exp, err := m.Generate("u1", entity.RoleAdmin)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestJWTExpired(t *testing.T) {
	m := NewJWTManager("secret", -time.Minute)

	token, _, err := m.Generate("u1", entity.RoleUser)
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.Error(t, err)
}

func TestJWTWrongSecret(t *testing.T) {
	a := NewJWTManager("secret-a", time.Hour)
	b := NewJWTManager("secret-b", time.Hour)

	token, _, err := a.Generate("u1", entity.RoleUser)
	require.NoError(t, err)

	_, err = b.Parse(token)
	assert.Error(t, err)
}

func TestJWTGarbageToken(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	_, err := m.Parse("not.a.token")
	assert.Error(t, err)
}
