package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("testsecret", time.Hour)

	token, exp, err := m.Generate(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
}

func TestJWTExpiredRejected(t *testing.T) {
	m := NewJWTManager("testsecret", -time.Minute)

	token, _, err := m.Generate(1)
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.Error(t, err)
}

func TestJWTWrongSecretRejected(t *testing.T) {
	issuer := NewJWTManager("secret-a", time.Hour)
	verifier := NewJWTManager("secret-b", time.Hour)

	token, _, err := issuer.Generate(1)
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.Error(t, err)
}

func TestJWTTamperedRejected(t *testing.T) {
	m := NewJWTManager("testsecret", time.Hour)

	token, _, err := m.Generate(1)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = m.Parse(tampered)
	assert.Error(t, err)
}
