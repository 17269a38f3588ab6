package services

import (
	"strings"
	"testing"
	"time"

	"github.com/flashnote-app/flashnote/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-token-tests"

func TestIssueAndVerify(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)

	token, err := svc.Issue(42, "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestIssueMissingSecret(t *testing.T) {
	svc := NewTokenService("", time.Hour)

	_, err := svc.Issue(1, "a@x.com")
	require.ErrorIs(t, err, models.ErrMissingConfig)
}

func TestIssueMissingExpiry(t *testing.T) {
	svc := NewTokenService(testSecret, 0)

	_, err := svc.Issue(1, "a@x.com")
	require.ErrorIs(t, err, models.ErrMissingConfig)
}

func TestVerifyTamperedSignature(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)

	token, err := svc.Issue(1, "a@x.com")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := strings.Join([]string{parts[0], parts[1], string(sig)}, ".")

	_, err = svc.Verify(tampered)
	require.ErrorIs(t, err, models.ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenService(testSecret, time.Hour)
	verifier := NewTokenService("a-completely-different-secret", time.Hour)

	token, err := issuer.Issue(1, "a@x.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, models.ErrInvalidToken)
}

func TestVerifyExpired(t *testing.T) {
	svc := NewTokenService(testSecret, time.Millisecond)

	token, err := svc.Issue(1, "a@x.com")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, models.ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)

	_, err := svc.Verify("not-a-token")
	require.ErrorIs(t, err, models.ErrInvalidToken)
}
