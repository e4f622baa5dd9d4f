package token

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Albab47/librarylog-server/internal/domain"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager([]byte("test-secret"))
	require.NoError(t, err)
	return m
}

func TestNewManager_EmptySecret(t *testing.T) {
	_, err := NewManager(nil)
	assert.Error(t, err)

	_, err = NewManager([]byte{})
	assert.Error(t, err)
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	m := newTestManager(t)

	issued := domain.Claims{
		"email": "a@x.com",
		"role":  "librarian",
	}

	tokenString, err := m.Issue(issued)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	verified, err := m.Verify(tokenString)
	require.NoError(t, err)

	// The decoded claim equals the issued payload; the registered claims
	// added at signing time are stripped on the way out.
	assert.Equal(t, issued, verified)
	assert.Equal(t, "a@x.com", verified.Email())
}

func TestVerify_Expired(t *testing.T) {
	m := newTestManager(t)

	tokenString, err := m.issue(domain.Claims{"email": "a@x.com"}, -1*time.Minute)
	require.NoError(t, err)

	claims, err := m.Verify(tokenString)
	assert.Nil(t, claims)
	require.Error(t, err)
	assert.Equal(t, domain.EUNAUTHORIZED, domain.ErrorCode(err))
}

func TestVerify_WrongKey(t *testing.T) {
	m := newTestManager(t)

	other, err := NewManager([]byte("another-secret"))
	require.NoError(t, err)

	tokenString, err := other.Issue(domain.Claims{"email": "a@x.com"})
	require.NoError(t, err)

	_, err = m.Verify(tokenString)
	require.Error(t, err)
	assert.Equal(t, domain.EUNAUTHORIZED, domain.ErrorCode(err))
}

func TestVerify_TamperedPayload(t *testing.T) {
	m := newTestManager(t)

	tokenString, err := m.Issue(domain.Claims{"email": "a@x.com"})
	require.NoError(t, err)

	// Mutate the payload segment; the signature no longer matches.
	parts := strings.Split(tokenString, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = m.Verify(tampered)
	require.Error(t, err)
	assert.Equal(t, domain.EUNAUTHORIZED, domain.ErrorCode(err))
}

func TestVerify_Malformed(t *testing.T) {
	m := newTestManager(t)

	for _, input := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := m.Verify(input)
		assert.Error(t, err, "input %q", input)
		assert.Equal(t, domain.EUNAUTHORIZED, domain.ErrorCode(err))
	}
}
