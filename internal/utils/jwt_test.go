package utils

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	manager := JWTManager{
		Secret:          []byte("test-secret"),
		Issuer:          "gromeuse",
		SessionTokenTTL: time.Hour,
	}

	token, ttl, err := manager.IssueSessionToken("user-1", "Alice", []string{"USER", "SELLER"}, true)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, ttl)

	claims, err := manager.ParseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, []string{"USER", "SELLER"}, claims.Roles)
	assert.True(t, claims.IsVerified)
	assert.Equal(t, "gromeuse", claims.Issuer)
}

func TestSessionTokenPayloadKeys(t *testing.T) {
	manager := JWTManager{Secret: []byte("test-secret")}
	token, _, err := manager.IssueSessionToken("user-1", "Alice", nil, true)
	require.NoError(t, err)

	// The user id rides under both its own key and the registered subject;
	// neither may shadow the other in the encoded payload.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, "user-1", payload["uid"])
	assert.Equal(t, "user-1", payload["sub"])
}

func TestSessionTokenDefaultTTL(t *testing.T) {
	manager := JWTManager{Secret: []byte("test-secret")}

	_, ttl, err := manager.IssueSessionToken("user-1", "Alice", nil, false)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, ttl)
}

func TestParseSessionTokenRejectsWrongSecret(t *testing.T) {
	issuer := JWTManager{Secret: []byte("right-secret")}
	token, _, err := issuer.IssueSessionToken("user-1", "Alice", nil, true)
	require.NoError(t, err)

	verifier := JWTManager{Secret: []byte("wrong-secret")}
	_, err = verifier.ParseSessionToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseSessionTokenRejectsGarbage(t *testing.T) {
	manager := JWTManager{Secret: []byte("test-secret")}
	_, err := manager.ParseSessionToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
