package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	tok, err := GenerateSession("u1", "h1", "amy@example.com", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := ValidateSession(tok)
	require.NoError(t, err)
	require.Equal(t, "u1", claims.UserID)
	require.Equal(t, "h1", claims.HouseholdID)
	require.Equal(t, "amy@example.com", claims.Email)
	require.Equal(t, "admin", claims.Role)
}

func TestInviteTokenRoundTrip(t *testing.T) {
	tok, err := GenerateInvite("u2", "h1", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateInvite(tok)
	require.NoError(t, err)
	require.Equal(t, "u2", claims.UserID)
	require.Equal(t, "h1", claims.HouseholdID)
}

func TestAudienceSeparation(t *testing.T) {
	// A session token must not pass invite validation and vice versa.
	session, err := GenerateSession("u1", "h1", "", "helper")
	require.NoError(t, err)
	_, err = ValidateInvite(session)
	require.Error(t, err)

	invite, err := GenerateInvite("u1", "h1", time.Hour)
	require.NoError(t, err)
	_, err = ValidateSession(invite)
	require.Error(t, err)
}

func TestExpiredInviteToken(t *testing.T) {
	tok, err := GenerateInvite("u1", "h1", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateInvite(tok)
	require.Error(t, err)
}
