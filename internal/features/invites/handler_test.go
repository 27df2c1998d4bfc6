package invites

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homehub-app/homehub/internal/config"
)

func TestInviteLinkFormat(t *testing.T) {
	h := &Handler{cfg: &config.Config{FrontendURL: "https://app.example.com/"}}

	link := h.inviteLink("h1", "u1", "tok.abc")

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "/invite", parsed.Path)
	assert.Equal(t, "h1", parsed.Query().Get("hid"))
	assert.Equal(t, "u1", parsed.Query().Get("uid"))
	assert.Equal(t, "tok.abc", parsed.Query().Get("tok"))
	assert.Equal(t, "app.example.com", parsed.Host)
}

func TestIsInvitableRole(t *testing.T) {
	assert.True(t, isInvitableRole("spouse"))
	assert.True(t, isInvitableRole("helper"))
	assert.True(t, isInvitableRole("child"))
	assert.False(t, isInvitableRole("admin"), "a household has one admin, created at registration")
	assert.False(t, isInvitableRole(""))
}
