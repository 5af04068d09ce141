package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m, err := New(
		WithAddr("smtp.example.com", "587"),
		WithCredentials("user", "pass"),
		WithFrom("noreply@example.com"),
		WithBaseURL("https://contacts.example.com/"),
	)
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com", m.host)
	assert.Equal(t, "587", m.port)
	assert.Equal(t, "noreply@example.com", m.from)
	assert.Equal(t, "https://contacts.example.com", m.baseURL)
}

func TestRenderConfirmation(t *testing.T) {
	m, err := New(WithBaseURL("https://contacts.example.com"))
	require.NoError(t, err)

	body, err := m.render("confirmation", confirmationData{
		ConfirmURL: "https://contacts.example.com/api/auth/confirm/sometoken",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "https://contacts.example.com/api/auth/confirm/sometoken")
	assert.Contains(t, body, "Confirm your email")
}
