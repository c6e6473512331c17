package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proposal-tracker-backend/internal/features/profile/models"
)

func TestOverviewRendersRecordFields(t *testing.T) {
	html, err := Overview(&models.ProfileRecord{
		Identifier:     "u1",
		DisplayName:    "Jane Doe",
		Email:          "jane@example.com",
		BackgroundInfo: "Senior VA.",
		AvatarURL:      "https://cdn.example.com/a.png",
		LastEvent:      "profile.updated",
		LastUpdatedAt:  "2026-08-29T10:00:00Z",
	})
	require.NoError(t, err)

	assert.Contains(t, html, "Jane Doe")
	assert.Contains(t, html, "jane@example.com")
	assert.Contains(t, html, "u1")
	assert.Contains(t, html, "profile.updated")
	assert.Contains(t, html, `src="https://cdn.example.com/a.png"`)
	assert.Contains(t, html, "Senior VA.")
}

func TestOverviewPlaceholders(t *testing.T) {
	html, err := Overview(&models.ProfileRecord{Identifier: "u1"})
	require.NoError(t, err)

	assert.Contains(t, html, "Unknown")
	assert.Contains(t, html, "N/A")
	assert.Contains(t, html, models.LastEventPlaceholder)
}

func TestOverviewAvatarGuidance(t *testing.T) {
	html, err := Overview(&models.ProfileRecord{Identifier: "u1", BackgroundInfo: "no code here"})
	require.NoError(t, err)

	assert.Contains(t, html, "Add one of:")
	assert.Contains(t, html, "MEU")
	assert.NotContains(t, html, "<img")
}

func TestOverviewEscapesRecordText(t *testing.T) {
	html, err := Overview(&models.ProfileRecord{
		Identifier:     `u1"><script>`,
		DisplayName:    `<script>alert("x")</script>`,
		BackgroundInfo: `Tom & Jerry <b>"quoted"</b>`,
	})
	require.NoError(t, err)

	assert.NotContains(t, html, `<script>alert`)
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "Tom &amp; Jerry")
	assert.NotContains(t, html, "<b>")
}

func TestMissingRecordEchoesIdentifier(t *testing.T) {
	html, err := MissingRecord("client-42")
	require.NoError(t, err)

	assert.Contains(t, html, "client-42")
	assert.Contains(t, html, "No webhook has been received")
}

func TestMissingRecordEscapesIdentifier(t *testing.T) {
	html, err := MissingRecord(`<img src=x onerror=alert(1)>`)
	require.NoError(t, err)

	assert.NotContains(t, html, "<img src=x")
	assert.Contains(t, html, "&lt;img")
}

func TestPage(t *testing.T) {
	html, err := Page("u1", "/proposal", "Proposal")
	require.NoError(t, err)

	assert.Contains(t, html, "Proposal")
	assert.Contains(t, html, "u1")
	assert.True(t, strings.Contains(html, "/va-starter-track/u1/overview"))
}
