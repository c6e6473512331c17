package models

import "encoding/json"

// LastEventPlaceholder is stored when a webhook payload carries no event
// label at all.
const LastEventPlaceholder = "unspecified"

// ProfileRecord is the latest resolved profile data for one CRM client.
// Exactly one record exists per identifier; every accepted webhook call
// rewrites it (or overlays it, in merge mode).
type ProfileRecord struct {
	Identifier     string `json:"identifier"`
	DisplayName    string `json:"display_name,omitempty"`
	Email          string `json:"email,omitempty"`
	FirstName      string `json:"first_name,omitempty"`
	LastName       string `json:"last_name,omitempty"`
	BackgroundInfo string `json:"background_info,omitempty"`
	AvatarURL      string `json:"avatar_url,omitempty"`
	LastEvent      string `json:"last_event,omitempty"`
	LastUpdatedAt  string `json:"last_updated_at"`

	// Raw keeps the original webhook body verbatim for debugging.
	Raw json.RawMessage `json:"raw,omitempty"`
}

// StoredInfo reports which derived fields a webhook call populated.
type StoredInfo struct {
	AvatarURLPresent bool   `json:"avatarUrlPresent"`
	AvatarSource     string `json:"avatarSource,omitempty"`
	LastEvent        string `json:"lastEvent"`
	LastUpdatedAt    string `json:"lastUpdatedAt"`
}

// WebhookAck is the success body of the webhook endpoint.
type WebhookAck struct {
	OK         bool       `json:"ok"`
	Identifier string     `json:"identifier"`
	Stored     StoredInfo `json:"stored"`
}

// DebugResponse echoes the stored record (or null) for one identifier.
type DebugResponse struct {
	OK         bool           `json:"ok"`
	Identifier string         `json:"identifier"`
	Record     *ProfileRecord `json:"record"`
}

// ErrorResponse is the error body shared by all endpoints.
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}
