// Package render produces the HTML pages served for a client profile. It is
// a pure presentation layer: callers hand it an already-resolved record and
// get markup back, with every record-derived value escaped by html/template.
package render

import (
	"bytes"
	"embed"
	"html/template"
	"strings"

	"proposal-tracker-backend/internal/features/profile/models"
	"proposal-tracker-backend/internal/features/profile/resolver"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

type overviewData struct {
	Identifier     string
	DisplayName    string
	Email          string
	BackgroundInfo string
	AvatarURL      string
	LastEvent      string
	LastUpdatedAt  string
	AvatarCodes    string
}

type missingData struct {
	Identifier string
}

type pageData struct {
	Identifier string
	Title      string
	Section    string
}

// Overview renders the profile page for a stored record. Missing fields
// degrade to placeholders; an empty avatar turns into operator guidance
// listing the recognized codes.
func Overview(record *models.ProfileRecord) (string, error) {
	data := overviewData{
		Identifier:     record.Identifier,
		DisplayName:    record.DisplayName,
		Email:          record.Email,
		BackgroundInfo: record.BackgroundInfo,
		AvatarURL:      record.AvatarURL,
		LastEvent:      record.LastEvent,
		LastUpdatedAt:  record.LastUpdatedAt,
		AvatarCodes:    strings.Join(resolver.AvatarCodes(), ", "),
	}

	if data.DisplayName == "" {
		data.DisplayName = "Unknown"
	}
	if data.Email == "" {
		data.Email = "N/A"
	}
	if data.LastEvent == "" {
		data.LastEvent = models.LastEventPlaceholder
	}

	return execute("overview.tmpl", data)
}

// MissingRecord renders the placeholder page shown before any webhook has
// arrived for the identifier.
func MissingRecord(identifier string) (string, error) {
	return execute("missing.tmpl", missingData{Identifier: identifier})
}

// Page renders a micro-site section page used as a beacon navigation target.
func Page(identifier, section, title string) (string, error) {
	return execute("page.tmpl", pageData{
		Identifier: identifier,
		Title:      title,
		Section:    section,
	})
}

func execute(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
