// Package resolver turns arbitrary CRM webhook payloads into normalized
// profile fields. SuiteDash delivers two incompatible payload shapes (flat
// fields keyed by uid, and a nested client object with project custom
// fields); the candidate lists below cover both, so callers never need to
// know which shape arrived.
package resolver

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Avatar resolution strategies reported in the webhook ack.
const (
	AvatarSourcePayload        = "payload"
	AvatarSourceCustomField    = "custom_field"
	AvatarSourceBackgroundCode = "background_code"
)

// avatarCustomFieldID is the CRM's fixed custom-field identifier holding a
// ready-to-use avatar URL in the nested payload shape.
const avatarCustomFieldID = "cf_18ab42d7c9e3"

// avatarCodeTable maps short codes embedded in background info to avatar
// image URLs. Only codes listed here are recognized.
var avatarCodeTable = map[string]string{
	"MEU":   "https://images.unsplash.com/photo-1524504388940-b1c1722653e1?auto=format&fit=crop&w=900&q=80",
	"LYRA":  "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&w=900&q=80",
	"NOVA":  "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?auto=format&fit=crop&w=900&q=80",
	"ORION": "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?auto=format&fit=crop&w=900&q=80",
	"VEGA":  "https://images.unsplash.com/photo-1534528741775-53994a69daeb?auto=format&fit=crop&w=900&q=80",
}

var avatarCodePattern *regexp.Regexp

func init() {
	codes := AvatarCodes()
	avatarCodePattern = regexp.MustCompile(`(?i)\b(` + strings.Join(codes, "|") + `)\b`)
}

// AvatarCodes returns the recognized avatar codes, sorted, for operator
// guidance in the rendered page.
func AvatarCodes() []string {
	codes := make([]string, 0, len(avatarCodeTable))
	for code := range avatarCodeTable {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Candidate key lists per logical field, in priority order. Dotted keys
// descend into nested objects.
var (
	identifierKeys = []string{
		"uid", "UID", "clientUID", "client_uid",
		"record_uid", "recordUID", "recordId", "id",
		"client.uid", "client.id",
	}
	emailKeys  = []string{"email", "primaryEmail", "primary_email", "client.email"}
	firstKeys  = []string{"firstName", "first_name", "client.first_name"}
	lastKeys   = []string{"lastName", "last_name", "client.last_name"}
	nameKeys   = []string{"name", "fullName", "full_name", "client.name"}
	bioKeys    = []string{"backgroundInfo", "background", "bio", "notes", "client.background_info"}
	eventKeys  = []string{"event", "eventName", "event_name", "action", "type"}
	avatarKeys = []string{"avatarUrl", "avatar", "profilePic", "photoUrl"}
)

// Resolution is the outcome of resolving one payload. An empty Identifier
// means the payload is not attributable to any client.
type Resolution struct {
	Identifier     string
	DisplayName    string
	Email          string
	FirstName      string
	LastName       string
	BackgroundInfo string
	AvatarURL      string
	AvatarSource   string
	LastEvent      string
}

// Resolve extracts the canonical identifier and profile fields from an
// arbitrary decoded JSON object. It is a pure function and never fails:
// any shape mismatch simply leaves the affected field empty.
func Resolve(payload map[string]interface{}) Resolution {
	res := Resolution{
		Identifier:     firstNonEmpty(payload, identifierKeys),
		Email:          firstNonEmpty(payload, emailKeys),
		FirstName:      firstNonEmpty(payload, firstKeys),
		LastName:       firstNonEmpty(payload, lastKeys),
		BackgroundInfo: firstNonEmpty(payload, bioKeys),
		LastEvent:      firstNonEmpty(payload, eventKeys),
	}

	res.DisplayName = firstNonEmpty(payload, nameKeys)
	if res.DisplayName == "" {
		res.DisplayName = joinName(res.FirstName, res.LastName)
	}

	res.AvatarURL, res.AvatarSource = resolveAvatar(payload, res.BackgroundInfo)

	return res
}

func resolveAvatar(payload map[string]interface{}, backgroundInfo string) (string, string) {
	if url := firstNonEmpty(payload, avatarKeys); url != "" {
		return url, AvatarSourcePayload
	}

	if url := customFieldString(payload, avatarCustomFieldID); url != "" {
		return url, AvatarSourceCustomField
	}

	if match := avatarCodePattern.FindString(backgroundInfo); match != "" {
		return avatarCodeTable[strings.ToUpper(match)], AvatarSourceBackgroundCode
	}

	return "", ""
}

// customFieldString reads project_custom_fields[<id>] and accepts it only
// when the value is already a string.
func customFieldString(payload map[string]interface{}, fieldID string) string {
	fields, ok := payload["project_custom_fields"].(map[string]interface{})
	if !ok {
		return ""
	}
	s, ok := fields[fieldID].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// firstNonEmpty walks the candidate keys in order and returns the first
// value whose trimmed string form is non-empty.
func firstNonEmpty(payload map[string]interface{}, keys []string) string {
	for _, key := range keys {
		if s := stringValue(lookup(payload, key)); s != "" {
			return s
		}
	}
	return ""
}

// lookup reads a possibly dotted key out of a decoded JSON object.
func lookup(payload map[string]interface{}, key string) interface{} {
	parts := strings.Split(key, ".")
	var current interface{} = payload
	for _, part := range parts {
		obj, ok := current.(map[string]interface{})
		if !ok {
			return nil
		}
		current = obj[part]
	}
	return current
}

// stringValue renders strings and JSON numbers as trimmed strings. CRM
// identifiers occasionally arrive as numbers; everything else (objects,
// arrays, booleans, null) is treated as absent.
func stringValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return ""
	}
}

func joinName(first, last string) string {
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	default:
		return last
	}
}
