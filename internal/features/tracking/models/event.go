package models

import "time"

// BeaconEvent is a fire-and-forget view/click report from the embed script.
// Events are logged, never stored; the browser does not wait on the POST.
type BeaconEvent struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ClientUID  string    `json:"clientUID,omitempty"`
	Label      string    `json:"label,omitempty"`
	Path       string    `json:"path,omitempty"`
	URL        string    `json:"url,omitempty"`
	Page       string    `json:"page,omitempty"`
	ReceivedAt time.Time `json:"received_at"`
}
