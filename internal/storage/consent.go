package storage

import "time"

const (
	ConsentAccepted = "accepted"
	ConsentDeclined = "declined"
)

type CookieConsent struct {
	ID          int64     `json:"id"`
	ConsentType string    `json:"consent_type"`
	UserAgent   *string   `json:"user_agent"`
	CreatedAt   time.Time `json:"created_at"`
}
