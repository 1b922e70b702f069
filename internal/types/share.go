package types

import "time"

// SharedResume is a résumé published under a short share code
type SharedResume struct {
	ID        string     `json:"id"`
	Code      string     `json:"code"`
	Source    string     `json:"source"` // draft or record key the share was made from
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Template  string     `json:"template,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	ViewCount int        `json:"viewCount"`
}

// Expired reports whether the share has an expiry at or before now.
func (s SharedResume) Expired(now time.Time) bool {
	return s.ExpiresAt != nil && !now.Before(*s.ExpiresAt)
}
