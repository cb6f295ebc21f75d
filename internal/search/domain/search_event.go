package domain

import "time"

// SearchEvent records one search attempt, whatever its outcome.
type SearchEvent struct {
	ID         string
	SearchID   string
	UserID     string
	Preference SearchPreference
	SearchedAt time.Time
}

// Anonymous reports whether the search was made without a signed-in user.
func (e SearchEvent) Anonymous() bool {
	return e.UserID == ""
}
