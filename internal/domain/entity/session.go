package entity

import "time"

type RecentCanteen struct {
	CanteenID int64
	Name      string
}

// RecentCanteens is ordered most recently viewed first
type RecentCanteens []RecentCanteen

// Touch returns a new list with c moved (or inserted) to the front, holding at most limit entries.
func (r RecentCanteens) Touch(c RecentCanteen, limit int) RecentCanteens {
	out := make(RecentCanteens, 0, len(r)+1)
	out = append(out, c)
	for _, existing := range r {
		if existing.CanteenID == c.CanteenID {
			continue
		}
		out = append(out, existing)
	}

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

type Session struct {
	UserID     string
	DateCursor time.Time
	Recent     RecentCanteens
	UpdatedAt  time.Time
}

// HasCursor reports whether the user already navigated to a date
func (s *Session) HasCursor() bool {
	return s != nil && !s.DateCursor.IsZero()
}
