package kitchen

import (
	"fmt"
	"time"

	"table-order/internal/domain"
)

// ElapsedLabel buckets the time since an order was created, using the
// integer-minute floor of the elapsed duration.
func ElapsedLabel(createdAt, now time.Time) string {
	mins := int(now.Sub(createdAt).Minutes())
	switch {
	case mins < 1:
		return "Just now"
	case mins == 1:
		return "1 minute ago"
	default:
		return fmt.Sprintf("%d minutes ago", mins)
	}
}

// StatusOptions returns the stages a kitchen operator may select for
// an order: the current one and everything later in the sequence.
// Moving backward is never offered.
func StatusOptions(current domain.Status) []domain.Status {
	idx := current.Index()
	if idx < 0 {
		return nil
	}
	return append([]domain.Status(nil), domain.Statuses[idx:]...)
}

// FormatTime renders an order timestamp as a 12-hour clock reading.
func FormatTime(t time.Time) string {
	return t.Local().Format("3:04 PM")
}
