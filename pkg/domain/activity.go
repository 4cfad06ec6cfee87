package domain

import "time"

// ActivityRetention is how long an activity row is kept after creation.
const ActivityRetention = 7 * 24 * time.Hour

// Activity is one append-only record of an operation requested against
// an owner. Created with Completed=false, Success=false; both flags are
// set together, later, exactly once by an external reconciler
// (last-write-wins when it retries).
type Activity struct {
	Id        string
	OwnerId   string
	Operation Operation
	Completed bool
	Success   bool
	CreatedAt time.Time
	UpdatedAt time.Time
	ExpiresAt time.Time
}

func (a *Activity) Equal(other *Activity) bool {
	if a == nil || other == nil {
		return a == nil && other == nil
	}
	return a.Id == other.Id &&
		a.OwnerId == other.OwnerId &&
		a.Operation == other.Operation &&
		a.Completed == other.Completed &&
		a.Success == other.Success
}
