package domain

import "time"

// PermissionFlags are the capability flags a user holds on an owner.
type PermissionFlags struct {
	Read    bool
	Update  bool
	Delete  bool
	Operate bool
	Access  bool
}

// Permission grants a user capabilities on one project or instance.
//
// At most one record exists per (owner, user) pair; writes are upserts.
// Owner bypass is the caller's concern, not this record's.
type Permission struct {
	Id        string
	OwnerId   string
	UserId    string
	Flags     PermissionFlags
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p *Permission) Equal(other *Permission) bool {
	if p == nil || other == nil {
		return p == nil && other == nil
	}
	return p.OwnerId == other.OwnerId &&
		p.UserId == other.UserId &&
		p.Flags == other.Flags
}
