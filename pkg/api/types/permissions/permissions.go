package permissions

import (
	"github.com/zbitech/zbi-db/pkg/domain"
	"github.com/zbitech/zbi-db/pkg/utils/rfctime"
)

type Flags struct {
	Read    bool `json:"read"`
	Update  bool `json:"update"`
	Delete  bool `json:"delete"`
	Operate bool `json:"operate"`
	Access  bool `json:"access"`
}

// Spec is the request body granting a user capabilities on an owner.
type Spec struct {
	UserId string `json:"userId"`
	Flags  Flags  `json:"flags"`
}

type Detail struct {
	Id        string          `json:"id"`
	UserId    string          `json:"userId"`
	Flags     Flags           `json:"flags"`
	CreatedAt rfctime.RFC3339 `json:"createdAt"`
	UpdatedAt rfctime.RFC3339 `json:"updatedAt"`
}

func (d *Detail) Equal(o *Detail) bool {
	if d == nil || o == nil {
		return d == nil && o == nil
	}
	return d.Id == o.Id && d.UserId == o.UserId && d.Flags == o.Flags
}

func (f Flags) AsFlags() domain.PermissionFlags {
	return domain.PermissionFlags{
		Read:    f.Read,
		Update:  f.Update,
		Delete:  f.Delete,
		Operate: f.Operate,
		Access:  f.Access,
	}
}

func ComposeDetail(p domain.Permission) Detail {
	return Detail{
		Id:     p.Id,
		UserId: p.UserId,
		Flags: Flags{
			Read:    p.Flags.Read,
			Update:  p.Flags.Update,
			Delete:  p.Flags.Delete,
			Operate: p.Flags.Operate,
			Access:  p.Flags.Access,
		},
		CreatedAt: rfctime.RFC3339(p.CreatedAt),
		UpdatedAt: rfctime.RFC3339(p.UpdatedAt),
	}
}
