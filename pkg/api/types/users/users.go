package users

import (
	"github.com/zbitech/zbi-db/pkg/domain"
	"github.com/zbitech/zbi-db/pkg/utils/rfctime"
)

// Spec is the request body registering an account.
type Spec struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Provider string `json:"provider,omitempty"`
}

type Detail struct {
	Id        string          `json:"id"`
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	Role      string          `json:"role"`
	Active    bool            `json:"active"`
	Provider  string          `json:"provider,omitempty"`
	CreatedAt rfctime.RFC3339 `json:"createdAt"`
	UpdatedAt rfctime.RFC3339 `json:"updatedAt"`
}

func (d *Detail) Equal(o *Detail) bool {
	if d == nil || o == nil {
		return d == nil && o == nil
	}
	return d.Id == o.Id &&
		d.Email == o.Email &&
		d.Name == o.Name &&
		d.Role == o.Role &&
		d.Active == o.Active &&
		d.Provider == o.Provider
}

func ComposeDetail(u domain.User) Detail {
	return Detail{
		Id:        u.Id,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		Active:    u.Active,
		Provider:  u.Provider,
		CreatedAt: rfctime.RFC3339(u.CreatedAt),
		UpdatedAt: rfctime.RFC3339(u.UpdatedAt),
	}
}
