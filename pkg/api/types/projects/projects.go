package projects

import (
	"github.com/zbitech/zbi-db/pkg/domain"
	"github.com/zbitech/zbi-db/pkg/utils/rfctime"
)

// Spec is the request body creating a project.
type Spec struct {
	Name        string `json:"name"`
	Owner       string `json:"owner"`
	Blockchain  string `json:"blockchain"`
	Network     string `json:"network"`
	Description string `json:"description,omitempty"`
}

// Update is the request body updating a project. Only the description
// is writable this way; everything else is immutable or owned by the
// lifecycle transitions.
type Update struct {
	Description string `json:"description"`
}

type Detail struct {
	Id          string          `json:"id"`
	Name        string          `json:"name"`
	Owner       string          `json:"owner"`
	Blockchain  string          `json:"blockchain"`
	Network     string          `json:"network"`
	Status      string          `json:"status"`
	State       string          `json:"state"`
	Description string          `json:"description,omitempty"`
	CreatedAt   rfctime.RFC3339 `json:"createdAt"`
	UpdatedAt   rfctime.RFC3339 `json:"updatedAt"`
}

func (d *Detail) Equal(o *Detail) bool {
	if d == nil || o == nil {
		return d == nil && o == nil
	}
	return d.Id == o.Id &&
		d.Name == o.Name &&
		d.Owner == o.Owner &&
		d.Blockchain == o.Blockchain &&
		d.Network == o.Network &&
		d.Status == o.Status &&
		d.State == o.State &&
		d.Description == o.Description
}

func ComposeDetail(p domain.Project) Detail {
	return Detail{
		Id:          p.Id,
		Name:        p.Name,
		Owner:       p.Owner,
		Blockchain:  p.Blockchain,
		Network:     string(p.Network),
		Status:      string(p.Status),
		State:       string(p.State),
		Description: p.Description,
		CreatedAt:   rfctime.RFC3339(p.CreatedAt),
		UpdatedAt:   rfctime.RFC3339(p.UpdatedAt),
	}
}
