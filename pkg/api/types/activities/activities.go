package activities

import (
	"github.com/zbitech/zbi-db/pkg/domain"
	"github.com/zbitech/zbi-db/pkg/utils/rfctime"
)

type Detail struct {
	Id        string          `json:"id"`
	Operation string          `json:"operation"`
	Completed bool            `json:"completed"`
	Success   bool            `json:"success"`
	CreatedAt rfctime.RFC3339 `json:"createdAt"`
	UpdatedAt rfctime.RFC3339 `json:"updatedAt"`
	ExpiresAt rfctime.RFC3339 `json:"expiresAt"`
}

func (d *Detail) Equal(o *Detail) bool {
	if d == nil || o == nil {
		return d == nil && o == nil
	}
	return d.Id == o.Id &&
		d.Operation == o.Operation &&
		d.Completed == o.Completed &&
		d.Success == o.Success
}

func ComposeDetail(a domain.Activity) Detail {
	return Detail{
		Id:        a.Id,
		Operation: string(a.Operation),
		Completed: a.Completed,
		Success:   a.Success,
		CreatedAt: rfctime.RFC3339(a.CreatedAt),
		UpdatedAt: rfctime.RFC3339(a.UpdatedAt),
		ExpiresAt: rfctime.RFC3339(a.ExpiresAt),
	}
}
