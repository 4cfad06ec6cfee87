package resources

import (
	"github.com/zbitech/zbi-db/pkg/domain"
	"github.com/zbitech/zbi-db/pkg/utils/cmp"
	"github.com/zbitech/zbi-db/pkg/utils/rfctime"
	"github.com/zbitech/zbi-db/pkg/utils/slices"
)

// Report is the request body recording a Kubernetes object's state.
type Report struct {
	Kind       string                 `json:"kind"`
	Name       string                 `json:"name"`
	Status     string                 `json:"status"`
	Properties map[string]interface{} `json:"properties,omitempty"`
}

type Detail struct {
	Id         string                 `json:"id"`
	Kind       string                 `json:"kind"`
	Name       string                 `json:"name"`
	Status     string                 `json:"status"`
	Properties map[string]interface{} `json:"properties,omitempty"`
	CreatedAt  rfctime.RFC3339        `json:"createdAt"`
	UpdatedAt  rfctime.RFC3339        `json:"updatedAt"`
}

func (d *Detail) Equal(o *Detail) bool {
	if d == nil || o == nil {
		return d == nil && o == nil
	}
	return d.Id == o.Id &&
		d.Kind == o.Kind &&
		d.Name == o.Name &&
		d.Status == o.Status &&
		cmp.MapEqWith(
			d.Properties, o.Properties,
			func(a, b interface{}) bool { return a == b },
		)
}

func ComposeDetail(r domain.Resource) Detail {
	return Detail{
		Id:         r.Id,
		Kind:       string(r.Kind),
		Name:       r.Name,
		Status:     r.Status,
		Properties: r.Properties,
		CreatedAt:  rfctime.RFC3339(r.CreatedAt),
		UpdatedAt:  rfctime.RFC3339(r.UpdatedAt),
	}
}

// Bundle mirrors the typed per-kind layout of an owner's resources.
type Bundle struct {
	Namespace             *Detail  `json:"namespace,omitempty"`
	Configmap             *Detail  `json:"configmap,omitempty"`
	Secret                *Detail  `json:"secret,omitempty"`
	Persistentvolumeclaim *Detail  `json:"persistentvolumeclaim,omitempty"`
	Deployment            *Detail  `json:"deployment,omitempty"`
	Service               *Detail  `json:"service,omitempty"`
	Httpproxy             *Detail  `json:"httpproxy,omitempty"`
	Volumesnapshot        []Detail `json:"volumesnapshot,omitempty"`
	Snapshotschedule      *Detail  `json:"snapshotschedule,omitempty"`
}

func (b *Bundle) Equal(o *Bundle) bool {
	if b == nil || o == nil {
		return b == nil && o == nil
	}
	return b.Namespace.Equal(o.Namespace) &&
		b.Configmap.Equal(o.Configmap) &&
		b.Secret.Equal(o.Secret) &&
		b.Persistentvolumeclaim.Equal(o.Persistentvolumeclaim) &&
		b.Deployment.Equal(o.Deployment) &&
		b.Service.Equal(o.Service) &&
		b.Httpproxy.Equal(o.Httpproxy) &&
		cmp.SliceEqWith(
			b.Volumesnapshot, o.Volumesnapshot,
			func(a, c Detail) bool { return a.Equal(&c) },
		) &&
		b.Snapshotschedule.Equal(o.Snapshotschedule)
}

func composeSlot(r *domain.Resource) *Detail {
	if r == nil {
		return nil
	}
	d := ComposeDetail(*r)
	return &d
}

func ComposeBundle(k domain.KubernetesResources) Bundle {
	return Bundle{
		Namespace:             composeSlot(k.Namespace),
		Configmap:             composeSlot(k.Configmap),
		Secret:                composeSlot(k.Secret),
		Persistentvolumeclaim: composeSlot(k.Persistentvolumeclaim),
		Deployment:            composeSlot(k.Deployment),
		Service:               composeSlot(k.Service),
		Httpproxy:             composeSlot(k.Httpproxy),
		Volumesnapshot:        slices.Map(k.Volumesnapshot, ComposeDetail),
		Snapshotschedule:      composeSlot(k.Snapshotschedule),
	}
}
