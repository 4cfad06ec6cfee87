package instances

import (
	apiact "github.com/zbitech/zbi-db/pkg/api/types/activities"
	apiperm "github.com/zbitech/zbi-db/pkg/api/types/permissions"
	apiproj "github.com/zbitech/zbi-db/pkg/api/types/projects"
	apires "github.com/zbitech/zbi-db/pkg/api/types/resources"
	"github.com/zbitech/zbi-db/pkg/domain"
	"github.com/zbitech/zbi-db/pkg/utils/cmp"
	"github.com/zbitech/zbi-db/pkg/utils/rfctime"
	"github.com/zbitech/zbi-db/pkg/utils/slices"
	"k8s.io/apimachinery/pkg/api/resource"
)

type VolumeSource struct {
	Type string `json:"type,omitempty"`
	Ref  string `json:"ref,omitempty"`
}

type VolumeSpec struct {
	Type   string       `json:"type,omitempty"`
	Size   string       `json:"size,omitempty"`
	Source VolumeSource `json:"source,omitempty"`
}

// ResourceRequest carries quantities as their canonical expressions
// ("500m", "2Gi"); parsing happens at the domain boundary.
type ResourceRequest struct {
	Cpu        string                 `json:"cpu,omitempty"`
	Memory     string                 `json:"memory,omitempty"`
	Peers      []string               `json:"peers,omitempty"`
	Properties map[string]interface{} `json:"properties,omitempty"`
	Volume     VolumeSpec             `json:"volume,omitempty"`
}

func (r *ResourceRequest) Equal(o *ResourceRequest) bool {
	if r == nil || o == nil {
		return r == nil && o == nil
	}
	return r.Cpu == o.Cpu &&
		r.Memory == o.Memory &&
		cmp.SliceEq(r.Peers, o.Peers) &&
		r.Volume == o.Volume
}

// AsRequest parses the wire request into the domain shape.
func (r *ResourceRequest) AsRequest() (*domain.ResourceRequest, error) {
	if r == nil {
		return nil, nil
	}
	req := &domain.ResourceRequest{
		Peers:      r.Peers,
		Properties: r.Properties,
		Volume: domain.VolumeSpec{
			Type: domain.VolumeKind(r.Volume.Type),
			Size: r.Volume.Size,
			Source: domain.VolumeSource{
				Type: domain.VolumeSourceKind(r.Volume.Source.Type),
				Ref:  r.Volume.Source.Ref,
			},
		},
	}
	if r.Cpu != "" {
		q, err := resource.ParseQuantity(r.Cpu)
		if err != nil {
			return nil, err
		}
		req.Cpu = &q
	}
	if r.Memory != "" {
		q, err := resource.ParseQuantity(r.Memory)
		if err != nil {
			return nil, err
		}
		req.Memory = &q
	}
	return req, nil
}

func ComposeRequest(req *domain.ResourceRequest) *ResourceRequest {
	if req == nil {
		return nil
	}
	wire := &ResourceRequest{
		Peers:      req.Peers,
		Properties: req.Properties,
		Volume: VolumeSpec{
			Type: string(req.Volume.Type),
			Size: req.Volume.Size,
			Source: VolumeSource{
				Type: string(req.Volume.Source.Type),
				Ref:  req.Volume.Source.Ref,
			},
		},
	}
	if req.Cpu != nil {
		wire.Cpu = req.Cpu.String()
	}
	if req.Memory != nil {
		wire.Memory = req.Memory.String()
	}
	return wire
}

// Spec is the request body creating an instance under a project.
type Spec struct {
	Name    string           `json:"name"`
	Type    string           `json:"type"`
	Request *ResourceRequest `json:"request,omitempty"`
}

// Update is the request body updating an instance. Only the peer list
// is writable this way; resizing cpu/memory/volume is an operation, not
// an update.
type Update struct {
	Peers []string `json:"peers"`
}

// Summary is an instance without its attachments.
type Summary struct {
	Id        string           `json:"id"`
	Name      string           `json:"name"`
	Type      string           `json:"type"`
	ProjectId string           `json:"projectId"`
	Status    string           `json:"status"`
	State     string           `json:"state"`
	Request   *ResourceRequest `json:"request,omitempty"`
	CreatedAt rfctime.RFC3339  `json:"createdAt"`
	UpdatedAt rfctime.RFC3339  `json:"updatedAt"`
}

func (s *Summary) Equal(o *Summary) bool {
	if s == nil || o == nil {
		return s == nil && o == nil
	}
	return s.Id == o.Id &&
		s.Name == o.Name &&
		s.Type == o.Type &&
		s.ProjectId == o.ProjectId &&
		s.Status == o.Status &&
		s.State == o.State &&
		s.Request.Equal(o.Request)
}

func ComposeSummary(body domain.InstanceBody) Summary {
	return Summary{
		Id:        body.Id,
		Name:      body.Name,
		Type:      string(body.Type),
		ProjectId: body.ProjectId,
		Status:    string(body.Status),
		State:     string(body.State),
		Request:   ComposeRequest(body.Request),
		CreatedAt: rfctime.RFC3339(body.CreatedAt),
		UpdatedAt: rfctime.RFC3339(body.UpdatedAt),
	}
}

// Detail is an instance with its read-time attachments.
type Detail struct {
	Summary
	Project     *apiproj.Detail  `json:"project,omitempty"`
	Resources   apires.Bundle    `json:"resources"`
	Activities  []apiact.Detail  `json:"activities"`
	Permissions []apiperm.Detail `json:"permissions"`
}

func (d *Detail) Equal(o *Detail) bool {
	if d == nil || o == nil {
		return d == nil && o == nil
	}
	return d.Summary.Equal(&o.Summary) &&
		d.Project.Equal(o.Project) &&
		d.Resources.Equal(&o.Resources) &&
		cmp.SliceEqWith(
			d.Activities, o.Activities,
			func(a, b apiact.Detail) bool { return a.Equal(&b) },
		) &&
		cmp.SliceContentEqWith(
			d.Permissions, o.Permissions,
			func(a, b apiperm.Detail) bool { return a.Equal(&b) },
		)
}

func ComposeDetail(inst domain.Instance) Detail {
	detail := Detail{
		Summary:     ComposeSummary(inst.InstanceBody),
		Resources:   apires.ComposeBundle(inst.Resources),
		Activities:  slices.Map(inst.Activities, apiact.ComposeDetail),
		Permissions: slices.Map(inst.Permissions, apiperm.ComposeDetail),
	}
	if inst.Project != nil {
		p := apiproj.ComposeDetail(*inst.Project)
		detail.Project = &p
	}
	return detail
}
