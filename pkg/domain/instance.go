package domain

import (
	"time"

	"github.com/zbitech/zbi-db/pkg/utils/cmp"
	"k8s.io/apimachinery/pkg/api/resource"
)

// VolumeKind is how an instance's data volume is provisioned.
type VolumeKind string

const (
	VolumeEphemeral  VolumeKind = "ephemeral"
	VolumePersistent VolumeKind = "pvc"
)

// VolumeSourceKind is where an instance's data volume is initialized from.
type VolumeSourceKind string

const (
	SourceNone     VolumeSourceKind = "none"
	SourceNew      VolumeSourceKind = "new"
	SourceVolume   VolumeSourceKind = "pvc"
	SourceSnapshot VolumeSourceKind = "snapshot"
)

type VolumeSource struct {
	Type VolumeSourceKind
	Ref  string
}

type VolumeSpec struct {
	Type   VolumeKind
	Size   string
	Source VolumeSource
}

func (v VolumeSpec) Equal(other VolumeSpec) bool {
	return v.Type == other.Type &&
		v.Size == other.Size &&
		v.Source == other.Source
}

// ResourceRequest is the compute/storage request an instance is provisioned with.
type ResourceRequest struct {
	Cpu        *resource.Quantity
	Memory     *resource.Quantity
	Peers      []string
	Properties map[string]interface{}
	Volume     VolumeSpec
}

func (r *ResourceRequest) Equal(other *ResourceRequest) bool {
	if r == nil || other == nil {
		return r == nil && other == nil
	}
	return cmp.PEqualWith(r.Cpu, other.Cpu, resource.Quantity.Equal) &&
		cmp.PEqualWith(r.Memory, other.Memory, resource.Quantity.Equal) &&
		cmp.SliceEq(r.Peers, other.Peers) &&
		r.Volume.Equal(other.Volume)
}

// InstanceBody is an instance record as stored.
type InstanceBody struct {
	Id        string
	Name      string
	Type      NodeKind
	ProjectId string
	Status    Status
	State     State
	Request   *ResourceRequest
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ib *InstanceBody) Equal(other *InstanceBody) bool {
	if ib == nil || other == nil {
		return ib == nil && other == nil
	}
	return ib.Id == other.Id &&
		ib.Name == other.Name &&
		ib.Type == other.Type &&
		ib.ProjectId == other.ProjectId &&
		ib.Status == other.Status &&
		ib.State == other.State &&
		ib.Request.Equal(other.Request)
}

// Instance is an instance with its read-time attachments:
// the owning project, the resource bundle, activities and permissions.
//
// Attachments are composed at read time and are not persisted on the
// instance record itself.
type Instance struct {
	InstanceBody
	Project     *Project
	Resources   KubernetesResources
	Activities  []Activity
	Permissions []Permission
}

func (i *Instance) Equal(other *Instance) bool {
	if i == nil || other == nil {
		return i == nil && other == nil
	}
	return i.InstanceBody.Equal(&other.InstanceBody) &&
		i.Project.Equal(other.Project) &&
		i.Resources.Equal(&other.Resources) &&
		cmp.SliceEqWith(
			i.Activities, other.Activities,
			func(a, b Activity) bool { return a.Equal(&b) },
		) &&
		cmp.SliceContentEqWith(
			i.Permissions, other.Permissions,
			func(a, b Permission) bool { return a.Equal(&b) },
		)
}

// InstanceFindQuery is a set of equality predicates narrowing FindInstances.
//
// Empty fields are ignored and do not narrow results.
type InstanceFindQuery struct {
	ProjectId string
	Name      string
	Type      NodeKind
}

func (q InstanceFindQuery) Equal(other InstanceFindQuery) bool {
	return q == other
}
