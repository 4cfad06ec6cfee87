package domain

import (
	"time"

	"github.com/zbitech/zbi-db/pkg/utils/cmp"
)

// Resource is one Kubernetes object record attached to an owner.
//
// A resource is owned by exactly one project or instance and is keyed
// by (owner, kind, name). Only volumesnapshot kinds repeat per owner.
type Resource struct {
	Id         string
	OwnerId    string
	Kind       ResourceKind
	Name       string
	Status     string
	Properties map[string]interface{}
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (r *Resource) Equal(other *Resource) bool {
	if r == nil || other == nil {
		return r == nil && other == nil
	}
	return r.OwnerId == other.OwnerId &&
		r.Kind == other.Kind &&
		r.Name == other.Name &&
		r.Status == other.Status &&
		cmp.MapEqWith(
			r.Properties, other.Properties,
			func(a, b interface{}) bool { return a == b },
		)
}

// KubernetesResources is the typed bundle of an owner's resources:
// one optional record per singleton kind, and the insertion-ordered
// list of volume snapshots.
type KubernetesResources struct {
	Namespace             *Resource
	Configmap             *Resource
	Secret                *Resource
	Persistentvolumeclaim *Resource
	Deployment            *Resource
	Service               *Resource
	Httpproxy             *Resource
	Volumesnapshot        []Resource
	Snapshotschedule      *Resource
}

func (k *KubernetesResources) Equal(other *KubernetesResources) bool {
	if k == nil || other == nil {
		return k == nil && other == nil
	}
	return k.Namespace.Equal(other.Namespace) &&
		k.Configmap.Equal(other.Configmap) &&
		k.Secret.Equal(other.Secret) &&
		k.Persistentvolumeclaim.Equal(other.Persistentvolumeclaim) &&
		k.Deployment.Equal(other.Deployment) &&
		k.Service.Equal(other.Service) &&
		k.Httpproxy.Equal(other.Httpproxy) &&
		cmp.SliceEqWith(
			k.Volumesnapshot, other.Volumesnapshot,
			func(a, b Resource) bool { return a.Equal(&b) },
		) &&
		k.Snapshotschedule.Equal(other.Snapshotschedule)
}

// BundleResources partitions the flat set of an owner's resource rows
// into a typed bundle.
//
// Input ordering is kept for the volumesnapshot list. For singleton kinds
// the first row wins; more than one row per singleton kind is an invariant
// violation prevented by the write path, not resolved here.
//
// Empty input yields a bundle with everything absent.
func BundleResources(resources []Resource) KubernetesResources {
	bundle := KubernetesResources{}

	for i := range resources {
		r := resources[i]
		switch r.Kind {
		case KindNamespace:
			if bundle.Namespace == nil {
				bundle.Namespace = &r
			}
		case KindConfigmap:
			if bundle.Configmap == nil {
				bundle.Configmap = &r
			}
		case KindSecret:
			if bundle.Secret == nil {
				bundle.Secret = &r
			}
		case KindPersistentVolumeClaim:
			if bundle.Persistentvolumeclaim == nil {
				bundle.Persistentvolumeclaim = &r
			}
		case KindDeployment:
			if bundle.Deployment == nil {
				bundle.Deployment = &r
			}
		case KindService:
			if bundle.Service == nil {
				bundle.Service = &r
			}
		case KindHTTPProxy:
			if bundle.Httpproxy == nil {
				bundle.Httpproxy = &r
			}
		case KindVolumeSnapshot:
			bundle.Volumesnapshot = append(bundle.Volumesnapshot, r)
		case KindSnapshotSchedule:
			if bundle.Snapshotschedule == nil {
				bundle.Snapshotschedule = &r
			}
		}
	}

	return bundle
}
