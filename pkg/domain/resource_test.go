package domain_test

import (
	"testing"

	"github.com/zbitech/zbi-db/pkg/domain"
)

func TestBundleResources(t *testing.T) {
	t.Run("empty input yields an empty bundle", func(t *testing.T) {
		bundle := domain.BundleResources([]domain.Resource{})
		if !bundle.Equal(&domain.KubernetesResources{}) {
			t.Errorf("unexpected bundle: %+v", bundle)
		}
	})

	t.Run("each singleton kind lands in its slot", func(t *testing.T) {
		flat := []domain.Resource{
			{Id: "r1", Kind: domain.KindNamespace, Name: "ns"},
			{Id: "r2", Kind: domain.KindConfigmap, Name: "cm"},
			{Id: "r3", Kind: domain.KindSecret, Name: "sec"},
			{Id: "r4", Kind: domain.KindPersistentVolumeClaim, Name: "pvc"},
			{Id: "r5", Kind: domain.KindDeployment, Name: "dep"},
			{Id: "r6", Kind: domain.KindService, Name: "svc"},
			{Id: "r7", Kind: domain.KindHTTPProxy, Name: "proxy"},
			{Id: "r8", Kind: domain.KindSnapshotSchedule, Name: "sched"},
		}
		bundle := domain.BundleResources(flat)

		for slot, res := range map[string]*domain.Resource{
			"namespace":        bundle.Namespace,
			"configmap":        bundle.Configmap,
			"secret":           bundle.Secret,
			"pvc":              bundle.Persistentvolumeclaim,
			"deployment":       bundle.Deployment,
			"service":          bundle.Service,
			"httpproxy":        bundle.Httpproxy,
			"snapshotschedule": bundle.Snapshotschedule,
		} {
			if res == nil {
				t.Errorf("slot %s is empty", slot)
			}
		}
		if len(bundle.Volumesnapshot) != 0 {
			t.Errorf("no snapshots were given: %+v", bundle.Volumesnapshot)
		}
	})

	t.Run("snapshots keep their input order", func(t *testing.T) {
		flat := []domain.Resource{
			{Id: "r1", Kind: domain.KindVolumeSnapshot, Name: "snap-c"},
			{Id: "r2", Kind: domain.KindVolumeSnapshot, Name: "snap-a"},
			{Id: "r3", Kind: domain.KindVolumeSnapshot, Name: "snap-b"},
		}
		bundle := domain.BundleResources(flat)

		if len(bundle.Volumesnapshot) != 3 {
			t.Fatalf("unexpected snapshot count: %d", len(bundle.Volumesnapshot))
		}
		for at, name := range []string{"snap-c", "snap-a", "snap-b"} {
			if bundle.Volumesnapshot[at].Name != name {
				t.Errorf("snapshot[%d] = %s (expected: %s)", at, bundle.Volumesnapshot[at].Name, name)
			}
		}
	})

	t.Run("first row wins for a duplicated singleton kind", func(t *testing.T) {
		flat := []domain.Resource{
			{Id: "r1", Kind: domain.KindDeployment, Name: "dep-old"},
			{Id: "r2", Kind: domain.KindDeployment, Name: "dep-new"},
		}
		bundle := domain.BundleResources(flat)

		if bundle.Deployment == nil || bundle.Deployment.Id != "r1" {
			t.Errorf("unexpected deployment slot: %+v", bundle.Deployment)
		}
	})
}
