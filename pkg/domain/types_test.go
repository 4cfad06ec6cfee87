package domain_test

import (
	"testing"

	"github.com/zbitech/zbi-db/pkg/domain"
)

func TestOwnerConditionFor(t *testing.T) {
	type when struct {
		scope    domain.OwnerScope
		observed string
	}
	type then struct {
		status domain.Status
		state  domain.State
	}

	for name, testcase := range map[string]struct {
		when when
		then then
	}{
		"running resource -> running owner": {
			when: when{scope: domain.ScopeInstance, observed: "running"},
			then: then{status: domain.StatusRunning, state: domain.StateAvailable},
		},
		"pending resource -> pending owner": {
			when: when{scope: domain.ScopeInstance, observed: "pending"},
			then: then{status: domain.StatusPending, state: domain.StateAvailable},
		},
		"deleted resource -> deleted owner": {
			when: when{scope: domain.ScopeProject, observed: "deleted"},
			then: then{status: domain.StatusDeleted, state: domain.StateAvailable},
		},
		"active namespace -> active project": {
			when: when{scope: domain.ScopeProject, observed: "active"},
			then: then{status: domain.StatusActive, state: domain.StateAvailable},
		},
		"active is not a condition for instances": {
			when: when{scope: domain.ScopeInstance, observed: "active"},
			then: then{status: domain.StatusFailed, state: domain.StateAvailable},
		},
		"unknown reports land on failed": {
			when: when{scope: domain.ScopeInstance, observed: "crashloopbackoff"},
			then: then{status: domain.StatusFailed, state: domain.StateAvailable},
		},
		"empty report lands on failed": {
			when: when{scope: domain.ScopeProject, observed: ""},
			then: then{status: domain.StatusFailed, state: domain.StateAvailable},
		},
	} {
		t.Run(name, func(t *testing.T) {
			status, state := domain.OwnerConditionFor(testcase.when.scope, testcase.when.observed)
			if status != testcase.then.status || state != testcase.then.state {
				t.Errorf(
					"condition: %s/%s (expected: %s/%s)",
					status, state, testcase.then.status, testcase.then.state,
				)
			}
		})
	}
}

func TestTriggerFor(t *testing.T) {
	if kind := domain.TriggerFor(domain.ScopeProject); kind != domain.KindNamespace {
		t.Errorf("project trigger: %s (expected: namespace)", kind)
	}
	if kind := domain.TriggerFor(domain.ScopeInstance); kind != domain.KindDeployment {
		t.Errorf("instance trigger: %s (expected: deployment)", kind)
	}
}

func TestAsResourceKind(t *testing.T) {
	for _, kind := range []string{
		"namespace", "configmap", "secret", "persistentvolumeclaim",
		"deployment", "service", "httpproxy", "volumesnapshot", "snapshotschedule",
	} {
		parsed, err := domain.AsResourceKind(kind)
		if err != nil {
			t.Errorf("%s should parse: %v", kind, err)
		}
		if parsed.String() != kind {
			t.Errorf("%s parsed to %s", kind, parsed)
		}
	}

	for _, kind := range []string{"", "pod", "Deployment", "statefulset"} {
		if _, err := domain.AsResourceKind(kind); err == nil {
			t.Errorf("'%s' should not parse", kind)
		}
	}
}

func TestResourceKindRepeatable(t *testing.T) {
	if !domain.KindVolumeSnapshot.Repeatable() {
		t.Error("volumesnapshot should repeat")
	}
	for _, kind := range []domain.ResourceKind{
		domain.KindNamespace, domain.KindConfigmap, domain.KindSecret,
		domain.KindPersistentVolumeClaim, domain.KindDeployment,
		domain.KindService, domain.KindHTTPProxy, domain.KindSnapshotSchedule,
	} {
		if kind.Repeatable() {
			t.Errorf("%s should be a singleton kind", kind)
		}
	}
}

func TestAsOperation(t *testing.T) {
	for _, op := range []string{
		"create", "start", "stop", "snapshot", "schedule",
		"rotate", "delete", "purge", "repair", "update",
	} {
		if _, err := domain.AsOperation(op); err != nil {
			t.Errorf("%s should parse: %v", op, err)
		}
	}
	if _, err := domain.AsOperation("restart"); err == nil {
		t.Error("'restart' should not parse")
	}
}

func TestAsOwnerScope(t *testing.T) {
	for _, scope := range []string{"project", "instance"} {
		if _, err := domain.AsOwnerScope(scope); err != nil {
			t.Errorf("%s should parse: %v", scope, err)
		}
	}
	if _, err := domain.AsOwnerScope("namespace"); err == nil {
		t.Error("'namespace' should not parse")
	}
}
