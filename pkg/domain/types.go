package domain

import "fmt"

// ResourceKind is the kind of a Kubernetes object tracked for an owner.
type ResourceKind string

const (
	KindNamespace             ResourceKind = "namespace"
	KindConfigmap             ResourceKind = "configmap"
	KindSecret                ResourceKind = "secret"
	KindPersistentVolumeClaim ResourceKind = "persistentvolumeclaim"
	KindDeployment            ResourceKind = "deployment"
	KindService               ResourceKind = "service"
	KindHTTPProxy             ResourceKind = "httpproxy"
	KindVolumeSnapshot        ResourceKind = "volumesnapshot"
	KindSnapshotSchedule      ResourceKind = "snapshotschedule"
)

func (rk ResourceKind) String() string {
	return string(rk)
}

// Repeatable returns true when more than one resource of this kind
// may exist per owner. Every other kind is at most one per owner.
func (rk ResourceKind) Repeatable() bool {
	return rk == KindVolumeSnapshot
}

func AsResourceKind(kind string) (ResourceKind, error) {
	switch kind {
	case string(KindNamespace):
		return KindNamespace, nil
	case string(KindConfigmap):
		return KindConfigmap, nil
	case string(KindSecret):
		return KindSecret, nil
	case string(KindPersistentVolumeClaim):
		return KindPersistentVolumeClaim, nil
	case string(KindDeployment):
		return KindDeployment, nil
	case string(KindService):
		return KindService, nil
	case string(KindHTTPProxy):
		return KindHTTPProxy, nil
	case string(KindVolumeSnapshot):
		return KindVolumeSnapshot, nil
	case string(KindSnapshotSchedule):
		return KindSnapshotSchedule, nil
	default:
		return "", fmt.Errorf("'%s' is not ResourceKind", kind)
	}
}

// Status is the externally observable condition of an owner or a resource.
type Status string

const (
	StatusNew     Status = "new"
	StatusPending Status = "pending"
	StatusActive  Status = "active"
	StatusRunning Status = "running"
	StatusStopped Status = "stopped"
	StatusFailed  Status = "failed"
	StatusDeleted Status = "deleted"
)

func (s Status) String() string {
	return string(s)
}

// State is the owner's internal transition marker, distinct from Status.
type State string

const (
	StateAvailable State = "available"
	StateCreating  State = "creating"
	StateUpdating  State = "updating"
	StateStarting  State = "starting"
	StateStopping  State = "stopping"
	StateRepairing State = "repairing"
	StateRotating  State = "rotating"
	StateDeleting  State = "deleting"
)

func (s State) String() string {
	return string(s)
}

// OwnerScope tells whether an owner id points a project or an instance.
type OwnerScope string

const (
	ScopeProject  OwnerScope = "project"
	ScopeInstance OwnerScope = "instance"
)

func AsOwnerScope(scope string) (OwnerScope, error) {
	switch scope {
	case string(ScopeProject):
		return ScopeProject, nil
	case string(ScopeInstance):
		return ScopeInstance, nil
	default:
		return "", fmt.Errorf("'%s' is not OwnerScope", scope)
	}
}

// TriggerFor returns the resource kind whose reported status drives
// the status/state of an owner in the given scope.
func TriggerFor(scope OwnerScope) ResourceKind {
	if scope == ScopeProject {
		return KindNamespace
	}
	return KindDeployment
}

// OwnerConditionFor maps an observed resource status to the status/state
// the owner should transit to.
//
// Resource-status callbacks always land the owner state on "available";
// non-available states are set only by the call paths which request them
// (creation, delete request).
func OwnerConditionFor(scope OwnerScope, observed string) (Status, State) {
	switch Status(observed) {
	case StatusRunning:
		return StatusRunning, StateAvailable
	case StatusDeleted:
		return StatusDeleted, StateAvailable
	case StatusPending:
		return StatusPending, StateAvailable
	case StatusActive:
		// only a namespace reports "active" for its project
		if scope == ScopeProject {
			return StatusActive, StateAvailable
		}
	}
	return StatusFailed, StateAvailable
}

// NodeKind is the kind of blockchain node an instance runs.
type NodeKind string

const (
	NodeZcash NodeKind = "zcash"
	NodeLWD   NodeKind = "lwd"
	NodeZebra NodeKind = "zebra"
)

func AsNodeKind(kind string) (NodeKind, error) {
	switch kind {
	case string(NodeZcash):
		return NodeZcash, nil
	case string(NodeLWD):
		return NodeLWD, nil
	case string(NodeZebra):
		return NodeZebra, nil
	default:
		return "", fmt.Errorf("'%s' is not NodeKind", kind)
	}
}

// NetworkKind is the blockchain network a project is bound to.
type NetworkKind string

const (
	NetworkMain NetworkKind = "mainnet"
	NetworkTest NetworkKind = "testnet"
	NetworkReg  NetworkKind = "regnet"
)

func AsNetworkKind(kind string) (NetworkKind, error) {
	switch kind {
	case string(NetworkMain):
		return NetworkMain, nil
	case string(NetworkTest):
		return NetworkTest, nil
	case string(NetworkReg):
		return NetworkReg, nil
	default:
		return "", fmt.Errorf("'%s' is not NetworkKind", kind)
	}
}

// Operation is an externally requested action recorded in the activity log.
type Operation string

const (
	OpCreate   Operation = "create"
	OpStart    Operation = "start"
	OpStop     Operation = "stop"
	OpSnapshot Operation = "snapshot"
	OpSchedule Operation = "schedule"
	OpRotate   Operation = "rotate"
	OpDelete   Operation = "delete"
	OpPurge    Operation = "purge"
	OpRepair   Operation = "repair"
	OpUpdate   Operation = "update"
)

func AsOperation(op string) (Operation, error) {
	switch op {
	case string(OpCreate), string(OpStart), string(OpStop), string(OpSnapshot),
		string(OpSchedule), string(OpRotate), string(OpDelete), string(OpPurge),
		string(OpRepair), string(OpUpdate):
		return Operation(op), nil
	default:
		return "", fmt.Errorf("'%s' is not Operation", op)
	}
}
