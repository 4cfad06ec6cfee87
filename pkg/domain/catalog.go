package domain

import (
	"time"

	"github.com/zbitech/zbi-db/pkg/utils/cmp"
)

// ImageInfo points a container image used by a node template.
type ImageInfo struct {
	Name    string
	Version string
	Url     string
}

// NodeInfo is one node-type template within a blockchain catalog entry.
type NodeInfo struct {
	Name       string
	Type       string
	Images     []ImageInfo
	Endpoints  map[string][]string
	Ports      map[string]int32
	Settings   map[string]interface{}
	Properties map[string]interface{}
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (n *NodeInfo) Equal(other *NodeInfo) bool {
	if n == nil || other == nil {
		return n == nil && other == nil
	}
	return n.Name == other.Name &&
		n.Type == other.Type &&
		cmp.SliceEq(n.Images, other.Images) &&
		cmp.MapEqWith(n.Ports, other.Ports, func(a, b int32) bool { return a == b })
}

// BlockchainInfo is a catalog entry for one supported blockchain type:
// its networks, node-type templates, and raw manifest template texts
// rendered externally at deployment time.
type BlockchainInfo struct {
	Name      string
	Networks  []string
	Nodes     []NodeInfo
	Templates map[string]string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (b *BlockchainInfo) Equal(other *BlockchainInfo) bool {
	if b == nil || other == nil {
		return b == nil && other == nil
	}
	return b.Name == other.Name &&
		cmp.SliceEq(b.Networks, other.Networks) &&
		cmp.SliceEqWith(
			b.Nodes, other.Nodes,
			func(a, o NodeInfo) bool { return a.Equal(&o) },
		) &&
		cmp.MapEq(b.Templates, other.Templates)
}

// EnvoyConfig is the sidecar proxy configuration distributed with the policy.
type EnvoyConfig struct {
	Image                 string
	Command               []string
	Timeout               float32
	AccessAuthorization   bool
	AuthServerURL         string
	AuthServerPort        int32
	AuthenticationEnabled bool
}

func (e EnvoyConfig) Equal(other EnvoyConfig) bool {
	return e.Image == other.Image &&
		cmp.SliceEq(e.Command, other.Command) &&
		e.Timeout == other.Timeout &&
		e.AccessAuthorization == other.AccessAuthorization &&
		e.AuthServerURL == other.AuthServerURL &&
		e.AuthServerPort == other.AuthServerPort &&
		e.AuthenticationEnabled == other.AuthenticationEnabled
}

// ResourceDefaults are the cluster-wide default compute requests.
type ResourceDefaults struct {
	Cpu     string
	Memory  string
	Storage string
}

// PolicyInfo is the singleton cluster-wide provisioning policy.
type PolicyInfo struct {
	StorageClass          string
	SnapshotClass         string
	DomainName            string
	CertificateName       string
	ServiceAccount        string
	InformerResync        int32
	EnableMonitor         bool
	RequireAuthentication bool
	Envoy                 EnvoyConfig
	Request               ResourceDefaults
}

func (p *PolicyInfo) Equal(other *PolicyInfo) bool {
	if p == nil || other == nil {
		return p == nil && other == nil
	}
	return p.StorageClass == other.StorageClass &&
		p.SnapshotClass == other.SnapshotClass &&
		p.DomainName == other.DomainName &&
		p.CertificateName == other.CertificateName &&
		p.ServiceAccount == other.ServiceAccount &&
		p.InformerResync == other.InformerResync &&
		p.EnableMonitor == other.EnableMonitor &&
		p.RequireAuthentication == other.RequireAuthentication &&
		p.Envoy.Equal(other.Envoy) &&
		p.Request == other.Request
}
