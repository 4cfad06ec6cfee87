package catalog

import (
	"github.com/zbitech/zbi-db/pkg/domain"
	"github.com/zbitech/zbi-db/pkg/utils/cmp"
	"github.com/zbitech/zbi-db/pkg/utils/rfctime"
	"github.com/zbitech/zbi-db/pkg/utils/slices"
)

type Image struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Url     string `json:"url,omitempty"`
}

type Node struct {
	Name       string                 `json:"name"`
	Type       string                 `json:"type"`
	Images     []Image                `json:"images,omitempty"`
	Endpoints  map[string][]string    `json:"endpoints,omitempty"`
	Ports      map[string]int32       `json:"ports,omitempty"`
	Settings   map[string]interface{} `json:"settings,omitempty"`
	Properties map[string]interface{} `json:"properties,omitempty"`
	CreatedAt  rfctime.RFC3339        `json:"createdAt,omitempty"`
	UpdatedAt  rfctime.RFC3339        `json:"updatedAt,omitempty"`
}

func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == nil && o == nil
	}
	return n.Name == o.Name &&
		n.Type == o.Type &&
		cmp.SliceEq(n.Images, o.Images) &&
		cmp.MapEqWith(n.Ports, o.Ports, func(a, b int32) bool { return a == b })
}

func (n Node) AsNode() domain.NodeInfo {
	return domain.NodeInfo{
		Name: n.Name,
		Type: n.Type,
		Images: slices.Map(n.Images, func(i Image) domain.ImageInfo {
			return domain.ImageInfo{Name: i.Name, Version: i.Version, Url: i.Url}
		}),
		Endpoints:  n.Endpoints,
		Ports:      n.Ports,
		Settings:   n.Settings,
		Properties: n.Properties,
	}
}

func ComposeNode(n domain.NodeInfo) Node {
	return Node{
		Name: n.Name,
		Type: n.Type,
		Images: slices.Map(n.Images, func(i domain.ImageInfo) Image {
			return Image{Name: i.Name, Version: i.Version, Url: i.Url}
		}),
		Endpoints:  n.Endpoints,
		Ports:      n.Ports,
		Settings:   n.Settings,
		Properties: n.Properties,
		CreatedAt:  rfctime.RFC3339(n.CreatedAt),
		UpdatedAt:  rfctime.RFC3339(n.UpdatedAt),
	}
}

// BlockchainSpec is the request body registering a blockchain entry.
type BlockchainSpec struct {
	Name     string   `json:"name"`
	Networks []string `json:"networks"`
}

type Blockchain struct {
	Name      string            `json:"name"`
	Networks  []string          `json:"networks"`
	Nodes     []Node            `json:"nodes"`
	Templates map[string]string `json:"templates,omitempty"`
	CreatedAt rfctime.RFC3339   `json:"createdAt"`
	UpdatedAt rfctime.RFC3339   `json:"updatedAt"`
}

func (b *Blockchain) Equal(o *Blockchain) bool {
	if b == nil || o == nil {
		return b == nil && o == nil
	}
	return b.Name == o.Name &&
		cmp.SliceEq(b.Networks, o.Networks) &&
		cmp.SliceEqWith(
			b.Nodes, o.Nodes,
			func(a, c Node) bool { return a.Equal(&c) },
		) &&
		cmp.MapEq(b.Templates, o.Templates)
}

func ComposeBlockchain(b domain.BlockchainInfo) Blockchain {
	return Blockchain{
		Name:      b.Name,
		Networks:  b.Networks,
		Nodes:     slices.Map(b.Nodes, ComposeNode),
		Templates: b.Templates,
		CreatedAt: rfctime.RFC3339(b.CreatedAt),
		UpdatedAt: rfctime.RFC3339(b.UpdatedAt),
	}
}

type Envoy struct {
	Image                 string   `json:"image"`
	Command               []string `json:"command,omitempty"`
	Timeout               float32  `json:"timeout"`
	AccessAuthorization   bool     `json:"accessAuthorization"`
	AuthServerURL         string   `json:"authServerUrl,omitempty"`
	AuthServerPort        int32    `json:"authServerPort,omitempty"`
	AuthenticationEnabled bool     `json:"authenticationEnabled"`
}

type RequestDefaults struct {
	Cpu     string `json:"cpu"`
	Memory  string `json:"memory"`
	Storage string `json:"storage"`
}

type Policy struct {
	StorageClass          string          `json:"storageClass"`
	SnapshotClass         string          `json:"snapshotClass"`
	DomainName            string          `json:"domainName"`
	CertificateName       string          `json:"certificateName"`
	ServiceAccount        string          `json:"serviceAccount"`
	InformerResync        int32           `json:"informerResync"`
	EnableMonitor         bool            `json:"enableMonitor"`
	RequireAuthentication bool            `json:"requireAuthentication"`
	Envoy                 Envoy           `json:"envoy"`
	Request               RequestDefaults `json:"request"`
}

func (p *Policy) Equal(o *Policy) bool {
	if p == nil || o == nil {
		return p == nil && o == nil
	}
	return p.StorageClass == o.StorageClass &&
		p.SnapshotClass == o.SnapshotClass &&
		p.DomainName == o.DomainName &&
		p.CertificateName == o.CertificateName &&
		p.ServiceAccount == o.ServiceAccount &&
		p.InformerResync == o.InformerResync &&
		p.EnableMonitor == o.EnableMonitor &&
		p.RequireAuthentication == o.RequireAuthentication &&
		p.Envoy.Image == o.Envoy.Image &&
		cmp.SliceEq(p.Envoy.Command, o.Envoy.Command) &&
		p.Request == o.Request
}

func (p Policy) AsPolicy() domain.PolicyInfo {
	return domain.PolicyInfo{
		StorageClass:          p.StorageClass,
		SnapshotClass:         p.SnapshotClass,
		DomainName:            p.DomainName,
		CertificateName:       p.CertificateName,
		ServiceAccount:        p.ServiceAccount,
		InformerResync:        p.InformerResync,
		EnableMonitor:         p.EnableMonitor,
		RequireAuthentication: p.RequireAuthentication,
		Envoy: domain.EnvoyConfig{
			Image:                 p.Envoy.Image,
			Command:               p.Envoy.Command,
			Timeout:               p.Envoy.Timeout,
			AccessAuthorization:   p.Envoy.AccessAuthorization,
			AuthServerURL:         p.Envoy.AuthServerURL,
			AuthServerPort:        p.Envoy.AuthServerPort,
			AuthenticationEnabled: p.Envoy.AuthenticationEnabled,
		},
		Request: domain.ResourceDefaults{
			Cpu:     p.Request.Cpu,
			Memory:  p.Request.Memory,
			Storage: p.Request.Storage,
		},
	}
}

func ComposePolicy(p domain.PolicyInfo) Policy {
	return Policy{
		StorageClass:          p.StorageClass,
		SnapshotClass:         p.SnapshotClass,
		DomainName:            p.DomainName,
		CertificateName:       p.CertificateName,
		ServiceAccount:        p.ServiceAccount,
		InformerResync:        p.InformerResync,
		EnableMonitor:         p.EnableMonitor,
		RequireAuthentication: p.RequireAuthentication,
		Envoy: Envoy{
			Image:                 p.Envoy.Image,
			Command:               p.Envoy.Command,
			Timeout:               p.Envoy.Timeout,
			AccessAuthorization:   p.Envoy.AccessAuthorization,
			AuthServerURL:         p.Envoy.AuthServerURL,
			AuthServerPort:        p.Envoy.AuthServerPort,
			AuthenticationEnabled: p.Envoy.AuthenticationEnabled,
		},
		Request: RequestDefaults{
			Cpu:     p.Request.Cpu,
			Memory:  p.Request.Memory,
			Storage: p.Request.Storage,
		},
	}
}
