package db

import (
	"context"

	"github.com/zbitech/zbi-db/pkg/domain"
)

// Interface is the configuration catalog: the singleton provisioning
// policy and the per-blockchain entries (networks, node templates and
// raw manifest templates).
type Interface interface {
	// retrieve the cluster-wide policy.
	//
	// Returns ErrMissing (via Missing) before the policy is seeded.
	GetPolicy(ctx context.Context) (domain.PolicyInfo, error)

	// SetPolicy stores the cluster-wide policy, replacing any previous one.
	SetPolicy(ctx context.Context, policy domain.PolicyInfo) error

	// CreateBlockchain registers a new blockchain catalog entry.
	//
	// Returns ErrExists (via Conflict) when the name is taken.
	CreateBlockchain(ctx context.Context, name string, networks []string) (domain.BlockchainInfo, error)

	// retrieve one catalog entry with its nodes and templates attached.
	//
	// Returns ErrMissing (via Missing) when no such entry exists.
	GetBlockchain(ctx context.Context, name string) (domain.BlockchainInfo, error)

	// ListBlockchains returns every catalog entry, nodes and templates attached.
	ListBlockchains(ctx context.Context) ([]domain.BlockchainInfo, error)

	// UpsertNode stores a node-type template under a blockchain entry,
	// replacing a previous template of the same node name.
	UpsertNode(ctx context.Context, blockchain string, node domain.NodeInfo) error

	// retrieve one node-type template.
	GetNode(ctx context.Context, blockchain string, nodeName string) (domain.NodeInfo, error)

	// RemoveNode drops a node-type template from a blockchain entry.
	RemoveNode(ctx context.Context, blockchain string, nodeName string) error

	// SetTemplate stores a raw manifest template text under a blockchain
	// entry, replacing a previous text of the same name.
	SetTemplate(ctx context.Context, blockchain string, name string, body string) error

	// retrieve one raw manifest template text.
	GetTemplate(ctx context.Context, blockchain string, name string) (string, error)
}
