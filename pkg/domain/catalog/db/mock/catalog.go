package mocks

import (
	"context"
	"errors"

	"github.com/zbitech/zbi-db/pkg/domain"
	kpgcat "github.com/zbitech/zbi-db/pkg/domain/catalog/db"
	dbmock "github.com/zbitech/zbi-db/pkg/domain/internal/db/mock"
)

type CatalogInterface struct {
	Impl struct {
		GetPolicy        func(context.Context) (domain.PolicyInfo, error)
		SetPolicy        func(context.Context, domain.PolicyInfo) error
		CreateBlockchain func(context.Context, string, []string) (domain.BlockchainInfo, error)
		GetBlockchain    func(context.Context, string) (domain.BlockchainInfo, error)
		ListBlockchains  func(context.Context) ([]domain.BlockchainInfo, error)
		UpsertNode       func(context.Context, string, domain.NodeInfo) error
		GetNode          func(context.Context, string, string) (domain.NodeInfo, error)
		RemoveNode       func(context.Context, string, string) error
		SetTemplate      func(context.Context, string, string, string) error
		GetTemplate      func(context.Context, string, string) (string, error)
	}
	Calls struct {
		GetPolicy        dbmock.CallLog[struct{}]
		SetPolicy        dbmock.CallLog[domain.PolicyInfo]
		CreateBlockchain dbmock.CallLog[struct {
			Name     string
			Networks []string
		}]
		GetBlockchain   dbmock.CallLog[struct{ Name string }]
		ListBlockchains dbmock.CallLog[struct{}]
		UpsertNode      dbmock.CallLog[struct {
			Blockchain string
			Node       domain.NodeInfo
		}]
		GetNode dbmock.CallLog[struct {
			Blockchain string
			NodeName   string
		}]
		RemoveNode dbmock.CallLog[struct {
			Blockchain string
			NodeName   string
		}]
		SetTemplate dbmock.CallLog[struct {
			Blockchain string
			Name       string
			Body       string
		}]
		GetTemplate dbmock.CallLog[struct {
			Blockchain string
			Name       string
		}]
	}
}

func NewCatalogInterface() *CatalogInterface {
	return &CatalogInterface{}
}

var _ kpgcat.Interface = &CatalogInterface{}

func (ci *CatalogInterface) GetPolicy(ctx context.Context) (domain.PolicyInfo, error) {
	ci.Calls.GetPolicy = append(ci.Calls.GetPolicy, struct{}{})
	if ci.Impl.GetPolicy != nil {
		return ci.Impl.GetPolicy(ctx)
	}
	panic(errors.New("it should not be called"))
}

func (ci *CatalogInterface) SetPolicy(ctx context.Context, policy domain.PolicyInfo) error {
	ci.Calls.SetPolicy = append(ci.Calls.SetPolicy, policy)
	if ci.Impl.SetPolicy != nil {
		return ci.Impl.SetPolicy(ctx, policy)
	}
	panic(errors.New("it should not be called"))
}

func (ci *CatalogInterface) CreateBlockchain(ctx context.Context, name string, networks []string) (domain.BlockchainInfo, error) {
	ci.Calls.CreateBlockchain = append(ci.Calls.CreateBlockchain, struct {
		Name     string
		Networks []string
	}{
		Name: name, Networks: networks,
	})
	if ci.Impl.CreateBlockchain != nil {
		return ci.Impl.CreateBlockchain(ctx, name, networks)
	}
	panic(errors.New("it should not be called"))
}

func (ci *CatalogInterface) GetBlockchain(ctx context.Context, name string) (domain.BlockchainInfo, error) {
	ci.Calls.GetBlockchain = append(ci.Calls.GetBlockchain, struct{ Name string }{Name: name})
	if ci.Impl.GetBlockchain != nil {
		return ci.Impl.GetBlockchain(ctx, name)
	}
	panic(errors.New("it should not be called"))
}

func (ci *CatalogInterface) ListBlockchains(ctx context.Context) ([]domain.BlockchainInfo, error) {
	ci.Calls.ListBlockchains = append(ci.Calls.ListBlockchains, struct{}{})
	if ci.Impl.ListBlockchains != nil {
		return ci.Impl.ListBlockchains(ctx)
	}
	panic(errors.New("it should not be called"))
}

func (ci *CatalogInterface) UpsertNode(ctx context.Context, blockchain string, node domain.NodeInfo) error {
	ci.Calls.UpsertNode = append(ci.Calls.UpsertNode, struct {
		Blockchain string
		Node       domain.NodeInfo
	}{
		Blockchain: blockchain, Node: node,
	})
	if ci.Impl.UpsertNode != nil {
		return ci.Impl.UpsertNode(ctx, blockchain, node)
	}
	panic(errors.New("it should not be called"))
}

func (ci *CatalogInterface) GetNode(ctx context.Context, blockchain string, nodeName string) (domain.NodeInfo, error) {
	ci.Calls.GetNode = append(ci.Calls.GetNode, struct {
		Blockchain string
		NodeName   string
	}{
		Blockchain: blockchain, NodeName: nodeName,
	})
	if ci.Impl.GetNode != nil {
		return ci.Impl.GetNode(ctx, blockchain, nodeName)
	}
	panic(errors.New("it should not be called"))
}

func (ci *CatalogInterface) RemoveNode(ctx context.Context, blockchain string, nodeName string) error {
	ci.Calls.RemoveNode = append(ci.Calls.RemoveNode, struct {
		Blockchain string
		NodeName   string
	}{
		Blockchain: blockchain, NodeName: nodeName,
	})
	if ci.Impl.RemoveNode != nil {
		return ci.Impl.RemoveNode(ctx, blockchain, nodeName)
	}
	panic(errors.New("it should not be called"))
}

func (ci *CatalogInterface) SetTemplate(ctx context.Context, blockchain string, name string, body string) error {
	ci.Calls.SetTemplate = append(ci.Calls.SetTemplate, struct {
		Blockchain string
		Name       string
		Body       string
	}{
		Blockchain: blockchain, Name: name, Body: body,
	})
	if ci.Impl.SetTemplate != nil {
		return ci.Impl.SetTemplate(ctx, blockchain, name, body)
	}
	panic(errors.New("it should not be called"))
}

func (ci *CatalogInterface) GetTemplate(ctx context.Context, blockchain string, name string) (string, error) {
	ci.Calls.GetTemplate = append(ci.Calls.GetTemplate, struct {
		Blockchain string
		Name       string
	}{
		Blockchain: blockchain, Name: name,
	})
	if ci.Impl.GetTemplate != nil {
		return ci.Impl.GetTemplate(ctx, blockchain, name)
	}
	panic(errors.New("it should not be called"))
}
