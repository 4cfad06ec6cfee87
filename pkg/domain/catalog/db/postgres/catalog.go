package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	kpool "github.com/zbitech/zbi-db/pkg/conn/db/postgres/pool"
	"github.com/zbitech/zbi-db/pkg/domain"
	kpgcat "github.com/zbitech/zbi-db/pkg/domain/catalog/db"
	kerr "github.com/zbitech/zbi-db/pkg/domain/errors/dberrors/postgres"
	xe "github.com/zbitech/zbi-db/pkg/errors"
)

type pgCatalog struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kpgcat.Interface {
	return &pgCatalog{pool: pool}
}

// policyDocument is the stored shape of PolicyInfo.
//
// The policy is one jsonb document rather than columns: it is written
// whole, read whole, and never queried by field.
type policyDocument struct {
	StorageClass          string   `json:"storageClass"`
	SnapshotClass         string   `json:"snapshotClass"`
	DomainName            string   `json:"domainName"`
	CertificateName       string   `json:"certificateName"`
	ServiceAccount        string   `json:"serviceAccount"`
	InformerResync        int32    `json:"informerResync"`
	EnableMonitor         bool     `json:"enableMonitor"`
	RequireAuthentication bool     `json:"requireAuthentication"`
	Envoy                 struct {
		Image                 string   `json:"image"`
		Command               []string `json:"command"`
		Timeout               float32  `json:"timeout"`
		AccessAuthorization   bool     `json:"accessAuthorization"`
		AuthServerURL         string   `json:"authServerUrl"`
		AuthServerPort        int32    `json:"authServerPort"`
		AuthenticationEnabled bool     `json:"authenticationEnabled"`
	} `json:"envoy"`
	Request struct {
		Cpu     string `json:"cpu"`
		Memory  string `json:"memory"`
		Storage string `json:"storage"`
	} `json:"request"`
}

func policyToDocument(p domain.PolicyInfo) policyDocument {
	doc := policyDocument{
		StorageClass:          p.StorageClass,
		SnapshotClass:         p.SnapshotClass,
		DomainName:            p.DomainName,
		CertificateName:       p.CertificateName,
		ServiceAccount:        p.ServiceAccount,
		InformerResync:        p.InformerResync,
		EnableMonitor:         p.EnableMonitor,
		RequireAuthentication: p.RequireAuthentication,
	}
	doc.Envoy.Image = p.Envoy.Image
	doc.Envoy.Command = p.Envoy.Command
	doc.Envoy.Timeout = p.Envoy.Timeout
	doc.Envoy.AccessAuthorization = p.Envoy.AccessAuthorization
	doc.Envoy.AuthServerURL = p.Envoy.AuthServerURL
	doc.Envoy.AuthServerPort = p.Envoy.AuthServerPort
	doc.Envoy.AuthenticationEnabled = p.Envoy.AuthenticationEnabled
	doc.Request.Cpu = p.Request.Cpu
	doc.Request.Memory = p.Request.Memory
	doc.Request.Storage = p.Request.Storage
	return doc
}

func (doc policyDocument) asPolicy() domain.PolicyInfo {
	return domain.PolicyInfo{
		StorageClass:          doc.StorageClass,
		SnapshotClass:         doc.SnapshotClass,
		DomainName:            doc.DomainName,
		CertificateName:       doc.CertificateName,
		ServiceAccount:        doc.ServiceAccount,
		InformerResync:        doc.InformerResync,
		EnableMonitor:         doc.EnableMonitor,
		RequireAuthentication: doc.RequireAuthentication,
		Envoy: domain.EnvoyConfig{
			Image:                 doc.Envoy.Image,
			Command:               doc.Envoy.Command,
			Timeout:               doc.Envoy.Timeout,
			AccessAuthorization:   doc.Envoy.AccessAuthorization,
			AuthServerURL:         doc.Envoy.AuthServerURL,
			AuthServerPort:        doc.Envoy.AuthServerPort,
			AuthenticationEnabled: doc.Envoy.AuthenticationEnabled,
		},
		Request: domain.ResourceDefaults{
			Cpu:     doc.Request.Cpu,
			Memory:  doc.Request.Memory,
			Storage: doc.Request.Storage,
		},
	}
}

func (p *pgCatalog) GetPolicy(ctx context.Context) (domain.PolicyInfo, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return domain.PolicyInfo{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	var raw pgtype.JSONB
	err = tx.QueryRow(
		ctx,
		`select "document" from "policy" where "singleton";`,
	).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.PolicyInfo{}, kerr.Missing{Table: "policy", Identity: "policy"}
	}
	if err != nil {
		return domain.PolicyInfo{}, xe.Wrap(err)
	}

	doc := policyDocument{}
	if err := json.Unmarshal(raw.Bytes, &doc); err != nil {
		return domain.PolicyInfo{}, xe.Wrap(err)
	}
	return doc.asPolicy(), nil
}

func (p *pgCatalog) SetPolicy(ctx context.Context, policy domain.PolicyInfo) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	raw, err := json.Marshal(policyToDocument(policy))
	if err != nil {
		return xe.Wrap(err)
	}

	if _, err := tx.Exec(
		ctx,
		`
		insert into "policy" ("singleton", "document") values (true, $1)
		on conflict ("singleton") do update set
			"document" = excluded."document", "updated_at" = now();
		`,
		raw,
	); err != nil {
		return xe.Wrap(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return xe.Wrap(err)
	}
	return nil
}

func (p *pgCatalog) CreateBlockchain(ctx context.Context, name string, networks []string) (domain.BlockchainInfo, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return domain.BlockchainInfo{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	if networks == nil {
		networks = []string{}
	}
	entry := domain.BlockchainInfo{
		Name:      name,
		Networks:  networks,
		Nodes:     []domain.NodeInfo{},
		Templates: map[string]string{},
	}

	if err := tx.QueryRow(
		ctx,
		`
		insert into "blockchain" ("name", "networks") values ($1, $2)
		returning "created_at", "updated_at";
		`,
		name, networks,
	).Scan(&entry.CreatedAt, &entry.UpdatedAt); err != nil {
		return domain.BlockchainInfo{}, xe.Wrap(kerr.WrapUniqueViolation(err, "blockchain", name))
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.BlockchainInfo{}, xe.Wrap(err)
	}
	return entry, nil
}

// nodeDocument is the stored shape of NodeInfo, minus the key columns.
type nodeDocument struct {
	Type      string `json:"type"`
	Images    []struct {
		Name    string `json:"name"`
		Version string `json:"version"`
		Url     string `json:"url"`
	} `json:"images"`
	Endpoints  map[string][]string    `json:"endpoints"`
	Ports      map[string]int32       `json:"ports"`
	Settings   map[string]interface{} `json:"settings"`
	Properties map[string]interface{} `json:"properties"`
}

func nodeToDocument(n domain.NodeInfo) nodeDocument {
	doc := nodeDocument{
		Type:       n.Type,
		Endpoints:  n.Endpoints,
		Ports:      n.Ports,
		Settings:   n.Settings,
		Properties: n.Properties,
	}
	for _, img := range n.Images {
		doc.Images = append(doc.Images, struct {
			Name    string `json:"name"`
			Version string `json:"version"`
			Url     string `json:"url"`
		}{
			Name: img.Name, Version: img.Version, Url: img.Url,
		})
	}
	return doc
}

func (doc nodeDocument) asNode(name string) domain.NodeInfo {
	node := domain.NodeInfo{
		Name:       name,
		Type:       doc.Type,
		Endpoints:  doc.Endpoints,
		Ports:      doc.Ports,
		Settings:   doc.Settings,
		Properties: doc.Properties,
	}
	for _, img := range doc.Images {
		node.Images = append(node.Images, domain.ImageInfo{
			Name: img.Name, Version: img.Version, Url: img.Url,
		})
	}
	return node
}

func (p *pgCatalog) UpsertNode(ctx context.Context, blockchain string, node domain.NodeInfo) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	if err := checkBlockchain(ctx, tx, blockchain); err != nil {
		return err
	}

	raw, err := json.Marshal(nodeToDocument(node))
	if err != nil {
		return xe.Wrap(err)
	}

	if _, err := tx.Exec(
		ctx,
		`
		insert into "blockchain_node" ("blockchain", "name", "document")
		values ($1, $2, $3)
		on conflict ("blockchain", "name") do update set
			"document" = excluded."document", "updated_at" = now();
		`,
		blockchain, node.Name, raw,
	); err != nil {
		return xe.Wrap(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return xe.Wrap(err)
	}
	return nil
}

func checkBlockchain(ctx context.Context, q kpool.Queryer, blockchain string) error {
	var found bool
	if err := q.QueryRow(
		ctx,
		`select exists (select 1 from "blockchain" where "name" = $1);`,
		blockchain,
	).Scan(&found); err != nil {
		return xe.Wrap(err)
	}
	if !found {
		return kerr.Missing{Table: "blockchain", Identity: blockchain}
	}
	return nil
}

func (p *pgCatalog) GetNode(ctx context.Context, blockchain string, nodeName string) (domain.NodeInfo, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return domain.NodeInfo{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	var raw pgtype.JSONB
	var createdAt, updatedAt pgtype.Timestamptz
	err = tx.QueryRow(
		ctx,
		`
		select "document", "created_at", "updated_at" from "blockchain_node"
		where "blockchain" = $1 and "name" = $2;
		`,
		blockchain, nodeName,
	).Scan(&raw, &createdAt, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NodeInfo{}, kerr.Missing{Table: "blockchain_node", Identity: nodeName}
	}
	if err != nil {
		return domain.NodeInfo{}, xe.Wrap(err)
	}

	doc := nodeDocument{}
	if err := json.Unmarshal(raw.Bytes, &doc); err != nil {
		return domain.NodeInfo{}, xe.Wrap(err)
	}
	node := doc.asNode(nodeName)
	node.CreatedAt = createdAt.Time
	node.UpdatedAt = updatedAt.Time
	return node, nil
}

func (p *pgCatalog) RemoveNode(ctx context.Context, blockchain string, nodeName string) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(
		ctx,
		`delete from "blockchain_node" where "blockchain" = $1 and "name" = $2;`,
		blockchain, nodeName,
	)
	if err != nil {
		return xe.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return kerr.Missing{Table: "blockchain_node", Identity: nodeName}
	}
	if err := tx.Commit(ctx); err != nil {
		return xe.Wrap(err)
	}
	return nil
}

func (p *pgCatalog) SetTemplate(ctx context.Context, blockchain string, name string, body string) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	if err := checkBlockchain(ctx, tx, blockchain); err != nil {
		return err
	}

	if _, err := tx.Exec(
		ctx,
		`
		insert into "blockchain_template" ("blockchain", "name", "body")
		values ($1, $2, $3)
		on conflict ("blockchain", "name") do update set
			"body" = excluded."body", "updated_at" = now();
		`,
		blockchain, name, body,
	); err != nil {
		return xe.Wrap(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return xe.Wrap(err)
	}
	return nil
}

func (p *pgCatalog) GetTemplate(ctx context.Context, blockchain string, name string) (string, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return "", xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	var body string
	err = tx.QueryRow(
		ctx,
		`select "body" from "blockchain_template" where "blockchain" = $1 and "name" = $2;`,
		blockchain, name,
	).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", kerr.Missing{Table: "blockchain_template", Identity: name}
	}
	if err != nil {
		return "", xe.Wrap(err)
	}
	return body, nil
}

func (p *pgCatalog) GetBlockchain(ctx context.Context, name string) (domain.BlockchainInfo, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return domain.BlockchainInfo{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	entries, err := loadBlockchains(ctx, tx, name)
	if err != nil {
		return domain.BlockchainInfo{}, err
	}
	if len(entries) == 0 {
		return domain.BlockchainInfo{}, kerr.Missing{Table: "blockchain", Identity: name}
	}
	return entries[0], nil
}

func (p *pgCatalog) ListBlockchains(ctx context.Context) ([]domain.BlockchainInfo, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	return loadBlockchains(ctx, tx, "")
}

// loadBlockchains reads catalog entries with their node and template
// attachments. Empty name loads everything.
func loadBlockchains(ctx context.Context, q kpool.Queryer, name string) ([]domain.BlockchainInfo, error) {
	rows, err := q.Query(
		ctx,
		`
		select "name", "networks", "created_at", "updated_at" from "blockchain"
		where ($1 = '' or "name" = $1)
		order by "name";
		`,
		name,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer rows.Close()

	entries := []domain.BlockchainInfo{}
	index := map[string]int{}
	for rows.Next() {
		entry := domain.BlockchainInfo{
			Nodes:     []domain.NodeInfo{},
			Templates: map[string]string{},
		}
		if err := rows.Scan(
			&entry.Name, &entry.Networks, &entry.CreatedAt, &entry.UpdatedAt,
		); err != nil {
			return nil, xe.Wrap(err)
		}
		index[entry.Name] = len(entries)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, xe.Wrap(err)
	}
	rows.Close()

	nodeRows, err := q.Query(
		ctx,
		`
		select "blockchain", "name", "document", "created_at", "updated_at"
		from "blockchain_node"
		where ($1 = '' or "blockchain" = $1)
		order by "blockchain", "name";
		`,
		name,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer nodeRows.Close()

	for nodeRows.Next() {
		var blockchain, nodeName string
		var raw pgtype.JSONB
		var createdAt, updatedAt pgtype.Timestamptz
		if err := nodeRows.Scan(&blockchain, &nodeName, &raw, &createdAt, &updatedAt); err != nil {
			return nil, xe.Wrap(err)
		}
		doc := nodeDocument{}
		if err := json.Unmarshal(raw.Bytes, &doc); err != nil {
			return nil, xe.Wrap(err)
		}
		node := doc.asNode(nodeName)
		node.CreatedAt = createdAt.Time
		node.UpdatedAt = updatedAt.Time
		if at, ok := index[blockchain]; ok {
			entries[at].Nodes = append(entries[at].Nodes, node)
		}
	}
	if err := nodeRows.Err(); err != nil {
		return nil, xe.Wrap(err)
	}
	nodeRows.Close()

	tmplRows, err := q.Query(
		ctx,
		`
		select "blockchain", "name", "body" from "blockchain_template"
		where ($1 = '' or "blockchain" = $1)
		order by "blockchain", "name";
		`,
		name,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer tmplRows.Close()

	for tmplRows.Next() {
		var blockchain, tmplName, body string
		if err := tmplRows.Scan(&blockchain, &tmplName, &body); err != nil {
			return nil, xe.Wrap(err)
		}
		if at, ok := index[blockchain]; ok {
			entries[at].Templates[tmplName] = body
		}
	}
	if err := tmplRows.Err(); err != nil {
		return nil, xe.Wrap(err)
	}

	return entries, nil
}
