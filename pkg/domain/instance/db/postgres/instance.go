package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	"github.com/zbitech/zbi-db/pkg/conn/db/postgres/marshal"
	kpool "github.com/zbitech/zbi-db/pkg/conn/db/postgres/pool"
	"github.com/zbitech/zbi-db/pkg/domain"
	kerr "github.com/zbitech/zbi-db/pkg/domain/errors/dberrors/postgres"
	kpginst "github.com/zbitech/zbi-db/pkg/domain/instance/db"
	xe "github.com/zbitech/zbi-db/pkg/errors"
	"k8s.io/apimachinery/pkg/api/resource"
)

type pgInstance struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kpginst.Interface {
	return &pgInstance{pool: pool}
}

// requestColumns flattens a ResourceRequest into insertable values.
//
// Cpu and Memory are stored as quantity expressions ("500m", "2Gi")
// so that what is read back parses to an equal resource.Quantity.
func requestColumns(req *domain.ResourceRequest) (
	cpu *string, memory *string, peers []string,
	properties interface{}, volumeType, volumeSize, sourceType, sourceRef string,
	err error,
) {
	if req == nil {
		req = &domain.ResourceRequest{}
	}
	if req.Cpu != nil {
		expr := req.Cpu.String()
		cpu = &expr
	}
	if req.Memory != nil {
		expr := req.Memory.String()
		memory = &expr
	}
	peers = req.Peers
	if peers == nil {
		peers = []string{}
	}
	properties, err = marshal.JSONBValue(req.Properties)
	if err != nil {
		return nil, nil, nil, nil, "", "", "", "", err
	}
	volumeType = string(req.Volume.Type)
	volumeSize = req.Volume.Size
	sourceType = string(req.Volume.Source.Type)
	sourceRef = req.Volume.Source.Ref
	return
}

// scanRequest is the inverse of requestColumns.
func scanRequest(
	cpu *string, memory *string, peers []string,
	properties pgtype.JSONB, volumeType, volumeSize, sourceType, sourceRef string,
) (*domain.ResourceRequest, error) {
	req := &domain.ResourceRequest{
		Peers: peers,
		Volume: domain.VolumeSpec{
			Type: domain.VolumeKind(volumeType),
			Size: volumeSize,
			Source: domain.VolumeSource{
				Type: domain.VolumeSourceKind(sourceType),
				Ref:  sourceRef,
			},
		},
	}
	if cpu != nil {
		q, err := resource.ParseQuantity(*cpu)
		if err != nil {
			return nil, err
		}
		req.Cpu = &q
	}
	if memory != nil {
		q, err := resource.ParseQuantity(*memory)
		if err != nil {
			return nil, err
		}
		req.Memory = &q
	}
	props, err := marshal.JSONBMap(properties)
	if err != nil {
		return nil, err
	}
	req.Properties = props
	return req, nil
}

func (p *pgInstance) Create(ctx context.Context, spec kpginst.InstanceSpec) (domain.InstanceBody, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return domain.InstanceBody{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	cpu, memory, peers, properties, volType, volSize, srcType, srcRef, err := requestColumns(spec.Request)
	if err != nil {
		return domain.InstanceBody{}, xe.Wrap(err)
	}

	instanceId := uuid.NewString()
	inst := domain.InstanceBody{
		Id:        instanceId,
		Name:      spec.Name,
		Type:      spec.Type,
		ProjectId: spec.ProjectId,
		Status:    domain.StatusNew,
		State:     domain.StateCreating,
		Request:   spec.Request,
	}

	if err := tx.QueryRow(
		ctx,
		`
		insert into "instance" (
			"instance_id", "name", "type", "project_id", "status", "state",
			"cpu", "memory", "peers", "properties",
			"volume_type", "volume_size", "volume_source_type", "volume_source_ref"
		)
		values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		returning "created_at", "updated_at";
		`,
		instanceId, spec.Name, string(spec.Type), spec.ProjectId,
		string(inst.Status), string(inst.State),
		cpu, memory, peers, properties, volType, volSize, srcType, srcRef,
	).Scan(&inst.CreatedAt, &inst.UpdatedAt); err != nil {
		return domain.InstanceBody{}, xe.Wrap(kerr.WrapUniqueViolation(err, "instance", spec.Name))
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.InstanceBody{}, xe.Wrap(err)
	}
	return inst, nil
}

const instanceColumns = `
	"instance_id", "name", "type", "project_id", "status", "state",
	"cpu", "memory", "peers", "properties",
	"volume_type", "volume_size", "volume_source_type", "volume_source_ref",
	"created_at", "updated_at"
`

func scanInstance(row pgx.Row) (domain.InstanceBody, error) {
	inst := domain.InstanceBody{}
	var nodeType, status, state string
	var cpu, memory *string
	var peers []string
	var properties pgtype.JSONB
	var volType, volSize, srcType, srcRef string

	if err := row.Scan(
		&inst.Id, &inst.Name, &nodeType, &inst.ProjectId, &status, &state,
		&cpu, &memory, &peers, &properties,
		&volType, &volSize, &srcType, &srcRef,
		&inst.CreatedAt, &inst.UpdatedAt,
	); err != nil {
		return domain.InstanceBody{}, err
	}

	inst.Type = domain.NodeKind(nodeType)
	inst.Status = domain.Status(status)
	inst.State = domain.State(state)

	req, err := scanRequest(cpu, memory, peers, properties, volType, volSize, srcType, srcRef)
	if err != nil {
		return domain.InstanceBody{}, err
	}
	inst.Request = req
	return inst, nil
}

func (p *pgInstance) Get(ctx context.Context, instanceId string) (domain.InstanceBody, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return domain.InstanceBody{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	return getInstance(ctx, tx, instanceId)
}

func getInstance(ctx context.Context, q kpool.Queryer, instanceId string) (domain.InstanceBody, error) {
	inst, err := scanInstance(q.QueryRow(
		ctx,
		`select `+instanceColumns+` from "instance" where "instance_id" = $1;`,
		instanceId,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.InstanceBody{}, kerr.Missing{Table: "instance", Identity: instanceId}
	}
	if err != nil {
		return domain.InstanceBody{}, xe.Wrap(err)
	}
	return inst, nil
}

func (p *pgInstance) Check(ctx context.Context, instanceId string) (bool, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return false, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	var found bool
	if err := tx.QueryRow(
		ctx,
		`select exists (select 1 from "instance" where "instance_id" = $1);`,
		instanceId,
	).Scan(&found); err != nil {
		return false, xe.Wrap(err)
	}
	return found, nil
}

func (p *pgInstance) Find(ctx context.Context, query domain.InstanceFindQuery) ([]domain.InstanceBody, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(
		ctx,
		`
		select `+instanceColumns+` from "instance"
		where
			($1 = '' or "project_id" = $1)
			and ($2 = '' or "name" = $2)
			and ($3 = '' or "type" = $3)
		order by "created_at", "instance_id";
		`,
		query.ProjectId, query.Name, string(query.Type),
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer rows.Close()

	instances := []domain.InstanceBody{}
	for rows.Next() {
		inst, err := scanInstance(rows)
		if err != nil {
			return nil, xe.Wrap(err)
		}
		instances = append(instances, inst)
	}
	if err := rows.Err(); err != nil {
		return nil, xe.Wrap(err)
	}

	return instances, nil
}

func (p *pgInstance) UpdateRequest(ctx context.Context, instanceId string, request *domain.ResourceRequest) (domain.InstanceBody, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return domain.InstanceBody{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	cpu, memory, peers, properties, volType, volSize, srcType, srcRef, err := requestColumns(request)
	if err != nil {
		return domain.InstanceBody{}, xe.Wrap(err)
	}

	tag, err := tx.Exec(
		ctx,
		`
		update "instance" set
			"cpu" = $2, "memory" = $3, "peers" = $4, "properties" = $5,
			"volume_type" = $6, "volume_size" = $7,
			"volume_source_type" = $8, "volume_source_ref" = $9,
			"updated_at" = now()
		where "instance_id" = $1;
		`,
		instanceId, cpu, memory, peers, properties, volType, volSize, srcType, srcRef,
	)
	if err != nil {
		return domain.InstanceBody{}, xe.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.InstanceBody{}, kerr.Missing{Table: "instance", Identity: instanceId}
	}

	inst, err := getInstance(ctx, tx, instanceId)
	if err != nil {
		return domain.InstanceBody{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.InstanceBody{}, xe.Wrap(err)
	}
	return inst, nil
}

func (p *pgInstance) SetCondition(ctx context.Context, instanceId string, status domain.Status, state domain.State) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(
		ctx,
		`update "instance" set "status" = $2, "state" = $3, "updated_at" = now() where "instance_id" = $1;`,
		instanceId, string(status), string(state),
	)
	if err != nil {
		return xe.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return kerr.Missing{Table: "instance", Identity: instanceId}
	}
	if err := tx.Commit(ctx); err != nil {
		return xe.Wrap(err)
	}
	return nil
}

func (p *pgInstance) Delete(ctx context.Context, instanceId string) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(
		ctx,
		`delete from "instance" where "instance_id" = $1;`,
		instanceId,
	)
	if err != nil {
		return xe.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return kerr.Missing{Table: "instance", Identity: instanceId}
	}
	if err := tx.Commit(ctx); err != nil {
		return xe.Wrap(err)
	}
	return nil
}
