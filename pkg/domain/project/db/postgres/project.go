package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	kpool "github.com/zbitech/zbi-db/pkg/conn/db/postgres/pool"
	"github.com/zbitech/zbi-db/pkg/domain"
	kerr "github.com/zbitech/zbi-db/pkg/domain/errors/dberrors/postgres"
	kpgproj "github.com/zbitech/zbi-db/pkg/domain/project/db"
	xe "github.com/zbitech/zbi-db/pkg/errors"
)

type pgProject struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kpgproj.Interface {
	return &pgProject{pool: pool}
}

func (p *pgProject) Create(ctx context.Context, spec kpgproj.ProjectSpec) (domain.Project, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return domain.Project{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	projectId := uuid.NewString()

	proj := domain.Project{
		Id:          projectId,
		Name:        spec.Name,
		Owner:       spec.Owner,
		Blockchain:  spec.Blockchain,
		Network:     spec.Network,
		Status:      domain.StatusNew,
		State:       domain.StateCreating,
		Description: spec.Description,
	}

	if err := tx.QueryRow(
		ctx,
		`
		insert into "project"
			("project_id", "name", "owner", "blockchain", "network", "status", "state", "description")
		values
			($1, $2, $3, $4, $5, $6, $7, $8)
		returning "created_at", "updated_at";
		`,
		projectId, spec.Name, spec.Owner, spec.Blockchain,
		string(spec.Network), string(proj.Status), string(proj.State), spec.Description,
	).Scan(&proj.CreatedAt, &proj.UpdatedAt); err != nil {
		return domain.Project{}, xe.Wrap(kerr.WrapUniqueViolation(err, "project", spec.Name))
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Project{}, xe.Wrap(err)
	}
	return proj, nil
}

func (p *pgProject) Get(ctx context.Context, projectId string) (domain.Project, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return domain.Project{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	return getProject(ctx, tx, projectId)
}

// getProject loads a single project row via a query runner the caller holds.
func getProject(ctx context.Context, q kpool.Queryer, projectId string) (domain.Project, error) {
	proj := domain.Project{Id: projectId}
	var network, status, state string

	err := q.QueryRow(
		ctx,
		`
		select
			"name", "owner", "blockchain", "network",
			"status", "state", "description", "created_at", "updated_at"
		from "project" where "project_id" = $1;
		`,
		projectId,
	).Scan(
		&proj.Name, &proj.Owner, &proj.Blockchain, &network,
		&status, &state, &proj.Description, &proj.CreatedAt, &proj.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Project{}, kerr.Missing{Table: "project", Identity: projectId}
	}
	if err != nil {
		return domain.Project{}, xe.Wrap(err)
	}

	proj.Network = domain.NetworkKind(network)
	proj.Status = domain.Status(status)
	proj.State = domain.State(state)
	return proj, nil
}

func (p *pgProject) Check(ctx context.Context, projectId string) (bool, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return false, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	var found bool
	if err := tx.QueryRow(
		ctx,
		`select exists (select 1 from "project" where "project_id" = $1);`,
		projectId,
	).Scan(&found); err != nil {
		return false, xe.Wrap(err)
	}
	return found, nil
}

func (p *pgProject) Find(ctx context.Context, query domain.ProjectFindQuery) ([]domain.Project, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(
		ctx,
		`
		select
			"project_id", "name", "owner", "blockchain", "network",
			"status", "state", "description", "created_at", "updated_at"
		from "project"
		where
			($1 = '' or "name" = $1)
			and ($2 = '' or "owner" = $2)
		order by "created_at", "project_id";
		`,
		query.Name, query.Owner,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		proj := domain.Project{}
		var network, status, state string
		if err := rows.Scan(
			&proj.Id, &proj.Name, &proj.Owner, &proj.Blockchain, &network,
			&status, &state, &proj.Description, &proj.CreatedAt, &proj.UpdatedAt,
		); err != nil {
			return nil, xe.Wrap(err)
		}
		proj.Network = domain.NetworkKind(network)
		proj.Status = domain.Status(status)
		proj.State = domain.State(state)
		projects = append(projects, proj)
	}
	if err := rows.Err(); err != nil {
		return nil, xe.Wrap(err)
	}

	return projects, nil
}

func (p *pgProject) UpdateDescription(ctx context.Context, projectId string, description string) (domain.Project, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return domain.Project{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(
		ctx,
		`update "project" set "description" = $2, "updated_at" = now() where "project_id" = $1;`,
		projectId, description,
	)
	if err != nil {
		return domain.Project{}, xe.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.Project{}, kerr.Missing{Table: "project", Identity: projectId}
	}

	proj, err := getProject(ctx, tx, projectId)
	if err != nil {
		return domain.Project{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Project{}, xe.Wrap(err)
	}
	return proj, nil
}

func (p *pgProject) SetCondition(ctx context.Context, projectId string, status domain.Status, state domain.State) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(
		ctx,
		`update "project" set "status" = $2, "state" = $3, "updated_at" = now() where "project_id" = $1;`,
		projectId, string(status), string(state),
	)
	if err != nil {
		return xe.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return kerr.Missing{Table: "project", Identity: projectId}
	}
	if err := tx.Commit(ctx); err != nil {
		return xe.Wrap(err)
	}
	return nil
}

func (p *pgProject) Delete(ctx context.Context, projectId string) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(
		ctx,
		`delete from "project" where "project_id" = $1;`,
		projectId,
	)
	if err != nil {
		return xe.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return kerr.Missing{Table: "project", Identity: projectId}
	}
	if err := tx.Commit(ctx); err != nil {
		return xe.Wrap(err)
	}
	return nil
}
