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
	kpgres "github.com/zbitech/zbi-db/pkg/domain/resource/db"
	xe "github.com/zbitech/zbi-db/pkg/errors"
)

type pgResource struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kpgres.Interface {
	return &pgResource{pool: pool}
}

func (p *pgResource) Upsert(ctx context.Context, ownerId string, spec kpgres.ResourceSpec) (domain.Resource, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return domain.Resource{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	properties, err := marshal.JSONBValue(spec.Properties)
	if err != nil {
		return domain.Resource{}, xe.Wrap(err)
	}

	// Singleton kinds are keyed by (owner, kind) and a new name takes
	// over the record; repeatable kinds are keyed by (owner, kind, name).
	// Select-then-write under the tx keeps the partial unique index from
	// firing on concurrent reports for the same key.
	var existingId string
	var sel pgx.Row
	if spec.Kind.Repeatable() {
		sel = tx.QueryRow(
			ctx,
			`
			select "resource_id" from "resource"
			where "owner_id" = $1 and "kind" = $2 and "name" = $3
			for update;
			`,
			ownerId, spec.Kind.String(), spec.Name,
		)
	} else {
		sel = tx.QueryRow(
			ctx,
			`
			select "resource_id" from "resource"
			where "owner_id" = $1 and "kind" = $2
			for update;
			`,
			ownerId, spec.Kind.String(),
		)
	}

	res := domain.Resource{
		OwnerId:    ownerId,
		Kind:       spec.Kind,
		Name:       spec.Name,
		Status:     spec.Status,
		Properties: spec.Properties,
	}

	switch err := sel.Scan(&existingId); {
	case errors.Is(err, pgx.ErrNoRows):
		res.Id = uuid.NewString()
		if err := tx.QueryRow(
			ctx,
			`
			insert into "resource"
				("resource_id", "owner_id", "kind", "name", "status", "properties")
			values
				($1, $2, $3, $4, $5, $6)
			returning "created_at", "updated_at";
			`,
			res.Id, ownerId, spec.Kind.String(), spec.Name, spec.Status, properties,
		).Scan(&res.CreatedAt, &res.UpdatedAt); err != nil {
			return domain.Resource{}, xe.Wrap(kerr.WrapUniqueViolation(err, "resource", spec.Name))
		}
	case err != nil:
		return domain.Resource{}, xe.Wrap(err)
	default:
		res.Id = existingId
		if err := tx.QueryRow(
			ctx,
			`
			update "resource" set
				"name" = $2, "status" = $3, "properties" = $4, "updated_at" = now()
			where "resource_id" = $1
			returning "created_at", "updated_at";
			`,
			existingId, spec.Name, spec.Status, properties,
		).Scan(&res.CreatedAt, &res.UpdatedAt); err != nil {
			return domain.Resource{}, xe.Wrap(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Resource{}, xe.Wrap(err)
	}
	return res, nil
}

func scanResource(row pgx.Row) (domain.Resource, error) {
	res := domain.Resource{}
	var kind string
	var properties pgtype.JSONB

	if err := row.Scan(
		&res.Id, &res.OwnerId, &kind, &res.Name, &res.Status, &properties,
		&res.CreatedAt, &res.UpdatedAt,
	); err != nil {
		return domain.Resource{}, err
	}

	res.Kind = domain.ResourceKind(kind)
	props, err := marshal.JSONBMap(properties)
	if err != nil {
		return domain.Resource{}, err
	}
	res.Properties = props
	return res, nil
}

const resourceColumns = `
	"resource_id", "owner_id", "kind", "name", "status", "properties",
	"created_at", "updated_at"
`

func (p *pgResource) Get(ctx context.Context, ownerId string, kind domain.ResourceKind, name string) (domain.Resource, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return domain.Resource{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	var row pgx.Row
	if kind.Repeatable() {
		row = tx.QueryRow(
			ctx,
			`select `+resourceColumns+` from "resource"
			where "owner_id" = $1 and "kind" = $2 and "name" = $3;`,
			ownerId, kind.String(), name,
		)
	} else {
		row = tx.QueryRow(
			ctx,
			`select `+resourceColumns+` from "resource"
			where "owner_id" = $1 and "kind" = $2;`,
			ownerId, kind.String(),
		)
	}

	res, err := scanResource(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Resource{}, kerr.Missing{Table: "resource", Identity: kind.String()}
	}
	if err != nil {
		return domain.Resource{}, xe.Wrap(err)
	}
	return res, nil
}

func (p *pgResource) List(ctx context.Context, ownerId string) ([]domain.Resource, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(
		ctx,
		`select `+resourceColumns+` from "resource"
		where "owner_id" = $1
		order by "created_at", "resource_id";`,
		ownerId,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer rows.Close()

	resources := []domain.Resource{}
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, xe.Wrap(err)
		}
		resources = append(resources, res)
	}
	if err := rows.Err(); err != nil {
		return nil, xe.Wrap(err)
	}

	return resources, nil
}

func (p *pgResource) Delete(ctx context.Context, ownerId string, kind domain.ResourceKind, name string) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	var tagErr error
	var affected int64
	if kind.Repeatable() {
		tag, err := tx.Exec(
			ctx,
			`delete from "resource" where "owner_id" = $1 and "kind" = $2 and "name" = $3;`,
			ownerId, kind.String(), name,
		)
		tagErr = err
		affected = tag.RowsAffected()
	} else {
		tag, err := tx.Exec(
			ctx,
			`delete from "resource" where "owner_id" = $1 and "kind" = $2;`,
			ownerId, kind.String(),
		)
		tagErr = err
		affected = tag.RowsAffected()
	}
	if tagErr != nil {
		return xe.Wrap(tagErr)
	}
	if affected == 0 {
		return kerr.Missing{Table: "resource", Identity: kind.String()}
	}
	if err := tx.Commit(ctx); err != nil {
		return xe.Wrap(err)
	}
	return nil
}
