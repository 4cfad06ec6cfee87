package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	kpool "github.com/zbitech/zbi-db/pkg/conn/db/postgres/pool"
	"github.com/zbitech/zbi-db/pkg/domain"
	kerr "github.com/zbitech/zbi-db/pkg/domain/errors/dberrors/postgres"
	kpgperm "github.com/zbitech/zbi-db/pkg/domain/permission/db"
	xe "github.com/zbitech/zbi-db/pkg/errors"
)

type pgPermission struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kpgperm.Interface {
	return &pgPermission{pool: pool}
}

func (p *pgPermission) Set(ctx context.Context, ownerId string, userId string, flags domain.PermissionFlags) (domain.Permission, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return domain.Permission{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	perm := domain.Permission{
		OwnerId: ownerId,
		UserId:  userId,
		Flags:   flags,
	}

	if err := tx.QueryRow(
		ctx,
		`
		insert into "permission"
			("permission_id", "owner_id", "user_id",
			 "read", "update", "delete", "operate", "access")
		values
			($1, $2, $3, $4, $5, $6, $7, $8)
		on conflict ("owner_id", "user_id") do update set
			"read" = excluded."read",
			"update" = excluded."update",
			"delete" = excluded."delete",
			"operate" = excluded."operate",
			"access" = excluded."access",
			"updated_at" = now()
		returning "permission_id", "created_at", "updated_at";
		`,
		uuid.NewString(), ownerId, userId,
		flags.Read, flags.Update, flags.Delete, flags.Operate, flags.Access,
	).Scan(&perm.Id, &perm.CreatedAt, &perm.UpdatedAt); err != nil {
		return domain.Permission{}, xe.Wrap(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Permission{}, xe.Wrap(err)
	}
	return perm, nil
}

const permissionColumns = `
	"permission_id", "owner_id", "user_id",
	"read", "update", "delete", "operate", "access",
	"created_at", "updated_at"
`

func scanPermission(row pgx.Row) (domain.Permission, error) {
	perm := domain.Permission{}
	if err := row.Scan(
		&perm.Id, &perm.OwnerId, &perm.UserId,
		&perm.Flags.Read, &perm.Flags.Update, &perm.Flags.Delete,
		&perm.Flags.Operate, &perm.Flags.Access,
		&perm.CreatedAt, &perm.UpdatedAt,
	); err != nil {
		return domain.Permission{}, err
	}
	return perm, nil
}

func (p *pgPermission) Get(ctx context.Context, ownerId string, userId string) (domain.Permission, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return domain.Permission{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	perm, err := scanPermission(tx.QueryRow(
		ctx,
		`select `+permissionColumns+` from "permission"
		where "owner_id" = $1 and "user_id" = $2;`,
		ownerId, userId,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Permission{}, kerr.Missing{Table: "permission", Identity: userId}
	}
	if err != nil {
		return domain.Permission{}, xe.Wrap(err)
	}
	return perm, nil
}

func (p *pgPermission) List(ctx context.Context, ownerId string) ([]domain.Permission, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(
		ctx,
		`select `+permissionColumns+` from "permission"
		where "owner_id" = $1
		order by "created_at", "permission_id";`,
		ownerId,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer rows.Close()

	permissions := []domain.Permission{}
	for rows.Next() {
		perm, err := scanPermission(rows)
		if err != nil {
			return nil, xe.Wrap(err)
		}
		permissions = append(permissions, perm)
	}
	if err := rows.Err(); err != nil {
		return nil, xe.Wrap(err)
	}

	return permissions, nil
}

func (p *pgPermission) Remove(ctx context.Context, ownerId string, userId string) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(
		ctx,
		`delete from "permission" where "owner_id" = $1 and "user_id" = $2;`,
		ownerId, userId,
	)
	if err != nil {
		return xe.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return kerr.Missing{Table: "permission", Identity: userId}
	}
	if err := tx.Commit(ctx); err != nil {
		return xe.Wrap(err)
	}
	return nil
}
