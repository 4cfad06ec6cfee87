package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	kpool "github.com/zbitech/zbi-db/pkg/conn/db/postgres/pool"
	"github.com/zbitech/zbi-db/pkg/domain"
	kpgact "github.com/zbitech/zbi-db/pkg/domain/activity/db"
	kerr "github.com/zbitech/zbi-db/pkg/domain/errors/dberrors/postgres"
	xe "github.com/zbitech/zbi-db/pkg/errors"
)

type pgActivity struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kpgact.Interface {
	return &pgActivity{pool: pool}
}

func (p *pgActivity) Append(ctx context.Context, ownerId string, op domain.Operation) (domain.Activity, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return domain.Activity{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	act := domain.Activity{
		Id:        uuid.NewString(),
		OwnerId:   ownerId,
		Operation: op,
	}

	if err := tx.QueryRow(
		ctx,
		`
		insert into "activity"
			("activity_id", "owner_id", "operation", "completed", "success", "expires_at")
		values
			($1, $2, $3, false, false, now() + make_interval(secs => $4))
		returning "created_at", "updated_at", "expires_at";
		`,
		act.Id, ownerId, string(op), domain.ActivityRetention.Seconds(),
	).Scan(&act.CreatedAt, &act.UpdatedAt, &act.ExpiresAt); err != nil {
		return domain.Activity{}, xe.Wrap(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Activity{}, xe.Wrap(err)
	}
	return act, nil
}

func (p *pgActivity) Complete(ctx context.Context, activityId string, success bool) (domain.Activity, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return domain.Activity{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	act := domain.Activity{Id: activityId, Completed: true, Success: success}
	var operation string

	err = tx.QueryRow(
		ctx,
		`
		update "activity" set "completed" = true, "success" = $2, "updated_at" = now()
		where "activity_id" = $1
		returning "owner_id", "operation", "created_at", "updated_at", "expires_at";
		`,
		activityId, success,
	).Scan(&act.OwnerId, &operation, &act.CreatedAt, &act.UpdatedAt, &act.ExpiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Activity{}, kerr.Missing{Table: "activity", Identity: activityId}
	}
	if err != nil {
		return domain.Activity{}, xe.Wrap(err)
	}
	act.Operation = domain.Operation(operation)

	if err := tx.Commit(ctx); err != nil {
		return domain.Activity{}, xe.Wrap(err)
	}
	return act, nil
}

func (p *pgActivity) List(ctx context.Context, ownerId string) ([]domain.Activity, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(
		ctx,
		`
		select
			"activity_id", "owner_id", "operation", "completed", "success",
			"created_at", "updated_at", "expires_at"
		from "activity"
		where "owner_id" = $1
		order by "created_at", "activity_id";
		`,
		ownerId,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer rows.Close()

	activities := []domain.Activity{}
	for rows.Next() {
		act := domain.Activity{}
		var operation string
		if err := rows.Scan(
			&act.Id, &act.OwnerId, &operation, &act.Completed, &act.Success,
			&act.CreatedAt, &act.UpdatedAt, &act.ExpiresAt,
		); err != nil {
			return nil, xe.Wrap(err)
		}
		act.Operation = domain.Operation(operation)
		activities = append(activities, act)
	}
	if err := rows.Err(); err != nil {
		return nil, xe.Wrap(err)
	}

	return activities, nil
}

func (p *pgActivity) Expire(ctx context.Context) (int64, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return 0, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(
		ctx,
		`delete from "activity" where "expires_at" <= now();`,
	)
	if err != nil {
		return 0, xe.Wrap(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, xe.Wrap(err)
	}
	return tag.RowsAffected(), nil
}
