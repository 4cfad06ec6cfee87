package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	kpool "github.com/zbitech/zbi-db/pkg/conn/db/postgres/pool"
	"github.com/zbitech/zbi-db/pkg/domain"
	kerr "github.com/zbitech/zbi-db/pkg/domain/errors/dberrors/postgres"
	kpguser "github.com/zbitech/zbi-db/pkg/domain/user/db"
	xe "github.com/zbitech/zbi-db/pkg/errors"
)

type pgUser struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kpguser.Interface {
	return &pgUser{pool: pool}
}

func (p *pgUser) Register(ctx context.Context, spec kpguser.UserSpec) (domain.User, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return domain.User{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	user := domain.User{
		Id:       uuid.NewString(),
		Email:    spec.Email,
		Name:     spec.Name,
		Role:     spec.Role,
		Active:   true,
		Provider: spec.Provider,
	}

	if err := tx.QueryRow(
		ctx,
		`
		insert into "account"
			("user_id", "email", "name", "role", "active", "provider")
		values
			($1, $2, $3, $4, true, $5)
		returning "created_at", "updated_at";
		`,
		user.Id, spec.Email, spec.Name, string(spec.Role), spec.Provider,
	).Scan(&user.CreatedAt, &user.UpdatedAt); err != nil {
		return domain.User{}, xe.Wrap(kerr.WrapUniqueViolation(err, "account", spec.Email))
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.User{}, xe.Wrap(err)
	}
	return user, nil
}

const userColumns = `
	"user_id", "email", "name", "role", "active", "provider",
	"created_at", "updated_at"
`

func scanUser(row pgx.Row) (domain.User, error) {
	user := domain.User{}
	var role string
	if err := row.Scan(
		&user.Id, &user.Email, &user.Name, &role, &user.Active, &user.Provider,
		&user.CreatedAt, &user.UpdatedAt,
	); err != nil {
		return domain.User{}, err
	}
	user.Role = domain.Role(role)
	return user, nil
}

func (p *pgUser) Get(ctx context.Context, userId string) (domain.User, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return domain.User{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	user, err := scanUser(tx.QueryRow(
		ctx,
		`select `+userColumns+` from "account" where "user_id" = $1;`,
		userId,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, kerr.Missing{Table: "account", Identity: userId}
	}
	if err != nil {
		return domain.User{}, xe.Wrap(err)
	}
	return user, nil
}

func (p *pgUser) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return domain.User{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	user, err := scanUser(tx.QueryRow(
		ctx,
		`select `+userColumns+` from "account" where "email" = $1;`,
		email,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, kerr.Missing{Table: "account", Identity: email}
	}
	if err != nil {
		return domain.User{}, xe.Wrap(err)
	}
	return user, nil
}

func (p *pgUser) List(ctx context.Context) ([]domain.User, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(
		ctx,
		`select `+userColumns+` from "account" order by "created_at", "user_id";`,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, xe.Wrap(err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, xe.Wrap(err)
	}

	return users, nil
}

func (p *pgUser) SetActive(ctx context.Context, userId string, active bool) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(
		ctx,
		`update "account" set "active" = $2, "updated_at" = now() where "user_id" = $1;`,
		userId, active,
	)
	if err != nil {
		return xe.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return kerr.Missing{Table: "account", Identity: userId}
	}
	if err := tx.Commit(ctx); err != nil {
		return xe.Wrap(err)
	}
	return nil
}
