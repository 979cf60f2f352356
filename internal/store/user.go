package store

import (
	"campusloans/internal/utils"
	"campusloans/pkg/types"
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userTableName = "campusloans.users"

var userColumns = utils.StructTagValues(types.User{})

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) User(ctx context.Context, userID string) (*types.User, error) {
	query, args, err := psql().
		Select(userColumns...).
		From(userTableName).
		Where(sq.Eq{"id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user query: %w", err)
	}

	var user types.User
	err = pgxscan.Get(ctx, r.pool, &user, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	return &user, nil
}

// UpsertIdentity mirrors the Cognito identity into the local users table.
// Called after sign-up and sign-in; later claims win, but empty claims
// never clobber stored values.
func (r *UserRepository) UpsertIdentity(ctx context.Context, userID, email, givenName, familyName string) error {
	query := `
		INSERT INTO campusloans.users (id, email, given_name, family_name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id)
		DO UPDATE SET
			email = COALESCE(EXCLUDED.email, campusloans.users.email),
			given_name = COALESCE(EXCLUDED.given_name, campusloans.users.given_name),
			family_name = COALESCE(EXCLUDED.family_name, campusloans.users.family_name),
			updated_at = now()`

	_, err := r.pool.Exec(ctx, query, userID, nullable(email), nullable(givenName), nullable(familyName))
	if err != nil {
		return fmt.Errorf("upsert user identity: %w", err)
	}

	return nil
}

func nullable(v string) any {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return v
}
