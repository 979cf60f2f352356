package store

import (
	"campusloans/internal/utils"
	"campusloans/pkg/types"
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const applicationTableName = "campusloans.loan_applications"

var applicationColumns = utils.StructTagValues(types.LoanApplication{})

type ApplicationRepository struct {
	pool *pgxpool.Pool
}

func NewApplicationRepository(pool *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{pool: pool}
}

func (r *ApplicationRepository) Application(ctx context.Context, applicationID string) (*types.LoanApplication, error) {

	query, args, err := psql().Select(applicationColumns...).From(applicationTableName).
		Where(sq.Eq{"id": applicationID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate application query: %w", err)
	}

	var app = new(types.LoanApplication)
	err = pgxscan.Get(ctx, r.pool, app, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to fetch application: %w", err)
	}

	return app, nil
}

// ApplicationsByUser returns every application owned by the user,
// newest first.
func (r *ApplicationRepository) ApplicationsByUser(ctx context.Context, userID string) ([]*types.LoanApplication, error) {

	query, args, err := psql().Select(applicationColumns...).From(applicationTableName).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate applications-by-user query: %w", err)
	}

	var apps = make([]*types.LoanApplication, 0)
	err = pgxscan.Select(ctx, r.pool, &apps, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch applications for user: %w", err)
	}

	return apps, nil
}

// CreateApplication performs the single insert that makes a draft durable.
// The caller decides the status; the commit point always passes Pending.
func (r *ApplicationRepository) CreateApplication(ctx context.Context, app *types.LoanApplication) error {

	if app.ID == "" {
		app.ID = utils.NanoID()
	}
	app.CreatedAt = time.Now()

	appMap := utils.StructToMap(app)

	query, args, err := psql().Insert(applicationTableName).SetMap(appMap).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert application query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create loan application")
}
