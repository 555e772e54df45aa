package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"stockledger/internal/core/apperror"
	"stockledger/internal/domain/settings"
)

const settingsTable = "settings"

// settingsRowID pins the singleton row.
const settingsRowID = 1

// SettingsRepo implements settings.Repository.
type SettingsRepo struct {
	pool *Pool
}

// NewSettingsRepo creates a new settings repository.
func NewSettingsRepo(pool *Pool) *SettingsRepo {
	return &SettingsRepo{pool: pool}
}

var _ settings.Repository = (*SettingsRepo)(nil)

func (r *SettingsRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Get retrieves the settings singleton.
func (r *SettingsRepo) Get(ctx context.Context) (*settings.Settings, error) {
	ctx, end := startSpan(ctx, "settings.get", settingsTable)
	var err error
	defer func() { end(err) }()

	sql, args, err := r.builder().
		Select("unit_price").
		From(settingsTable).
		Where(squirrel.Eq{"id": settingsRowID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var s settings.Settings
	if err = pgxscan.Get(ctx, r.pool, &s, sql, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = apperror.NewNotFound("settings", settingsRowID)
			return nil, err
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}

	return &s, nil
}

// Save upserts the settings singleton (merge semantics).
func (r *SettingsRepo) Save(ctx context.Context, s *settings.Settings) error {
	ctx, end := startSpan(ctx, "settings.save", settingsTable)
	var err error
	defer func() { end(err) }()

	sql, args, err := r.builder().
		Insert(settingsTable).
		Columns("id", "unit_price").
		Values(settingsRowID, s.UnitPrice).
		Suffix("ON CONFLICT (id) DO UPDATE SET unit_price = EXCLUDED.unit_price").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err = r.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	return nil
}
