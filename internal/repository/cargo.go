package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"horas-api/internal/models"
)

type CargoRepository interface {
	Create(ctx context.Context, cargo *models.Cargo) error
	List(ctx context.Context) ([]models.Cargo, error)
	Count(ctx context.Context) (int, error)
}

type cargoRepository struct {
	db      *sqlx.DB
	timeout time.Duration
	logger  *zap.Logger
}

func NewCargoRepository(db *sqlx.DB, timeout time.Duration, logger *zap.Logger) CargoRepository {
	return &cargoRepository{db: db, timeout: timeout, logger: logger}
}

func (r *cargoRepository) Create(ctx context.Context, cargo *models.Cargo) error {
	query, args, err := sq.Insert("cargos").Columns("nome").Values(cargo.Nome).ToSql()
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapStoreError("insert cargo", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return wrapStoreError("insert cargo", err)
	}
	cargo.ID = id
	return nil
}

func (r *cargoRepository) List(ctx context.Context) ([]models.Cargo, error) {
	query, args, err := sq.Select("id", "nome").From("cargos").OrderBy("id").ToSql()
	if err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	cargos := []models.Cargo{}
	if err := r.db.SelectContext(ctx, &cargos, query, args...); err != nil {
		return nil, wrapStoreError("list cargos", err)
	}
	return cargos, nil
}

func (r *cargoRepository) Count(ctx context.Context) (int, error) {
	query, args, err := sq.Select("COUNT(*)").From("cargos").ToSql()
	if err != nil {
		return 0, err
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, wrapStoreError("count cargos", err)
	}
	return count, nil
}
