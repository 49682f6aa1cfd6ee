package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"horas-api/internal/models"
)

type FuncionarioRepository interface {
	Create(ctx context.Context, funcionario *models.Funcionario) error
	List(ctx context.Context) ([]models.FuncionarioView, error)
	GetByID(ctx context.Context, id int64) (*models.FuncionarioView, error)
	Update(ctx context.Context, id int64, nome *string, cargoID *int64) error
	Delete(ctx context.Context, id int64) error
}

type funcionarioRepository struct {
	db      *sqlx.DB
	timeout time.Duration
	logger  *zap.Logger
}

func NewFuncionarioRepository(db *sqlx.DB, timeout time.Duration, logger *zap.Logger) FuncionarioRepository {
	return &funcionarioRepository{db: db, timeout: timeout, logger: logger}
}

func (r *funcionarioRepository) Create(ctx context.Context, funcionario *models.Funcionario) error {
	query, args, err := sq.Insert("funcionarios").
		Columns("nome", "cargo_id").
		Values(funcionario.Nome, funcionario.CargoID).
		ToSql()
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapStoreError("insert funcionario", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return wrapStoreError("insert funcionario", err)
	}
	funcionario.ID = id
	return nil
}

// selectFuncionarios joins the role name; employees without a matching role keep a NULL cargo.
func selectFuncionarios() sq.SelectBuilder {
	return sq.Select("f.id", "f.nome", "c.nome AS cargo").
		From("funcionarios f").
		LeftJoin("cargos c ON f.cargo_id = c.id")
}

func (r *funcionarioRepository) List(ctx context.Context) ([]models.FuncionarioView, error) {
	query, args, err := selectFuncionarios().OrderBy("f.id").ToSql()
	if err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	funcionarios := []models.FuncionarioView{}
	if err := r.db.SelectContext(ctx, &funcionarios, query, args...); err != nil {
		return nil, wrapStoreError("list funcionarios", err)
	}
	return funcionarios, nil
}

// GetByID returns nil, nil when no employee has the id.
func (r *funcionarioRepository) GetByID(ctx context.Context, id int64) (*models.FuncionarioView, error) {
	query, args, err := selectFuncionarios().Where(sq.Eq{"f.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var funcionario models.FuncionarioView
	if err := r.db.GetContext(ctx, &funcionario, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapStoreError("get funcionario", err)
	}
	return &funcionario, nil
}

// Update overwrites both columns; a nil field is written as NULL.
func (r *funcionarioRepository) Update(ctx context.Context, id int64, nome *string, cargoID *int64) error {
	query, args, err := sq.Update("funcionarios").
		Set("nome", nome).
		Set("cargo_id", cargoID).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapStoreError("update funcionario", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		r.logger.Debug("Update matched no funcionario", zap.Int64("id", id))
	}
	return nil
}

func (r *funcionarioRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := sq.Delete("funcionarios").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapStoreError("delete funcionario", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		r.logger.Debug("Delete matched no funcionario", zap.Int64("id", id))
	}
	return nil
}
