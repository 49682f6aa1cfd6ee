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

type UsuarioRepository interface {
	Create(ctx context.Context, usuario *models.Usuario) error
	GetByEmail(ctx context.Context, email string) (*models.Usuario, error)
	List(ctx context.Context) ([]models.UsuarioView, error)
	Delete(ctx context.Context, id int64) error
}

type usuarioRepository struct {
	db      *sqlx.DB
	timeout time.Duration
	logger  *zap.Logger
}

func NewUsuarioRepository(db *sqlx.DB, timeout time.Duration, logger *zap.Logger) UsuarioRepository {
	return &usuarioRepository{db: db, timeout: timeout, logger: logger}
}

func (r *usuarioRepository) Create(ctx context.Context, usuario *models.Usuario) error {
	query, args, err := sq.Insert("usuarios").
		Columns("email", "senha", "funcionario_id").
		Values(usuario.Email, usuario.Senha, usuario.FuncionarioID).
		ToSql()
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapStoreError("insert usuario", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return wrapStoreError("insert usuario", err)
	}
	usuario.ID = id
	return nil
}

// GetByEmail returns nil, nil when no user has the email.
func (r *usuarioRepository) GetByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	query, args, err := sq.Select("id", "email", "senha", "funcionario_id").
		From("usuarios").
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var usuario models.Usuario
	if err := r.db.GetContext(ctx, &usuario, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapStoreError("get usuario", err)
	}
	return &usuario, nil
}

func (r *usuarioRepository) List(ctx context.Context) ([]models.UsuarioView, error) {
	query, args, err := sq.Select("u.id", "u.email", "f.nome AS funcionario").
		From("usuarios u").
		LeftJoin("funcionarios f ON u.funcionario_id = f.id").
		OrderBy("u.id").
		ToSql()
	if err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	usuarios := []models.UsuarioView{}
	if err := r.db.SelectContext(ctx, &usuarios, query, args...); err != nil {
		return nil, wrapStoreError("list usuarios", err)
	}
	return usuarios, nil
}

func (r *usuarioRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := sq.Delete("usuarios").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapStoreError("delete usuario", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		r.logger.Debug("Delete matched no usuario", zap.Int64("id", id))
	}
	return nil
}
