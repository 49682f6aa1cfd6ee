package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"horas-api/internal/models"
	"horas-api/internal/testutil"
)

func TestFuncionarioRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Should create and fetch with the role name", func(t *testing.T) {
		db := testutil.OpenInMemoryDB(t)
		cargoID := testutil.InsertCargo(t, db, "Gerente de Vendas")
		repo := NewFuncionarioRepository(db, time.Second, zap.NewNop())

		f := &models.Funcionario{Nome: "Ana", CargoID: &cargoID}
		require.NoError(t, repo.Create(ctx, f))
		assert.NotZero(t, f.ID)

		got, err := repo.GetByID(ctx, f.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, f.ID, got.ID)
		assert.Equal(t, "Ana", got.Nome)
		require.NotNil(t, got.Cargo)
		assert.Equal(t, "Gerente de Vendas", *got.Cargo)
	})

	t.Run("Should return nil for an unknown id", func(t *testing.T) {
		db := testutil.OpenInMemoryDB(t)
		repo := NewFuncionarioRepository(db, time.Second, zap.NewNop())

		got, err := repo.GetByID(ctx, 999)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Should fail with a store error when the role does not exist", func(t *testing.T) {
		db := testutil.OpenInMemoryDB(t)
		repo := NewFuncionarioRepository(db, time.Second, zap.NewNop())

		err := repo.Create(ctx, &models.Funcionario{Nome: "Ana", CargoID: testutil.Int64(42)})
		var storeErr *StoreError
		require.ErrorAs(t, err, &storeErr)
		assert.False(t, storeErr.Unavailable())
	})

	t.Run("Should list employees whose role is gone with a null cargo", func(t *testing.T) {
		db := testutil.OpenInMemoryDB(t)
		cargoID := testutil.InsertCargo(t, db, "Analista")
		repo := NewFuncionarioRepository(db, time.Second, zap.NewNop())

		withRole := &models.Funcionario{Nome: "Ana", CargoID: &cargoID}
		require.NoError(t, repo.Create(ctx, withRole))
		require.NoError(t, repo.Create(ctx, &models.Funcionario{Nome: "Bruno"}))

		_, err := db.Exec(`PRAGMA foreign_keys = OFF`)
		require.NoError(t, err)
		_, err = db.Exec(`DELETE FROM cargos WHERE id = ?`, cargoID)
		require.NoError(t, err)
		_, err = db.Exec(`PRAGMA foreign_keys = ON`)
		require.NoError(t, err)

		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Ana", list[0].Nome)
		assert.Nil(t, list[0].Cargo)
		assert.Equal(t, "Bruno", list[1].Nome)
		assert.Nil(t, list[1].Cargo)
	})

	t.Run("Should return an empty slice when there are no employees", func(t *testing.T) {
		db := testutil.OpenInMemoryDB(t)
		repo := NewFuncionarioRepository(db, time.Second, zap.NewNop())

		list, err := repo.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})

	t.Run("Should update name and role", func(t *testing.T) {
		db := testutil.OpenInMemoryDB(t)
		first := testutil.InsertCargo(t, db, "Analista")
		second := testutil.InsertCargo(t, db, "Coordenador")
		repo := NewFuncionarioRepository(db, time.Second, zap.NewNop())

		f := &models.Funcionario{Nome: "Ana", CargoID: &first}
		require.NoError(t, repo.Create(ctx, f))

		nome := "Ana Maria"
		require.NoError(t, repo.Update(ctx, f.ID, &nome, &second))

		got, err := repo.GetByID(ctx, f.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ana Maria", got.Nome)
		assert.Equal(t, "Coordenador", *got.Cargo)
	})

	t.Run("Should accept update and delete of a missing id", func(t *testing.T) {
		db := testutil.OpenInMemoryDB(t)
		cargoID := testutil.InsertCargo(t, db, "Analista")
		repo := NewFuncionarioRepository(db, time.Second, zap.NewNop())

		nome := "Ninguém"
		assert.NoError(t, repo.Update(ctx, 404, &nome, &cargoID))
		assert.NoError(t, repo.Delete(ctx, 404))
	})

	t.Run("Should fail with a store error when the name is cleared", func(t *testing.T) {
		db := testutil.OpenInMemoryDB(t)
		repo := NewFuncionarioRepository(db, time.Second, zap.NewNop())

		f := &models.Funcionario{Nome: "Ana"}
		require.NoError(t, repo.Create(ctx, f))

		err := repo.Update(ctx, f.ID, nil, nil)
		var storeErr *StoreError
		require.ErrorAs(t, err, &storeErr)
	})

	t.Run("Should delete an employee", func(t *testing.T) {
		db := testutil.OpenInMemoryDB(t)
		repo := NewFuncionarioRepository(db, time.Second, zap.NewNop())

		f := &models.Funcionario{Nome: "Ana"}
		require.NoError(t, repo.Create(ctx, f))
		require.NoError(t, repo.Delete(ctx, f.ID))

		got, err := repo.GetByID(ctx, f.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Should report an expired deadline as store unavailable", func(t *testing.T) {
		db := testutil.OpenInMemoryDB(t)
		repo := NewFuncionarioRepository(db, time.Second, zap.NewNop())

		expired, cancel := context.WithDeadline(ctx, time.Now().Add(-time.Second))
		defer cancel()

		_, err := repo.List(expired)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrStoreUnavailable))
	})
}
