package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"horas-api/internal/models"
)

type mockUsuarioRepository struct {
	mock.Mock
}

func (m *mockUsuarioRepository) Create(ctx context.Context, usuario *models.Usuario) error {
	args := m.Called(ctx, usuario)
	return args.Error(0)
}

func (m *mockUsuarioRepository) GetByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*models.Usuario), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUsuarioRepository) List(ctx context.Context) ([]models.UsuarioView, error) {
	args := m.Called(ctx)
	if l := args.Get(0); l != nil {
		return l.([]models.UsuarioView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUsuarioRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockFuncionarioRepository struct {
	mock.Mock
}

func (m *mockFuncionarioRepository) Create(ctx context.Context, funcionario *models.Funcionario) error {
	args := m.Called(ctx, funcionario)
	return args.Error(0)
}

func (m *mockFuncionarioRepository) List(ctx context.Context) ([]models.FuncionarioView, error) {
	args := m.Called(ctx)
	if l := args.Get(0); l != nil {
		return l.([]models.FuncionarioView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFuncionarioRepository) GetByID(ctx context.Context, id int64) (*models.FuncionarioView, error) {
	args := m.Called(ctx, id)
	if f := args.Get(0); f != nil {
		return f.(*models.FuncionarioView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFuncionarioRepository) Update(ctx context.Context, id int64, nome *string, cargoID *int64) error {
	args := m.Called(ctx, id, nome, cargoID)
	return args.Error(0)
}

func (m *mockFuncionarioRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockCargoRepository struct {
	mock.Mock
}

func (m *mockCargoRepository) Create(ctx context.Context, cargo *models.Cargo) error {
	args := m.Called(ctx, cargo)
	return args.Error(0)
}

func (m *mockCargoRepository) List(ctx context.Context) ([]models.Cargo, error) {
	args := m.Called(ctx)
	if l := args.Get(0); l != nil {
		return l.([]models.Cargo), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCargoRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
