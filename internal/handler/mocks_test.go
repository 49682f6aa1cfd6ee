package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"horas-api/internal/models"
	"horas-api/internal/service"
)

type mockFuncionarioService struct {
	mock.Mock
}

func (m *mockFuncionarioService) Create(ctx context.Context, nome string, cargoID int64) (*models.Funcionario, error) {
	args := m.Called(ctx, nome, cargoID)
	if f := args.Get(0); f != nil {
		return f.(*models.Funcionario), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFuncionarioService) List(ctx context.Context) ([]models.FuncionarioView, error) {
	args := m.Called(ctx)
	if l := args.Get(0); l != nil {
		return l.([]models.FuncionarioView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFuncionarioService) GetByID(ctx context.Context, id int64) (*models.FuncionarioView, error) {
	args := m.Called(ctx, id)
	if f := args.Get(0); f != nil {
		return f.(*models.FuncionarioView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFuncionarioService) Update(ctx context.Context, id int64, nome *string, cargoID *int64) error {
	args := m.Called(ctx, id, nome, cargoID)
	return args.Error(0)
}

func (m *mockFuncionarioService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockUsuarioService struct {
	mock.Mock
}

func (m *mockUsuarioService) Register(ctx context.Context, email, senha string, funcionarioID int64) (*models.Usuario, error) {
	args := m.Called(ctx, email, senha, funcionarioID)
	if u := args.Get(0); u != nil {
		return u.(*models.Usuario), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUsuarioService) Login(ctx context.Context, email, senha string) (*service.LoginResult, error) {
	args := m.Called(ctx, email, senha)
	if r := args.Get(0); r != nil {
		return r.(*service.LoginResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUsuarioService) List(ctx context.Context) ([]models.UsuarioView, error) {
	args := m.Called(ctx)
	if l := args.Get(0); l != nil {
		return l.([]models.UsuarioView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUsuarioService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockCargoService struct {
	mock.Mock
}

func (m *mockCargoService) List(ctx context.Context) ([]models.Cargo, error) {
	args := m.Called(ctx)
	if l := args.Get(0); l != nil {
		return l.([]models.Cargo), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCargoService) Seed(ctx context.Context, nomes []string) (int, error) {
	args := m.Called(ctx, nomes)
	return args.Int(0), args.Error(1)
}
