package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"horas-api/internal/models"
	"horas-api/internal/repository"
)

type FuncionarioService interface {
	Create(ctx context.Context, nome string, cargoID int64) (*models.Funcionario, error)
	List(ctx context.Context) ([]models.FuncionarioView, error)
	GetByID(ctx context.Context, id int64) (*models.FuncionarioView, error)
	Update(ctx context.Context, id int64, nome *string, cargoID *int64) error
	Delete(ctx context.Context, id int64) error
}

type funcionarioService struct {
	repo   repository.FuncionarioRepository
	logger *zap.Logger
}

func NewFuncionarioService(repo repository.FuncionarioRepository, logger *zap.Logger) FuncionarioService {
	return &funcionarioService{repo: repo, logger: logger}
}

func (s *funcionarioService) Create(ctx context.Context, nome string, cargoID int64) (*models.Funcionario, error) {
	if strings.TrimSpace(nome) == "" || cargoID == 0 {
		return nil, ErrValidation
	}

	funcionario := &models.Funcionario{Nome: nome, CargoID: &cargoID}
	if err := s.repo.Create(ctx, funcionario); err != nil {
		s.logger.Error("Failed to create funcionario", zap.Error(err))
		return nil, err
	}
	return funcionario, nil
}

func (s *funcionarioService) List(ctx context.Context) ([]models.FuncionarioView, error) {
	funcionarios, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list funcionarios", zap.Error(err))
		return nil, err
	}
	return funcionarios, nil
}

func (s *funcionarioService) GetByID(ctx context.Context, id int64) (*models.FuncionarioView, error) {
	funcionario, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get funcionario", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	if funcionario == nil {
		return nil, ErrNotFound
	}
	return funcionario, nil
}

// Update does not check that the employee existed; fields left nil are written as NULL.
func (s *funcionarioService) Update(ctx context.Context, id int64, nome *string, cargoID *int64) error {
	if err := s.repo.Update(ctx, id, nome, cargoID); err != nil {
		s.logger.Error("Failed to update funcionario", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// Delete does not check that the employee existed.
func (s *funcionarioService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete funcionario", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}
